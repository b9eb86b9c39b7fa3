package eui

import (
	"slices"
	"strings"
	"unicode"
)

const defaultInputColumns = 20

// TextInput is a single line editor.
type TextInput struct {
	Base

	text        []rune
	caret       int
	scroll      float32
	placeholder string
	columns     int
	fontSize    float32
	autoSize    bool
	handler     *EventHandler
}

func NewTextInput() *TextInput {
	t := &TextInput{columns: defaultInputColumns, autoSize: true, handler: newHandler()}
	t.overrides = map[Property]Variant{PropCursor: StringValue("text")}
	t.Init(t)
	return t
}

func (t *TextInput) TypeName() string       { return "TextInput" }
func (t *TextInput) Handler() *EventHandler { return t.handler }
func (t *TextInput) Text() string           { return string(t.text) }
func (t *TextInput) Caret() int             { return t.caret }
func (t *TextInput) Placeholder() string    { return t.placeholder }

// SetText replaces the text and moves the caret to the end. No event is
// emitted.
func (t *TextInput) SetText(s string) {
	t.text = []rune(s)
	t.caret = len(t.text)
	t.Invalidate(InvalidatePaint)
}

func (t *TextInput) SetPlaceholder(s string) {
	t.placeholder = s
	t.Invalidate(InvalidatePaint)
}

func (t *TextInput) FontSize() float32 {
	if t.fontSize > 0 {
		return t.fontSize
	}
	return t.Float(PropFontSize)
}

func (t *TextInput) fit(ctx *Context) {
	if ctx == nil || !t.autoSize {
		return
	}
	pad := t.Padding()
	fs := t.FontSize()
	w := ctx.MeasureText(strings.Repeat("M", t.columns), fs).X
	t.setNatural(Pt(w+2*pad, ctx.LineHeight(fs)+2*pad))
}

func (t *TextInput) OnThemeChanged(ctx *Context) {
	t.Base.OnThemeChanged(ctx)
	t.fit(ctx)
}

func (t *TextInput) caretX() float32 {
	return t.Context().MeasureText(string(t.text[:t.caret]), t.FontSize()).X
}

// keepCaretVisible scrolls the text so the caret stays inside the box.
func (t *TextInput) keepCaretVisible() {
	inner := t.size.X - 2*t.Padding()
	x := t.caretX()
	switch {
	case x-t.scroll > inner:
		t.scroll = x - inner
	case x < t.scroll:
		t.scroll = x
	}
	t.scroll = max(t.scroll, 0)
}

func (t *TextInput) changed() {
	t.keepCaretVisible()
	t.Invalidate(InvalidatePaint)
	t.emit(t.handler, UIEvent{Control: t, Type: EventInputChanged, Text: string(t.text)})
}

func (t *TextInput) insert(s string) {
	rs := []rune(s)
	t.text = slices.Insert(t.text, t.caret, rs...)
	t.caret += len(rs)
	t.changed()
}

func (t *TextInput) OnText(s string) bool {
	if t.disabled {
		return false
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return false
	}
	t.insert(s)
	return true
}

func (t *TextInput) OnKeyPressed(k Key, mods Modifiers) bool {
	if t.disabled {
		return false
	}
	switch k {
	case KeyLeft:
		if t.caret > 0 {
			t.caret--
		}
	case KeyRight:
		if t.caret < len(t.text) {
			t.caret++
		}
	case KeyHome:
		t.caret = 0
	case KeyEnd:
		t.caret = len(t.text)
	case KeyBackspace:
		if t.caret == 0 {
			return true
		}
		t.text = slices.Delete(t.text, t.caret-1, t.caret)
		t.caret--
		t.changed()
		return true
	case KeyDelete:
		if t.caret >= len(t.text) {
			return true
		}
		t.text = slices.Delete(t.text, t.caret, t.caret+1)
		t.changed()
		return true
	case KeyTab:
		t.insert(strings.Repeat(" ", t.Context().tabSize()))
		return true
	case KeyEnter:
		t.emit(t.handler, UIEvent{Control: t, Type: EventInputSubmit, Text: string(t.text)})
		return true
	case KeyV:
		if !mods.Control() || t.win == nil {
			return false
		}
		if clip := strings.ReplaceAll(t.win.Clipboard(), "\n", " "); clip != "" {
			t.insert(clip)
		}
		return true
	case KeyC, KeyX:
		if !mods.Control() || t.win == nil {
			return false
		}
		t.win.SetClipboard(string(t.text))
		if k == KeyX {
			t.text = t.text[:0]
			t.caret = 0
			t.changed()
		}
		return true
	default:
		return false
	}
	t.keepCaretVisible()
	t.Invalidate(InvalidatePaint)
	return true
}

// OnMousePressed moves the caret to the clicked column and takes focus.
func (t *TextInput) OnMousePressed(pos Point, btn MouseButton) bool {
	if t.disabled || btn != MouseLeft {
		return false
	}
	x := pos.X - t.Padding() + t.scroll
	ctx := t.Context()
	t.caret = len(t.text)
	for i := range t.text {
		w := ctx.MeasureText(string(t.text[:i+1]), t.FontSize()).X
		prev := ctx.MeasureText(string(t.text[:i]), t.FontSize()).X
		if x < (w+prev)/2 {
			t.caret = i
			break
		}
	}
	t.Invalidate(InvalidatePaint)
	return true
}

func (t *TextInput) OnFocused()   { t.Invalidate(InvalidatePaint) }
func (t *TextInput) OnUnfocused() { t.Invalidate(InvalidatePaint) }

func (t *TextInput) Paint(p *Painter) {
	r := t.LocalBounds()
	p.FillRect(r, t.Color(PropBackground))
	border := t.Color(PropBorder)
	if t.focused {
		border = t.Color(PropAccent)
	}
	p.StrokeRect(r, max(t.Float(PropBorderWidth), 1), border)

	pad := t.Padding()
	fs := t.FontSize()
	p.PushClip(Rect{X0: pad, Y0: 0, X1: r.X1 - pad, Y1: r.Y1})
	if len(t.text) == 0 && t.placeholder != "" && !t.focused {
		p.Text(t.placeholder, Pt(pad, pad), fs, t.Color(PropDisabled))
	} else {
		col := t.Color(PropForeground)
		if t.disabled {
			col = t.Color(PropDisabled)
		}
		p.Text(string(t.text), Pt(pad-t.scroll, pad), fs, col)
	}
	if t.focused {
		x := pad + t.caretX() - t.scroll
		p.FillRect(Rect{X0: x, Y0: pad, X1: x + 1, Y1: r.Y1 - pad}, t.Color(PropCaret))
	}
	p.PopClip()
}

func (t *TextInput) Load(ctx *Context, p Props) error {
	if err := t.Base.Load(ctx, p); err != nil {
		return err
	}
	if s, ok := p.String("Text"); ok {
		t.text = []rune(s)
		t.caret = len(t.text)
	}
	if s, ok := p.String("Placeholder"); ok {
		t.placeholder = s
	}
	if n, ok := p.Int("Columns"); ok && n > 0 {
		t.columns = n
	}
	if f, ok := p.Float("FontSize"); ok {
		t.fontSize = f
	}
	_, sized := p["Size"]
	t.autoSize = !sized
	if v, ok := p.Bool("AutoSize"); ok {
		t.autoSize = v
	}
	return nil
}

func (t *TextInput) Save(p Props) {
	t.Base.Save(p)
	if len(t.text) > 0 {
		p["Text"] = string(t.text)
	}
	if t.placeholder != "" {
		p["Placeholder"] = t.placeholder
	}
	if t.columns != defaultInputColumns {
		p["Columns"] = t.columns
	}
	if t.fontSize > 0 {
		p.SetFloat("FontSize", t.fontSize)
	}
	p["AutoSize"] = t.autoSize
}
