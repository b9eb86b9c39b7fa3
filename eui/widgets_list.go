package eui

import "fmt"

// List shows rows of text with at most one selected.
type List struct {
	Base

	items    []string
	selected int
	hoverRow int
	autoSize bool
	handler  *EventHandler

	// OnSelect runs after a row picked by the user is emitted.
	OnSelect func(index int, text string)
}

func NewList() *List {
	l := &List{selected: -1, hoverRow: -1, autoSize: true, handler: newHandler()}
	l.Init(l)
	return l
}

func (l *List) TypeName() string       { return "List" }
func (l *List) Handler() *EventHandler { return l.handler }
func (l *List) Items() []string        { return l.items }
func (l *List) Len() int               { return len(l.items) }

// Selected returns the selected row, or -1.
func (l *List) Selected() int { return l.selected }

func (l *List) SelectedItem() (string, bool) {
	if l.selected < 0 {
		return "", false
	}
	return l.items[l.selected], true
}

func (l *List) SetItems(items []string) {
	l.items = append(l.items[:0], items...)
	l.selected = -1
	l.hoverRow = -1
	l.fit(l.Context())
	l.Invalidate(InvalidatePaint)
}

func (l *List) AddItem(s string) {
	l.items = append(l.items, s)
	l.fit(l.Context())
	l.Invalidate(InvalidatePaint)
}

// Select changes the selection without emitting an event; -1 clears it.
func (l *List) Select(i int) error {
	if i < -1 || i >= len(l.items) {
		return fmt.Errorf("select %d of %d: %w", i, len(l.items), ErrIndexOutOfRange)
	}
	if i != l.selected {
		l.selected = i
		l.Invalidate(InvalidatePaint)
	}
	return nil
}

func (l *List) rowHeight() float32 {
	return l.Context().LineHeight(l.Float(PropFontSize)) + l.Padding()
}

// RowAt returns the row under a local position, or -1.
func (l *List) RowAt(pos Point) int {
	h := l.rowHeight()
	if h <= 0 || pos.Y < 0 {
		return -1
	}
	i := int(pos.Y / h)
	if i >= len(l.items) {
		return -1
	}
	return i
}

func (l *List) fit(ctx *Context) {
	if ctx == nil || !l.autoSize {
		return
	}
	fs := l.Float(PropFontSize)
	var w float32
	for _, it := range l.items {
		w = max(w, ctx.MeasureText(it, fs).X)
	}
	pad := l.Padding()
	l.setNatural(Pt(w+2*pad, l.rowHeight()*float32(len(l.items))))
}

func (l *List) OnThemeChanged(ctx *Context) {
	l.Base.OnThemeChanged(ctx)
	l.fit(ctx)
}

func (l *List) pick(i int) {
	if i < 0 || i >= len(l.items) {
		return
	}
	if i != l.selected {
		l.selected = i
		l.Invalidate(InvalidatePaint)
	}
	l.emit(l.handler, UIEvent{Control: l, Type: EventListSelected, Index: i, Text: l.items[i]})
	if l.OnSelect != nil {
		l.OnSelect(i, l.items[i])
	}
}

func (l *List) OnMousePressed(pos Point, btn MouseButton) bool {
	if l.disabled || btn != MouseLeft {
		return false
	}
	l.pick(l.RowAt(pos))
	return true
}

func (l *List) OnMouseMove(pos Point) bool {
	if row := l.RowAt(pos); row != l.hoverRow {
		l.hoverRow = row
		l.Invalidate(InvalidatePaint)
	}
	return false
}

func (l *List) OnMouseLeave() {
	if l.hoverRow != -1 {
		l.hoverRow = -1
		l.Invalidate(InvalidatePaint)
	}
}

func (l *List) OnKeyPressed(k Key, mods Modifiers) bool {
	if l.disabled || len(l.items) == 0 {
		return false
	}
	switch k {
	case KeyUp:
		l.pick(max(l.selected-1, 0))
	case KeyDown:
		l.pick(min(l.selected+1, len(l.items)-1))
	case KeyHome:
		l.pick(0)
	case KeyEnd:
		l.pick(len(l.items) - 1)
	default:
		return false
	}
	return true
}

func (l *List) Paint(p *Painter) {
	l.paintBackground(p, PropBackground)
	h := l.rowHeight()
	pad := l.Padding()
	fs := l.Float(PropFontSize)
	col := l.Color(PropForeground)
	if l.disabled {
		col = l.Color(PropDisabled)
	}
	for i, it := range l.items {
		row := Rect{X0: 0, Y0: float32(i) * h, X1: l.size.X, Y1: float32(i+1) * h}
		if !p.Visible(row) {
			continue
		}
		switch {
		case i == l.selected:
			p.FillRect(row, l.Color(PropSelection))
		case i == l.hoverRow:
			p.FillRect(row, l.Color(PropHover))
		}
		p.Text(it, Pt(pad, row.Y0+pad/2), fs, col)
	}
}

func (l *List) Load(ctx *Context, p Props) error {
	if err := l.Base.Load(ctx, p); err != nil {
		return err
	}
	if _, ok := p["Items"]; ok {
		l.items = p.Strings("Items")
	}
	if i, ok := p.Int("Selected"); ok {
		if err := l.Select(i); err != nil {
			return err
		}
	}
	_, sized := p["Size"]
	l.autoSize = !sized
	if v, ok := p.Bool("AutoSize"); ok {
		l.autoSize = v
	}
	return nil
}

func (l *List) Save(p Props) {
	l.Base.Save(p)
	items := make([]any, len(l.items))
	for i, it := range l.items {
		items[i] = it
	}
	p["Items"] = items
	if l.selected >= 0 {
		p["Selected"] = l.selected
	}
	p["AutoSize"] = l.autoSize
}
