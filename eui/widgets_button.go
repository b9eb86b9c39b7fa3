package eui

// Button is a clickable label with an optional icon. The label is a Text
// the button owns and keeps centered.
type Button struct {
	Base

	label    *Text
	icon     string
	iconTex  Texture
	pressed  bool
	autoSize bool
	handler  *EventHandler

	// OnClick runs after the click event is emitted.
	OnClick func()
}

func NewButton(text string) *Button {
	b := &Button{label: NewText(text), autoSize: true, handler: newHandler()}
	b.Init(b)
	return b
}

func (b *Button) TypeName() string { return "Button" }

func (b *Button) Handler() *EventHandler { return b.handler }

func (b *Button) Label() *Text { return b.label }

func (b *Button) Text() string { return b.label.text }

func (b *Button) SetText(s string) {
	if s == b.label.text {
		return
	}
	b.label.SetText(s)
	b.fit(b.Context())
	b.Invalidate(InvalidatePaint)
}

func (b *Button) Icon() string { return b.icon }

func (b *Button) SetIcon(name string) {
	b.icon = name
	b.fit(b.Context())
	b.Invalidate(InvalidatePaint)
}

func (b *Button) Pressed() bool { return b.pressed }

func (b *Button) iconSize() float32 {
	if !b.iconTex.Valid() {
		return 0
	}
	return b.label.TextSize(b.Context()).Y
}

func (b *Button) fit(ctx *Context) {
	if ctx == nil {
		return
	}
	b.label.OnThemeChanged(ctx)
	if ic, ok := ctx.Icons.Get(b.icon); ok {
		b.iconTex = ic
	} else {
		b.iconTex = Texture{}
	}
	if !b.autoSize {
		return
	}
	size := b.label.size
	if is := b.iconSize(); is > 0 {
		size.X += is + b.Padding()
		size.Y = max(size.Y, is)
	}
	pad := b.Padding()
	b.setNatural(size.Add(Pt(2*pad, 2*pad)).Max(b.Vector(PropMinSize)))
}

func (b *Button) OnThemeChanged(ctx *Context) {
	b.Base.OnThemeChanged(ctx)
	b.fit(ctx)
}

// Update centers the label, shifted right of the icon.
func (b *Button) Update() {
	ls := b.label.size
	is := b.iconSize()
	w := ls.X
	if is > 0 {
		w += is + b.Padding()
	}
	x := (b.size.X - w) / 2
	if is > 0 {
		x += is + b.Padding()
	}
	b.label.pos = Pt(x, (b.size.Y-ls.Y)/2)
}

func (b *Button) OnResized() { b.Update() }

func (b *Button) Paint(p *Painter) {
	bg := PropBackground
	switch {
	case b.pressed:
		bg = PropPressed
	case b.hovered && !b.disabled:
		bg = PropHover
	}
	r := b.LocalBounds()
	p.FillRect(r, b.Color(bg))
	if w := b.Float(PropBorderWidth); w > 0 && b.Flag(PropDrawBorder) {
		border := b.Color(PropBorder)
		if b.focused {
			border = b.Color(PropAccent)
		}
		p.StrokeRect(r, w, border)
	}
	if is := b.iconSize(); is > 0 {
		x := b.label.pos.X - is - b.Padding()
		y := (b.size.Y - is) / 2
		p.Image(b.iconTex, Rect{X0: x, Y0: y, X1: x + is, Y1: y + is}, Color{R: 255, G: 255, B: 255, A: 255})
	}
	col := b.Color(PropForeground)
	if b.disabled {
		col = b.Color(PropDisabled)
	}
	pad := b.label.Padding()
	p.Text(b.label.text, b.label.pos.Add(Pt(pad, pad)), b.label.FontSize(), col)
}

func (b *Button) OnMouseEnter() { b.Invalidate(InvalidatePaint) }
func (b *Button) OnMouseLeave() { b.Invalidate(InvalidatePaint) }

func (b *Button) OnMousePressed(pos Point, btn MouseButton) bool {
	if b.disabled || btn != MouseLeft {
		return false
	}
	b.pressed = true
	b.Invalidate(InvalidatePaint)
	return true
}

func (b *Button) OnMouseReleased(pos Point, btn MouseButton) bool {
	if !b.pressed || btn != MouseLeft {
		return false
	}
	b.pressed = false
	b.Invalidate(InvalidatePaint)
	if pos.In(b.LocalBounds()) {
		b.Click()
	}
	return true
}

func (b *Button) OnKeyPressed(k Key, mods Modifiers) bool {
	if b.disabled || (k != KeyEnter && k != KeySpace) {
		return false
	}
	b.Click()
	return true
}

func (b *Button) OnFocused()   { b.Invalidate(InvalidatePaint) }
func (b *Button) OnUnfocused() { b.pressed = false; b.Invalidate(InvalidatePaint) }

// Click emits the click event as if the user had clicked.
func (b *Button) Click() {
	b.emit(b.handler, UIEvent{Control: b, Type: EventClick, Text: b.label.text})
	if b.OnClick != nil {
		b.OnClick()
	}
}

func (b *Button) Load(ctx *Context, p Props) error {
	if err := b.Base.Load(ctx, p); err != nil {
		return err
	}
	if err := b.label.Load(ctx, Props{"Text": p["Text"], "FontSize": p["FontSize"]}); err != nil {
		return err
	}
	if s, ok := p.String("Icon"); ok {
		b.icon = s
	}
	_, sized := p["Size"]
	b.autoSize = !sized
	if v, ok := p.Bool("AutoSize"); ok {
		b.autoSize = v
	}
	return nil
}

func (b *Button) Save(p Props) {
	b.Base.Save(p)
	p["Text"] = b.label.text
	if b.label.fontSize > 0 {
		p.SetFloat("FontSize", b.label.fontSize)
	}
	if b.icon != "" {
		p["Icon"] = b.icon
	}
	p["AutoSize"] = b.autoSize
}

// emit sends ev to the control's own handler and to the window and
// application handlers.
func (b *Base) emit(h *EventHandler, ev UIEvent) {
	h.Emit(ev)
	if b.win != nil {
		b.win.emit(ev)
	}
}
