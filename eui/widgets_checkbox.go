package eui

// Checkbox is a box with a label that toggles when clicked.
type Checkbox struct {
	Base

	label    *Text
	checked  bool
	pressed  bool
	autoSize bool
	handler  *EventHandler
}

func NewCheckbox(text string) *Checkbox {
	c := &Checkbox{label: NewText(text), autoSize: true, handler: newHandler()}
	c.Init(c)
	return c
}

func (c *Checkbox) TypeName() string       { return "Checkbox" }
func (c *Checkbox) Handler() *EventHandler { return c.handler }
func (c *Checkbox) Checked() bool          { return c.checked }
func (c *Checkbox) Text() string           { return c.label.text }

// SetChecked changes the state without emitting an event.
func (c *Checkbox) SetChecked(v bool) {
	if v == c.checked {
		return
	}
	c.checked = v
	c.Invalidate(InvalidatePaint)
}

func (c *Checkbox) SetText(s string) {
	c.label.SetText(s)
	c.fit(c.Context())
	c.Invalidate(InvalidatePaint)
}

func (c *Checkbox) boxSize() float32 { return c.Float(PropCheckboxSize) }

func (c *Checkbox) fit(ctx *Context) {
	if ctx == nil {
		return
	}
	c.label.OnThemeChanged(ctx)
	if !c.autoSize {
		return
	}
	box := c.boxSize()
	ls := c.label.size
	pad := c.Padding()
	c.setNatural(Pt(box+pad+ls.X, max(box+2*pad, ls.Y)))
}

func (c *Checkbox) OnThemeChanged(ctx *Context) {
	c.Base.OnThemeChanged(ctx)
	c.fit(ctx)
}

func (c *Checkbox) Update() {
	box := c.boxSize()
	c.label.pos = Pt(box+c.Padding(), (c.size.Y-c.label.size.Y)/2)
}

func (c *Checkbox) OnResized() { c.Update() }

func (c *Checkbox) Paint(p *Painter) {
	box := c.boxSize()
	y := (c.size.Y - box) / 2
	r := Rect{X0: 0, Y0: y, X1: box, Y1: y + box}
	bg := PropBackground
	if c.hovered && !c.disabled {
		bg = PropHover
	}
	p.FillRect(r, c.Color(bg))
	border := c.Color(PropBorder)
	if c.focused {
		border = c.Color(PropAccent)
	}
	p.StrokeRect(r, max(c.Float(PropBorderWidth), 1), border)
	if c.checked {
		inset := box / 4
		p.FillRect(Rect{X0: r.X0 + inset, Y0: r.Y0 + inset, X1: r.X1 - inset, Y1: r.Y1 - inset}, c.Color(PropAccent))
	}
	col := c.Color(PropForeground)
	if c.disabled {
		col = c.Color(PropDisabled)
	}
	pad := c.label.Padding()
	p.Text(c.label.text, c.label.pos.Add(Pt(pad, pad)), c.label.FontSize(), col)
}

func (c *Checkbox) OnMouseEnter() { c.Invalidate(InvalidatePaint) }
func (c *Checkbox) OnMouseLeave() { c.Invalidate(InvalidatePaint) }

func (c *Checkbox) OnMousePressed(pos Point, btn MouseButton) bool {
	if c.disabled || btn != MouseLeft {
		return false
	}
	c.pressed = true
	return true
}

func (c *Checkbox) OnMouseReleased(pos Point, btn MouseButton) bool {
	if !c.pressed || btn != MouseLeft {
		return false
	}
	c.pressed = false
	if pos.In(c.LocalBounds()) {
		c.Toggle()
	}
	return true
}

func (c *Checkbox) OnKeyPressed(k Key, mods Modifiers) bool {
	if c.disabled || k != KeySpace {
		return false
	}
	c.Toggle()
	return true
}

func (c *Checkbox) OnFocused()   { c.Invalidate(InvalidatePaint) }
func (c *Checkbox) OnUnfocused() { c.Invalidate(InvalidatePaint) }

// Toggle flips the state and emits EventCheckboxChanged.
func (c *Checkbox) Toggle() {
	c.checked = !c.checked
	c.Invalidate(InvalidatePaint)
	c.emit(c.handler, UIEvent{Control: c, Type: EventCheckboxChanged, Checked: c.checked, Text: c.label.text})
}

func (c *Checkbox) Load(ctx *Context, p Props) error {
	if err := c.Base.Load(ctx, p); err != nil {
		return err
	}
	if err := c.label.Load(ctx, Props{"Text": p["Text"], "FontSize": p["FontSize"]}); err != nil {
		return err
	}
	if v, ok := p.Bool("Checked"); ok {
		c.checked = v
	}
	_, sized := p["Size"]
	c.autoSize = !sized
	if v, ok := p.Bool("AutoSize"); ok {
		c.autoSize = v
	}
	return nil
}

func (c *Checkbox) Save(p Props) {
	c.Base.Save(p)
	p["Text"] = c.label.text
	if c.label.fontSize > 0 {
		p.SetFloat("FontSize", c.label.fontSize)
	}
	if c.checked {
		p["Checked"] = true
	}
	p["AutoSize"] = c.autoSize
}
