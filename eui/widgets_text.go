package eui

// Text is a static label. With AutoSize on it takes the size of its text
// plus padding.
type Text struct {
	Base

	text     string
	fontSize float32
	autoSize bool
}

func NewText(s string) *Text {
	t := &Text{text: s, autoSize: true}
	t.Init(t)
	return t
}

func (t *Text) TypeName() string { return "Text" }

func (t *Text) Text() string { return t.text }

func (t *Text) SetText(s string) {
	if s == t.text {
		return
	}
	t.text = s
	t.fit(t.Context())
	t.Invalidate(InvalidatePaint)
}

// FontSize is the explicit size, or the theme's.
func (t *Text) FontSize() float32 {
	if t.fontSize > 0 {
		return t.fontSize
	}
	return t.Float(PropFontSize)
}

func (t *Text) SetFontSize(f float32) {
	if f == t.fontSize {
		return
	}
	t.fontSize = f
	t.fit(t.Context())
	t.Invalidate(InvalidatePaint)
}

func (t *Text) AutoSize() bool { return t.autoSize }

func (t *Text) SetAutoSize(v bool) {
	t.autoSize = v
	t.fit(t.Context())
}

// TextSize measures the text without padding.
func (t *Text) TextSize(ctx *Context) Point {
	return ctx.MeasureText(t.text, t.FontSize())
}

func (t *Text) fit(ctx *Context) {
	if !t.autoSize || ctx == nil {
		return
	}
	pad := t.Padding()
	t.setNatural(t.TextSize(ctx).Add(Pt(2*pad, 2*pad)))
}

func (t *Text) OnThemeChanged(ctx *Context) {
	t.Base.OnThemeChanged(ctx)
	t.fit(ctx)
}

func (t *Text) Paint(p *Painter) {
	col := t.Color(PropForeground)
	if t.disabled {
		col = t.Color(PropDisabled)
	}
	pad := t.Padding()
	p.Text(t.text, Pt(pad, pad), t.FontSize(), col)
}

func (t *Text) Load(ctx *Context, p Props) error {
	if err := t.Base.Load(ctx, p); err != nil {
		return err
	}
	if s, ok := p.String("Text"); ok {
		t.text = s
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

func (t *Text) Save(p Props) {
	t.Base.Save(p)
	p["Text"] = t.text
	if t.fontSize > 0 {
		p.SetFloat("FontSize", t.fontSize)
	}
	p["AutoSize"] = t.autoSize
}

// Spacer takes up room and paints nothing. It expands both ways unless
// told otherwise.
type Spacer struct {
	Base
}

func NewSpacer() *Spacer {
	s := &Spacer{}
	s.expand = ExpandBoth
	s.Init(s)
	return s
}

func (s *Spacer) TypeName() string { return "Spacer" }

func (s *Spacer) Load(ctx *Context, p Props) error {
	if err := s.Base.Load(ctx, p); err != nil {
		return err
	}
	if _, ok := p["Expand"]; !ok {
		s.expand = ExpandBoth
	}
	return nil
}

func (s *Spacer) Save(p Props) {
	s.Base.Save(p)
	if s.expand == ExpandNone {
		p["Expand"] = ExpandNone.String()
	}
}
