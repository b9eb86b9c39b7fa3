package eui

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
)

// Expand says along which axes a control takes the space its container
// hands out instead of its desired size.
type Expand uint8

const (
	ExpandNone   Expand = 0
	ExpandWidth  Expand = 1
	ExpandHeight Expand = 2
	ExpandBoth          = ExpandWidth | ExpandHeight
)

func (e Expand) Width() bool  { return e&ExpandWidth != 0 }
func (e Expand) Height() bool { return e&ExpandHeight != 0 }

func (e Expand) String() string {
	switch e {
	case ExpandWidth:
		return "Width"
	case ExpandHeight:
		return "Height"
	case ExpandBoth:
		return "Both"
	}
	return "None"
}

// ParseExpand accepts None, Width, Height and Both in any case.
func ParseExpand(s string) (Expand, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ExpandNone, nil
	case "width", "horizontal":
		return ExpandWidth, nil
	case "height", "vertical":
		return ExpandHeight, nil
	case "both":
		return ExpandBoth, nil
	}
	return ExpandNone, fmt.Errorf("unknown expand mode %q", s)
}

// Control is implemented by every element of a window tree. Concrete
// controls embed Base, which supplies a default for every hook, and call
// Base.Init with themselves so the defaults can dispatch back to overrides.
type Control interface {
	AsBase() *Base
	// AsContainer reports the container capability; nil for leaves.
	AsContainer() *Container
	TypeName() string

	DesiredSize() Point
	// Update runs once after the control's subtree has been laid out.
	Update()
	Paint(p *Painter)

	OnResized()
	OnThemeChanged(ctx *Context)

	// Input hooks get positions local to the control and report whether
	// the event was consumed.
	OnMouseMove(pos Point) bool
	OnMousePressed(pos Point, b MouseButton) bool
	OnMouseReleased(pos Point, b MouseButton) bool
	OnMouseWheel(delta Point) bool
	OnMouseEnter()
	OnMouseLeave()
	OnKeyPressed(k Key, mods Modifiers) bool
	OnKeyReleased(k Key, mods Modifiers) bool
	OnText(text string) bool
	OnFocused()
	OnUnfocused()

	Load(ctx *Context, p Props) error
	Save(p Props)
}

// Base holds the state shared by all controls.
type Base struct {
	self Control

	id      string
	pos     Point
	size    Point
	natural Point
	expand  Expand

	parent *Container
	win    *Window
	ref    Ref
	ctx    *Context

	overrides map[Property]Variant

	forwardKeys  bool
	forwardMouse bool
	hidden       bool
	disabled     bool
	hovered      bool
	focused      bool

	// kinds requested while detached
	pending Invalidation
}

// Init records the outer control so Base can call its overrides. Every
// constructor must call it.
func (b *Base) Init(self Control) {
	b.self = self
}

func (b *Base) AsBase() *Base           { return b }
func (b *Base) AsContainer() *Container { return nil }
func (b *Base) TypeName() string        { return "Control" }

// Control returns the outer control embedding b.
func (b *Base) Control() Control { return b.self }

func (b *Base) ID() string { return b.id }

func (b *Base) SetID(id string) { b.id = id }

func (b *Base) Position() Point { return b.pos }

// SetPosition moves the control within its parent. Only the parent repaints.
func (b *Base) SetPosition(p Point) {
	if b.pos == p {
		return
	}
	b.pos = p
	if b.parent != nil {
		b.parent.Invalidate(InvalidatePaint)
	} else {
		b.Invalidate(InvalidatePaint)
	}
}

func (b *Base) Size() Point { return b.size }

// SetSize sets the natural size of the control and resizes it. Setting the
// current size again is a no-op.
func (b *Base) SetSize(s Point) {
	s = s.Max(Point{})
	changed := b.natural != s
	b.natural = s
	if b.size == s {
		// allocated already; the parent still has to see the new natural size
		if changed {
			b.Invalidate(InvalidateLayout)
		}
		return
	}
	b.resize(s)
}

// allocate is how containers assign space; the natural size is kept so the
// control can shrink again on the next pass.
func (b *Base) allocate(s Point) {
	b.resize(s)
}

func (b *Base) resize(s Point) {
	s = s.Max(Point{})
	if b.size == s {
		return
	}
	b.size = s
	if c := b.container(); c != nil {
		c.layoutDirty = true
	}
	if b.self != nil {
		b.self.OnResized()
	}
	b.Invalidate(InvalidateBoth)
}

// setNatural updates the natural size without touching the allocated size
// when a parent owns it.
func (b *Base) setNatural(s Point) {
	if b.natural == s {
		return
	}
	b.natural = s
	if b.parent == nil {
		b.resize(s)
		return
	}
	b.Invalidate(InvalidateLayout)
}

func (b *Base) container() *Container {
	if b.self == nil {
		return nil
	}
	return b.self.AsContainer()
}

// DesiredSize is the natural size by default.
func (b *Base) DesiredSize() Point { return b.natural }

func (b *Base) Expand() Expand { return b.expand }

func (b *Base) SetExpand(e Expand) {
	if b.expand == e {
		return
	}
	b.expand = e
	b.Invalidate(InvalidateLayout)
}

func (b *Base) Parent() *Container { return b.parent }
func (b *Base) Window() *Window     { return b.win }
func (b *Base) Ref() Ref            { return b.ref }

// Context is the services object the control was loaded or attached with.
func (b *Base) Context() *Context {
	if b.win != nil && b.win.ctx != nil {
		return b.win.ctx
	}
	return b.ctx
}

func (b *Base) Visible() bool { return !b.hidden }

func (b *Base) SetVisible(v bool) {
	if b.hidden == !v {
		return
	}
	b.hidden = !v
	b.Invalidate(InvalidateLayout)
	if b.parent != nil {
		b.parent.Invalidate(InvalidatePaint)
	}
}

func (b *Base) Enabled() bool { return !b.disabled }

func (b *Base) SetEnabled(v bool) {
	if b.disabled == !v {
		return
	}
	b.disabled = !v
	b.Invalidate(InvalidatePaint)
}

func (b *Base) Hovered() bool { return b.hovered }
func (b *Base) Focused() bool { return b.focused }

func (b *Base) ShouldForwardKeyEvents() bool   { return b.forwardKeys }
func (b *Base) ShouldForwardMouseEvents() bool { return b.forwardMouse }
func (b *Base) SetForwardKeyEvents(v bool)     { b.forwardKeys = v }
func (b *Base) SetForwardMouseEvents(v bool)   { b.forwardMouse = v }

// Bounds is the control rectangle in parent coordinates.
func (b *Base) Bounds() Rect { return RectAt(b.pos, b.size) }

// LocalBounds is the control rectangle in its own coordinates.
func (b *Base) LocalBounds() Rect { return Rect{X1: b.size.X, Y1: b.size.Y} }

// AbsolutePosition is the top-left corner in window coordinates, ignoring
// scroll offsets.
func (b *Base) AbsolutePosition() Point {
	pt := b.pos
	for p := b.parent; p != nil; p = p.parent {
		pt = pt.Add(p.pos)
	}
	return pt
}

// ScreenPosition is the top-left corner in window coordinates, with
// ancestor scroll offsets applied.
func (b *Base) ScreenPosition() Point {
	pt := b.pos
	for p := b.parent; p != nil; p = p.parent {
		pt = pt.Add(p.pos).Sub(p.offset)
	}
	return pt
}

func (b *Base) ScreenBounds() Rect { return RectAt(b.ScreenPosition(), b.size) }

var (
	fallbackOnce  sync.Once
	fallbackTheme *Theme
)

func defaultTheme() *Theme {
	fallbackOnce.Do(func() { fallbackTheme = DefaultTheme() })
	return fallbackTheme
}

func (b *Base) theme() *Theme {
	if ctx := b.Context(); ctx != nil && ctx.Theme != nil {
		return ctx.Theme
	}
	return defaultTheme()
}

// Property resolves p against the control's overrides, then the theme.
func (b *Base) Property(p Property) Variant {
	if v, ok := b.overrides[p]; ok {
		return v
	}
	return b.theme().Get(p)
}

// SetProperty overrides p for this control only.
func (b *Base) SetProperty(p Property, v Variant) error {
	if v.Kind() != p.Kind() {
		return fmt.Errorf("%v: want kind %d, got %d", p, p.Kind(), v.Kind())
	}
	if b.overrides == nil {
		b.overrides = map[Property]Variant{}
	}
	b.overrides[p] = v
	b.propertyChanged(p)
	return nil
}

func (b *Base) ClearProperty(p Property) {
	if _, ok := b.overrides[p]; !ok {
		return
	}
	delete(b.overrides, p)
	b.propertyChanged(p)
}

func (b *Base) propertyChanged(p Property) {
	switch p {
	case PropPadding, PropFontSize, PropSpacing, PropMinSize, PropCheckboxSize, PropScrollbarWidth:
		if b.self != nil {
			if ctx := b.Context(); ctx != nil {
				b.self.OnThemeChanged(ctx)
			}
		}
		b.Invalidate(InvalidateBoth)
	default:
		b.Invalidate(InvalidatePaint)
	}
}

func (b *Base) Color(p Property) Color {
	c, _ := b.Property(p).Color()
	return c
}

func (b *Base) Float(p Property) float32 {
	f, _ := b.Property(p).Float()
	return f
}

func (b *Base) Vector(p Property) Point {
	v, _ := b.Property(p).Vector()
	return v
}

func (b *Base) Flag(p Property) bool {
	v, _ := b.Property(p).Bool()
	return v
}

func (b *Base) Padding() float32 { return b.Float(PropPadding) }

// Invalidate asks the window to repaint or re-lay out this control.
// Layout requests made while the parent is laying out are downgraded to
// paint requests.
func (b *Base) Invalidate(kind Invalidation) {
	if kind == 0 {
		return
	}
	if kind&InvalidateLayout != 0 && b.parent != nil && b.parent.inLayout {
		kind = kind&^InvalidateLayout | InvalidatePaint
	}
	if b.win == nil {
		b.pending |= kind
		return
	}
	b.win.enqueue(b.ref, kind)
}

// Default hooks.

func (b *Base) Update()                                        {}
func (b *Base) Paint(p *Painter)                               {}
func (b *Base) OnResized()                                     {}
func (b *Base) OnThemeChanged(ctx *Context)                    { b.ctx = ctx }
func (b *Base) OnMouseMove(pos Point) bool                     { return false }
func (b *Base) OnMousePressed(pos Point, btn MouseButton) bool { return false }
func (b *Base) OnMouseReleased(pos Point, btn MouseButton) bool {
	return false
}
func (b *Base) OnMouseWheel(delta Point) bool            { return false }
func (b *Base) OnMouseEnter()                            {}
func (b *Base) OnMouseLeave()                            {}
func (b *Base) OnKeyPressed(k Key, mods Modifiers) bool  { return false }
func (b *Base) OnKeyReleased(k Key, mods Modifiers) bool { return false }
func (b *Base) OnText(text string) bool                  { return false }
func (b *Base) OnFocused()                               {}
func (b *Base) OnUnfocused()                             {}

// paintBackground fills and outlines the local bounds with the control's
// background and border properties.
func (b *Base) paintBackground(p *Painter, bg Property) {
	r := b.LocalBounds()
	if b.Flag(PropDrawBackground) {
		p.FillRect(r, b.Color(bg))
	}
	if w := b.Float(PropBorderWidth); w > 0 && b.Flag(PropDrawBorder) {
		p.StrokeRect(r, w, b.Color(PropBorder))
	}
}

// Load applies the properties every control understands.
func (b *Base) Load(ctx *Context, p Props) error {
	b.ctx = ctx
	if id, ok := p.String("ID"); ok {
		b.id = id
	}
	if pos, ok := p.Point("Position"); ok {
		b.pos = pos
	}
	if size, ok := p.Point("Size"); ok {
		b.natural = size
		b.size = size
	}
	if s, ok := p.String("Expand"); ok {
		e, err := ParseExpand(s)
		if err != nil {
			return err
		}
		b.expand = e
	}
	if v, ok := p.Bool("Visible"); ok {
		b.hidden = !v
	}
	if v, ok := p.Bool("Enabled"); ok {
		b.disabled = !v
	}
	if v, ok := p.Bool("ForwardKeyEvents"); ok {
		b.forwardKeys = v
	}
	if v, ok := p.Bool("ForwardMouseEvents"); ok {
		b.forwardMouse = v
	}
	if th, ok := p.Map("Theme"); ok {
		resolve := ParseColor
		if ctx != nil && ctx.Theme != nil {
			resolve = ctx.Theme.ResolveColor
		}
		for name, raw := range th {
			prop, ok := PropertyByName(name)
			if !ok {
				log.Printf("%s %q: unknown theme property %q", b.typeName(), b.id, name)
				continue
			}
			v, err := parseVariant(prop, raw, resolve)
			if err != nil {
				return err
			}
			if b.overrides == nil {
				b.overrides = map[Property]Variant{}
			}
			b.overrides[prop] = v
		}
	}
	return nil
}

func (b *Base) typeName() string {
	if b.self != nil {
		return b.self.TypeName()
	}
	return b.TypeName()
}

// Save writes the properties Load understands.
func (b *Base) Save(p Props) {
	if b.id != "" {
		p["ID"] = b.id
	}
	if !b.pos.IsZero() {
		p.SetPoint("Position", b.pos)
	}
	p.SetPoint("Size", b.natural)
	if b.expand != ExpandNone {
		p["Expand"] = b.expand.String()
	}
	if b.hidden {
		p["Visible"] = false
	}
	if b.disabled {
		p["Enabled"] = false
	}
	if b.forwardKeys {
		p["ForwardKeyEvents"] = true
	}
	if b.forwardMouse {
		p["ForwardMouseEvents"] = true
	}
	if len(b.overrides) > 0 {
		keys := make([]Property, 0, len(b.overrides))
		for k := range b.overrides {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		th := Props{}
		for _, k := range keys {
			th[k.String()] = b.overrides[k].Interface()
		}
		p["Theme"] = th
	}
}
