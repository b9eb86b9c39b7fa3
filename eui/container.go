package eui

import (
	"fmt"
	"log"
	"slices"
	"strings"
)

// Container is a control that owns an ordered list of children and places
// them with a Placer. Child order is paint order; hit-testing walks it in
// reverse.
type Container struct {
	Base

	typeName string
	children []Control
	placer   Placer

	// offset is the scroll offset applied to children at paint and
	// hit-test time. Positions themselves are never shifted.
	offset Point

	inLayout    bool
	layoutDirty bool
	paintDirty  bool
}

func newContainer(typeName string, p Placer) *Container {
	c := &Container{typeName: typeName, placer: p, layoutDirty: true}
	c.Init(c)
	return c
}

// NewPanel returns a container that keeps child positions as given.
func NewPanel() *Container { return newContainer("Container", Panel{}) }

// NewVBox stacks children top to bottom.
func NewVBox() *Container { return newContainer("VerticalContainer", Stack{Axis: Vertical}) }

// NewHBox stacks children left to right.
func NewHBox() *Container { return newContainer("HorizontalContainer", Stack{Axis: Horizontal}) }

// NewMargin places every child inset by in.
func NewMargin(in Insets) *Container {
	return newContainer("MarginContainer", &Margin{Insets: in})
}

func (c *Container) AsContainer() *Container { return c }
func (c *Container) TypeName() string        { return c.typeName }

func (c *Container) Placer() Placer { return c.placer }

func (c *Container) SetPlacer(p Placer) {
	c.placer = p
	c.Invalidate(InvalidateLayout)
}

// Children returns the child list. Callers must not modify it.
func (c *Container) Children() []Control { return c.children }

func (c *Container) Len() int { return len(c.children) }

func (c *Container) LayoutDirty() bool { return c.layoutDirty }
func (c *Container) PaintDirty() bool  { return c.paintDirty }

// ScrollOffset is the offset subtracted from child positions when painting
// and hit-testing.
func (c *Container) ScrollOffset() Point { return c.offset }

func (c *Container) root() *Container {
	r := c
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Contains reports whether ctl is a descendant of c.
func (c *Container) Contains(ctl Control) bool {
	if ctl == nil {
		return false
	}
	for p := ctl.AsBase().parent; p != nil; p = p.parent {
		if p == c {
			return true
		}
	}
	return false
}

// InsertControl appends child. Inserting a control that is already part of
// c's tree does nothing; a control from another tree is moved.
func (c *Container) InsertControl(child Control) {
	if child == nil {
		return
	}
	root := c.root()
	if child == root.self || root.Contains(child) {
		return
	}
	if cc := child.AsContainer(); cc != nil && (cc == c || cc.Contains(c)) {
		log.Printf("InsertControl: %s %q would contain itself", cc.typeName, cc.id)
		return
	}
	b := child.AsBase()
	cc := child.AsContainer()
	if w := b.win; b.parent == nil && w != nil && cc != nil && cc == w.root {
		log.Printf("InsertControl: %s %q is the root of window %s", cc.typeName, cc.id, w.id)
		return
	}
	switch {
	case b.parent != nil:
		b.parent.RemoveControl(child)
	case b.win != nil:
		if cc == nil || !b.win.ClosePopup(cc) {
			b.win.detach(child)
		}
	}
	b.parent = c
	c.children = append(c.children, child)
	if c.win != nil {
		c.win.attach(child)
	}
	b.Invalidate(InvalidateBoth)
}

// RemoveControl detaches child and reports whether it was a direct child.
func (c *Container) RemoveControl(child Control) bool {
	i := slices.Index(c.children, child)
	if i < 0 {
		return false
	}
	c.children = slices.Delete(c.children, i, i+1)
	b := child.AsBase()
	if c.win != nil {
		c.win.detach(child)
	}
	b.parent = nil
	c.Invalidate(InvalidateBoth)
	return true
}

// RemoveAll detaches every child.
func (c *Container) RemoveAll() {
	for len(c.children) > 0 {
		c.RemoveControl(c.children[len(c.children)-1])
	}
}

// Walk visits c and its descendants in paint order. Returning false from fn
// skips the visited control's children.
func (c *Container) Walk(fn func(Control) bool) {
	if !fn(c.self) {
		return
	}
	for _, ch := range c.children {
		if cc := ch.AsContainer(); cc != nil {
			cc.Walk(fn)
			continue
		}
		fn(ch)
	}
}

// GetControl returns the topmost visible control under pt, given in c's
// local coordinates. Containers are only returned when they take mouse
// events themselves.
func (c *Container) GetControl(pt Point) Control {
	pt = pt.Add(c.offset)
	for i := len(c.children) - 1; i >= 0; i-- {
		ch := c.children[i]
		b := ch.AsBase()
		if b.hidden {
			continue
		}
		local := pt.Sub(b.pos)
		if !local.In(b.LocalBounds()) {
			continue
		}
		cc := ch.AsContainer()
		if cc == nil {
			return ch
		}
		if cc.interceptsAt(local) {
			return ch
		}
		if hit := cc.GetControl(local); hit != nil {
			return hit
		}
		if b.forwardMouse {
			return ch
		}
	}
	return nil
}

// interceptor is implemented by containers that draw their own chrome over
// their children, such as scroll bars, and take the pointer there.
type interceptor interface {
	InterceptsAt(local Point) bool
}

func (c *Container) interceptsAt(local Point) bool {
	if i, ok := c.self.(interceptor); ok {
		return i.InterceptsAt(local)
	}
	return false
}

// Layout places the children, lays out child containers that need it and
// then calls Update on each child.
func (c *Container) Layout() {
	c.inLayout = true
	if c.placer != nil {
		c.placer.PlaceControls(c)
	}
	for _, ch := range c.children {
		if ch.AsBase().hidden {
			continue
		}
		if cc := ch.AsContainer(); cc != nil && cc.layoutDirty {
			cc.Layout()
		}
	}
	c.inLayout = false
	c.layoutDirty = false
	for _, ch := range c.children {
		if !ch.AsBase().hidden {
			ch.Update()
		}
	}
}

// DesiredSize is the content size reported by the placer, grown to the
// natural size and the MinSize property.
func (c *Container) DesiredSize() Point {
	var content Point
	if c.placer != nil {
		content = c.placer.ContentSize(c)
	}
	return content.Max(c.natural).Max(c.Vector(PropMinSize))
}

func (c *Container) Paint(p *Painter) {
	if _, own := c.overrides[PropBackground]; own || (c.win != nil && c.win.root == c) {
		c.paintBackground(p, PropBackground)
	}
	c.paintChildren(p)
}

func (c *Container) paintChildren(p *Painter) {
	p.PushClip(c.LocalBounds())
	p.PushOffset(c.offset.Mul(-1))
	for _, ch := range c.children {
		b := ch.AsBase()
		if b.hidden || !p.Visible(b.Bounds()) {
			continue
		}
		p.PushOffset(b.pos)
		ch.Paint(p)
		if DebugMode {
			p.StrokeRect(b.LocalBounds(), 1, debugOutline)
		}
		p.PopOffset()
	}
	p.PopOffset()
	p.PopClip()
}

func (c *Container) OnThemeChanged(ctx *Context) {
	c.ctx = ctx
	for _, ch := range c.children {
		ch.OnThemeChanged(ctx)
	}
	c.layoutDirty = true
	c.Invalidate(InvalidateBoth)
}

// Find resolves a slash separated path of control ids. Each segment is
// searched among all descendants of the previous match.
func (c *Container) Find(path string) Control {
	var cur Control = c.self
	for _, seg := range strings.Split(strings.Trim(path, "/"), "/") {
		if seg == "" {
			continue
		}
		cc := cur.AsContainer()
		if cc == nil {
			return nil
		}
		if cur = cc.findID(seg); cur == nil {
			return nil
		}
	}
	return cur
}

func (c *Container) findID(id string) Control {
	queue := slices.Clone(c.children)
	for len(queue) > 0 {
		ch := queue[0]
		queue = queue[1:]
		if ch.AsBase().id == id {
			return ch
		}
		if cc := ch.AsContainer(); cc != nil {
			queue = append(queue, cc.children...)
		}
	}
	return nil
}

func (c *Container) Load(ctx *Context, p Props) error {
	if err := c.Base.Load(ctx, p); err != nil {
		return err
	}
	if s, ok := p.Float("Spacing"); ok {
		if c.overrides == nil {
			c.overrides = map[Property]Variant{}
		}
		c.overrides[PropSpacing] = FloatValue(s)
	}
	if in, ok := p.Insets("Margin"); ok {
		if m, ok := c.placer.(*Margin); ok {
			m.Insets = in
		}
	}
	for i, cp := range p.List("Controls") {
		child, err := ctx.registry().Create(ctx, cp)
		if err != nil {
			return fmt.Errorf("Controls[%d]: %w", i, err)
		}
		c.InsertControl(child)
	}
	return nil
}

func (c *Container) Save(p Props) {
	c.Base.Save(p)
	if m, ok := c.placer.(*Margin); ok {
		p.SetInsets("Margin", m.Insets)
	}
	if len(c.children) == 0 {
		return
	}
	list := make([]any, 0, len(c.children))
	for _, ch := range c.children {
		list = append(list, SaveControl(ch))
	}
	p["Controls"] = list
}
