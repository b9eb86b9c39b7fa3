package eui

// Placer positions and sizes the children of a container.
type Placer interface {
	PlaceControls(c *Container)
	// ContentSize is the space the children want, used for the
	// container's own desired size.
	ContentSize(c *Container) Point
}

type Axis uint8

const (
	Vertical Axis = iota
	Horizontal
)

func along(p Point, a Axis) float32 {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

func across(p Point, a Axis) float32 {
	if a == Horizontal {
		return p.Y
	}
	return p.X
}

func axisPoint(a Axis, main, cross float32) Point {
	if a == Horizontal {
		return Point{X: main, Y: cross}
	}
	return Point{X: cross, Y: main}
}

func expandsAlong(e Expand, a Axis) bool {
	if a == Horizontal {
		return e.Width()
	}
	return e.Height()
}

func visibleChildren(c *Container) []Control {
	out := make([]Control, 0, len(c.children))
	for _, ch := range c.children {
		if !ch.AsBase().hidden {
			out = append(out, ch)
		}
	}
	return out
}

// Stack lays children out one after another along Axis, separated by the
// container's Spacing property. Children expanding along the axis share
// what the others leave over equally; children expanding across it take
// the full cross size.
type Stack struct {
	Axis Axis
}

func (s Stack) PlaceControls(c *Container) {
	kids := visibleChildren(c)
	if len(kids) == 0 {
		return
	}
	spacing := c.Float(PropSpacing)
	avail := c.size

	var fixed float32
	expanded := 0
	for _, ch := range kids {
		if expandsAlong(ch.AsBase().expand, s.Axis) {
			expanded++
			continue
		}
		fixed += along(ch.DesiredSize(), s.Axis)
	}
	var share float32
	if expanded > 0 {
		free := along(avail, s.Axis) - fixed - spacing*float32(len(kids)-1)
		share = max(free/float32(expanded), 0)
	}

	var cursor float32
	for _, ch := range kids {
		b := ch.AsBase()
		want := ch.DesiredSize()
		main, cross := along(want, s.Axis), across(want, s.Axis)
		if expandsAlong(b.expand, s.Axis) {
			main = share
		}
		if expandsAlong(b.expand, 1-s.Axis) {
			cross = across(avail, s.Axis)
		}
		b.allocate(axisPoint(s.Axis, main, cross))
		b.SetPosition(axisPoint(s.Axis, cursor, 0))
		cursor += main + spacing
	}
}

func (s Stack) ContentSize(c *Container) Point {
	kids := visibleChildren(c)
	var main, cross float32
	for _, ch := range kids {
		want := ch.DesiredSize()
		main += along(want, s.Axis)
		cross = max(cross, across(want, s.Axis))
	}
	if len(kids) > 1 {
		main += c.Float(PropSpacing) * float32(len(kids)-1)
	}
	return axisPoint(s.Axis, main, cross)
}

// Margin places every child at the same inset offset. Expanding children
// fill the inner area.
type Margin struct {
	Insets Insets
}

func (m *Margin) PlaceControls(c *Container) {
	inner := c.size.Sub(m.Insets.Size()).Max(Point{})
	for _, ch := range visibleChildren(c) {
		b := ch.AsBase()
		size := ch.DesiredSize()
		if b.expand.Width() {
			size.X = inner.X
		}
		if b.expand.Height() {
			size.Y = inner.Y
		}
		b.allocate(size)
		b.SetPosition(m.Insets.Offset())
	}
}

func (m *Margin) ContentSize(c *Container) Point {
	var content Point
	for _, ch := range visibleChildren(c) {
		content = content.Max(ch.DesiredSize())
	}
	return content.Add(m.Insets.Size())
}

// Panel keeps the positions children were given. Expanding children grow
// to the container's far edge.
type Panel struct{}

func (Panel) PlaceControls(c *Container) {
	for _, ch := range visibleChildren(c) {
		b := ch.AsBase()
		size := ch.DesiredSize()
		if b.expand.Width() {
			size.X = max(c.size.X-b.pos.X, 0)
		}
		if b.expand.Height() {
			size.Y = max(c.size.Y-b.pos.Y, 0)
		}
		b.allocate(size)
	}
}

func (Panel) ContentSize(c *Container) Point {
	var extent Point
	for _, ch := range visibleChildren(c) {
		extent = extent.Max(ch.AsBase().pos.Add(ch.DesiredSize()))
	}
	return extent
}
