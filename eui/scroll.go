package eui

type scrollBar uint8

const (
	barNone scrollBar = iota
	barVertical
	barHorizontal
)

// ScrollContainer shows a viewport onto children that may be larger than
// it. Children keep their positions; the scroll offset is applied only when
// painting and hit-testing.
type ScrollContainer struct {
	Container

	content  Point
	dragging scrollBar
	dragFrom Point
	dragBase Point
}

func NewScrollContainer() *ScrollContainer {
	s := &ScrollContainer{}
	s.typeName = "ScrollContainer"
	s.layoutDirty = true
	s.placer = scrollPlacer{s}
	s.forwardMouse = true
	s.Init(s)
	return s
}

func (s *ScrollContainer) AsContainer() *Container { return &s.Container }

// ContentSize is the extent of the children measured by the last layout.
func (s *ScrollContainer) ContentSize() Point { return s.content }

// Overflow is how far the content extends past the viewport on each axis.
func (s *ScrollContainer) Overflow() Point {
	return s.content.Sub(s.viewport()).Max(Point{})
}

func (s *ScrollContainer) viewport() Point {
	v := s.size
	over := s.content.Sub(v)
	w := s.Float(PropScrollbarWidth)
	if over.Y > 0 {
		v.X -= w
	}
	if over.X > 0 {
		v.Y -= w
	}
	return v.Max(Point{})
}

// ScrollTo sets the offset, clamped to the overflow.
func (s *ScrollContainer) ScrollTo(off Point) {
	over := s.Overflow()
	off = Point{X: clampf(off.X, 0, over.X), Y: clampf(off.Y, 0, over.Y)}
	if off == s.offset {
		return
	}
	s.offset = off
	s.Invalidate(InvalidatePaint)
}

func (s *ScrollContainer) OnMouseWheel(delta Point) bool {
	over := s.Overflow()
	if over.IsZero() {
		return false
	}
	step := s.Float(PropScrollStep)
	s.ScrollTo(s.offset.Sub(delta.Mul(step)))
	return true
}

// barRect returns the track of a scroll bar in local coordinates.
func (s *ScrollContainer) barRect(bar scrollBar) Rect {
	over := s.Overflow()
	w := s.Float(PropScrollbarWidth)
	switch bar {
	case barVertical:
		if over.Y <= 0 {
			return Rect{}
		}
		return Rect{X0: s.size.X - w, Y0: 0, X1: s.size.X, Y1: s.viewport().Y}
	case barHorizontal:
		if over.X <= 0 {
			return Rect{}
		}
		return Rect{X0: 0, Y0: s.size.Y - w, X1: s.viewport().X, Y1: s.size.Y}
	}
	return Rect{}
}

// handleRect returns the draggable part of a scroll bar.
func (s *ScrollContainer) handleRect(bar scrollBar) Rect {
	track := s.barRect(bar)
	if track.Empty() {
		return Rect{}
	}
	view := s.viewport()
	switch bar {
	case barVertical:
		length := track.Dy() * view.Y / s.content.Y
		pos := track.Dy() * s.offset.Y / s.content.Y
		return Rect{X0: track.X0, Y0: track.Y0 + pos, X1: track.X1, Y1: track.Y0 + pos + length}
	case barHorizontal:
		length := track.Dx() * view.X / s.content.X
		pos := track.Dx() * s.offset.X / s.content.X
		return Rect{X0: track.X0 + pos, Y0: track.Y0, X1: track.X0 + pos + length, Y1: track.Y1}
	}
	return Rect{}
}

func (s *ScrollContainer) barAt(local Point) scrollBar {
	switch {
	case local.In(s.barRect(barVertical)):
		return barVertical
	case local.In(s.barRect(barHorizontal)):
		return barHorizontal
	}
	return barNone
}

// InterceptsAt reports whether local is over a scroll bar.
func (s *ScrollContainer) InterceptsAt(local Point) bool { return s.barAt(local) != barNone }

func (s *ScrollContainer) OnMousePressed(pos Point, btn MouseButton) bool {
	if btn != MouseLeft {
		return false
	}
	bar := s.barAt(pos)
	if bar == barNone {
		return false
	}
	if !pos.In(s.handleRect(bar)) {
		// page toward the click
		view := s.viewport()
		h := s.handleRect(bar)
		off := s.offset
		if bar == barVertical {
			if pos.Y < h.Y0 {
				off.Y -= view.Y
			} else {
				off.Y += view.Y
			}
		} else {
			if pos.X < h.X0 {
				off.X -= view.X
			} else {
				off.X += view.X
			}
		}
		s.ScrollTo(off)
	}
	s.dragging = bar
	s.dragFrom = pos
	s.dragBase = s.offset
	return true
}

func (s *ScrollContainer) OnMouseMove(pos Point) bool {
	if s.dragging == barNone {
		return false
	}
	track := s.barRect(s.dragging)
	d := pos.Sub(s.dragFrom)
	off := s.dragBase
	if s.dragging == barVertical && track.Dy() > 0 {
		off.Y += d.Y * s.content.Y / track.Dy()
	}
	if s.dragging == barHorizontal && track.Dx() > 0 {
		off.X += d.X * s.content.X / track.Dx()
	}
	s.ScrollTo(off)
	return true
}

func (s *ScrollContainer) OnMouseReleased(pos Point, btn MouseButton) bool {
	if s.dragging == barNone {
		return false
	}
	s.dragging = barNone
	return true
}

func (s *ScrollContainer) OnUnfocused() { s.dragging = barNone }

func (s *ScrollContainer) Paint(p *Painter) {
	s.paintBackground(p, PropBackground)
	view := s.viewport()
	p.PushClip(Rect{X1: view.X, Y1: view.Y})
	s.paintChildren(p)
	p.PopClip()
	for _, bar := range []scrollBar{barVertical, barHorizontal} {
		track := s.barRect(bar)
		if track.Empty() {
			continue
		}
		p.FillRect(track, s.Color(PropScrollbarTrack))
		p.FillRect(s.handleRect(bar), s.Color(PropScrollbarHandle))
	}
}

func (s *ScrollContainer) Save(p Props) {
	s.Container.Save(p)
	delete(p, "ForwardMouseEvents")
}

// scrollPlacer gives children their desired size, stretching expanding
// axes to the viewport, and records the resulting content extent.
type scrollPlacer struct {
	s *ScrollContainer
}

func (sp scrollPlacer) PlaceControls(c *Container) {
	s := sp.s
	s.content = Point{}
	kids := visibleChildren(c)
	for _, ch := range kids {
		b := ch.AsBase()
		s.content = s.content.Max(b.pos.Add(ch.DesiredSize()))
	}
	view := s.viewport()
	for _, ch := range kids {
		b := ch.AsBase()
		size := ch.DesiredSize()
		if b.expand.Width() {
			size.X = max(view.X-b.pos.X, size.X)
		}
		if b.expand.Height() {
			size.Y = max(view.Y-b.pos.Y, size.Y)
		}
		b.allocate(size)
		s.content = s.content.Max(b.pos.Add(size))
	}
	over := s.Overflow()
	s.offset = Point{X: clampf(s.offset.X, 0, over.X), Y: clampf(s.offset.Y, 0, over.Y)}
}

// ContentSize is zero: a scroll container never grows to fit its content.
func (scrollPlacer) ContentSize(c *Container) Point { return Point{} }
