package eui

// Point is a 2D vector in UI units.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) Mul(k float32) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Div divides both components by k. Division by zero returns p unchanged.
func (p Point) Div(k float32) Point {
	if k == 0 {
		return p
	}
	return Point{X: p.X / k, Y: p.Y / k}
}

// In reports whether p lies inside r. The maximum edges are exclusive.
func (p Point) In(r Rect) bool {
	return r.X0 <= p.X && p.X < r.X1 && r.Y0 <= p.Y && p.Y < r.Y1
}

func (p Point) IsZero() bool { return p.X == 0 && p.Y == 0 }

// Max returns the component-wise maximum of p and q.
func (p Point) Max(q Point) Point {
	if q.X > p.X {
		p.X = q.X
	}
	if q.Y > p.Y {
		p.Y = q.Y
	}
	return p
}

// Rect is an axis aligned rectangle. X1/Y1 are exclusive.
type Rect struct {
	X0, Y0, X1, Y1 float32
}

// RectAt builds a rectangle from a position and a size.
func RectAt(pos, size Point) Rect {
	return Rect{X0: pos.X, Y0: pos.Y, X1: pos.X + size.X, Y1: pos.Y + size.Y}
}

func (r Rect) Dx() float32   { return r.X1 - r.X0 }
func (r Rect) Dy() float32   { return r.Y1 - r.Y0 }
func (r Rect) Min() Point    { return Point{X: r.X0, Y: r.Y0} }
func (r Rect) Size() Point   { return Point{X: r.Dx(), Y: r.Dy()} }
func (r Rect) Empty() bool   { return r.X0 >= r.X1 || r.Y0 >= r.Y1 }
func (r Rect) Center() Point { return Point{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2} }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool { return p.In(r) }

// Add translates r by p.
func (r Rect) Add(p Point) Rect {
	return Rect{X0: r.X0 + p.X, Y0: r.Y0 + p.Y, X1: r.X1 + p.X, Y1: r.Y1 + p.Y}
}

// Scale multiplies every coordinate by k.
func (r Rect) Scale(k float32) Rect {
	return Rect{X0: r.X0 * k, Y0: r.Y0 * k, X1: r.X1 * k, Y1: r.Y1 * k}
}

// Intersect returns the largest rectangle contained by both r and s. If the
// two do not overlap the zero Rect is returned.
func (r Rect) Intersect(s Rect) Rect {
	if r.X0 < s.X0 {
		r.X0 = s.X0
	}
	if r.Y0 < s.Y0 {
		r.Y0 = s.Y0
	}
	if r.X1 > s.X1 {
		r.X1 = s.X1
	}
	if r.Y1 > s.Y1 {
		r.Y1 = s.Y1
	}
	if r.Empty() {
		return Rect{}
	}
	return r
}

// Overlaps reports whether r and s share any area.
func (r Rect) Overlaps(s Rect) bool {
	return !r.Empty() && !s.Empty() &&
		r.X0 < s.X1 && s.X0 < r.X1 && r.Y0 < s.Y1 && s.Y0 < r.Y1
}

// Union returns the smallest rectangle containing both r and s. Empty
// rectangles are ignored.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	if s.X0 < r.X0 {
		r.X0 = s.X0
	}
	if s.Y0 < r.Y0 {
		r.Y0 = s.Y0
	}
	if s.X1 > r.X1 {
		r.X1 = s.X1
	}
	if s.Y1 > r.Y1 {
		r.Y1 = s.Y1
	}
	return r
}

// Inset shrinks r by the given insets. The result never has negative size.
func (r Rect) Inset(in Insets) Rect {
	r.X0 += in.Left
	r.Y0 += in.Top
	r.X1 -= in.Right
	r.Y1 -= in.Bottom
	if r.X1 < r.X0 {
		r.X1 = r.X0
	}
	if r.Y1 < r.Y0 {
		r.Y1 = r.Y0
	}
	return r
}

// Insets holds left/top/right/bottom margins.
type Insets struct {
	Left, Top, Right, Bottom float32
}

// UniformInsets returns insets of n on every side.
func UniformInsets(n float32) Insets { return Insets{Left: n, Top: n, Right: n, Bottom: n} }

// Size returns the total horizontal and vertical space taken by the insets.
func (in Insets) Size() Point { return Point{X: in.Left + in.Right, Y: in.Top + in.Bottom} }

func (in Insets) Offset() Point { return Point{X: in.Left, Y: in.Top} }

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

