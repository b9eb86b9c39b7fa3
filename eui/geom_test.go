package eui

import "testing"

func TestRectIntersect(t *testing.T) {
	a := Rect{X1: 10, Y1: 10}
	tests := []struct {
		b, want Rect
	}{
		{Rect{X0: 5, Y0: 5, X1: 20, Y1: 20}, Rect{X0: 5, Y0: 5, X1: 10, Y1: 10}},
		{Rect{X0: 2, Y0: 2, X1: 4, Y1: 4}, Rect{X0: 2, Y0: 2, X1: 4, Y1: 4}},
		{Rect{X0: 10, X1: 20, Y1: 10}, Rect{}},
		{Rect{X0: 20, Y0: 20, X1: 30, Y1: 30}, Rect{}},
	}
	for _, tc := range tests {
		if got := a.Intersect(tc.b); got != tc.want {
			t.Errorf("%v.Intersect(%v) = %v, want %v", a, tc.b, got, tc.want)
		}
	}
	if a.Overlaps(Rect{X0: 10, X1: 20, Y1: 10}) {
		t.Errorf("touching rectangles overlap")
	}
}

func TestRectUnionIgnoresEmpty(t *testing.T) {
	a := Rect{X0: 1, Y0: 1, X1: 2, Y1: 2}
	if got := a.Union(Rect{}); got != a {
		t.Errorf("union with empty = %v", got)
	}
	if got := (Rect{}).Union(a); got != a {
		t.Errorf("empty union = %v", got)
	}
	if got := a.Union(Rect{X0: 5, Y0: -1, X1: 6, Y1: 0}); got != (Rect{X0: 1, Y0: -1, X1: 6, Y1: 2}) {
		t.Errorf("union = %v", got)
	}
}

func TestPointInExcludesFarEdges(t *testing.T) {
	r := Rect{X1: 10, Y1: 10}
	for _, p := range []Point{{0, 0}, {9.9, 9.9}} {
		if !p.In(r) {
			t.Errorf("%v not in %v", p, r)
		}
	}
	for _, p := range []Point{{10, 5}, {5, 10}, {-0.1, 0}} {
		if p.In(r) {
			t.Errorf("%v in %v", p, r)
		}
	}
}

func TestInsetNeverInverts(t *testing.T) {
	r := Rect{X1: 10, Y1: 10}
	if got := r.Inset(Insets{Left: 1, Top: 2, Right: 3, Bottom: 4}); got != (Rect{X0: 1, Y0: 2, X1: 7, Y1: 6}) {
		t.Errorf("inset = %v", got)
	}
	got := r.Inset(UniformInsets(8))
	if got.Dx() != 0 || got.Dy() != 0 {
		t.Errorf("over-inset = %v", got)
	}
	if s := (Insets{Left: 1, Top: 2, Right: 3, Bottom: 4}).Size(); s != Pt(4, 6) {
		t.Errorf("insets size %v", s)
	}
}

func TestPointDivByZero(t *testing.T) {
	if got := Pt(3, 4).Div(0); got != Pt(3, 4) {
		t.Errorf("Div(0) = %v", got)
	}
	if got := Pt(3, 6).Div(1.5); got != Pt(2, 4) {
		t.Errorf("Div(1.5) = %v", got)
	}
}

func TestColorMix(t *testing.T) {
	a := Color{A: 200}
	b := Color{R: 200, G: 100, B: 50, A: 200}
	if got := a.Mix(b, 0.5); got != (Color{R: 100, G: 50, B: 25, A: 200}) {
		t.Errorf("Mix = %v", got)
	}
	if got := a.Mix(b, 3); got != b {
		t.Errorf("Mix past 1 = %v", got)
	}
}
