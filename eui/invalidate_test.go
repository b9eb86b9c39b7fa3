package eui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type invalidationLog struct {
	calls []string
}

func (l *invalidationLog) hook(c Control, kind Invalidation) {
	l.calls = append(l.calls, c.AsBase().ID()+":"+kind.String())
}

func TestSetSizeSameValueIsNoop(t *testing.T) {
	w := newTestWindow(t, Pt(100, 100))
	p := newLeaf("p", Pt(10, 10), nil)
	w.Root().InsertControl(p)
	settle(t, w)

	var log invalidationLog
	w.OnInvalidate = log.hook
	p.SetSize(Pt(20, 20))
	p.SetSize(Pt(20, 20))
	if diff := cmp.Diff([]string{"p:Both"}, log.calls); diff != "" {
		t.Fatalf("invalidations (-want +got):\n%s", diff)
	}

	settle(t, w)
	log.calls = nil
	p.SetSize(Pt(20, 20))
	if len(log.calls) != 0 {
		t.Fatalf("unchanged size invalidated: %v", log.calls)
	}
}

func TestSetSizeToAllocatedSizeRelaysOut(t *testing.T) {
	w := newTestWindow(t, Pt(100, 100))
	box := NewVBox()
	box.SetSize(Pt(50, 50))
	p := newLeaf("p", Pt(10, 10), nil)
	p.SetExpand(ExpandWidth)
	box.InsertControl(p)
	w.Root().InsertControl(box)
	settle(t, w)
	if p.Size() != Pt(50, 10) {
		t.Fatalf("allocated size %v, want (50,10)", p.Size())
	}

	var log invalidationLog
	w.OnInvalidate = log.hook
	p.SetSize(Pt(50, 10))
	if diff := cmp.Diff([]string{"p:Layout"}, log.calls); diff != "" {
		t.Fatalf("invalidations (-want +got):\n%s", diff)
	}
	if p.DesiredSize() != Pt(50, 10) {
		t.Fatalf("natural size %v, want (50,10)", p.DesiredSize())
	}
	log.calls = nil
	p.SetSize(Pt(50, 10))
	if len(log.calls) != 0 {
		t.Fatalf("unchanged size invalidated: %v", log.calls)
	}
}

func TestInvalidationsCoalesce(t *testing.T) {
	w := newTestWindow(t, Pt(100, 100))
	p := newLeaf("p", Pt(10, 10), nil)
	w.Root().InsertControl(p)
	settle(t, w)

	var log invalidationLog
	w.OnInvalidate = log.hook
	p.Invalidate(InvalidatePaint)
	p.Invalidate(InvalidatePaint)
	p.Invalidate(InvalidateLayout)
	p.Invalidate(InvalidateBoth)
	p.Invalidate(0)

	want := []string{"p:Paint", "p:Layout"}
	if diff := cmp.Diff(want, log.calls); diff != "" {
		t.Fatalf("invalidations (-want +got):\n%s", diff)
	}
	if len(w.queue) != 1 || w.queue[0].kind != InvalidateBoth {
		t.Fatalf("queue = %+v, want one Both entry", w.queue)
	}
}

func TestPaintStopsAtNearestContainer(t *testing.T) {
	w := newTestWindow(t, Pt(100, 100))
	box := NewVBox()
	box.SetPosition(Pt(10, 10))
	box.SetSize(Pt(50, 50))
	p := newLeaf("p", Pt(10, 10), nil)
	box.InsertControl(p)
	w.Root().InsertControl(box)
	settle(t, w)

	p.Invalidate(InvalidatePaint)
	w.flushInvalidations()

	if !box.PaintDirty() {
		t.Errorf("parent not marked for paint")
	}
	if w.Root().PaintDirty() {
		t.Errorf("paint climbed past the parent")
	}
	if box.LayoutDirty() || w.Root().LayoutDirty() || w.needsLayout {
		t.Errorf("paint request caused layout")
	}
	if got, want := w.damage, box.ScreenBounds(); got != want {
		t.Errorf("damage = %v, want %v", got, want)
	}
}

func TestLayoutClimbsToRoot(t *testing.T) {
	w := newTestWindow(t, Pt(100, 100))
	outer := NewVBox()
	inner := NewHBox()
	p := newLeaf("p", Pt(10, 10), nil)
	inner.InsertControl(p)
	outer.InsertControl(inner)
	w.Root().InsertControl(outer)
	settle(t, w)

	p.Invalidate(InvalidateLayout)
	w.flushInvalidations()
	for _, c := range []*Container{inner, outer, w.Root()} {
		if !c.LayoutDirty() {
			t.Errorf("%s not marked for layout", c.TypeName())
		}
	}
	if !w.needsLayout {
		t.Errorf("window not marked for layout")
	}
	settle(t, w)
	if inner.LayoutDirty() || outer.LayoutDirty() {
		t.Errorf("layout flags not cleared")
	}
}

func TestLayoutRequestDuringLayoutBecomesPaint(t *testing.T) {
	w := NewWindow("Main", NewContext(nil))
	w.Resize(Pt(100, 100))
	p := newLeaf("p", Pt(0, 0), nil)
	p.SetExpand(ExpandBoth)
	p.resized = func() { p.Invalidate(InvalidateLayout) }
	w.Root().InsertControl(p)
	settle(t, w)

	var kinds []Invalidation
	w.OnInvalidate = func(c Control, kind Invalidation) {
		if c == Control(p) {
			kinds = append(kinds, kind)
		}
	}
	w.HandleEvent(WindowResized{Size: Pt(80, 80)})
	settle(t, w)

	if got := p.Size(); got != Pt(80, 80) {
		t.Fatalf("leaf size = %v", got)
	}
	for _, k := range kinds {
		if k&InvalidateLayout != 0 {
			t.Fatalf("layout request from inside layout was kept: %v", kinds)
		}
	}
	if len(kinds) == 0 {
		t.Fatalf("no paint request recorded")
	}
}

func TestInvalidationOfRemovedControlIsDropped(t *testing.T) {
	w := newTestWindow(t, Pt(100, 100))
	p := newLeaf("p", Pt(10, 10), nil)
	w.Root().InsertControl(p)
	settle(t, w)

	p.Invalidate(InvalidatePaint)
	w.Root().RemoveControl(p)
	w.flushInvalidations()
	p.Invalidate(InvalidateLayout)
	if len(w.queue) != 0 {
		t.Fatalf("detached control queued work: %+v", w.queue)
	}
	if p.pending != InvalidateLayout {
		t.Fatalf("pending = %v, want Layout", p.pending)
	}
}
