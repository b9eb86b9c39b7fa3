package eui

// Invalidation is a bit set of the work a control needs.
type Invalidation uint8

const (
	InvalidatePaint Invalidation = 1 << iota
	InvalidateLayout

	InvalidateBoth = InvalidatePaint | InvalidateLayout
)

func (k Invalidation) String() string {
	switch k {
	case InvalidatePaint:
		return "Paint"
	case InvalidateLayout:
		return "Layout"
	case InvalidateBoth:
		return "Both"
	}
	return "None"
}

type invalidation struct {
	ref  Ref
	kind Invalidation
}

// enqueue records a request. Requests for the same control coalesce; a
// request that adds nothing is dropped silently.
func (w *Window) enqueue(r Ref, kind Invalidation) {
	c := w.arena.get(r)
	if c == nil {
		return
	}
	if i, ok := w.queued[r]; ok {
		old := w.queue[i].kind
		if old|kind == old {
			return
		}
		w.queue[i].kind |= kind
	} else {
		w.queued[r] = len(w.queue)
		w.queue = append(w.queue, invalidation{ref: r, kind: kind})
	}
	w.dirty = true
	if w.OnInvalidate != nil {
		w.OnInvalidate(c, kind)
	}
}

// flushInvalidations drains the queue once. Requests made while draining
// wait for the next flush.
func (w *Window) flushInvalidations() {
	if len(w.queue) == 0 {
		return
	}
	q := w.queue
	w.queue = w.spare[:0]
	clear(w.queued)
	for _, e := range q {
		c := w.arena.get(e.ref)
		if c == nil {
			continue
		}
		w.propagate(c, e.kind)
	}
	w.spare = q[:0]
}

// propagate routes one request. Paint stops at the nearest container,
// Layout climbs to the root.
func (w *Window) propagate(c Control, kind Invalidation) {
	b := c.AsBase()
	if kind&InvalidateLayout != 0 {
		if cc := c.AsContainer(); cc != nil {
			cc.layoutDirty = true
		}
	}
	if b.parent == nil {
		if kind&InvalidateLayout != 0 {
			w.needsLayout = true
		}
		if kind&InvalidatePaint != 0 {
			w.addDamage(b.ScreenBounds())
		}
		w.dirty = true
		return
	}
	b.parent.childInvalidated(kind)
}

func (c *Container) childInvalidated(kind Invalidation) {
	w := c.win
	if kind&InvalidatePaint != 0 {
		c.paintDirty = true
		w.addDamage(c.ScreenBounds())
	}
	if kind&InvalidateLayout != 0 {
		for p := c; p != nil; p = p.parent {
			p.layoutDirty = true
		}
		w.needsLayout = true
	}
	w.dirty = true
}
