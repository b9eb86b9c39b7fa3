package eui

// Ref is a weak reference to a control registered in a window. The zero Ref
// refers to nothing. A Ref stops resolving as soon as the control is removed
// from the window, even if the slot is later reused.
type Ref struct {
	slot uint32 // index+1
	gen  uint32
}

func (r Ref) IsZero() bool { return r.slot == 0 }

type arenaSlot struct {
	c   Control
	gen uint32
}

// arena owns the control slots of one window.
type arena struct {
	slots []arenaSlot
	free  []uint32
	live  int
}

func (a *arena) add(c Control) Ref {
	var i uint32
	if n := len(a.free); n > 0 {
		i = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, arenaSlot{})
		i = uint32(len(a.slots) - 1)
	}
	s := &a.slots[i]
	s.gen++
	s.c = c
	a.live++
	return Ref{slot: i + 1, gen: s.gen}
}

func (a *arena) get(r Ref) Control {
	if r.slot == 0 || int(r.slot) > len(a.slots) {
		return nil
	}
	s := a.slots[r.slot-1]
	if s.gen != r.gen {
		return nil
	}
	return s.c
}

func (a *arena) release(r Ref) {
	if a.get(r) == nil {
		return
	}
	s := &a.slots[r.slot-1]
	s.c = nil
	s.gen++
	a.free = append(a.free, r.slot-1)
	a.live--
}
