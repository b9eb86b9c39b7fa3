package eui

import "log"

// OpenPopup shows c over the window's tree with its top-left corner at at,
// in window units. A modal popup takes all mouse input until it closes; the
// control hovered below it gets a synthetic leave.
func (w *Window) OpenPopup(c *Container, at Point, modal bool) {
	if c == nil {
		return
	}
	for _, p := range w.popups {
		if p.c == c {
			log.Println("Popup already open")
			return
		}
	}
	if c.parent != nil {
		log.Printf("OpenPopup: %s %q is part of a tree", c.typeName, c.id)
		return
	}
	if c.win != nil && c.win != w {
		c.win.ClosePopup(c)
	}
	c.pos = at
	w.popups = append(w.popups, popup{c: c, modal: modal})
	w.attach(c.self)
	c.layoutDirty = true
	c.Invalidate(InvalidateBoth)
	w.needsLayout = true

	if h := w.Hovered(); modal && h != nil && h.AsBase().self != c.self && !c.Contains(h) {
		w.clearHover()
	}
}

// ClosePopup removes c and reports whether it was open.
func (w *Window) ClosePopup(c *Container) bool {
	for i, p := range w.popups {
		if p.c != c {
			continue
		}
		w.popups = append(w.popups[:i], w.popups[i+1:]...)
		w.detach(c.self)
		w.fullRepaint = true
		w.dirty = true
		if w.pointerIn {
			w.updateHover(w.mouse)
		}
		return true
	}
	return false
}

// ClosePopups closes every open popup, topmost first.
func (w *Window) ClosePopups() {
	for len(w.popups) > 0 {
		w.ClosePopup(w.popups[len(w.popups)-1].c)
	}
}

// closePopupsOutside closes the non-modal popups above the one holding
// target. A press on the main tree closes them all.
func (w *Window) closePopupsOutside(target Control) {
	for i := len(w.popups) - 1; i >= 0; i-- {
		p := w.popups[i]
		if target != nil && (target == p.c.self || p.c.Contains(target)) {
			return
		}
		if p.modal {
			return
		}
		w.ClosePopup(p.c)
	}
}

// Popups returns the open popups, bottom first.
func (w *Window) Popups() []*Container {
	out := make([]*Container, len(w.popups))
	for i, p := range w.popups {
		out[i] = p.c
	}
	return out
}

// HasModalPopup reports whether a modal popup is open.
func (w *Window) HasModalPopup() bool {
	for _, p := range w.popups {
		if p.modal {
			return true
		}
	}
	return false
}
