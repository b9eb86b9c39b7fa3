package eui

import (
	"log"
)

// windowHooks reach the platform window. They are nil until the window is
// displayed and again after it is destroyed.
type windowHooks struct {
	setTitle     func(string)
	minimize     func()
	maximize     func()
	setPosition  func(Point)
	setSize      func(Point)
	focus        func()
	setCursor    func(Cursor)
	clipboard    func() string
	setClipboard func(string)
}

type popup struct {
	c     *Container
	modal bool
}

// Window owns a control tree, the popups opened over it and the per-window
// event and invalidation state.
type Window struct {
	id    string
	title string
	app   *Application
	ctx   *Context
	hooks windowHooks

	// Modal windows disable every other window while displayed.
	Modal bool

	root   *Container
	popups []popup

	// set when the root wraps a described body under a menu bar
	menuBar *MenuBar
	body    *Container

	arena arena

	queue  []invalidation
	spare  []invalidation
	queued map[Ref]int

	focus   Ref
	hovered Ref
	mouse   Point
	cursor  Cursor

	// pointerIn is set once the mouse has been seen over the window.
	pointerIn bool

	pos   Point
	size  Point
	scale float32

	visible        bool
	enabled        bool
	active         bool
	maximized      bool
	minimized      bool
	closeRequested bool

	dirty       bool
	fullRepaint bool
	needsLayout bool
	damage      Rect
	list        DrawList

	// OnInvalidate sees every accepted invalidation request.
	OnInvalidate func(c Control, kind Invalidation)
	// Events receives the widget events of every control in the window.
	Events *EventHandler
}

// NewWindow returns a detached window with an empty vertical root. Most
// callers use Application.NewWindow instead.
func NewWindow(id string, ctx *Context) *Window {
	w := &Window{
		id:      id,
		title:   defaultTitle(id),
		ctx:     ctx,
		queued:  map[Ref]int{},
		scale:   1,
		enabled: true,
		size:    Point{X: 640, Y: 480},
	}
	w.SetRoot(NewVBox())
	return w
}

func (w *Window) ID() string           { return w.id }
func (w *Window) Context() *Context    { return w.ctx }
func (w *Window) Root() *Container     { return w.root }
func (w *Window) Title() string        { return w.title }
func (w *Window) Visible() bool        { return w.visible }
func (w *Window) Enabled() bool        { return w.enabled }
func (w *Window) Active() bool         { return w.active }
func (w *Window) Maximized() bool      { return w.maximized }
func (w *Window) Minimized() bool      { return w.minimized }
func (w *Window) Position() Point      { return w.pos }
func (w *Window) Scale() float32       { return w.scale }
func (w *Window) CloseRequested() bool { return w.closeRequested }

// Size is the window size in pixels.
func (w *Window) Size() Point { return w.size }

// Dirty reports whether the next Paint produces a frame.
func (w *Window) Dirty() bool { return w.dirty || w.fullRepaint }

// ControlCount is the number of live controls, popups included.
func (w *Window) ControlCount() int { return w.arena.live }

// SetRoot replaces the root container. The old root is detached.
func (w *Window) SetRoot(c *Container) {
	if c == nil {
		c = NewVBox()
	}
	w.menuBar, w.body = nil, nil
	if w.root != nil {
		w.detach(w.root.self)
	}
	if c.parent != nil {
		c.parent.RemoveControl(c.self)
	}
	w.root = c
	c.expand = ExpandBoth
	c.pos = Point{}
	w.attach(c.self)
	c.allocate(w.units(w.size))
	c.Invalidate(InvalidateBoth)
}

// SetScale changes the pixels per UI unit and lays the window out again.
func (w *Window) SetScale(s float32) {
	if s <= 0 || s == w.scale {
		return
	}
	w.scale = s
	w.root.allocate(w.units(w.size))
	w.root.Invalidate(InvalidateBoth)
	w.fullRepaint = true
}

func (w *Window) units(px Point) Point { return px.Div(w.scale) }

func (w *Window) SetTitle(s string) {
	w.title = s
	if w.hooks.setTitle != nil {
		w.hooks.setTitle(s)
	}
}

func (w *Window) Minimize() {
	if w.hooks.minimize != nil {
		w.hooks.minimize()
	}
}

func (w *Window) Maximize() {
	if w.hooks.maximize != nil {
		w.hooks.maximize()
	}
}

// Move asks the platform to move the window. The window position changes
// when the platform reports WindowMoved; undisplayed windows move at once.
func (w *Window) Move(p Point) {
	if w.hooks.setPosition != nil {
		w.hooks.setPosition(p)
		return
	}
	w.pos = p
}

// Resize asks the platform for a new size in pixels. Undisplayed windows
// resize at once.
func (w *Window) Resize(size Point) {
	if w.hooks.setSize != nil {
		w.hooks.setSize(size)
		return
	}
	w.resized(size)
}

// Close asks for the window to be destroyed at the end of the current
// tick, as if the user had closed it.
func (w *Window) Close() { w.closeRequested = true }

func (w *Window) RequestFocus() {
	if w.hooks.focus != nil {
		w.hooks.focus()
	}
}

func (w *Window) Clipboard() string {
	if w.hooks.clipboard != nil {
		return w.hooks.clipboard()
	}
	return ""
}

func (w *Window) SetClipboard(s string) {
	if w.hooks.setClipboard != nil {
		w.hooks.setClipboard(s)
	}
}

// Focus returns the focused control, or nil.
func (w *Window) Focus() Control { return w.arena.get(w.focus) }

// Hovered returns the control under the mouse, or nil.
func (w *Window) Hovered() Control { return w.arena.get(w.hovered) }

// Control resolves a Ref handed out by this window.
func (w *Window) Control(r Ref) Control { return w.arena.get(r) }

// Find looks a control up by id path, in the root and then in the open
// popups.
func (w *Window) Find(path string) Control {
	if c := w.root.Find(path); c != nil {
		return c
	}
	for _, p := range w.popups {
		if c := p.c.Find(path); c != nil {
			return c
		}
	}
	return nil
}

// SetFocus moves focus to c, which must belong to w. The old control sees
// OnUnfocused before the new one sees OnFocused.
func (w *Window) SetFocus(c Control) {
	old := w.Focus()
	if old == c {
		return
	}
	if c != nil && c.AsBase().win != w {
		log.Printf("window %s: cannot focus %s from another window", w.id, c.TypeName())
		return
	}
	w.focus = Ref{}
	if old != nil {
		old.AsBase().focused = false
		old.OnUnfocused()
	}
	if c != nil {
		b := c.AsBase()
		w.focus = b.ref
		b.focused = true
		c.OnFocused()
	}
}

// attach registers c and its subtree with the window.
func (w *Window) attach(c Control) {
	b := c.AsBase()
	if b.win == w {
		return
	}
	b.win = w
	b.ref = w.arena.add(c)
	b.pending = 0
	if cc := c.AsContainer(); cc != nil {
		for _, ch := range cc.children {
			w.attach(ch)
		}
	}
	if w.ctx != nil && b.ctx != w.ctx {
		c.OnThemeChanged(w.ctx)
	}
}

// detach releases c and its subtree. Refs to them stop resolving.
func (w *Window) detach(c Control) {
	b := c.AsBase()
	if b.win != w {
		return
	}
	if cc := c.AsContainer(); cc != nil {
		for _, ch := range cc.children {
			w.detach(ch)
		}
	}
	if b.focused {
		b.focused = false
		w.focus = Ref{}
	}
	if b.hovered {
		b.hovered = false
		w.hovered = Ref{}
	}
	w.arena.release(b.ref)
	b.ref = Ref{}
	b.win = nil
	w.addDamage(RectAt(Point{}, w.units(w.size)))
}

func (w *Window) addDamage(r Rect) {
	w.damage = w.damage.Union(r)
	w.dirty = true
}

// Update drains the invalidation queue and lays the window out if needed.
// Layout requests raised by the layout pass itself wait for the next
// Update.
func (w *Window) Update() {
	w.flushInvalidations()
	if !w.needsLayout {
		return
	}
	w.needsLayout = false
	w.layout()
	w.flushInvalidations()
	w.fullRepaint = true
}

func (w *Window) layout() {
	w.root.allocate(w.units(w.size))
	w.root.Layout()
	w.root.self.Update()
	for _, p := range w.popups {
		c := p.c
		c.allocate(c.self.DesiredSize())
		c.Layout()
		c.self.Update()
	}
	// mouse targets moved
	if w.pointerIn {
		w.updateHover(w.mouse)
	}
}

// Paint records the window into its draw list. It returns false when
// nothing changed since the last frame. The frame's list is valid until
// the next Paint.
func (w *Window) Paint() (Frame, bool) {
	if !w.dirty && !w.fullRepaint {
		return Frame{}, false
	}
	bounds := RectAt(Point{}, w.units(w.size))
	full := w.fullRepaint || w.damage.Intersect(bounds) == bounds
	damage := bounds
	if !full {
		damage = w.damage.Intersect(bounds)
	}

	w.list.Reset()
	p := NewPainter(&w.list, w.ctx, w.scale, bounds)
	p.PushOffset(w.root.pos)
	w.root.self.Paint(p)
	p.PopOffset()
	for _, pp := range w.popups {
		c := pp.c
		p.PushOffset(c.pos)
		p.FillRect(c.LocalBounds(), c.Color(PropPopupBackground))
		if bw := c.Float(PropBorderWidth); bw > 0 {
			p.StrokeRect(c.LocalBounds(), bw, c.Color(PropBorder))
		}
		c.self.Paint(p)
		p.PopOffset()
	}

	w.root.Walk(func(c Control) bool {
		if cc := c.AsContainer(); cc != nil {
			cc.paintDirty = false
		}
		return true
	})
	w.dirty = false
	w.fullRepaint = false
	w.damage = Rect{}
	return Frame{
		List:   &w.list,
		Damage: damage.Scale(w.scale),
		Full:   full,
		Size:   w.size,
		Scale:  w.scale,
	}, true
}

// HandleEvent dispatches one platform event.
func (w *Window) HandleEvent(ev Event) {
	switch e := ev.(type) {
	case MouseMoved:
		w.mouseMoved(w.units(e.Pos))
	case MousePressed:
		w.mousePressed(w.units(e.Pos), e.Button)
	case MouseReleased:
		w.mouseReleased(w.units(e.Pos), e.Button)
	case MouseWheel:
		if h := w.Hovered(); h != nil {
			w.bubble(h, false, func(c Control) bool { return c.OnMouseWheel(e.Delta) })
		}
	case KeyPressed:
		if f := w.Focus(); f != nil {
			w.bubble(f, true, func(c Control) bool { return c.OnKeyPressed(e.Key, e.Mods) })
		}
	case KeyReleased:
		if f := w.Focus(); f != nil {
			w.bubble(f, true, func(c Control) bool { return c.OnKeyReleased(e.Key, e.Mods) })
		}
	case TextEntered:
		if f := w.Focus(); f != nil {
			w.bubble(f, true, func(c Control) bool { return c.OnText(e.Text) })
		}
	case WindowResized:
		w.resized(e.Size)
	case WindowMoved:
		w.pos = e.Pos
	case WindowMaximized:
		w.maximized = true
		w.minimized = false
	case WindowMinimized:
		w.minimized = true
	case WindowGainedFocus:
		if w.app != nil {
			w.app.activate(w)
		} else {
			w.active = true
		}
	case WindowLostFocus:
		w.active = false
		w.pointerIn = false
		w.clearHover()
	case WindowClosed:
		w.closeRequested = true
	case WindowRepaint:
		w.fullRepaint = true
	case NoEvent:
	default:
		if DebugMode {
			log.Printf("window %s: unhandled event %T", w.id, ev)
		}
	}
}

func (w *Window) resized(size Point) {
	if size == w.size {
		return
	}
	w.size = size
	w.minimized = false
	w.root.allocate(w.units(size))
	w.root.Invalidate(InvalidateBoth)
	w.needsLayout = true
	w.fullRepaint = true
}

// bubble offers an event to c and then to ancestors that forward the event
// class, stopping at the first that consumes it.
func (w *Window) bubble(c Control, keys bool, fn func(Control) bool) bool {
	if fn(c) {
		return true
	}
	for p := c.AsBase().parent; p != nil; p = p.parent {
		forward := p.forwardMouse
		if keys {
			forward = p.forwardKeys
		}
		if forward && fn(p.self) {
			return true
		}
	}
	return false
}

func (w *Window) local(c Control, p Point) Point {
	return p.Sub(c.AsBase().ScreenPosition())
}

// hitTest finds the control under p. Popups come first, topmost first; a
// modal popup hides everything below it.
func (w *Window) hitTest(p Point) Control {
	for i := len(w.popups) - 1; i >= 0; i-- {
		c := w.popups[i].c
		local := p.Sub(c.pos)
		if local.In(c.LocalBounds()) {
			if hit := c.GetControl(local); hit != nil {
				return hit
			}
			return c.self
		}
		if w.popups[i].modal {
			return nil
		}
	}
	local := p.Sub(w.root.pos)
	if !local.In(w.root.LocalBounds()) {
		return nil
	}
	if hit := w.root.GetControl(local); hit != nil {
		return hit
	}
	if w.root.forwardMouse {
		return w.root.self
	}
	return nil
}

func (w *Window) updateHover(p Point) {
	target := w.hitTest(p)
	old := w.Hovered()
	if old == target {
		return
	}
	if old != nil {
		old.AsBase().hovered = false
		w.hovered = Ref{}
		old.OnMouseLeave()
	}
	if target == nil {
		w.setCursor(CursorDefault)
		return
	}
	b := target.AsBase()
	w.hovered = b.ref
	b.hovered = true
	target.OnMouseEnter()
	name, _ := b.Property(PropCursor).Str()
	w.setCursor(ParseCursor(name))
}

func (w *Window) setCursor(c Cursor) {
	if c == w.cursor {
		return
	}
	w.cursor = c
	if w.hooks.setCursor != nil {
		w.hooks.setCursor(c)
	}
}

// clearHover sends the hovered control a synthetic leave.
func (w *Window) clearHover() {
	if old := w.Hovered(); old != nil {
		old.AsBase().hovered = false
		w.hovered = Ref{}
		old.OnMouseLeave()
	}
}

func (w *Window) mouseMoved(p Point) {
	w.mouse = p
	w.pointerIn = true
	w.updateHover(p)
	h := w.Hovered()
	if h != nil {
		h.OnMouseMove(w.local(h, p))
	}
	// drags keep reaching the control that took the press
	if f := w.Focus(); f != nil && f != h {
		f.OnMouseMove(w.local(f, p))
	}
}

func (w *Window) mousePressed(p Point, btn MouseButton) {
	w.mouse = p
	w.updateHover(p)
	target := w.Hovered()
	w.closePopupsOutside(target)
	if target != nil && target.OnMousePressed(w.local(target, p), btn) {
		// the handler may have closed the popup holding target
		if target.AsBase().win == w {
			w.SetFocus(target)
			return
		}
	}
	w.SetFocus(nil)
}

func (w *Window) mouseReleased(p Point, btn MouseButton) {
	w.mouse = p
	w.updateHover(p)
	h, f := w.Hovered(), w.Focus()
	if h != nil && h != f {
		h.OnMouseReleased(w.local(h, p), btn)
	}
	if f != nil {
		f.OnMouseReleased(w.local(f, p), btn)
	}
}

// emit sends a widget event to the window-wide handler.
func (w *Window) emit(ev UIEvent) {
	if w.Events != nil {
		w.Events.Emit(ev)
	}
	if w.app != nil {
		w.app.emit(ev)
	}
}

func (w *Window) setTheme(ctx *Context) {
	w.ctx = ctx
	w.root.self.OnThemeChanged(ctx)
	for _, p := range w.popups {
		p.c.self.OnThemeChanged(ctx)
	}
	w.needsLayout = true
	w.fullRepaint = true
}

// destroy closes popups and detaches the whole tree.
func (w *Window) destroy() {
	w.ClosePopups()
	w.detach(w.root.self)
	w.hooks = windowHooks{}
	w.queue = w.queue[:0]
	clear(w.queued)
	w.list.Reset()
}

// Save describes the window in the form LoadDescription reads.
func (w *Window) Save() Props {
	p := Props{
		"Title":  w.title,
		"Width":  float64(w.size.X),
		"Height": float64(w.size.Y),
	}
	body := w.root
	if w.menuBar != nil && w.body != nil {
		body = w.body
		p["MenuBar"] = w.menuBar.SaveMenus()
	}
	p["Body"] = SaveControl(body.self)
	if w.visible {
		p["Visible"] = true
	}
	if w.Modal {
		p["Modal"] = true
	}
	return p
}
