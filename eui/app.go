package eui

import (
	"context"
	"fmt"
	"log"
	"slices"
	"time"
)

// MainWindow is the id of the window whose destruction ends Run.
const MainWindow = "Main"

// Application owns the windows, the shared Context and the run loop.
type Application struct {
	ctx      *Context
	platform Platform

	windows map[string]*Window
	order   []string
	modal   []*Window
	keys    map[Key]bool

	running bool
	stopped bool // set once a started loop is told to end
	started time.Time

	// MaxEventsPerTick bounds how many events one window handles per tick.
	MaxEventsPerTick int
	// IdleSleep is how long Run waits when a tick handled nothing.
	IdleSleep time.Duration
	// IgnoreModal lets events reach windows below a modal window.
	IgnoreModal bool

	HighDPI             bool
	CustomTitleBar      bool
	UseSystemFileDialog bool
	// UseNetwork is carried for descriptions that ask for it; the toolkit
	// itself never opens connections.
	UseNetwork bool

	// Events receives the widget events of every window.
	Events *EventHandler
}

func NewApplication(p Platform, ctx *Context) *Application {
	if ctx == nil {
		ctx = NewContext(nil)
	}
	return &Application{
		ctx:              ctx,
		platform:         p,
		windows:          map[string]*Window{},
		keys:             map[Key]bool{},
		MaxEventsPerTick: 64,
		IdleSleep:        5 * time.Millisecond,
	}
}

func (a *Application) Context() *Context { return a.ctx }

// NewWindow creates a hidden window. An existing window with the same id
// is returned unchanged.
func (a *Application) NewWindow(id string) *Window {
	if w, ok := a.windows[id]; ok {
		return w
	}
	w := NewWindow(id, a.ctx)
	w.app = a
	a.windows[id] = w
	a.order = append(a.order, id)
	return w
}

// Window returns the window with id, or nil.
func (a *Application) Window(id string) *Window { return a.windows[id] }

// Windows lists the live windows in creation order.
func (a *Application) Windows() []*Window {
	out := make([]*Window, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.windows[id])
	}
	return out
}

func (a *Application) valid(w *Window) bool {
	return w != nil && a.windows[w.id] == w
}

// DisplayWindow shows the window and wires its platform hooks. Displaying
// a modal window disables every other visible window.
func (a *Application) DisplayWindow(id string) error {
	w, ok := a.windows[id]
	if !ok {
		return fmt.Errorf("display %q: %w", id, ErrUnknownWindow)
	}
	if w.visible {
		return nil
	}
	p := a.platform
	if p != nil {
		w.hooks = windowHooks{
			setTitle:     func(s string) { p.SetTitle(w, s) },
			minimize:     func() { p.Minimize(w) },
			maximize:     func() { p.Maximize(w) },
			setPosition:  func(pt Point) { p.SetPosition(w, pt) },
			setSize:      func(sz Point) { p.SetSize(w, sz) },
			focus:        func() { p.Focus(w) },
			setCursor:    func(c Cursor) { p.SetCursor(w, c) },
			clipboard:    p.Clipboard,
			setClipboard: p.SetClipboard,
		}
		p.ShowWindow(w)
		p.SetTitle(w, w.title)
	}
	w.visible = true
	w.closeRequested = false
	w.needsLayout = true
	w.fullRepaint = true

	if w.Modal {
		for _, o := range a.Windows() {
			if o == w || !o.visible {
				continue
			}
			o.clearHover()
			a.setEnabled(o, false)
		}
		a.modal = append(a.modal, w)
	}
	return nil
}

func (a *Application) setEnabled(w *Window, enabled bool) {
	w.enabled = enabled
	if a.platform != nil {
		a.platform.SetEnabled(w, enabled)
	}
}

// topModal returns the most recent live modal window.
func (a *Application) topModal() *Window {
	for len(a.modal) > 0 {
		w := a.modal[len(a.modal)-1]
		if a.valid(w) && w.visible {
			return w
		}
		a.modal = a.modal[:len(a.modal)-1]
	}
	return nil
}

// KeyDown reports whether k is held according to the events processed so
// far.
func (a *Application) KeyDown(k Key) bool { return a.keys[k] }

// ProcessEvent handles one pending event of w and reports whether it was
// dispatched. Below a modal window only resizes are dispatched; key
// releases are still tracked. A closed window is destroyed at once.
func (a *Application) ProcessEvent(w *Window) bool {
	_, dispatched := a.processEvent(w)
	return dispatched
}

// processEvent reports whether an event was taken from w's queue and
// whether it reached the window.
func (a *Application) processEvent(w *Window) (taken, dispatched bool) {
	if a.platform == nil || !a.valid(w) {
		return false, false
	}
	ev := a.platform.NextEvent(w)
	if ev == nil {
		return false, false
	}
	if _, none := ev.(NoEvent); none {
		return false, false
	}
	if kr, ok := ev.(KeyReleased); ok {
		delete(a.keys, kr.Key)
	}
	if top := a.topModal(); top != nil && top != w && !a.IgnoreModal {
		if _, ok := ev.(WindowResized); !ok {
			return true, false
		}
	}
	if kp, ok := ev.(KeyPressed); ok {
		a.keys[kp.Key] = true
	}
	w.HandleEvent(ev)
	if _, ok := ev.(WindowClosed); ok && a.valid(w) {
		if err := a.DestroyWindow(w.id); err != nil {
			log.Printf("close: %v", err)
		}
	}
	return true, true
}

// activate marks w as the active window.
func (a *Application) activate(w *Window) {
	for _, o := range a.windows {
		o.active = o == w
	}
}

// DestroyWindow hides and releases a window. Destroying the main window
// stops the run loop.
func (a *Application) DestroyWindow(id string) error {
	w, ok := a.windows[id]
	if !ok {
		return fmt.Errorf("destroy %q: %w", id, ErrUnknownWindow)
	}
	if w.visible && a.platform != nil {
		a.platform.HideWindow(w)
	}
	w.visible = false
	if i := slices.Index(a.modal, w); i >= 0 {
		a.modal = slices.Delete(a.modal, i, i+1)
		if top := a.topModal(); top != nil {
			a.setEnabled(top, true)
		} else {
			for _, o := range a.windows {
				if o != w && !o.enabled {
					a.setEnabled(o, true)
				}
			}
		}
	}
	w.destroy()
	w.app = nil
	delete(a.windows, id)
	a.order = slices.DeleteFunc(a.order, func(s string) bool { return s == id })
	if id == MainWindow {
		a.stop()
	}
	return nil
}

// Start displays the main window and marks the application running. Run
// calls it; backends that drive Tick themselves call it once up front.
func (a *Application) Start() error {
	if _, ok := a.windows[MainWindow]; !ok {
		return ErrNoMainWindow
	}
	if err := a.DisplayWindow(MainWindow); err != nil {
		return err
	}
	a.running, a.stopped = true, false
	a.started = time.Now()
	return nil
}

func (a *Application) Running() bool { return a.running }

// Quit stops the run loop. No further events are dispatched.
func (a *Application) Quit() { a.stop() }

func (a *Application) stop() { a.running, a.stopped = false, true }

// Uptime is the time since Start.
func (a *Application) Uptime() time.Duration {
	if a.started.IsZero() {
		return 0
	}
	return time.Since(a.started)
}

// Tick runs one iteration of the loop: drain events per window, update,
// paint and present dirty windows, then destroy windows whose close was
// requested. Draining stops as soon as the application stops running. It
// returns the number of events dispatched.
func (a *Application) Tick() int {
	visible := make([]*Window, 0, len(a.order))
	for _, w := range a.Windows() {
		if w.visible {
			visible = append(visible, w)
		}
	}
	handled := 0
drain:
	for _, w := range visible {
		for i := 0; i < a.MaxEventsPerTick && a.valid(w); i++ {
			if a.stopped {
				break drain
			}
			taken, dispatched := a.processEvent(w)
			if !taken {
				break
			}
			if dispatched {
				handled++
			}
		}
	}
	if a.stopped {
		return handled
	}
	for _, w := range visible {
		if a.valid(w) {
			w.Update()
		}
	}
	for _, w := range visible {
		if !a.valid(w) {
			continue
		}
		if f, ok := w.Paint(); ok && a.platform != nil {
			a.platform.Present(w, f)
		}
	}
	for _, w := range visible {
		if a.valid(w) && w.closeRequested {
			if err := a.DestroyWindow(w.id); err != nil {
				log.Printf("tick: %v", err)
			}
		}
	}
	return handled
}

// Run ticks until the main window is destroyed, Quit is called or ctx is
// done. It returns the process exit status: 1 when there is no main
// window, 0 otherwise.
func (a *Application) Run(ctx context.Context) int {
	if err := a.Start(); err != nil {
		log.Printf("run: %v", err)
		return 1
	}
	for a.running {
		select {
		case <-ctx.Done():
			a.stop()
			return 0
		default:
		}
		if a.Tick() > 0 || !a.running {
			continue
		}
		t := time.NewTimer(a.IdleSleep)
		select {
		case <-ctx.Done():
			t.Stop()
			a.stop()
			return 0
		case <-t.C:
		}
	}
	return 0
}

// SetTheme replaces the theme of every window.
func (a *Application) SetTheme(th *Theme) {
	if th == nil {
		return
	}
	a.ctx.Theme = th
	for _, w := range a.Windows() {
		w.setTheme(a.ctx)
	}
}

// SetScale sets the pixels per UI unit of every window.
func (a *Application) SetScale(s float32) {
	for _, w := range a.Windows() {
		w.SetScale(s)
	}
}

func (a *Application) emit(ev UIEvent) {
	if a.Events != nil {
		a.Events.Emit(ev)
	}
}
