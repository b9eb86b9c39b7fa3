// Package backend runs eui applications on ebiten. Every eui window is a
// region of the single ebiten screen: the main window fills it and the
// others float above it with a title bar.
package backend

import (
	"log"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"euikit/eui"
)

// surface is the platform side of one displayed window.
type surface struct {
	w         *eui.Window
	title     string
	pos       eui.Point
	size      eui.Point
	main      bool
	enabled   bool
	minimized bool
	events    []eui.Event
	frame     eui.Frame
	presented bool
	restore   eui.Rect
}

func (s *surface) bounds() eui.Rect { return eui.RectAt(s.pos, s.size) }

// chrome is the title bar area above the content.
func (s *surface) chrome(custom bool) eui.Rect {
	if s.main || custom {
		return eui.Rect{}
	}
	return eui.Rect{X0: s.pos.X, Y0: s.pos.Y - titleBarHeight, X1: s.pos.X + s.size.X, Y1: s.pos.Y}
}

func (s *surface) closeBox(custom bool) eui.Rect {
	c := s.chrome(custom)
	if c.Empty() {
		return c
	}
	c.X0 = c.X1 - closeBoxWidth
	return c
}

// push queues an event. Input to a disabled window is dropped.
func (s *surface) push(ev eui.Event) {
	if !s.enabled {
		switch ev.(type) {
		case eui.MouseMoved, eui.MousePressed, eui.MouseWheel, eui.KeyPressed, eui.TextEntered:
			return
		}
	}
	s.events = append(s.events, ev)
}

func (s *surface) local(p eui.Point) eui.Point { return p.Sub(s.pos) }

// Backend implements eui.Platform on top of ebiten.
type Backend struct {
	app *eui.Application

	surfaces []*surface // bottom to top
	byWindow map[*eui.Window]*surface
	focused  *surface
	hover    *surface
	capture  *surface

	drag    *surface
	dragOff eui.Point

	pointer   *pointer
	lastPos   eui.Point
	screen    eui.Point
	clipboard string

	// CustomTitleBar hides the title bars; windows are moved by the
	// application instead.
	CustomTitleBar bool

	Textures *Textures

	keys     []ebiten.Key
	runes    []rune
	vertices []ebiten.Vertex
}

func New() *Backend {
	return &Backend{
		byWindow: map[*eui.Window]*surface{},
		pointer:  newPointer(),
		Textures: NewTextures(),
		lastPos:  eui.Pt(-1, -1),
	}
}

// Attach binds the backend to the application it drives.
func (b *Backend) Attach(app *eui.Application) {
	b.app = app
	b.CustomTitleBar = app.CustomTitleBar
}

func (b *Backend) surface(w *eui.Window) *surface { return b.byWindow[w] }

// Surfaces returns the displayed windows from bottom to top.
func (b *Backend) Surfaces() []*eui.Window {
	out := make([]*eui.Window, 0, len(b.surfaces))
	for _, s := range b.surfaces {
		out = append(out, s.w)
	}
	return out
}

func (b *Backend) NextEvent(w *eui.Window) eui.Event {
	s := b.surface(w)
	if s == nil || len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events[0] = nil
	s.events = s.events[1:]
	return ev
}

func (b *Backend) ShowWindow(w *eui.Window) {
	if s := b.surface(w); s != nil {
		s.minimized = false
		b.raise(s)
		return
	}
	s := &surface{w: w, title: w.Title(), pos: w.Position(), size: w.Size(), enabled: true}
	if w.ID() == eui.MainWindow {
		s.main = true
		s.pos = eui.Point{}
		if !b.screen.IsZero() {
			s.size = b.screen
		}
		s.push(eui.WindowResized{Size: s.size})
	} else if s.pos.IsZero() {
		n := float32(len(b.surfaces))
		s.pos = eui.Pt(cascadeStep*n, cascadeStep*n+titleBarHeight)
		s.push(eui.WindowMoved{Pos: s.pos})
	}
	b.byWindow[w] = s
	b.surfaces = append(b.surfaces, s)
	b.raise(s)
	if eui.DebugMode {
		log.Printf("backend: show %s at %v size %v", w.ID(), s.pos, s.size)
	}
}

func (b *Backend) HideWindow(w *eui.Window) {
	s := b.surface(w)
	if s == nil {
		return
	}
	delete(b.byWindow, w)
	b.surfaces = slices.DeleteFunc(b.surfaces, func(o *surface) bool { return o == s })
	for _, p := range []**surface{&b.focused, &b.hover, &b.capture, &b.drag} {
		if *p == s {
			*p = nil
		}
	}
	if b.focused == nil {
		for i := len(b.surfaces) - 1; i >= 0; i-- {
			if o := b.surfaces[i]; o.enabled && !o.minimized {
				b.focus(o)
				break
			}
		}
	}
}

func (b *Backend) SetEnabled(w *eui.Window, enabled bool) {
	if s := b.surface(w); s != nil {
		s.enabled = enabled
		if !enabled && b.capture == s {
			b.capture = nil
		}
	}
}

func (b *Backend) SetTitle(w *eui.Window, title string) {
	s := b.surface(w)
	if s == nil {
		return
	}
	s.title = title
	if s.main {
		ebiten.SetWindowTitle(title)
	}
}

func (b *Backend) Minimize(w *eui.Window) {
	s := b.surface(w)
	if s == nil {
		return
	}
	if s.main {
		ebiten.MinimizeWindow()
	} else {
		s.minimized = true
		if b.focused == s {
			b.focused = nil
			s.push(eui.WindowLostFocus{})
		}
	}
	s.push(eui.WindowMinimized{})
}

func (b *Backend) Maximize(w *eui.Window) {
	s := b.surface(w)
	if s == nil {
		return
	}
	if s.main {
		ebiten.MaximizeWindow()
		s.push(eui.WindowMaximized{})
		return
	}
	s.restore = s.bounds()
	top := float32(0)
	if !b.CustomTitleBar {
		top = titleBarHeight
	}
	s.minimized = false
	b.move(s, eui.Pt(0, top))
	b.resize(s, b.screen.Sub(eui.Pt(0, top)))
	s.push(eui.WindowMaximized{})
}

func (b *Backend) SetPosition(w *eui.Window, pos eui.Point) {
	if s := b.surface(w); s != nil && !s.main {
		b.move(s, pos)
	}
}

func (b *Backend) SetSize(w *eui.Window, size eui.Point) {
	s := b.surface(w)
	if s == nil {
		return
	}
	if s.main {
		ebiten.SetWindowSize(int(size.X), int(size.Y))
		return
	}
	b.resize(s, size)
}

func (b *Backend) move(s *surface, pos eui.Point) {
	if pos == s.pos {
		return
	}
	s.pos = pos
	s.push(eui.WindowMoved{Pos: pos})
}

func (b *Backend) resize(s *surface, size eui.Point) {
	size = size.Max(eui.Pt(1, 1))
	if size == s.size {
		return
	}
	s.size = size
	s.push(eui.WindowResized{Size: size})
}

func (b *Backend) Focus(w *eui.Window) {
	if s := b.surface(w); s != nil {
		s.minimized = false
		b.raise(s)
	}
}

func (b *Backend) SetCursor(w *eui.Window, c eui.Cursor) {
	if b.hover != nil && b.hover.w != w {
		return
	}
	ebiten.SetCursorShape(cursorShapes[c])
}

// Clipboard is process local; ebiten has no system clipboard access.
func (b *Backend) Clipboard() string     { return b.clipboard }
func (b *Backend) SetClipboard(s string) { b.clipboard = s }

func (b *Backend) Present(w *eui.Window, f eui.Frame) {
	if s := b.surface(w); s != nil {
		s.frame = f
		s.presented = true
	}
}

// raise moves s to the top and gives it focus.
func (b *Backend) raise(s *surface) {
	if i := slices.Index(b.surfaces, s); i >= 0 && !s.main {
		b.surfaces = append(slices.Delete(b.surfaces, i, i+1), s)
	}
	b.focus(s)
}

func (b *Backend) focus(s *surface) {
	if b.focused == s {
		return
	}
	if b.focused != nil {
		b.focused.push(eui.WindowLostFocus{})
	}
	b.focused = s
	if s != nil {
		s.push(eui.WindowGainedFocus{})
	}
}

// surfaceAt finds the topmost window under p, title bar included.
func (b *Backend) surfaceAt(p eui.Point) *surface {
	for i := len(b.surfaces) - 1; i >= 0; i-- {
		s := b.surfaces[i]
		if s.minimized {
			continue
		}
		if p.In(s.bounds()) || p.In(s.chrome(b.CustomTitleBar)) {
			return s
		}
	}
	return nil
}

// setScreenSize follows the ebiten layout size; the main window always
// fills the screen.
func (b *Backend) setScreenSize(size eui.Point) {
	if size == b.screen {
		return
	}
	b.screen = size
	for _, s := range b.surfaces {
		if s.main {
			b.resize(s, size)
		}
	}
}

// Poll turns this tick's ebiten input into window events.
func (b *Backend) Poll() {
	pos := b.pointer.position()

	if b.drag != nil {
		if b.pointer.pressed() {
			b.move(b.drag, pos.Sub(b.dragOff))
		} else {
			b.drag = nil
		}
	}

	target := b.capture
	if target == nil {
		target = b.surfaceAt(pos)
	}
	if pos != b.lastPos {
		if b.hover != nil && b.hover != target {
			b.hover.push(eui.MouseMoved{Pos: eui.Pt(-1, -1)})
		}
		if target != nil {
			target.push(eui.MouseMoved{Pos: target.local(pos)})
		}
		b.hover = target
		b.lastPos = pos
	}

	for _, mb := range mouseButtons {
		if b.pointer.justPressed(mb.eb) {
			b.press(pos, mb.btn)
		}
		if b.pointer.justReleased(mb.eb) {
			t := b.capture
			if t == nil {
				t = b.surfaceAt(pos)
			}
			if t != nil {
				t.push(eui.MouseReleased{Pos: t.local(pos), Button: mb.btn})
			}
			b.capture = nil
		}
	}

	if d := b.pointer.wheel(); !d.IsZero() && target != nil {
		target.push(eui.MouseWheel{Delta: d})
	}

	mods := modifiers()
	b.keys = inpututil.AppendJustPressedKeys(b.keys[:0])
	for _, k := range b.keys {
		if ek, ok := translateKey(k); ok && b.focused != nil {
			b.focused.push(eui.KeyPressed{Key: ek, Mods: mods})
		}
	}
	b.keys = inpututil.AppendJustReleasedKeys(b.keys[:0])
	for _, k := range b.keys {
		if ek, ok := translateKey(k); ok && b.focused != nil {
			b.focused.push(eui.KeyReleased{Key: ek, Mods: mods})
		}
	}
	b.runes = ebiten.AppendInputChars(b.runes[:0])
	if len(b.runes) > 0 && b.focused != nil {
		b.focused.push(eui.TextEntered{Text: string(b.runes)})
	}

	if ebiten.IsWindowBeingClosed() {
		for _, s := range b.surfaces {
			if s.main {
				s.push(eui.WindowClosed{})
			}
		}
	}
}

func (b *Backend) press(pos eui.Point, btn eui.MouseButton) {
	s := b.surfaceAt(pos)
	if s == nil || !s.enabled {
		return
	}
	b.raise(s)
	if pos.In(s.chrome(b.CustomTitleBar)) {
		if btn != eui.MouseLeft {
			return
		}
		if pos.In(s.closeBox(b.CustomTitleBar)) {
			s.push(eui.WindowClosed{})
			return
		}
		b.drag = s
		b.dragOff = pos.Sub(s.pos)
		return
	}
	b.capture = s
	s.push(eui.MousePressed{Pos: s.local(pos), Button: btn})
}
