package eui

import (
	"image"
	"testing"
)

// leaf is a control with a fixed natural size that records its hooks.
type leaf struct {
	Base

	name    string
	log     *[]string
	consume bool
	resized func()
}

func newLeaf(name string, size Point, log *[]string) *leaf {
	p := &leaf{name: name, log: log, consume: true}
	p.Init(p)
	p.SetID(name)
	p.SetSize(size)
	return p
}

func (p *leaf) TypeName() string { return "Leaf" }

func (p *leaf) record(s string) {
	if p.log != nil {
		*p.log = append(*p.log, p.name+":"+s)
	}
}

func (p *leaf) OnMousePressed(pos Point, btn MouseButton) bool {
	p.record("press")
	return p.consume
}

func (p *leaf) OnMouseReleased(pos Point, btn MouseButton) bool {
	p.record("release")
	return p.consume
}

func (p *leaf) OnKeyPressed(k Key, mods Modifiers) bool {
	p.record("key " + k.String())
	return p.consume
}

func (p *leaf) OnResized() {
	if p.resized != nil {
		p.resized()
	}
}

func (p *leaf) OnMouseEnter() { p.record("enter") }
func (p *leaf) OnMouseLeave() { p.record("leave") }
func (p *leaf) OnFocused()    { p.record("focused") }
func (p *leaf) OnUnfocused()  { p.record("unfocused") }

// newTestWindow returns an undisplayed window of the given pixel size with
// a Panel root, so children keep the positions they are given.
func newTestWindow(t *testing.T, size Point) *Window {
	t.Helper()
	w := NewWindow("Test", NewContext(nil))
	w.Resize(size)
	w.SetRoot(NewPanel())
	return w
}

// settle runs update and paint until the window is clean.
func settle(t *testing.T, w *Window) {
	t.Helper()
	for i := 0; i < 4; i++ {
		w.Update()
		w.Paint()
		if !w.Dirty() && !w.needsLayout {
			return
		}
	}
	t.Fatalf("window %s did not settle", w.id)
}

func only(log []string, want ...string) []string {
	keep := map[string]bool{}
	for _, w := range want {
		keep[w] = true
	}
	var out []string
	for _, l := range log {
		for i := len(l) - 1; i >= 0; i-- {
			if l[i] == ':' {
				if keep[l[i+1:]] {
					out = append(out, l)
				}
				break
			}
		}
	}
	return out
}

// fakePlatform queues events per window and records what the application
// asks of it.
type fakePlatform struct {
	queues    map[*Window][]Event
	shown     []*Window
	enabled   map[*Window]bool
	presented map[*Window]int
	titles    map[*Window]string
	clipboard string
	cursor    Cursor

	onHide func(w *Window)
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		queues:    map[*Window][]Event{},
		enabled:   map[*Window]bool{},
		presented: map[*Window]int{},
		titles:    map[*Window]string{},
	}
}

func (f *fakePlatform) push(w *Window, evs ...Event) {
	f.queues[w] = append(f.queues[w], evs...)
}

func (f *fakePlatform) isShown(w *Window) bool {
	for _, s := range f.shown {
		if s == w {
			return true
		}
	}
	return false
}

func (f *fakePlatform) NextEvent(w *Window) Event {
	q := f.queues[w]
	if len(q) == 0 {
		return nil
	}
	f.queues[w] = q[1:]
	return q[0]
}

func (f *fakePlatform) ShowWindow(w *Window) {
	f.shown = append(f.shown, w)
	f.enabled[w] = true
}

func (f *fakePlatform) HideWindow(w *Window) {
	for i, s := range f.shown {
		if s == w {
			f.shown = append(f.shown[:i], f.shown[i+1:]...)
			break
		}
	}
	if f.onHide != nil {
		f.onHide(w)
	}
}

func (f *fakePlatform) SetEnabled(w *Window, enabled bool) { f.enabled[w] = enabled }
func (f *fakePlatform) SetTitle(w *Window, title string)   { f.titles[w] = title }
func (f *fakePlatform) Minimize(w *Window)                 { f.push(w, WindowMinimized{}) }
func (f *fakePlatform) Maximize(w *Window)                 { f.push(w, WindowMaximized{}) }
func (f *fakePlatform) SetPosition(w *Window, pos Point)   { f.push(w, WindowMoved{Pos: pos}) }
func (f *fakePlatform) SetSize(w *Window, size Point)      { f.push(w, WindowResized{Size: size}) }
func (f *fakePlatform) Focus(w *Window)                    { f.push(w, WindowGainedFocus{}) }
func (f *fakePlatform) SetCursor(w *Window, c Cursor)      { f.cursor = c }
func (f *fakePlatform) Clipboard() string                  { return f.clipboard }
func (f *fakePlatform) SetClipboard(s string)              { f.clipboard = s }
func (f *fakePlatform) Present(w *Window, fr Frame)        { f.presented[w]++ }

// fakeTextures hands out sequential ids and counts loads.
type fakeTextures struct {
	next  TextureID
	loads map[string]int
}

func (f *fakeTextures) LoadTexture(path string) (Texture, error) {
	if f.loads == nil {
		f.loads = map[string]int{}
	}
	f.loads[path]++
	f.next++
	return Texture{ID: f.next, Size: Pt(16, 8)}, nil
}

func (f *fakeTextures) NewTexture(img image.Image) (Texture, error) {
	f.next++
	b := img.Bounds()
	return Texture{ID: f.next, Size: Pt(float32(b.Dx()), float32(b.Dy()))}, nil
}

// click presses and releases the left button at p, in window pixels.
func click(w *Window, p Point) {
	w.HandleEvent(MousePressed{Pos: p, Button: MouseLeft})
	w.HandleEvent(MouseReleased{Pos: p, Button: MouseLeft})
}

func center(c Control) Point { return c.AsBase().ScreenBounds().Center() }
