package eui

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func drainEvents(h *EventHandler) []UIEvent {
	var out []UIEvent
	for {
		select {
		case ev := <-h.Events:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func widgetWindow(t *testing.T, cs ...Control) *Window {
	t.Helper()
	w := NewWindow("Main", NewContext(nil))
	w.Resize(Pt(400, 300))
	w.SetRoot(NewPanel())
	for _, c := range cs {
		w.Root().InsertControl(c)
	}
	settle(t, w)
	return w
}

func TestButtonClick(t *testing.T) {
	btn := NewButton("Go")
	btn.SetID("go")
	var clicks int
	btn.OnClick = func() { clicks++ }
	w := widgetWindow(t, btn)

	click(w, center(btn))
	evs := drainEvents(btn.Handler())
	if len(evs) != 1 || evs[0].Type != EventClick || evs[0].ID() != "go" || clicks != 1 {
		t.Fatalf("events %v, clicks %d", evs, clicks)
	}
	if w.Focus() != Control(btn) || btn.Pressed() {
		t.Fatalf("focus %v pressed %v", w.Focus(), btn.Pressed())
	}

	w.HandleEvent(KeyPressed{Key: KeyEnter})
	if clicks != 2 {
		t.Fatalf("Enter did not click")
	}
}

func TestButtonReleaseOutsideDoesNotClick(t *testing.T) {
	btn := NewButton("Go")
	w := widgetWindow(t, btn)
	var clicks int
	btn.OnClick = func() { clicks++ }
	w.HandleEvent(MousePressed{Pos: center(btn), Button: MouseLeft})
	w.HandleEvent(MouseReleased{Pos: Pt(390, 290), Button: MouseLeft})
	if clicks != 0 || btn.Pressed() {
		t.Fatalf("clicks %d pressed %v", clicks, btn.Pressed())
	}
}

func TestButtonSizesToLabel(t *testing.T) {
	btn := NewButton("Go")
	widgetWindow(t, btn)
	if got := btn.Size(); got != Pt(14+8+8, 13+8+8) {
		t.Fatalf("size %v", got)
	}
	if got := btn.Label().Position(); got != Pt(4, 4) {
		t.Fatalf("label at %v", got)
	}
}

func TestCheckboxToggle(t *testing.T) {
	cb := NewCheckbox("Dark")
	w := widgetWindow(t, cb)
	click(w, center(cb))
	click(w, center(cb))
	w.HandleEvent(KeyPressed{Key: KeySpace})

	var got []bool
	for _, ev := range drainEvents(cb.Handler()) {
		if ev.Type != EventCheckboxChanged {
			t.Fatalf("unexpected event %v", ev.Type)
		}
		got = append(got, ev.Checked)
	}
	if diff := cmp.Diff([]bool{true, false, true}, got); diff != "" {
		t.Fatalf("states (-want +got):\n%s", diff)
	}
	cb.SetChecked(false)
	if cb.Checked() || len(drainEvents(cb.Handler())) != 0 {
		t.Fatalf("SetChecked emitted or failed")
	}
}

func TestTextInputEditing(t *testing.T) {
	in := NewTextInput()
	w := widgetWindow(t, in)
	click(w, center(in))
	if w.Focus() != Control(in) {
		t.Fatalf("input not focused by click")
	}

	w.HandleEvent(TextEntered{Text: "héllo"})
	w.HandleEvent(KeyPressed{Key: KeyBackspace})
	w.HandleEvent(KeyPressed{Key: KeyHome})
	w.HandleEvent(TextEntered{Text: ">"})
	w.HandleEvent(KeyPressed{Key: KeyEnd})
	w.HandleEvent(KeyPressed{Key: KeyLeft})
	w.HandleEvent(KeyPressed{Key: KeyDelete})
	if got := in.Text(); got != ">hél" {
		t.Fatalf("text %q", got)
	}
	if in.Caret() != 4 {
		t.Fatalf("caret %d", in.Caret())
	}
	if in.OnText("\x01\x02") {
		t.Fatalf("control characters accepted")
	}

	drainEvents(in.Handler())
	w.HandleEvent(KeyPressed{Key: KeyEnter})
	evs := drainEvents(in.Handler())
	if len(evs) != 1 || evs[0].Type != EventInputSubmit || evs[0].Text != ">hél" {
		t.Fatalf("submit events %v", evs)
	}
}

func TestTextInputTabExpands(t *testing.T) {
	in := NewTextInput()
	w := widgetWindow(t, in)
	w.Context().TabSize = 2
	w.SetFocus(in)
	w.HandleEvent(KeyPressed{Key: KeyTab})
	if got := in.Text(); got != "  " {
		t.Fatalf("text %q", got)
	}
}

func TestTextInputClipboard(t *testing.T) {
	in := NewTextInput()
	w := widgetWindow(t, in)
	var clip string
	w.hooks.clipboard = func() string { return clip }
	w.hooks.setClipboard = func(s string) { clip = s }
	w.SetFocus(in)

	in.SetText("abc")
	w.HandleEvent(KeyPressed{Key: KeyC, Mods: ModControl})
	if clip != "abc" {
		t.Fatalf("copy gave %q", clip)
	}
	w.HandleEvent(KeyPressed{Key: KeyX, Mods: ModControl})
	if clip != "abc" || in.Text() != "" {
		t.Fatalf("cut: clip %q text %q", clip, in.Text())
	}
	clip = "one\ntwo"
	w.HandleEvent(KeyPressed{Key: KeyV, Mods: ModControl})
	if got := in.Text(); got != "one two" {
		t.Fatalf("paste gave %q", got)
	}
	w.HandleEvent(KeyPressed{Key: KeyV})
	if got := in.Text(); got != "one two" {
		t.Fatalf("plain V pasted: %q", got)
	}
}

func TestListSelect(t *testing.T) {
	l := NewList()
	l.SetItems([]string{"a", "b", "c"})
	if err := l.Select(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Select(3) error = %v", err)
	}
	if err := l.Select(-2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("Select(-2) error = %v", err)
	}
	if err := l.Select(1); err != nil || l.Selected() != 1 {
		t.Fatalf("Select(1): %v, selected %d", err, l.Selected())
	}
	if s, ok := l.SelectedItem(); !ok || s != "b" {
		t.Fatalf("SelectedItem = %q, %v", s, ok)
	}
	if err := l.Select(-1); err != nil || l.Selected() != -1 {
		t.Fatalf("Select(-1): %v", err)
	}
	if len(drainEvents(l.Handler())) != 0 {
		t.Fatalf("Select emitted events")
	}
}

func TestListPickByMouseAndKeys(t *testing.T) {
	l := NewList()
	l.SetItems([]string{"alpha", "beta", "gamma"})
	w := widgetWindow(t, l)
	if got := l.Size(); got != Pt(5*7+8, 3*17) {
		t.Fatalf("size %v", got)
	}

	click(w, Pt(5, 20))
	w.HandleEvent(KeyPressed{Key: KeyDown})
	w.HandleEvent(KeyPressed{Key: KeyDown})
	w.HandleEvent(KeyPressed{Key: KeyHome})

	var got []int
	for _, ev := range drainEvents(l.Handler()) {
		got = append(got, ev.Index)
	}
	if diff := cmp.Diff([]int{1, 2, 2, 0}, got); diff != "" {
		t.Fatalf("selections (-want +got):\n%s", diff)
	}
	if l.RowAt(Pt(0, 3*17+1)) != -1 {
		t.Fatalf("row below the last item")
	}
}

func TestMenuBarSelect(t *testing.T) {
	mb := NewMenuBar()
	file := mb.AddMenu("File",
		MenuItem{Text: "Open", ID: "open"},
		MenuItem{Separator: true},
		MenuItem{Text: "Quit", ID: "quit"},
	)
	mb.AddMenu("Help", MenuItem{Text: "About", ID: "about"})
	w := widgetWindow(t, mb)
	var all []string
	w.Events = &EventHandler{Handle: func(ev UIEvent) { all = append(all, ev.Type.String()+" "+ev.ID()) }}

	click(w, center(file.title))
	if !file.Open() {
		t.Fatalf("menu did not open")
	}
	settle(t, w)
	quit := w.Find("quit")
	if quit == nil {
		t.Fatalf("menu item not found")
	}
	if got, want := quit.AsBase().ScreenPosition().Y, file.title.ScreenBounds().Y1; got <= want {
		t.Fatalf("menu item at y %v, title bottom %v", got, want)
	}
	click(w, center(quit))

	if file.Open() || len(w.Popups()) != 0 {
		t.Fatalf("menu still open after selection")
	}
	evs := drainEvents(mb.Handler())
	if len(evs) != 1 || evs[0].Type != EventMenuSelected || evs[0].ID() != "quit" || evs[0].Text != "Quit" {
		t.Fatalf("menu events %v", evs)
	}
	if diff := cmp.Diff([]string{"click ", "click quit", "menu quit"}, all); diff != "" {
		t.Fatalf("window events (-want +got):\n%s", diff)
	}
}

func TestMenuClosesOnOutsidePress(t *testing.T) {
	mb := NewMenuBar()
	file := mb.AddMenu("File", MenuItem{Text: "Open", ID: "open"})
	w := widgetWindow(t, mb)
	click(w, center(file.title))
	settle(t, w)
	w.HandleEvent(MousePressed{Pos: Pt(390, 290), Button: MouseLeft})
	if file.Open() {
		t.Fatalf("menu open after outside press")
	}
}

func TestMenuSaveLoad(t *testing.T) {
	mb := NewMenuBar()
	mb.AddMenu("File", MenuItem{Text: "Open", ID: "open"}, MenuItem{Separator: true})
	saved := SaveControl(mb)

	c, err := NewRegistry().Build(NewContext(nil), saved)
	if err != nil {
		t.Fatal(err)
	}
	got := c.(*MenuBar).Menus()
	want := []MenuItem{{Text: "Open", ID: "open"}, {Separator: true}}
	if len(got) != 1 || got[0].Text != "File" {
		t.Fatalf("menus %v", got)
	}
	if diff := cmp.Diff(want, got[0].Items); diff != "" {
		t.Fatalf("items (-want +got):\n%s", diff)
	}
	if e := c.AsBase().Expand(); e != ExpandWidth {
		t.Fatalf("menu bar expand %v", e)
	}
}

func TestComboBoxSelect(t *testing.T) {
	combo := NewComboBox()
	combo.SetItems([]string{"Red", "Green", "Blue"})
	w := widgetWindow(t, combo)

	click(w, center(combo.Arrow()))
	if !combo.Open() || len(w.Popups()) != 1 {
		t.Fatalf("drop-down did not open")
	}
	settle(t, w)
	top := combo.list.ScreenPosition()
	if want := combo.ScreenBounds().Y1; top.Y != want {
		t.Fatalf("drop-down at y %v, want %v", top.Y, want)
	}
	click(w, top.Add(Pt(5, 17+8)))

	if combo.Open() || len(w.Popups()) != 0 {
		t.Fatalf("drop-down still open after selection")
	}
	if combo.Value() != "Green" || combo.Selected() != 1 {
		t.Fatalf("value %q selected %d", combo.Value(), combo.Selected())
	}
	evs := drainEvents(combo.Handler())
	if len(evs) != 1 || evs[0].Type != EventDropdownSelected || evs[0].Index != 1 || evs[0].Text != "Green" {
		t.Fatalf("combo events %v", evs)
	}
	if w.Focus() != nil {
		t.Fatalf("focus left on %v", w.Focus())
	}
}

func TestComboBoxClosesOnOutsidePress(t *testing.T) {
	combo := NewComboBox()
	combo.SetItems([]string{"Red", "Green"})
	w := widgetWindow(t, combo)
	combo.Toggle()
	settle(t, w)
	if !combo.Open() {
		t.Fatalf("drop-down did not open")
	}
	w.HandleEvent(MousePressed{Pos: Pt(390, 290), Button: MouseLeft})
	if combo.Open() {
		t.Fatalf("drop-down open after outside press")
	}
	if len(drainEvents(combo.Handler())) != 0 {
		t.Fatalf("outside press selected an item")
	}

	combo.Toggle()
	combo.Toggle()
	if combo.Open() {
		t.Fatalf("second toggle left the drop-down open")
	}
}

func TestComboBoxLoad(t *testing.T) {
	c, err := NewRegistry().Build(NewContext(nil), Props{
		"Type":     "ComboBox",
		"Items":    []any{"one", "two"},
		"Selected": 1,
	})
	if err != nil {
		t.Fatal(err)
	}
	combo := c.(*ComboBox)
	if combo.Value() != "two" {
		t.Fatalf("value %q", combo.Value())
	}
	saved := SaveControl(combo)
	if diff := cmp.Diff([]any{"one", "two"}, saved["Items"]); diff != "" {
		t.Fatalf("items (-want +got):\n%s", diff)
	}
	if saved["Selected"] != 1 {
		t.Fatalf("selected %v", saved["Selected"])
	}
	if _, err := NewRegistry().Build(NewContext(nil), Props{"Type": "ComboBox", "Items": []any{"one"}, "Selected": 3}); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestImageSizesToTexture(t *testing.T) {
	tex := &fakeTextures{}
	ctx := NewContext(tex)
	w := NewWindow("Main", ctx)
	w.SetRoot(NewPanel())
	img := NewImage("logo.png")
	again := NewImage("logo.png")
	w.Root().InsertControl(img)
	w.Root().InsertControl(again)
	settle(t, w)

	if got := img.Size(); got != Pt(16, 8) {
		t.Fatalf("size %v", got)
	}
	if img.Texture() != again.Texture() || tex.loads["logo.png"] != 1 {
		t.Fatalf("texture loaded %d times", tex.loads["logo.png"])
	}
	missing := NewImage("")
	missing.SetIcon("nope")
	w.Root().InsertControl(missing)
	if missing.Texture().Valid() {
		t.Fatalf("unknown icon resolved")
	}
}

func TestTextureCacheRemembersFailures(t *testing.T) {
	tc := NewTextureCache(nil)
	if tc.Get("a.png").Valid() {
		t.Fatalf("loaded without a provider")
	}
	if !errors.Is(tc.Err("a.png"), ErrNoTextureProvider) {
		t.Fatalf("Err = %v", tc.Err("a.png"))
	}
}

func TestIconsLoad(t *testing.T) {
	tex := &fakeTextures{}
	tc := NewTextureCache(tex)
	ic := NewIcons()
	err := ic.Load(map[string]IconDescription{
		"open":  {Path: "open.png"},
		"save":  {Path: "save.svg"},
		"empty": {},
	}, tc)
	if !errors.Is(err, ErrUnsupportedIcon) {
		t.Fatalf("err = %v", err)
	}
	if _, ok := ic.Get("open"); !ok {
		t.Fatalf("bitmap icon missing")
	}
	if _, ok := ic.Get("save"); ok {
		t.Fatalf("svg icon loaded")
	}
	if len(ic.Descriptions()) != 3 {
		t.Fatalf("descriptions %v", ic.Descriptions())
	}
}
