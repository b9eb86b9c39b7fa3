package eui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// newTestApp returns an application with a displayed Main window holding a
// 20x20 leaf at the origin.
func newTestApp(t *testing.T, log *[]string) (*Application, *fakePlatform, *leaf) {
	t.Helper()
	fp := newFakePlatform()
	app := NewApplication(fp, nil)
	main := app.NewWindow(MainWindow)
	main.SetRoot(NewPanel())
	a := newLeaf("a", Pt(20, 20), log)
	main.Root().InsertControl(a)
	if err := app.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	app.Tick()
	return app, fp, a
}

func TestStartNeedsMainWindow(t *testing.T) {
	app := NewApplication(newFakePlatform(), nil)
	app.NewWindow("Other")
	if err := app.Start(); !errors.Is(err, ErrNoMainWindow) {
		t.Fatalf("Start error = %v, want ErrNoMainWindow", err)
	}
	if got := app.Run(context.Background()); got != 1 {
		t.Fatalf("Run = %d, want 1", got)
	}
}

func TestUnknownWindowErrors(t *testing.T) {
	app := NewApplication(newFakePlatform(), nil)
	if err := app.DisplayWindow("nope"); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("DisplayWindow error = %v", err)
	}
	if err := app.DestroyWindow("nope"); !errors.Is(err, ErrUnknownWindow) {
		t.Errorf("DestroyWindow error = %v", err)
	}
}

func TestNewWindowReturnsExisting(t *testing.T) {
	app := NewApplication(newFakePlatform(), nil)
	w := app.NewWindow("Tools")
	if app.NewWindow("Tools") != w || len(app.Windows()) != 1 {
		t.Fatalf("duplicate window created")
	}
	if w.Visible() {
		t.Fatalf("new window visible")
	}
}

func TestDisplayWindowShowsAndTitles(t *testing.T) {
	app, fp, _ := newTestApp(t, nil)
	main := app.Window(MainWindow)
	if !fp.isShown(main) || !main.Visible() {
		t.Fatalf("main not shown")
	}
	if fp.titles[main] != "Main" {
		t.Fatalf("title = %q", fp.titles[main])
	}
	main.SetTitle("Editor")
	if fp.titles[main] != "Editor" {
		t.Fatalf("SetTitle not forwarded: %q", fp.titles[main])
	}
	if fp.presented[main] != 1 {
		t.Fatalf("presented %d frames, want 1", fp.presented[main])
	}
	app.Tick()
	if fp.presented[main] != 1 {
		t.Fatalf("clean window presented again")
	}
}

func TestModalWindowBlocksOthers(t *testing.T) {
	var log []string
	app, fp, a := newTestApp(t, &log)
	main := app.Window(MainWindow)
	dlg := app.NewWindow("Dialog")
	dlg.Modal = true
	if err := app.DisplayWindow("Dialog"); err != nil {
		t.Fatal(err)
	}
	if fp.enabled[main] || main.Enabled() {
		t.Fatalf("main still enabled under a modal window")
	}

	fp.push(main, MouseMoved{Pos: Pt(5, 5)}, WindowResized{Size: Pt(300, 200)})
	app.Tick()
	if a.Hovered() || len(only(log, "enter")) != 0 {
		t.Fatalf("hover changed below a modal window: %v", log)
	}
	if main.Size() != Pt(300, 200) {
		t.Fatalf("resize dropped below a modal window: %v", main.Size())
	}

	if err := app.DestroyWindow("Dialog"); err != nil {
		t.Fatal(err)
	}
	if !fp.enabled[main] || !main.Enabled() {
		t.Fatalf("main not re-enabled")
	}
	fp.push(main, MouseMoved{Pos: Pt(6, 6)})
	app.Tick()
	if !a.Hovered() {
		t.Fatalf("hover not delivered after the modal closed")
	}
}

func TestModalWindowClearsHover(t *testing.T) {
	var log []string
	app, fp, a := newTestApp(t, &log)
	fp.push(app.Window(MainWindow), MouseMoved{Pos: Pt(5, 5)})
	app.Tick()
	if !a.Hovered() {
		t.Fatalf("no hover before the modal")
	}
	app.NewWindow("Dialog").Modal = true
	if err := app.DisplayWindow("Dialog"); err != nil {
		t.Fatal(err)
	}
	if a.Hovered() {
		t.Fatalf("hover kept when a modal window opened")
	}
	if diff := cmp.Diff([]string{"a:enter", "a:leave"}, only(log, "enter", "leave")); diff != "" {
		t.Fatalf("hover (-want +got):\n%s", diff)
	}
}

func TestNestedModalsReenableInOrder(t *testing.T) {
	app, fp, _ := newTestApp(t, nil)
	first := app.NewWindow("First")
	first.Modal = true
	second := app.NewWindow("Second")
	second.Modal = true
	for _, id := range []string{"First", "Second"} {
		if err := app.DisplayWindow(id); err != nil {
			t.Fatal(err)
		}
	}
	if fp.enabled[first] {
		t.Fatalf("first modal enabled under the second")
	}
	if err := app.DestroyWindow("Second"); err != nil {
		t.Fatal(err)
	}
	if !fp.enabled[first] || fp.enabled[app.Window(MainWindow)] {
		t.Fatalf("enabled: first=%v main=%v", fp.enabled[first], fp.enabled[app.Window(MainWindow)])
	}
}

func TestKeyStateTracksReleasesBelowModal(t *testing.T) {
	app, fp, _ := newTestApp(t, nil)
	main := app.Window(MainWindow)
	fp.push(main, KeyPressed{Key: KeyA})
	app.Tick()
	if !app.KeyDown(KeyA) {
		t.Fatalf("key press not tracked")
	}
	app.NewWindow("Dialog").Modal = true
	if err := app.DisplayWindow("Dialog"); err != nil {
		t.Fatal(err)
	}
	fp.push(main, KeyReleased{Key: KeyA}, KeyPressed{Key: KeyB})
	app.Tick()
	if app.KeyDown(KeyA) {
		t.Fatalf("release below a modal window not tracked")
	}
	if app.KeyDown(KeyB) {
		t.Fatalf("press below a modal window tracked")
	}
}

func TestClosingMainStopsRun(t *testing.T) {
	fp := newFakePlatform()
	app := NewApplication(fp, nil)
	main := app.NewWindow(MainWindow)
	other := app.NewWindow("Other")
	if err := app.DisplayWindow("Other"); err != nil {
		t.Fatal(err)
	}
	fp.onHide = func(w *Window) {
		if w == main {
			fp.push(other, KeyPressed{Key: KeyA})
		}
	}
	fp.push(main, WindowClosed{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if got := app.Run(ctx); got != 0 {
		t.Fatalf("Run = %d, want 0", got)
	}
	if ctx.Err() != nil {
		t.Fatalf("Run ended by timeout")
	}
	if app.Running() || app.Window(MainWindow) != nil {
		t.Fatalf("main window survived")
	}
	if len(fp.queues[other]) != 1 || app.KeyDown(KeyA) {
		t.Fatalf("events processed after main closed: queue %v", fp.queues[other])
	}
}

func TestEventsAfterMainClosedAreDropped(t *testing.T) {
	fp := newFakePlatform()
	app := NewApplication(fp, nil)
	main := app.NewWindow(MainWindow)
	other := app.NewWindow("Other")
	if err := app.DisplayWindow("Other"); err != nil {
		t.Fatal(err)
	}
	fp.push(main, WindowClosed{}, KeyPressed{Key: KeyQ})
	fp.push(other, KeyPressed{Key: KeyB})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if got := app.Run(ctx); got != 0 || ctx.Err() != nil {
		t.Fatalf("Run = %d, ctx err %v", got, ctx.Err())
	}
	if app.Running() || app.Window(MainWindow) != nil {
		t.Fatalf("main window survived")
	}
	if app.KeyDown(KeyQ) || app.KeyDown(KeyB) {
		t.Fatalf("key events processed after main closed")
	}
	if len(fp.queues[other]) != 1 {
		t.Fatalf("other window queue drained: %v", fp.queues[other])
	}
}

func TestClosedEventDestroysWindowImmediately(t *testing.T) {
	app, fp, _ := newTestApp(t, nil)
	tools := app.NewWindow("Tools")
	if err := app.DisplayWindow("Tools"); err != nil {
		t.Fatal(err)
	}
	fp.push(tools, WindowClosed{})
	if !app.ProcessEvent(tools) {
		t.Fatalf("close event not dispatched")
	}
	if app.Window("Tools") != nil || fp.isShown(tools) {
		t.Fatalf("closed window still alive")
	}
	if !app.Running() {
		t.Fatalf("closing a secondary window stopped the app")
	}
}

func TestModalWindowPassesOnlyResizes(t *testing.T) {
	var log []string
	app, fp, a := newTestApp(t, &log)
	main := app.Window(MainWindow)
	app.NewWindow("Dialog").Modal = true
	if err := app.DisplayWindow("Dialog"); err != nil {
		t.Fatal(err)
	}
	app.Tick()

	fp.push(main,
		MouseMoved{Pos: Pt(5, 5)},
		MouseMoved{Pos: Pt(6, 6)},
		WindowMoved{Pos: Pt(7, 7)},
		WindowClosed{},
	)
	if got := app.Tick(); got != 0 {
		t.Fatalf("Tick dispatched %d events below a modal window, want 0", got)
	}
	if len(fp.queues[main]) != 0 {
		t.Fatalf("%d events left queued", len(fp.queues[main]))
	}
	if main.Position() == Pt(7, 7) {
		t.Fatalf("move reached a window below a modal window")
	}
	if a.Hovered() || app.Window(MainWindow) == nil || !app.Running() {
		t.Fatalf("blocked events took effect: hovered=%v running=%v", a.Hovered(), app.Running())
	}

	fp.push(main, WindowResized{Size: Pt(320, 200)})
	if got := app.Tick(); got != 1 || main.Size() != Pt(320, 200) {
		t.Fatalf("resize: dispatched %d, size %v", got, main.Size())
	}
}

func TestCloseDestroysAtEndOfTick(t *testing.T) {
	app, fp, _ := newTestApp(t, nil)
	tools := app.NewWindow("Tools")
	if err := app.DisplayWindow("Tools"); err != nil {
		t.Fatal(err)
	}
	tools.Close()
	if app.Window("Tools") == nil {
		t.Fatalf("Close destroyed the window immediately")
	}
	app.Tick()
	if app.Window("Tools") != nil || fp.isShown(tools) {
		t.Fatalf("closed window survived the tick")
	}
	if !app.Running() {
		t.Fatalf("closing a secondary window stopped the app")
	}
}

func TestQuitFromEventHandler(t *testing.T) {
	fp := newFakePlatform()
	app := NewApplication(fp, nil)
	main := app.NewWindow(MainWindow)
	main.SetRoot(NewPanel())
	btn := NewButton("quit")
	btn.SetID("quit")
	main.Root().InsertControl(btn)

	var got []string
	app.Events = &EventHandler{Handle: func(ev UIEvent) {
		got = append(got, ev.Type.String()+" "+ev.ID())
		if ev.ID() == "quit" {
			app.Quit()
		}
	}}
	if err := app.Start(); err != nil {
		t.Fatal(err)
	}
	app.Tick()
	c := center(btn)
	fp.push(main, MousePressed{Pos: c, Button: MouseLeft}, MouseReleased{Pos: c, Button: MouseLeft})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if rc := app.Run(ctx); rc != 0 || ctx.Err() != nil {
		t.Fatalf("Run = %d, ctx err %v", rc, ctx.Err())
	}
	if diff := cmp.Diff([]string{"click quit"}, got); diff != "" {
		t.Fatalf("events (-want +got):\n%s", diff)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	fp := newFakePlatform()
	app := NewApplication(fp, nil)
	app.NewWindow(MainWindow)
	app.IdleSleep = time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)
	if got := app.Run(ctx); got != 0 {
		t.Fatalf("Run = %d", got)
	}
	if app.Running() {
		t.Fatalf("still running after cancel")
	}
}

func TestGainedFocusActivatesWindow(t *testing.T) {
	app, fp, _ := newTestApp(t, nil)
	main := app.Window(MainWindow)
	tools := app.NewWindow("Tools")
	if err := app.DisplayWindow("Tools"); err != nil {
		t.Fatal(err)
	}
	fp.push(main, WindowGainedFocus{})
	app.Tick()
	fp.push(tools, WindowGainedFocus{})
	app.Tick()
	if !tools.Active() || main.Active() {
		t.Fatalf("active: main=%v tools=%v", main.Active(), tools.Active())
	}
}

func TestMaxEventsPerTick(t *testing.T) {
	app, fp, _ := newTestApp(t, nil)
	app.MaxEventsPerTick = 2
	main := app.Window(MainWindow)
	for i := 0; i < 5; i++ {
		fp.push(main, MouseMoved{Pos: Pt(float32(i), 0)})
	}
	if got := app.Tick(); got != 2 {
		t.Fatalf("Tick handled %d events, want 2", got)
	}
	if len(fp.queues[main]) != 3 {
		t.Fatalf("%d events left, want 3", len(fp.queues[main]))
	}
}

func TestWindowRequestsGoThroughPlatform(t *testing.T) {
	app, fp, _ := newTestApp(t, nil)
	main := app.Window(MainWindow)
	main.Move(Pt(40, 50))
	main.Resize(Pt(320, 240))
	main.Maximize()
	if main.Position() == Pt(40, 50) {
		t.Fatalf("Move applied before the platform confirmed it")
	}
	app.Tick()
	if main.Position() != Pt(40, 50) || main.Size() != Pt(320, 240) || !main.Maximized() {
		t.Fatalf("pos %v size %v maximized %v", main.Position(), main.Size(), main.Maximized())
	}
	main.SetClipboard("copied")
	if fp.clipboard != "copied" || main.Clipboard() != "copied" {
		t.Fatalf("clipboard not shared with the platform")
	}
}

func TestSetThemeReachesEveryWindow(t *testing.T) {
	app, _, a := newTestApp(t, nil)
	light, err := LoadTheme("Light", nil)
	if err != nil {
		t.Fatal(err)
	}
	app.SetTheme(light)
	want, _ := light.Get(PropBackground).Color()
	if got := a.Color(PropBackground); got != want {
		t.Fatalf("background = %v, want %v", got, want)
	}
}
