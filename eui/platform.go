package eui

// Platform is the windowing and input system an Application runs on. All
// methods are called from the goroutine running the application.
type Platform interface {
	// NextEvent returns the next queued event for w, or nil when there is
	// none.
	NextEvent(w *Window) Event

	ShowWindow(w *Window)
	HideWindow(w *Window)
	// SetEnabled blocks or restores input to w while a modal window is
	// displayed.
	SetEnabled(w *Window, enabled bool)

	SetTitle(w *Window, title string)
	Minimize(w *Window)
	Maximize(w *Window)
	SetPosition(w *Window, pos Point)
	SetSize(w *Window, size Point)
	Focus(w *Window)
	SetCursor(w *Window, c Cursor)

	Clipboard() string
	SetClipboard(s string)

	// Present hands a painted frame to the platform. The frame's draw list
	// is only valid until the window paints again.
	Present(w *Window, f Frame)
}
