package eui

// Event is one platform event addressed to a window. Positions are in
// window pixels.
type Event interface {
	isEvent()
}

type NoEvent struct{}

type KeyPressed struct {
	Key  Key
	Mods Modifiers
}

type KeyReleased struct {
	Key  Key
	Mods Modifiers
}

type MouseMoved struct {
	Pos Point
}

type MousePressed struct {
	Pos    Point
	Button MouseButton
}

type MouseReleased struct {
	Pos    Point
	Button MouseButton
}

type MouseWheel struct {
	Delta Point
}

type TextEntered struct {
	Text string
}

type WindowResized struct {
	Size Point
}

type WindowMoved struct {
	Pos Point
}

type WindowMaximized struct{}
type WindowMinimized struct{}
type WindowGainedFocus struct{}
type WindowLostFocus struct{}
type WindowClosed struct{}
type WindowRepaint struct{}

func (NoEvent) isEvent()           {}
func (KeyPressed) isEvent()        {}
func (KeyReleased) isEvent()       {}
func (MouseMoved) isEvent()        {}
func (MousePressed) isEvent()      {}
func (MouseReleased) isEvent()     {}
func (MouseWheel) isEvent()        {}
func (TextEntered) isEvent()       {}
func (WindowResized) isEvent()     {}
func (WindowMoved) isEvent()       {}
func (WindowMaximized) isEvent()   {}
func (WindowMinimized) isEvent()   {}
func (WindowGainedFocus) isEvent() {}
func (WindowLostFocus) isEvent()   {}
func (WindowClosed) isEvent()      {}
func (WindowRepaint) isEvent()     {}
