package eui

import (
	"strconv"
	"strings"
)

type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyDelete
	KeyInsert
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyShift
	KeyControl
	KeyAlt
	KeyMeta
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	keyCount
)

var keyNames = [...]string{
	KeyUnknown: "Unknown", KeyEnter: "Enter", KeyEscape: "Escape",
	KeyBackspace: "Backspace", KeyTab: "Tab", KeySpace: "Space",
	KeyDelete: "Delete", KeyInsert: "Insert", KeyLeft: "Left",
	KeyRight: "Right", KeyUp: "Up", KeyDown: "Down", KeyHome: "Home",
	KeyEnd: "End", KeyPageUp: "PageUp", KeyPageDown: "PageDown",
	KeyShift: "Shift", KeyControl: "Control", KeyAlt: "Alt", KeyMeta: "Meta",
	keyCount: "",
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	case k >= 0 && int(k) < len(keyNames) && keyNames[k] != "":
		return keyNames[k]
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModMeta
)

func (m Modifiers) Shift() bool   { return m&ModShift != 0 }
func (m Modifiers) Control() bool { return m&ModControl != 0 }
func (m Modifiers) Alt() bool     { return m&ModAlt != 0 }

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	}
	return "button" + strconv.Itoa(int(b))
}

// Cursor is the mouse cursor shape a control asks for while hovered.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorText
	CursorMove
	CursorResizeEW
	CursorResizeNS
)

var cursorNames = map[string]Cursor{
	"default":   CursorDefault,
	"pointer":   CursorPointer,
	"text":      CursorText,
	"move":      CursorMove,
	"ew-resize": CursorResizeEW,
	"ns-resize": CursorResizeNS,
}

// ParseCursor maps a theme cursor name to a Cursor. Unknown names map to
// CursorDefault.
func ParseCursor(name string) Cursor {
	return cursorNames[strings.ToLower(strings.TrimSpace(name))]
}
