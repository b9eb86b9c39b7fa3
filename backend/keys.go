package backend

import (
	"github.com/hajimehoshi/ebiten/v2"

	"euikit/eui"
)

var keyMap = map[ebiten.Key]eui.Key{
	ebiten.KeyA: eui.KeyA, ebiten.KeyB: eui.KeyB, ebiten.KeyC: eui.KeyC,
	ebiten.KeyD: eui.KeyD, ebiten.KeyE: eui.KeyE, ebiten.KeyF: eui.KeyF,
	ebiten.KeyG: eui.KeyG, ebiten.KeyH: eui.KeyH, ebiten.KeyI: eui.KeyI,
	ebiten.KeyJ: eui.KeyJ, ebiten.KeyK: eui.KeyK, ebiten.KeyL: eui.KeyL,
	ebiten.KeyM: eui.KeyM, ebiten.KeyN: eui.KeyN, ebiten.KeyO: eui.KeyO,
	ebiten.KeyP: eui.KeyP, ebiten.KeyQ: eui.KeyQ, ebiten.KeyR: eui.KeyR,
	ebiten.KeyS: eui.KeyS, ebiten.KeyT: eui.KeyT, ebiten.KeyU: eui.KeyU,
	ebiten.KeyV: eui.KeyV, ebiten.KeyW: eui.KeyW, ebiten.KeyX: eui.KeyX,
	ebiten.KeyY: eui.KeyY, ebiten.KeyZ: eui.KeyZ,

	ebiten.KeyDigit0: eui.Key0, ebiten.KeyDigit1: eui.Key1, ebiten.KeyDigit2: eui.Key2,
	ebiten.KeyDigit3: eui.Key3, ebiten.KeyDigit4: eui.Key4, ebiten.KeyDigit5: eui.Key5,
	ebiten.KeyDigit6: eui.Key6, ebiten.KeyDigit7: eui.Key7, ebiten.KeyDigit8: eui.Key8,
	ebiten.KeyDigit9: eui.Key9,

	ebiten.KeyEnter:       eui.KeyEnter,
	ebiten.KeyNumpadEnter: eui.KeyEnter,
	ebiten.KeyEscape:      eui.KeyEscape,
	ebiten.KeyBackspace:   eui.KeyBackspace,
	ebiten.KeyTab:         eui.KeyTab,
	ebiten.KeySpace:       eui.KeySpace,
	ebiten.KeyDelete:      eui.KeyDelete,
	ebiten.KeyInsert:      eui.KeyInsert,
	ebiten.KeyArrowLeft:   eui.KeyLeft,
	ebiten.KeyArrowRight:  eui.KeyRight,
	ebiten.KeyArrowUp:     eui.KeyUp,
	ebiten.KeyArrowDown:   eui.KeyDown,
	ebiten.KeyHome:        eui.KeyHome,
	ebiten.KeyEnd:         eui.KeyEnd,
	ebiten.KeyPageUp:      eui.KeyPageUp,
	ebiten.KeyPageDown:    eui.KeyPageDown,

	ebiten.KeyShiftLeft:    eui.KeyShift,
	ebiten.KeyShiftRight:   eui.KeyShift,
	ebiten.KeyControlLeft:  eui.KeyControl,
	ebiten.KeyControlRight: eui.KeyControl,
	ebiten.KeyAltLeft:      eui.KeyAlt,
	ebiten.KeyAltRight:     eui.KeyAlt,
	ebiten.KeyMetaLeft:     eui.KeyMeta,
	ebiten.KeyMetaRight:    eui.KeyMeta,

	ebiten.KeyF1: eui.KeyF1, ebiten.KeyF2: eui.KeyF2, ebiten.KeyF3: eui.KeyF3,
	ebiten.KeyF4: eui.KeyF4, ebiten.KeyF5: eui.KeyF5, ebiten.KeyF6: eui.KeyF6,
	ebiten.KeyF7: eui.KeyF7, ebiten.KeyF8: eui.KeyF8, ebiten.KeyF9: eui.KeyF9,
	ebiten.KeyF10: eui.KeyF10, ebiten.KeyF11: eui.KeyF11, ebiten.KeyF12: eui.KeyF12,
}

// translateKey maps an ebiten key, reporting false for keys the toolkit
// does not name.
func translateKey(k ebiten.Key) (eui.Key, bool) {
	ek, ok := keyMap[k]
	return ek, ok
}

func modifiers() eui.Modifiers {
	var m eui.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= eui.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= eui.ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= eui.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= eui.ModMeta
	}
	return m
}

var cursorShapes = map[eui.Cursor]ebiten.CursorShapeType{
	eui.CursorDefault:  ebiten.CursorShapeDefault,
	eui.CursorPointer:  ebiten.CursorShapePointer,
	eui.CursorText:     ebiten.CursorShapeText,
	eui.CursorMove:     ebiten.CursorShapeMove,
	eui.CursorResizeEW: ebiten.CursorShapeEWResize,
	eui.CursorResizeNS: ebiten.CursorShapeNSResize,
}
