package backend

import (
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/time/rate"

	"euikit/eui"
)

var (
	isWasm = runtime.GOOS == "js" && runtime.GOARCH == "wasm"
)

const touchScrollScale = 0.05

// pointer tracks touch state between polls so two-finger drags can be
// turned into wheel deltas.
type pointer struct {
	touchIDs       []ebiten.TouchID
	touchScrolling bool
	prevTouchAvg   eui.Point
	wheelLimiter   *rate.Limiter
}

func newPointer() *pointer {
	return &pointer{wheelLimiter: rate.NewLimiter(rate.Every(125*time.Millisecond), 1)}
}

// position returns the current pointer position. If a touch is active, the
// first touch is used. Otherwise the mouse cursor position is returned.
func (p *pointer) position() eui.Point {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	var x, y int
	if len(p.touchIDs) > 0 {
		x, y = ebiten.TouchPosition(p.touchIDs[0])
	} else {
		x, y = ebiten.CursorPosition()
	}
	return eui.Pt(float32(x), float32(y))
}

// wheel returns the wheel delta for mouse or two-finger touch scrolling.
func (p *pointer) wheel() eui.Point {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) >= 2 {
		x0, y0 := ebiten.TouchPosition(p.touchIDs[0])
		x1, y1 := ebiten.TouchPosition(p.touchIDs[1])
		avg := eui.Pt(float32(x0+x1)/2, float32(y0+y1)/2)

		if !p.touchScrolling {
			p.touchScrolling = true
			p.prevTouchAvg = avg
			return eui.Point{}
		}
		// dragging two fingers up moves content up, like a wheel
		d := avg.Sub(p.prevTouchAvg).Mul(touchScrollScale)
		p.prevTouchAvg = avg
		return d
	}

	p.touchScrolling = false

	wx, wy := ebiten.Wheel()
	if isWasm && (wx != 0 || wy != 0) {
		if !p.wheelLimiter.Allow() {
			return eui.Point{}
		}
		// browsers report wildly different magnitudes
		wx, wy = clampWheel(wx), clampWheel(wy)
	}
	return eui.Pt(float32(wx), float32(wy))
}

func clampWheel(v float64) float64 {
	switch {
	case v > 0:
		return 3
	case v < 0:
		return -3
	}
	return 0
}

var mouseButtons = [...]struct {
	eb  ebiten.MouseButton
	btn eui.MouseButton
}{
	{ebiten.MouseButtonLeft, eui.MouseLeft},
	{ebiten.MouseButtonRight, eui.MouseRight},
	{ebiten.MouseButtonMiddle, eui.MouseMiddle},
}

// justPressed reports the primary touch as a left press.
func (p *pointer) justPressed(eb ebiten.MouseButton) bool {
	if eb == ebiten.MouseButtonLeft {
		p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
		if len(p.touchIDs) > 1 {
			return false
		}
		if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
			return true
		}
	}
	return inpututil.IsMouseButtonJustPressed(eb)
}

func (p *pointer) justReleased(eb ebiten.MouseButton) bool {
	if eb == ebiten.MouseButtonLeft && len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustReleased(eb)
}

// pressed reports whether the primary pointer is currently held.
func (p *pointer) pressed() bool {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 1 {
		return false
	}
	if len(p.touchIDs) == 1 {
		return true
	}
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}
