package backend

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// titleBarHeight is the height of the chrome drawn above secondary
	// windows, in pixels.
	titleBarHeight = 20
	closeBoxWidth  = 20
	cascadeStep    = 32
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	disabledShade = color.RGBA{A: 96}
)

func init() {
	whiteImage.Fill(color.White)
}
