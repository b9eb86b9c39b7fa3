package eui

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Glyph is one rasterized character. Quad is relative to the pen position
// on the baseline; Src is in texels of the font texture.
type Glyph struct {
	Quad    Rect
	Src     Rect
	Advance float32
}

// Font measures and rasterizes text. Sizes are pixel heights.
type Font interface {
	Measure(text string, size float32) Point
	LineHeight(size float32) float32
	Ascent(size float32) float32
	Glyph(r rune, size float32) (Glyph, bool)
	Texture() Texture
}

// BasicFont is the fixed 7x13 bitmap face, scaled to the requested size.
type BasicFont struct {
	face *basicfont.Face
	tex  Texture
}

// NewBasicFont uploads the face's glyph atlas through tc. A nil cache gives
// a font that measures correctly but paints solid boxes.
func NewBasicFont(tc *TextureCache) *BasicFont {
	f := &BasicFont{face: basicfont.Face7x13}
	if tc != nil {
		f.tex = tc.Register("builtin:basicfont", f.face.Mask)
	}
	return f
}

func (f *BasicFont) scale(size float32) float32 {
	if size <= 0 {
		return 1
	}
	return size / float32(f.face.Height)
}

func (f *BasicFont) Measure(text string, size float32) Point {
	if text == "" {
		return Point{}
	}
	k := f.scale(size)
	lines := strings.Split(text, "\n")
	widest := 0
	for _, l := range lines {
		widest = max(widest, utf8.RuneCountInString(l))
	}
	return Point{
		X: float32(widest*f.face.Advance) * k,
		Y: float32(len(lines)*f.face.Height) * k,
	}
}

func (f *BasicFont) LineHeight(size float32) float32 {
	return float32(f.face.Height) * f.scale(size)
}

func (f *BasicFont) Ascent(size float32) float32 {
	return float32(f.face.Ascent) * f.scale(size)
}

// Glyph falls back to the replacement character for runes the face lacks.
func (f *BasicFont) Glyph(r rune, size float32) (Glyph, bool) {
	dr, _, maskp, adv, _ := f.face.Glyph(fixed.Point26_6{}, r)
	if adv == 0 {
		return Glyph{}, false
	}
	k := f.scale(size)
	g := Glyph{
		Quad: Rect{
			X0: float32(dr.Min.X) * k, Y0: float32(dr.Min.Y) * k,
			X1: float32(dr.Max.X) * k, Y1: float32(dr.Max.Y) * k,
		},
		Src: Rect{
			X0: float32(maskp.X), Y0: float32(maskp.Y),
			X1: float32(maskp.X + dr.Dx()), Y1: float32(maskp.Y + dr.Dy()),
		},
		Advance: float32(adv) / 64 * k,
	}
	if r == ' ' {
		g.Quad = Rect{}
	}
	return g, true
}

func (f *BasicFont) Texture() Texture { return f.tex }
