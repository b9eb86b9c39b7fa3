package backend

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"euikit/eui"
)

// Draw renders every displayed window, bottom to top, from the last frame
// each one presented.
func (b *Backend) Draw(screen *ebiten.Image) {
	for _, s := range b.surfaces {
		if s.minimized || !s.presented {
			continue
		}
		b.drawFrame(screen, s)
		if !s.enabled {
			fillRect(screen, s.bounds(), disabledShade)
		}
		b.drawChrome(screen, s)
	}
}

// fillRect stretches the white pixel over r.
func fillRect(dst *ebiten.Image, r eui.Rect, col color.Color) {
	op := acquireDrawImageOptions()
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.X0), float64(r.Y0))
	op.ColorScale.ScaleWithColor(col)
	dst.DrawImage(whiteSubImage, op)
	releaseDrawImageOptions(op)
}

func (b *Backend) themeColor(p eui.Property, fallback color.Color) color.Color {
	if b.app == nil || b.app.Context().Theme == nil {
		return fallback
	}
	c, ok := b.app.Context().Theme.Get(p).Color()
	if !ok {
		return fallback
	}
	return c
}

func (b *Backend) drawChrome(screen *ebiten.Image, s *surface) {
	r := s.chrome(b.CustomTitleBar)
	if r.Empty() {
		return
	}
	bg := b.themeColor(eui.PropPopupBackground, color.RGBA{R: 48, G: 48, B: 48, A: 255})
	if s == b.focused {
		bg = b.themeColor(eui.PropAccent, color.RGBA{R: 64, G: 96, B: 160, A: 255})
	}
	fillRect(screen, r, bg)
	border := b.themeColor(eui.PropBorder, color.Gray{Y: 128})
	frame := r.Union(s.bounds())
	vector.StrokeRect(screen, frame.X0, frame.Y0, frame.Dx(), frame.Dy(), 1, border, false)

	x, y := int(r.X0)+4, int(r.Y0)+(titleBarHeight-16)/2
	ebitenutil.DebugPrintAt(screen, s.title, x, y)
	cb := s.closeBox(b.CustomTitleBar)
	ebitenutil.DebugPrintAt(screen, "x", int(cb.X0)+7, y)
}

func (b *Backend) drawFrame(screen *ebiten.Image, s *surface) {
	list := s.frame.List
	if list == nil {
		return
	}
	win := s.bounds()
	for i := range list.Batches {
		bt := &list.Batches[i]
		if len(bt.Indices) == 0 {
			continue
		}
		clip := bt.Clip.Add(s.pos).Intersect(win)
		if clip.Empty() {
			continue
		}
		dst := screen.SubImage(image.Rect(int(clip.X0), int(clip.Y0), int(clip.X1), int(clip.Y1))).(*ebiten.Image)

		src := whiteSubImage
		solid := bt.Texture == 0
		if !solid {
			img := b.Textures.image(bt.Texture)
			if img == nil {
				continue
			}
			src = img
		}

		vs := b.vertices[:0]
		for _, v := range bt.Vertices {
			ev := ebiten.Vertex{
				DstX:   v.DstX + s.pos.X,
				DstY:   v.DstY + s.pos.Y,
				SrcX:   v.SrcX,
				SrcY:   v.SrcY,
				ColorR: v.ColorR,
				ColorG: v.ColorG,
				ColorB: v.ColorB,
				ColorA: v.ColorA,
			}
			if solid {
				ev.SrcX, ev.SrcY = 1, 1
			}
			vs = append(vs, ev)
		}
		b.vertices = vs

		op := acquireDrawTrianglesOptions()
		if !solid {
			op.Filter = ebiten.FilterLinear
		}
		dst.DrawTriangles(vs, bt.Indices, src, op)
		releaseDrawTrianglesOptions(op)
	}
}
