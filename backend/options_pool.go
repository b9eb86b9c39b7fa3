package backend

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

var drawTrianglesOptionsPool = sync.Pool{
	New: func() any {
		return &ebiten.DrawTrianglesOptions{}
	},
}

func acquireDrawTrianglesOptions() *ebiten.DrawTrianglesOptions {
	op := drawTrianglesOptionsPool.Get().(*ebiten.DrawTrianglesOptions)
	*op = ebiten.DrawTrianglesOptions{}
	return op
}

func releaseDrawTrianglesOptions(op *ebiten.DrawTrianglesOptions) {
	drawTrianglesOptionsPool.Put(op)
}

var drawImageOptionsPool = sync.Pool{
	New: func() any {
		return &ebiten.DrawImageOptions{}
	},
}

func acquireDrawImageOptions() *ebiten.DrawImageOptions {
	op := drawImageOptionsPool.Get().(*ebiten.DrawImageOptions)
	*op = ebiten.DrawImageOptions{}
	op.GeoM.Reset()
	op.ColorScale.Reset()
	return op
}

func releaseDrawImageOptions(op *ebiten.DrawImageOptions) {
	drawImageOptionsPool.Put(op)
}
