package backend

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"euikit/eui"
)

// Game adapts an Application to ebiten's game loop: every ebiten update
// polls input and runs one application tick.
type Game struct {
	app     *eui.Application
	backend *Backend
	scale   float64
}

func NewGame(app *eui.Application, b *Backend) *Game {
	b.Attach(app)
	return &Game{app: app, backend: b, scale: 1}
}

func (g *Game) Update() error {
	if !g.app.Running() {
		return ebiten.Termination
	}
	g.backend.Poll()
	g.app.Tick()
	if !g.app.Running() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.backend.Draw(screen)
}

// Layout renders at device pixels when the application asks for HighDPI.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if g.app.HighDPI {
		if m := ebiten.Monitor(); m != nil {
			scale = m.DeviceScaleFactor()
		}
	}
	if scale != g.scale {
		g.scale = scale
		g.app.SetScale(float32(scale))
	}
	w, h := int(float64(outsideWidth)*scale), int(float64(outsideHeight)*scale)
	g.backend.setScreenSize(eui.Pt(float32(w), float32(h)))
	return w, h
}

// Run starts the application and blocks in ebiten's loop until the main
// window is destroyed.
func Run(app *eui.Application, b *Backend) error {
	g := NewGame(app, b)
	if err := app.Start(); err != nil {
		return err
	}
	if main := app.Window(eui.MainWindow); main != nil {
		size := main.Size()
		ebiten.SetWindowSize(int(size.X), int(size.Y))
		ebiten.SetWindowTitle(main.Title())
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetScreenClearedEveryFrame(true)
	err := ebiten.RunGame(g)
	b.Textures.Release()
	if err != nil {
		log.Printf("run game: %v", err)
	}
	return err
}
