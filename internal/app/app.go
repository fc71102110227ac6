//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"mad-life/internal/core"
	"mad-life/internal/logging"
	"mad-life/internal/render"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a Runner to the ebiten.Game interface.
type Game struct {
	runner  *Runner
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *slog.Logger

	onColor   color.Color
	offColor  color.Color
	lineColor color.RGBA

	scale int
}

// New constructs a Game for the provided runner. A nil logger discards records.
func New(runner *Runner, scale int, logger *slog.Logger) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	sim := runner.Sim()
	size := sim.Size()
	return &Game{
		runner:    runner,
		painter:   render.NewGridPainter(size.W, size.H),
		hud:       ui.NewHUD("Game of Life", runner, hudWidth),
		overlay:   ui.NewOverlay(sim, scale),
		log:       logger,
		onColor:   color.Black,
		offColor:  color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
		lineColor: color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
		scale:     scale,
	}
}

// Update handles per-frame input and advances the simulation on schedule.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.runner.Start()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.runner.Running() {
			g.runner.Stop()
		} else {
			g.runner.Start()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.runner.Stop()
		g.runner.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.runner.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.runner.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.runner.SetDelay(g.runner.Delay() - DelayStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.runner.SetDelay(g.runner.Delay() + DelayStep)
	}

	size := g.runner.Sim().Size()
	if !g.hud.Update(size.W*g.scale) && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if x, y, ok := render.CellAt(mx, my, g.scale, size); ok {
			if err := g.runner.Toggle(x, y); err != nil {
				g.log.Warn("toggle failed", slog.Any("err", err))
			}
		}
	}
	g.overlay.Update()

	g.runner.Tick(time.Now())
	return nil
}

// Draw renders the grid, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	sim := g.runner.Sim()
	size := sim.Size()
	g.painter.Blit(screen, sim.Cells(), g.onColor, g.offColor, g.scale)
	g.painter.DrawGridLines(screen, g.scale, g.lineColor)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowSize(g.runner.Sim().Size(), g.scale)
}

// WindowSize returns the window dimensions for a grid drawn at scale.
func WindowSize(s core.Size, scale int) (int, int) {
	return s.W*scale + hudWidth + 1, s.H*scale + 1
}
