//go:build ebiten

package ui

import (
	"image/color"

	"mad-life/internal/core"
	"mad-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// diffPalette holds premultiplied colors indexed by diff code.
var diffPalette = []color.RGBA{
	render.DiffNone: {},
	render.DiffBorn: {R: 25, G: 120, B: 60, A: 150},
	render.DiffDied: {R: 100, G: 30, B: 25, A: 110},
}

// Overlay tints the cells that changed between the previous and the current
// generation. Key 1 toggles it.
type Overlay struct {
	sim      core.Sim
	scale    int
	showDiff bool

	img   *ebiten.Image
	codes []uint8
	buf   []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update handles the overlay hotkeys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showDiff = !o.showDiff
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showDiff {
		return
	}
	history, ok := o.sim.(core.HistoryProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	prev, cur := history.Previous(), o.sim.Cells()
	if total == 0 || len(prev) != total || len(cur) != total {
		return
	}
	if o.img == nil {
		o.img = ebiten.NewImage(size.W, size.H)
		o.codes = make([]uint8, total)
		o.buf = make([]byte, 4*total)
	}
	if render.DiffCodes(o.codes, prev, cur) == 0 {
		return
	}
	render.FillPaletteRGBA(o.buf, o.codes, diffPalette)
	o.img.WritePixels(o.buf)

	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.img, op)
}
