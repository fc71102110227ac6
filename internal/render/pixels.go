package render

import (
	"image/color"

	"mad-life/internal/core"
)

// Diff codes produced by DiffCodes.
const (
	DiffNone uint8 = iota
	DiffBorn
	DiffDied
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// FillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// DiffCodes marks each cell of dst as born, died or unchanged between prev and
// cur. It returns the number of changed cells.
func DiffCodes(dst, prev, cur []uint8) int {
	changed := 0
	for i := range dst {
		switch {
		case prev[i] == cur[i]:
			dst[i] = DiffNone
			continue
		case cur[i] != 0:
			dst[i] = DiffBorn
		default:
			dst[i] = DiffDied
		}
		changed++
	}
	return changed
}

// CellAt maps a pixel position to the grid cell drawn there when every cell
// is cellSize pixels wide. ok is false outside the grid.
func CellAt(px, py, cellSize int, size core.Size) (x, y int, ok bool) {
	if cellSize <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/cellSize, py/cellSize
	if x >= size.W || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}
