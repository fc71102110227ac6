package render

import (
	"image/color"
	"slices"
	"testing"

	"mad-life/internal/core"
)

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.White, color.Black)
	want := []byte{255, 255, 255, 255, 0, 0, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, expected %v", buf, want)
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{}, {R: 10, A: 20}, {G: 30, A: 40}}
	buf := make([]byte, 12)
	FillPaletteRGBA(buf, []uint8{2, 0, 9}, palette)
	want := []byte{0, 30, 0, 40, 0, 0, 0, 0, 0, 30, 0, 40}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, expected %v", buf, want)
	}

	FillPaletteRGBA(buf, []uint8{1, 1, 1}, nil)
	if !slices.Equal(buf, make([]byte, 12)) {
		t.Fatalf("empty palette should clear the buffer, got %v", buf)
	}
}

func TestDiffCodes(t *testing.T) {
	prev := []uint8{0, 1, 1, 0}
	cur := []uint8{1, 0, 1, 0}
	dst := make([]uint8, 4)
	if n := DiffCodes(dst, prev, cur); n != 2 {
		t.Fatalf("expected 2 changes, got %d", n)
	}
	if !slices.Equal(dst, []uint8{DiffBorn, DiffDied, DiffNone, DiffNone}) {
		t.Fatalf("unexpected codes %v", dst)
	}
}

func TestCellAt(t *testing.T) {
	size := core.Size{W: 50, H: 40}
	cases := []struct {
		px, py int
		x, y   int
		ok     bool
	}{
		{0, 0, 0, 0, true},
		{14, 14, 0, 0, true},
		{15, 29, 1, 1, true},
		{749, 599, 49, 39, true},
		{750, 10, 0, 0, false},
		{10, 600, 0, 0, false},
		{-1, 3, 0, 0, false},
	}
	for _, tc := range cases {
		x, y, ok := CellAt(tc.px, tc.py, 15, size)
		if x != tc.x || y != tc.y || ok != tc.ok {
			t.Fatalf("CellAt(%d,%d) = (%d,%d,%v), expected (%d,%d,%v)", tc.px, tc.py, x, y, ok, tc.x, tc.y, tc.ok)
		}
	}
}
