package core

import "testing"

func TestWrapNegativeAndOverflow(t *testing.T) {
	g := NewByteGrid(5, 4)
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{-1, -1, 4, 3},
		{5, 4, 0, 0},
		{-6, 9, 4, 1},
		{2, 2, 2, 2},
	}
	for _, tc := range cases {
		x, y := g.Wrap(tc.x, tc.y)
		if x != tc.wx || y != tc.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", tc.x, tc.y, x, y, tc.wx, tc.wy)
		}
	}
}

func TestEqualAndCopy(t *testing.T) {
	a := NewByteGrid(3, 3)
	b := NewByteGrid(3, 3)
	a.Set(1, 2, 1)
	if a.Equal(b) {
		t.Fatal("grids with different contents reported equal")
	}
	b.CopyFrom(a)
	if !a.Equal(b) {
		t.Fatal("copied grid should equal its source")
	}
	if b.At(1, 2) != 1 || b.Count() != 1 {
		t.Fatalf("unexpected copy contents: at=%d count=%d", b.At(1, 2), b.Count())
	}
	if a.Equal(NewByteGrid(3, 4)) {
		t.Fatal("grids of different size reported equal")
	}
	a.Clear()
	if a.Count() != 0 {
		t.Fatal("Clear should zero every cell")
	}
}

func TestInBounds(t *testing.T) {
	g := NewByteGrid(2, 3)
	if !g.InBounds(1, 2) {
		t.Fatal("expected (1,2) in bounds")
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		if g.InBounds(p[0], p[1]) {
			t.Fatalf("expected %v out of bounds", p)
		}
	}
}
