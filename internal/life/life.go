package life

import (
	"errors"
	"fmt"

	"mad-life/internal/core"
)

// Cell values.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

var (
	// ErrInvalidDimension reports a non-positive width or height.
	ErrInvalidDimension = errors.New("life: invalid dimension")
	// ErrShapeMismatch reports a seed whose shape differs from the declared size.
	ErrShapeMismatch = errors.New("life: seed shape mismatch")
	// ErrInvalidCoordinate reports a cell address outside the grid.
	ErrInvalidCoordinate = errors.New("life: invalid coordinate")
)

// Life implements Conway's Game of Life on a fixed-size grid with a
// configurable edge policy.
type Life struct {
	w, h    int
	policy  EdgePolicy
	counter NeighborCounter

	cur  *core.ByteGrid
	prev *core.ByteGrid
	nxt  *core.ByteGrid

	generation int
	density    float64
}

// New returns a Life simulation of w×h cells. seed is indexed seed[y][x];
// a nil seed starts with every cell dead. Non-zero seed values count as alive.
func New(w, h int, seed [][]uint8, policy EdgePolicy) (*Life, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	counter, err := counterFor(policy)
	if err != nil {
		return nil, err
	}
	l := &Life{
		w:       w,
		h:       h,
		policy:  policy,
		counter: counter,
		cur:     core.NewByteGrid(w, h),
		prev:    core.NewByteGrid(w, h),
		nxt:     core.NewByteGrid(w, h),
		density: DefaultConfig().Density,
	}
	if seed != nil {
		if len(seed) != h {
			return nil, fmt.Errorf("%w: got %d rows, expected %d", ErrShapeMismatch, len(seed), h)
		}
		for y, row := range seed {
			if len(row) != w {
				return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrShapeMismatch, y, len(row), w)
			}
			for x, v := range row {
				if v != Dead {
					l.cur.Set(x, y, Alive)
				}
			}
		}
	}
	l.prev.CopyFrom(l.cur)
	return l, nil
}

// NewWithConfig returns an all-dead Life simulation configured from cfg.
func NewWithConfig(cfg Config) (*Life, error) {
	l, err := New(cfg.Width, cfg.Height, nil, cfg.Policy)
	if err != nil {
		return nil, err
	}
	l.density = cfg.Density
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Policy returns the edge policy chosen at construction.
func (l *Life) Policy() EdgePolicy { return l.policy }

// Generation returns the number of steps taken since construction, Reset or Clear.
func (l *Life) Generation() int { return l.generation }

// Cells exposes the current generation in row-major order. Callers must not
// retain the slice across Step calls.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Previous exposes the generation preceding the current one.
func (l *Life) Previous() []uint8 { return l.prev.Cells() }

// Alive returns the number of live cells in the current generation.
func (l *Life) Alive() int { return l.cur.Count() }

// Cell reports whether (x, y) is alive.
func (l *Life) Cell(x, y int) (bool, error) {
	if !l.cur.InBounds(x, y) {
		return false, l.coordinateError(x, y)
	}
	return l.cur.At(x, y) == Alive, nil
}

// SetCell edits the current generation. The previous generation is untouched.
func (l *Life) SetCell(x, y int, alive bool) error {
	if !l.cur.InBounds(x, y) {
		return l.coordinateError(x, y)
	}
	v := Dead
	if alive {
		v = Alive
	}
	l.cur.Set(x, y, v)
	return nil
}

// Toggle flips the state of (x, y).
func (l *Life) Toggle(x, y int) error {
	if !l.cur.InBounds(x, y) {
		return l.coordinateError(x, y)
	}
	l.cur.Set(x, y, l.cur.At(x, y)^Alive)
	return nil
}

// Clear kills every cell. The previous generation and the generation counter
// are reset as well, so a following Step reports the empty grid as static.
func (l *Life) Clear() {
	l.cur.Clear()
	l.prev.Clear()
	l.generation = 0
}

// Reset fills the grid with a deterministic random soup for seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillDensity(rng, l.cur.Cells(), l.density)
	l.prev.CopyFrom(l.cur)
	l.generation = 0
}

// Step advances the simulation by one generation and reports whether the new
// generation is identical to the one it replaced.
func (l *Life) Step() bool {
	w, h := l.w, l.h
	next := l.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := l.counter.AliveNeighbors(l.cur, x, y)
			next[y*w+x] = nextState(l.cur.At(x, y) == Alive, n)
		}
	}
	// Rotate buffers: the old previous generation becomes scratch space.
	l.prev, l.cur, l.nxt = l.cur, l.nxt, l.prev
	l.generation++
	return l.cur.Equal(l.prev)
}

// Run calls Step exactly n times, even once the grid has become static.
func (l *Life) Run(n int) {
	for i := 0; i < n; i++ {
		l.Step()
	}
}

// RunUntilStatic steps at most n times, stopping at the first static
// generation. It returns the number of steps taken and whether the grid
// became static.
func (l *Life) RunUntilStatic(n int) (int, bool) {
	for i := 1; i <= n; i++ {
		if l.Step() {
			return i, true
		}
	}
	return max(n, 0), false
}

func (l *Life) coordinateError(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrInvalidCoordinate, x, y, l.w, l.h)
}
