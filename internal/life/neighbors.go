package life

import (
	"fmt"
	"strings"

	"mad-life/internal/core"
)

// EdgePolicy selects how neighbors beyond the grid border are treated.
type EdgePolicy uint8

const (
	// Clamped treats every off-grid neighbor as permanently dead.
	Clamped EdgePolicy = iota
	// Wrapping joins each edge to the opposite one (toroidal topology).
	Wrapping
)

// String returns the flag-style name of the policy.
func (p EdgePolicy) String() string {
	switch p {
	case Clamped:
		return "clamped"
	case Wrapping:
		return "wrapping"
	default:
		return fmt.Sprintf("EdgePolicy(%d)", uint8(p))
	}
}

// ParseEdgePolicy maps a policy name to its value.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clamped", "clamp", "bounded":
		return Clamped, nil
	case "wrapping", "wrap", "torus", "toroidal":
		return Wrapping, nil
	default:
		return 0, fmt.Errorf("unknown edge policy %q", s)
	}
}

// NeighborCounter counts the alive cells among the eight neighbors of (x, y).
type NeighborCounter interface {
	AliveNeighbors(g *core.ByteGrid, x, y int) int
}

// counterFor returns the strategy implementing p.
func counterFor(p EdgePolicy) (NeighborCounter, error) {
	switch p {
	case Clamped:
		return clampedCounter{}, nil
	case Wrapping:
		return wrappingCounter{}, nil
	default:
		return nil, fmt.Errorf("unsupported edge policy %v", p)
	}
}

type wrappingCounter struct{}

func (wrappingCounter) AliveNeighbors(g *core.ByteGrid, x, y int) int {
	if x > 0 && y > 0 && x < g.W-1 && y < g.H-1 {
		return windowSum(g, x-1, y-1, x+1, y+1) - int(g.At(x, y))
	}
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := g.Wrap(x+dx, y+dy)
			n += int(g.At(nx, ny))
		}
	}
	return n
}

type clampedCounter struct{}

func (clampedCounter) AliveNeighbors(g *core.ByteGrid, x, y int) int {
	x0, y0 := max(x-1, 0), max(y-1, 0)
	x1, y1 := min(x+1, g.W-1), min(y+1, g.H-1)
	return windowSum(g, x0, y0, x1, y1) - int(g.At(x, y))
}

// windowSum adds the cells of the inclusive rectangle [x0,x1]×[y0,y1], which
// must lie inside the grid.
func windowSum(g *core.ByteGrid, x0, y0, x1, y1 int) int {
	cells := g.Cells()
	n := 0
	for y := y0; y <= y1; y++ {
		row := cells[y*g.W : (y+1)*g.W]
		for x := x0; x <= x1; x++ {
			n += int(row[x])
		}
	}
	return n
}

// nextState applies the B3/S23 rule.
func nextState(alive bool, neighbors int) uint8 {
	if neighbors == 3 || (alive && neighbors == 2) {
		return Alive
	}
	return Dead
}
