package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract presentation layers drive. Step reports whether
// the generation it produced is identical to the one before it.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step() bool
	Cells() []uint8
	Generation() int
}

// Editor is implemented by simulations whose cells can be edited in place.
type Editor interface {
	Toggle(x, y int) error
	Clear()
}

// HistoryProvider exposes the generation preceding the current one.
type HistoryProvider interface {
	Previous() []uint8
}
