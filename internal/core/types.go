package core

import "fmt"

// State enumerates cell contents. Burning and burned are a single terminal
// state: a cell that catches fire never changes again.
type State uint8

const (
	Empty State = iota
	Alive
	Burned
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Alive:
		return "alive"
	case Burned:
		return "burned"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Coord addresses a single cell.
type Coord struct {
	Row int
	Col int
}

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract the interactive viewer drives once per tick.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}
