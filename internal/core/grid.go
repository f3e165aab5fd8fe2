package core

import (
	"fmt"
	"math/rand/v2"
)

// Grid stores forest cells in row-major order together with the burn
// frontier. A grid is built for a single trial and mutated in place.
type Grid struct {
	rows, cols int
	cells      []State

	alive  int
	burned int

	// frontier holds the cells ignited by the most recent step; next is the
	// spare buffer the following step writes into.
	frontier []Coord
	next     []Coord
}

// NewGrid allocates an all-empty grid. Dimensions must be positive.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("core: invalid grid size %dx%d", rows, cols))
	}
	return &Grid{rows: rows, cols: cols, cells: make([]State, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns rows*cols.
func (g *Grid) Len() int { return len(g.cells) }

// Size reports the grid dimensions in render terms.
func (g *Grid) Size() Size { return Size{W: g.cols, H: g.rows} }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index returns the linear slice index for (row, col). It panics when the
// coordinates fall outside the grid.
func (g *Grid) Index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// Coord converts a linear index back into grid coordinates.
func (g *Grid) Coord(i int) Coord {
	g.checkIndex(i)
	return Coord{Row: i / g.cols, Col: i % g.cols}
}

// Get returns the state of (row, col).
func (g *Grid) Get(row, col int) State { return g.cells[g.Index(row, col)] }

// Set changes the state of (row, col) and keeps the alive and burned counts
// current. A burned cell can never be set back to another state.
func (g *Grid) Set(row, col int, s State) { g.SetAt(g.Index(row, col), s) }

// At returns the state stored at linear index i.
func (g *Grid) At(i int) State {
	g.checkIndex(i)
	return g.cells[i]
}

// SetAt is Set addressed by linear index.
func (g *Grid) SetAt(i int, s State) {
	g.checkIndex(i)
	old := g.cells[i]
	if old == s {
		return
	}
	if old == Burned {
		c := g.Coord(i)
		panic(fmt.Sprintf("core: cell (%d,%d) already burned", c.Row, c.Col))
	}
	if old == Alive {
		g.alive--
	}
	switch s {
	case Alive:
		g.alive++
	case Burned:
		g.burned++
	}
	g.cells[i] = s
}

func (g *Grid) checkIndex(i int) {
	if i < 0 || i >= len(g.cells) {
		panic(fmt.Sprintf("core: index %d outside %dx%d grid", i, g.rows, g.cols))
	}
}

// Cells exposes the backing slice for read-only use by renderers and tests.
func (g *Grid) Cells() []State { return g.cells }

// Alive returns the number of living trees.
func (g *Grid) Alive() int { return g.alive }

// Burned returns the number of cells that have caught fire.
func (g *Grid) Burned() int { return g.burned }

// BurnedPercent returns burned/total*100.
func (g *Grid) BurnedPercent() float64 {
	return float64(g.burned) / float64(len(g.cells)) * 100
}

// Shuffle permutes the cells uniformly at random. It is meant for seeding
// and panics once any cell has burned, since the frontier would go stale.
func (g *Grid) Shuffle(r *rand.Rand) {
	if g.burned > 0 {
		panic("core: shuffle after ignition")
	}
	r.Shuffle(len(g.cells), func(i, j int) {
		g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
	})
}

// Frontier returns the cells ignited during the most recent step. The slice
// belongs to the grid and is only valid until the next SwapFrontier.
func (g *Grid) Frontier() []Coord { return g.frontier }

// NextFrontier returns the spare frontier buffer truncated to zero length,
// ready to collect the cells ignited by the next step.
func (g *Grid) NextFrontier() []Coord { return g.next[:0] }

// SwapFrontier installs next as the current frontier and recycles the old
// one as the spare buffer.
func (g *Grid) SwapFrontier(next []Coord) {
	g.next, g.frontier = g.frontier, next
}
