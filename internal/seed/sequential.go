package seed

import (
	"math/rand/v2"

	"forestfire/internal/core"
)

// SequentialName selects the single-pass selection-sampling strategy.
const SequentialName = "sequential"

// Sequential walks the grid once in row-major order and keeps each cell with
// probability quota/remaining. Once remaining equals quota every later cell
// is kept, so the walk always ends with exactly Target trees and needs no
// shuffle or position list.
type Sequential struct{}

// Seed implements Seeder.
func (Sequential) Seed(g *core.Grid, density int, r *rand.Rand) {
	quota := Target(density, g.Len())
	remaining := g.Len()
	for i := 0; i < g.Len() && quota > 0; i++ {
		if r.IntN(remaining) < quota {
			g.SetAt(i, core.Alive)
			quota--
		}
		remaining--
	}
}

func init() {
	Register(SequentialName, Sequential{})
}
