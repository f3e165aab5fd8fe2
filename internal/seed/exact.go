package seed

import (
	"math/rand/v2"

	"forestfire/internal/core"
)

// ExactName selects the fill-and-shuffle strategy.
const ExactName = "exact"

// Exact fills the first Target cells in row-major order and then shuffles
// the whole grid, so every run holds exactly the target number of trees.
type Exact struct{}

// Seed implements Seeder.
func (Exact) Seed(g *core.Grid, density int, r *rand.Rand) {
	n := Target(density, g.Len())
	for i := 0; i < n; i++ {
		g.SetAt(i, core.Alive)
	}
	g.Shuffle(r)
}

func init() {
	Register(ExactName, Exact{})
}
