// Package fire ignites a seeded grid and spreads the burn ring by ring.
package fire

import (
	"errors"
	"math/rand/v2"

	"forestfire/internal/core"
)

var (
	// ErrEmptyForest indicates ignition was requested on a grid without
	// living trees.
	ErrEmptyForest = errors.New("fire: no living tree to ignite")
	// ErrNotAlive indicates IgniteAt targeted an empty or burned cell.
	ErrNotAlive = errors.New("fire: target cell is not a living tree")
)

// drawLimit caps rejection sampling before Ignite falls back to picking the
// k-th living tree directly.
const drawLimit = 64

// Ignite sets one uniformly chosen living tree on fire and adds it to the
// frontier. Random coordinates are drawn until one holds a living tree; on a
// sparse grid the draws stop after drawLimit misses and the tree is chosen by
// rank instead, which keeps the choice uniform and the loop bounded.
func Ignite(g *core.Grid, r *rand.Rand) (core.Coord, error) {
	if g.Alive() == 0 {
		return core.Coord{}, ErrEmptyForest
	}
	for i := 0; i < drawLimit; i++ {
		c := core.Coord{Row: r.IntN(g.Rows()), Col: r.IntN(g.Cols())}
		if g.Get(c.Row, c.Col) == core.Alive {
			return c, IgniteAt(g, c)
		}
	}
	k := r.IntN(g.Alive())
	for i, s := range g.Cells() {
		if s != core.Alive {
			continue
		}
		if k == 0 {
			c := g.Coord(i)
			return c, IgniteAt(g, c)
		}
		k--
	}
	panic("fire: alive count out of sync with cells")
}

// IgniteAt burns the living tree at c and appends it to the current
// frontier. On a grid that has not burned yet the frontier becomes {c}.
func IgniteAt(g *core.Grid, c core.Coord) error {
	if g.Get(c.Row, c.Col) != core.Alive {
		return ErrNotAlive
	}
	g.Set(c.Row, c.Col, core.Burned)
	next := append(g.NextFrontier(), g.Frontier()...)
	g.SwapFrontier(append(next, c))
	return nil
}
