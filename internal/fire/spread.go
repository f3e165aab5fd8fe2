package fire

import "forestfire/internal/core"

// neighbors lists the orthogonal offsets: up, down, left, right.
var neighbors = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Step advances the fire by one ring. Every living orthogonal neighbour of
// the current frontier burns and forms the next frontier; cells ignited in
// this step do not spread until the following one. Edges do not wrap.
// Step returns the number of cells it ignited.
func Step(g *core.Grid) int {
	cur := g.Frontier()
	next := g.NextFrontier()
	for _, c := range cur {
		for _, d := range neighbors {
			row, col := c.Row+d[0], c.Col+d[1]
			if !g.InBounds(row, col) {
				continue
			}
			if g.Get(row, col) != core.Alive {
				continue
			}
			g.Set(row, col, core.Burned)
			next = append(next, core.Coord{Row: row, Col: col})
		}
	}
	g.SwapFrontier(next)
	return len(next)
}

// Burn steps until the frontier is empty and returns the number of steps,
// including the final one that found nothing left to ignite. A grid that was
// never ignited takes zero steps.
func Burn(g *core.Grid) int {
	steps := 0
	for len(g.Frontier()) > 0 {
		Step(g)
		steps++
	}
	return steps
}
