package fire

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"forestfire/internal/core"
	"forestfire/internal/seed"
)

func fullGrid(rows, cols int) *core.Grid {
	g := core.NewGrid(rows, cols)
	for i := 0; i < g.Len(); i++ {
		g.SetAt(i, core.Alive)
	}
	return g
}

func TestFullGridBurnsFromCenter(t *testing.T) {
	g := fullGrid(3, 3)
	if err := IgniteAt(g, core.Coord{Row: 1, Col: 1}); err != nil {
		t.Fatalf("IgniteAt: %v", err)
	}
	Burn(g)
	for i, s := range g.Cells() {
		if s != core.Burned {
			t.Fatalf("cell %v is %v, want burned", g.Coord(i), s)
		}
	}
	if g.Burned() != 9 {
		t.Fatalf("burned=%d, want 9", g.Burned())
	}
}

func TestDisconnectedTreeSurvives(t *testing.T) {
	g := core.NewGrid(3, 3)
	g.Set(0, 0, core.Alive)
	g.Set(2, 2, core.Alive)
	if err := IgniteAt(g, core.Coord{}); err != nil {
		t.Fatalf("IgniteAt: %v", err)
	}
	Burn(g)
	if g.Get(0, 0) != core.Burned {
		t.Fatal("ignited tree should be burned")
	}
	if g.Get(2, 2) != core.Alive {
		t.Fatal("disconnected tree must survive")
	}
	if g.Burned() != 1 {
		t.Fatalf("burned=%d, want 1", g.Burned())
	}
}

func TestNoDiagonalSpread(t *testing.T) {
	g := core.NewGrid(2, 2)
	g.Set(0, 0, core.Alive)
	g.Set(1, 1, core.Alive)
	_ = IgniteAt(g, core.Coord{})
	if n := Step(g); n != 0 {
		t.Fatalf("diagonal neighbour ignited (%d cells)", n)
	}
}

func TestCornerIgnitionStaysInBounds(t *testing.T) {
	g := fullGrid(4, 5)
	if err := IgniteAt(g, core.Coord{}); err != nil {
		t.Fatalf("IgniteAt: %v", err)
	}
	for len(g.Frontier()) > 0 {
		Step(g)
		for _, c := range g.Frontier() {
			if !g.InBounds(c.Row, c.Col) {
				t.Fatalf("frontier left the grid: %v", c)
			}
		}
	}
	if g.Burned() != g.Len() {
		t.Fatalf("burned=%d, want %d", g.Burned(), g.Len())
	}
}

func TestStepIsBreadthFirst(t *testing.T) {
	g := fullGrid(1, 5)
	_ = IgniteAt(g, core.Coord{Row: 0, Col: 0})
	for step := 1; step <= 4; step++ {
		if n := Step(g); n != 1 {
			t.Fatalf("step %d ignited %d cells, want exactly one ring cell", step, n)
		}
		if want := (core.Coord{Row: 0, Col: step}); g.Frontier()[0] != want {
			t.Fatalf("step %d frontier=%v, want %v", step, g.Frontier(), want)
		}
	}
	if n := Step(g); n != 0 || len(g.Frontier()) != 0 {
		t.Fatalf("fire should be exhausted, ignited %d", n)
	}
}

func TestBurnTerminatesWithinManhattanBound(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 3}, {6, 9}, {20, 4}} {
		rows, cols := dims[0], dims[1]
		for _, start := range []core.Coord{{0, 0}, {rows - 1, cols - 1}, {rows / 2, cols / 2}} {
			g := fullGrid(rows, cols)
			_ = IgniteAt(g, start)
			steps := Burn(g)
			if steps > rows+cols {
				t.Fatalf("%dx%d from %v: %d steps exceeds %d", rows, cols, start, steps, rows+cols)
			}
			if len(g.Frontier()) != 0 {
				t.Fatal("frontier not empty after Burn")
			}
		}
	}
}

func TestBurnMonotoneOnRandomForests(t *testing.T) {
	r := rand.New(rand.NewPCG(21, 0))
	for _, density := range []int{20, 45, 59, 60, 75, 95} {
		g := core.NewGrid(30, 30)
		seed.Exact{}.Seed(g, density, r)
		aliveBefore := g.Alive()
		if _, err := Ignite(g, r); err != nil {
			t.Fatalf("density %d: %v", density, err)
		}
		seen := map[core.Coord]bool{}
		prevBurned := g.Burned()
		steps := 0
		for len(g.Frontier()) > 0 {
			for _, c := range g.Frontier() {
				if seen[c] {
					t.Fatalf("density %d: %v appeared in two frontiers", density, c)
				}
				seen[c] = true
				if g.Get(c.Row, c.Col) != core.Burned {
					t.Fatalf("density %d: frontier cell %v not burned", density, c)
				}
			}
			Step(g)
			steps++
			if g.Burned() < prevBurned {
				t.Fatalf("density %d: burned count decreased", density)
			}
			prevBurned = g.Burned()
		}
		if steps > aliveBefore+1 {
			t.Fatalf("density %d: %d steps for %d trees", density, steps, aliveBefore)
		}
		if g.Burned()+g.Alive() != aliveBefore {
			t.Fatalf("density %d: burned %d + alive %d != %d", density, g.Burned(), g.Alive(), aliveBefore)
		}
	}
}

func TestIgniteEmptyForest(t *testing.T) {
	g := core.NewGrid(5, 5)
	if _, err := Ignite(g, rand.New(rand.NewPCG(1, 1))); !errors.Is(err, ErrEmptyForest) {
		t.Fatalf("Ignite on empty grid error = %v", err)
	}

	burned := fullGrid(1, 2)
	_ = IgniteAt(burned, core.Coord{})
	Burn(burned)
	if _, err := Ignite(burned, rand.New(rand.NewPCG(1, 1))); !errors.Is(err, ErrEmptyForest) {
		t.Fatalf("Ignite on burned-out grid error = %v", err)
	}
}

func TestIgniteSparseGridFindsOnlyTree(t *testing.T) {
	g := core.NewGrid(200, 200)
	g.Set(137, 58, core.Alive)
	r := rand.New(rand.NewPCG(5, 5))
	c, err := Ignite(g, r)
	if err != nil {
		t.Fatalf("Ignite: %v", err)
	}
	if c != (core.Coord{Row: 137, Col: 58}) {
		t.Fatalf("ignited %v", c)
	}
	if !slices.Equal(g.Frontier(), []core.Coord{c}) || g.Burned() != 1 {
		t.Fatalf("frontier=%v burned=%d", g.Frontier(), g.Burned())
	}
}

func TestIgniteUniform(t *testing.T) {
	const runs = 6000
	hits := map[core.Coord]int{}
	r := rand.New(rand.NewPCG(8, 2))
	trees := []core.Coord{{0, 0}, {0, 3}, {2, 1}}
	for i := 0; i < runs; i++ {
		g := core.NewGrid(3, 4)
		for _, c := range trees {
			g.Set(c.Row, c.Col, core.Alive)
		}
		c, err := Ignite(g, r)
		if err != nil {
			t.Fatalf("Ignite: %v", err)
		}
		hits[c]++
	}
	for _, c := range trees {
		if share := float64(hits[c]) / runs; share < 0.30 || share > 0.37 {
			t.Errorf("tree %v chosen %.3f of the time", c, share)
		}
	}
}

func TestIgniteAtRejectsNonTree(t *testing.T) {
	g := core.NewGrid(2, 2)
	if err := IgniteAt(g, core.Coord{Row: 1, Col: 1}); !errors.Is(err, ErrNotAlive) {
		t.Fatalf("IgniteAt empty cell error = %v", err)
	}
	if g.Burned() != 0 || len(g.Frontier()) != 0 {
		t.Fatal("failed ignition must not change the grid")
	}
}
