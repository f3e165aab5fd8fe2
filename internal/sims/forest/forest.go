// Package forest adapts a single burn trial to the viewer's Sim contract:
// each Step advances the fire one ring and Cells returns a display buffer.
package forest

import (
	"errors"
	"math/rand/v2"
	"strconv"

	"forestfire/internal/core"
	"forestfire/internal/fire"
	"forestfire/internal/seed"
	rng "forestfire/pkg/core"
)

// Display values written into the Cells buffer.
const (
	DisplayEmpty uint8 = iota
	DisplayAlive
	DisplayBurned
	DisplayFront
)

// Config controls the viewer trial.
type Config struct {
	Rows     int
	Cols     int
	Density  int
	Strategy string
	Seed     int64
}

var _ core.Sim = (*World)(nil)

// World is one interactive trial.
type World struct {
	cfg    Config
	seeder seed.Seeder

	grid    *core.Grid
	rng     *rand.Rand
	display []uint8
	steps   int
	empty   bool
}

// New builds a World; Reset must be called before the first Step.
func New(cfg Config) (*World, error) {
	s, err := seed.Lookup(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, errors.New("forest: grid dimensions must be positive")
	}
	cfg.Density = seed.ClampDensity(cfg.Density)
	return &World{
		cfg:     cfg,
		seeder:  s,
		display: make([]uint8, cfg.Rows*cfg.Cols),
	}, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "forest" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Cols, H: w.cfg.Rows} }

// Reset seeds a fresh forest and ignites one random tree. A zero seed reuses
// the configured one.
func (w *World) Reset(s int64) {
	if s == 0 {
		s = w.cfg.Seed
	}
	w.cfg.Seed = s
	w.rng = rng.NewRand(s, 0)
	w.grid = core.NewGrid(w.cfg.Rows, w.cfg.Cols)
	w.seeder.Seed(w.grid, w.cfg.Density, w.rng)
	w.steps = 0
	_, err := fire.Ignite(w.grid, w.rng)
	w.empty = errors.Is(err, fire.ErrEmptyForest)
	w.refresh()
}

// Step advances the fire by one ring. It is a no-op once the fire is out.
func (w *World) Step() {
	if w.grid == nil || w.Done() {
		return
	}
	fire.Step(w.grid)
	w.steps++
	w.refresh()
}

// Ignite starts an additional fire at (row, col) if a tree stands there.
func (w *World) Ignite(row, col int) bool {
	if w.grid == nil || !w.grid.InBounds(row, col) {
		return false
	}
	if err := fire.IgniteAt(w.grid, core.Coord{Row: row, Col: col}); err != nil {
		return false
	}
	w.empty = false
	w.refresh()
	return true
}

// Cells exposes the display buffer.
func (w *World) Cells() []uint8 { return w.display }

// Grid exposes the underlying grid for read-only inspection.
func (w *World) Grid() *core.Grid { return w.grid }

// Done reports whether the frontier is exhausted.
func (w *World) Done() bool { return w.grid == nil || len(w.grid.Frontier()) == 0 }

// Steps returns the number of steps taken since Reset.
func (w *World) Steps() int { return w.steps }

// Empty reports whether the last Reset produced a forest without trees.
func (w *World) Empty() bool { return w.empty }

// Burned returns the number of burned cells.
func (w *World) Burned() int {
	if w.grid == nil {
		return 0
	}
	return w.grid.Burned()
}

// BurnedPercent returns the share of all cells that burned.
func (w *World) BurnedPercent() float64 {
	if w.grid == nil {
		return 0
	}
	return w.grid.BurnedPercent()
}

func (w *World) refresh() {
	for i, s := range w.grid.Cells() {
		switch s {
		case core.Alive:
			w.display[i] = DisplayAlive
		case core.Burned:
			w.display[i] = DisplayBurned
		default:
			w.display[i] = DisplayEmpty
		}
	}
	for _, c := range w.grid.Frontier() {
		w.display[c.Row*w.cfg.Cols+c.Col] = DisplayFront
	}
}

// Parameters reports the current settings and burn statistics.
func (w *World) Parameters() core.ParameterSnapshot {
	alive := 0
	if w.grid != nil {
		alive = w.grid.Alive()
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Forest",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows", w.cfg.Rows),
				core.IntParam("cols", "Cols", w.cfg.Cols),
				core.IntParam("density", "Density %", w.cfg.Density),
				core.StringParam("strategy", "Strategy", w.cfg.Strategy),
				core.StringParam("seed", "Seed", strconv.FormatInt(w.cfg.Seed, 10)),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				core.IntParam("steps", "Steps", w.steps),
				core.IntParam("alive", "Alive", alive),
				core.IntParam("burned", "Burned", w.Burned()),
				core.FloatParam("burned_pct", "Burned %", w.BurnedPercent(), 2),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable settings.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "density", Label: "Density %", Step: 5, Min: 0, Max: 100},
	}
}

// SetIntParameter updates an adjustable setting and restarts the trial with
// the same seed.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "density":
		for _, ctrl := range w.ParameterControls() {
			if ctrl.Key == key {
				value = ctrl.Clamp(value)
			}
		}
		if value == w.cfg.Density {
			return false
		}
		w.cfg.Density = value
		w.Reset(w.cfg.Seed)
		return true
	default:
		return false
	}
}
