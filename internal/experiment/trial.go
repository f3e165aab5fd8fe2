package experiment

import (
	"forestfire/internal/core"
	"forestfire/internal/fire"
	"forestfire/internal/seed"
	rng "forestfire/pkg/core"
)

// Record is the outcome of one trial.
type Record struct {
	Density       int
	Trial         int
	BurnedPercent float64
	Steps         int
}

// RunTrial seeds a fresh grid, ignites one tree and burns it out. The trial
// draws from its own random stream derived from (cfg.Seed, density, trial),
// so the result does not depend on which worker runs it. A forest without
// trees yields fire.ErrEmptyForest.
func RunTrial(cfg Config, s seed.Seeder, density, trial int) (Record, error) {
	r := rng.TrialRand(cfg.Seed, density, trial)
	g := core.NewGrid(cfg.Rows, cfg.Cols)
	s.Seed(g, density, r)
	if _, err := fire.Ignite(g, r); err != nil {
		return Record{}, err
	}
	steps := fire.Burn(g)
	return Record{
		Density:       density,
		Trial:         trial,
		BurnedPercent: g.BurnedPercent(),
		Steps:         steps,
	}, nil
}
