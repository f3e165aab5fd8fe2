// Package experiment sweeps tree densities, runs independent burn trials for
// each and reduces them to an averaged series plus the density that leaves
// the most trees standing.
package experiment

import (
	"errors"
	"fmt"

	"forestfire/internal/seed"
)

// ErrInvalidConfig wraps every configuration rejection.
var ErrInvalidConfig = errors.New("experiment: invalid config")

// Config controls a density sweep.
type Config struct {
	Rows int
	Cols int

	// DensityStep is the density increment in percent between sweep points.
	DensityStep int
	// Trials is the number of independent trials averaged per density.
	Trials int
	// Strategy names the seeding strategy (see seed.Names).
	Strategy string

	Seed    int64
	Workers int
}

// DefaultConfig mirrors the shipped YAML defaults.
func DefaultConfig() Config {
	return Config{
		Rows:        100,
		Cols:        100,
		DensityStep: 10,
		Trials:      10,
		Strategy:    seed.ExactName,
		Seed:        1,
	}
}

// Validate rejects configurations the sweep cannot run.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0:
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidConfig, c.Rows)
	case c.Cols <= 0:
		return fmt.Errorf("%w: cols must be positive, got %d", ErrInvalidConfig, c.Cols)
	case c.DensityStep <= 0:
		return fmt.Errorf("%w: density step must be positive, got %d", ErrInvalidConfig, c.DensityStep)
	case c.DensityStep > 100:
		return fmt.Errorf("%w: density step %d never reaches a density within 100%%", ErrInvalidConfig, c.DensityStep)
	case c.Trials <= 0:
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, c.Trials)
	}
	if _, err := seed.Lookup(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// TotalCells returns Rows*Cols.
func (c Config) TotalCells() int { return c.Rows * c.Cols }

// Densities returns step, 2*step, ... up to and including 100 when step
// divides it.
func Densities(step int) []int {
	if step <= 0 {
		return nil
	}
	var out []int
	for d := step; d <= 100; d += step {
		out = append(out, d)
	}
	return out
}
