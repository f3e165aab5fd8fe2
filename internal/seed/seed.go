// Package seed fills fresh grids with living trees at a target density.
//
// Strategies register themselves by name so configuration can select one
// without the caller importing it directly.
package seed

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"

	"forestfire/internal/core"
)

// ErrUnknownStrategy is returned by Lookup for unregistered names.
var ErrUnknownStrategy = errors.New("seed: unknown strategy")

// Seeder marks Target(density, g.Len()) cells of an all-empty grid Alive.
// Density is a percentage and is clamped to [0, 100].
type Seeder interface {
	Seed(g *core.Grid, density int, r *rand.Rand)
}

// SeederFunc adapts a plain function to the Seeder interface.
type SeederFunc func(g *core.Grid, density int, r *rand.Rand)

// Seed calls f.
func (f SeederFunc) Seed(g *core.Grid, density int, r *rand.Rand) { f(g, density, r) }

var seeders = map[string]Seeder{}

// Register adds a strategy under the provided name.
func Register(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	seeders[name] = s
}

// Lookup returns the strategy registered under name.
func Lookup(name string) (Seeder, error) {
	s, ok := seeders[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownStrategy, name)
	}
	return s, nil
}

// Names lists the registered strategies in sorted order.
func Names() []string {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Target returns ceil(density/100 * total), computed in integers.
func Target(density, total int) int {
	density = ClampDensity(density)
	return (density*total + 99) / 100
}

// ClampDensity limits a density percentage to [0, 100].
func ClampDensity(density int) int {
	if density < 0 {
		return 0
	}
	if density > 100 {
		return 100
	}
	return density
}
