package core

import "math/rand/v2"

// NewRand returns a deterministic PCG generator for seed on the given stream.
// Distinct streams under the same seed are independent sequences.
func NewRand(seed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), stream))
}

// TrialStream packs a density and a trial index into a PCG stream selector so
// each (density, trial) pair draws from its own sequence regardless of which
// worker runs it.
func TrialStream(density, trial int) uint64 {
	return uint64(uint32(density))<<32 | uint64(uint32(trial))
}

// TrialRand is NewRand on TrialStream(density, trial).
func TrialRand(seed int64, density, trial int) *rand.Rand {
	return NewRand(seed, TrialStream(density, trial))
}
