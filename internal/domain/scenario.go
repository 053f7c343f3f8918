package domain

import (
	"math/rand"
	"sync"
)

// MaxSyntheticDepth bounds the placeholder depth distribution in meters.
const MaxSyntheticDepth = 1.5

// ScenarioGenerator produces flood-depth estimates for a location.
type ScenarioGenerator interface {
	// Estimate returns the baseline and RCP8.5 flood depths in meters for
	// the given postal code and coordinates. Implementations may ignore the
	// arguments; the signature carries full positional context so a real
	// model can be substituted without changing callers.
	Estimate(postalCode string, lat, lon float64) (baseline, future float64)
}

// UniformGenerator is the placeholder ScenarioGenerator. Each depth is drawn
// independently from Uniform[0, 1.5); repeated calls for the same input yield
// different values, and callers must not assume repeatability.
type UniformGenerator struct {
	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// NewUniformGenerator creates a generator backed by the given source. A nil
// rng falls back to a source seeded from the global generator.
func NewUniformGenerator(rng *rand.Rand) *UniformGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &UniformGenerator{rng: rng}
}

// Estimate ignores its positional arguments and samples two independent
// synthetic depths.
func (g *UniformGenerator) Estimate(_ string, _, _ float64) (float64, float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64() * MaxSyntheticDepth, g.rng.Float64() * MaxSyntheticDepth
}
