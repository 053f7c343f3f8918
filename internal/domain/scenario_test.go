package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformGenerator_Range(t *testing.T) {
	gen := NewUniformGenerator(rand.New(rand.NewSource(1)))

	for i := 0; i < 1000; i++ {
		baseline, future := gen.Estimate("018989", 1.2793, 103.8544)

		assert.GreaterOrEqual(t, baseline, 0.0)
		assert.Less(t, baseline, MaxSyntheticDepth)
		assert.GreaterOrEqual(t, future, 0.0)
		assert.Less(t, future, MaxSyntheticDepth)
	}
}

func TestUniformGenerator_NoMemoization(t *testing.T) {
	gen := NewUniformGenerator(rand.New(rand.NewSource(1)))

	b1, f1 := gen.Estimate("018989", 1.2793, 103.8544)
	b2, f2 := gen.Estimate("018989", 1.2793, 103.8544)

	// Same input, fresh samples: callers must not assume repeatability.
	assert.NotEqual(t, [2]float64{b1, f1}, [2]float64{b2, f2})
}

func TestUniformGenerator_IgnoresLocation(t *testing.T) {
	genA := NewUniformGenerator(rand.New(rand.NewSource(7)))
	genB := NewUniformGenerator(rand.New(rand.NewSource(7)))

	bA, fA := genA.Estimate("018989", 1.2793, 103.8544)
	bB, fB := genB.Estimate("999999", 0, 0)

	// The placeholder draws depend only on the random source, preserving
	// the call contract for a future location-aware model.
	assert.Equal(t, bA, bB)
	assert.Equal(t, fA, fB)
}

func TestNewUniformGenerator_NilSource(t *testing.T) {
	gen := NewUniformGenerator(nil)

	baseline, future := gen.Estimate("018989", 1.2793, 103.8544)
	assert.GreaterOrEqual(t, baseline, 0.0)
	assert.Less(t, future, MaxSyntheticDepth)
}
