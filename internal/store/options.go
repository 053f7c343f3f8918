package store

import (
	"math/rand"

	"github.com/jonboulle/clockwork"
)

// Option configures a Store at construction time.
type Option func(*Store)

// WithRand sets the random source used for flag sampling. Tests inject a
// seeded source for reproducible flags.
func WithRand(rng *rand.Rand) Option {
	return func(s *Store) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithClock sets the time source used for the load timestamp.
func WithClock(c clockwork.Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithFlagProbabilities overrides the Bernoulli probabilities for the
// flood-prone and flood-hotspot flags. Values outside [0, 1] are ignored.
func WithFlagProbabilities(prone, hotspot float64) Option {
	return func(s *Store) {
		if prone >= 0 && prone <= 1 {
			s.proneProb = prone
		}
		if hotspot >= 0 && hotspot <= 1 {
			s.hotspotProb = hotspot
		}
	}
}
