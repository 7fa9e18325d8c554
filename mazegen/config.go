// SPDX-License-Identifier: MIT
// Package: mazenav/mazegen
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   - generatorConfig is the single source of truth for all carve knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newGeneratorConfig applies options in order (later overrides earlier).

package mazegen

import (
	"math/rand"
)

// Deterministic defaults (named, no magic numbers).
const (
	// defaultSeed feeds the RNG when neither WithSeed nor WithRand is given.
	defaultSeed int64 = 1
	// defaultAlgorithm is Wilson, the only strategy of the three that
	// samples spanning trees uniformly.
	defaultAlgorithm = Wilson
)

// generatorConfig aggregates all knobs used by Generate.
// It is resolved once per call and never escapes the package.
type generatorConfig struct {
	// rng drives every random choice; never nil after resolution.
	rng *rand.Rand
	// algorithm selects the carving strategy.
	algorithm Algorithm
}

// newGeneratorConfig builds the default config and applies opts in order;
// last-wins semantics.
// Complexity: O(len(opts)) time, O(1) space.
func newGeneratorConfig(opts ...Option) generatorConfig {
	cfg := generatorConfig{
		rng:       rand.New(rand.NewSource(defaultSeed)),
		algorithm: defaultAlgorithm,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
