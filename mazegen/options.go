// SPDX-License-Identifier: MIT
// Package: mazenav/mazegen
//
// options.go - functional options for the mazegen package.
//
// Contract (strict):
//   - Options are functional (type Option func(*generatorConfig)).
//   - Option constructors validate and panic on meaningless inputs;
//     Generate itself never panics.
//   - Determinism is explicit: seeding goes through WithSeed or WithRand.
//   - No hidden globals; everything flows through generatorConfig.

package mazegen

import (
	"fmt"
	"math/rand"
)

// Option customizes Generate by mutating the resolved generatorConfig.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*generatorConfig)

// WithSeed locks the RNG to a deterministic seed. Equal seeds with equal
// options and start/goal produce identical mazes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(cfg *generatorConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for the carve. Panics on nil; prefer
// WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("mazegen: WithRand(nil)")
	}
	return func(cfg *generatorConfig) {
		cfg.rng = r
	}
}

// WithAlgorithm selects the carving strategy. Panics on values outside
// the declared Algorithm set.
// Complexity: O(1) time, O(1) space.
func WithAlgorithm(a Algorithm) Option {
	if a > Kruskal {
		panic(fmt.Sprintf("mazegen: WithAlgorithm(%v)", a))
	}
	return func(cfg *generatorConfig) {
		cfg.algorithm = a
	}
}
