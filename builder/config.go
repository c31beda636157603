// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn = identity (index i is vertex i)
//   • rng  = nil      (pure/deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> vertex label.
	idFn func(int) int
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: identityID}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func identityID(i int) int { return i }
