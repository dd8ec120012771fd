// SPDX-License-Identifier: MIT
// Package: cinegraph/builder
//
// config.go - internal configuration resolved once per BuildGraph call.
//
// Deterministic defaults:
//   • rng = nil (pure/deterministic unless seeded)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
}

// newBuilderConfig applies options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
