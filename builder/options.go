// SPDX-License-Identifier: MIT
// Package: cinegraph/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; the
// constructors themselves return errors.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
