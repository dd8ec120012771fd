// SPDX-License-Identifier: MIT
// Package: cinegraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Context is attached with %w at the failing constructor.
//   • Constructors never panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the minimum the
// requested constructor accepts.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that p lies outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a core insertion failure.
var ErrConstructFailed = errors.New("builder: construction failed")
