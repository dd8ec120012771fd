// SPDX-License-Identifier: MIT
// Package matrix: functional options for FloydWarshall.

package matrix

import "fmt"

// DefaultMaxVertices bounds FloydWarshall unless overridden. At this order
// the matrix needs ~400 MB and 1.25e11 relaxations.
const DefaultMaxVertices = 5000

// Options configures FloydWarshall.
type Options struct {
	// MaxVertices is the largest vertex count accepted; 0 disables the check.
	MaxVertices int
}

// Option mutates Options.
type Option func(*Options)

// WithMaxVertices sets the vertex-count limit. 0 disables it.
// Panics on a negative value.
func WithMaxVertices(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("matrix: WithMaxVertices(%d): limit must be >= 0", n))
	}

	return func(o *Options) {
		o.MaxVertices = n
	}
}

// DefaultOptions returns Options with MaxVertices = DefaultMaxVertices.
func DefaultOptions() Options {
	return Options{MaxVertices: DefaultMaxVertices}
}

// gatherOptions applies user options over the defaults.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, opt := range user {
		opt(&o)
	}

	return o
}
