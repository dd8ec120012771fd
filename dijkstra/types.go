// SPDX-License-Identifier: MIT
// File: types.go
// Role: Sentinel errors, the relaxation policy, options and the Result type.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cinegraph/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates the source or a queried target is not a
	// vertex of the graph. It wraps core.ErrVertexNotFound.
	ErrVertexNotFound = fmt.Errorf("dijkstra: %w", core.ErrVertexNotFound)

	// ErrUnreachable indicates there is no path from the source to the target.
	ErrUnreachable = errors.New("dijkstra: target unreachable from source")

	// ErrBadRelaxation indicates an unknown Relaxation value was configured.
	ErrBadRelaxation = errors.New("dijkstra: unknown relaxation rule")
)

// Relaxation selects how a candidate distance equal to the current one is treated.
type Relaxation int

const (
	// RelaxLastEqual accepts alt <= dist[v]. A later path of equal length
	// overwrites the predecessor, so Prev records the last relaxation at the
	// final distance. This is the default.
	RelaxLastEqual Relaxation = iota

	// RelaxFirstFound accepts only alt < dist[v]. Prev records the first
	// shortest path discovered, matching bfs parent links.
	RelaxFirstFound
)

// String returns the option spelling of r.
func (r Relaxation) String() string {
	switch r {
	case RelaxLastEqual:
		return "last-equal"
	case RelaxFirstFound:
		return "first-found"
	default:
		return fmt.Sprintf("Relaxation(%d)", int(r))
	}
}

// Options configures a Dijkstra run.
type Options struct {
	Relaxation Relaxation // tie rule applied during edge relaxation
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithRelaxation sets the tie rule. Unknown values panic, in line with the
// other option constructors of this module.
func WithRelaxation(r Relaxation) Option {
	if r != RelaxLastEqual && r != RelaxFirstFound {
		panic(fmt.Sprintf("%s: %d", ErrBadRelaxation, int(r)))
	}

	return func(o *Options) {
		o.Relaxation = r
	}
}

// DefaultOptions returns Options with RelaxLastEqual.
func DefaultOptions() Options {
	return Options{Relaxation: RelaxLastEqual}
}

// Result is the full outcome of a run.
//
// Dist holds an entry for every vertex of the graph; unreached vertices map
// to core.Unreachable. Prev holds an entry only for vertices reached from the
// source through at least one arc, so the source and unreached vertices are
// absent.
type Result struct {
	Source int
	Dist   map[int]core.Distance
	Prev   map[int]int
}
