// SPDX-License-Identifier: MIT
// Package: cinegraph/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Each constructor numbers its vertices as a fresh block starting at
//     g.MaxVertexID()+1, so constructors compose without ID clashes.
//   - Every edge is inserted as both arcs, matching how the movie graph is built.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cinegraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partial graph is discarded.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Whatever the failing constructor returned (ErrTooFewVertices, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Path builds a simple path P_n (n ≥ 2).
// Cycle builds a simple cycle C_n (n ≥ 3).
// Complete builds K_n (n ≥ 1).
// Star builds a hub plus n-1 leaves (n ≥ 2); the hub is the block's first ID.
// Wheel builds a hub joined to a ring C_{n-1} (n ≥ 4).
// CompleteBipartite builds K_{n1,n2} (n1, n2 ≥ 1).
// Isolated adds n vertices and no edges (n ≥ 1).
// RandomSparse samples each unordered pair with probability p (n ≥ 1).
// Implementations live in impl_*.go.
