// SPDX-License-Identifier: MIT
// Package: cinegraph/builder
//
// helpers.go - shared vertex-block and edge emission helpers.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cinegraph/core"
)

// addBlock inserts n fresh vertices after the current maximum ID and returns
// the first one. The block is base, base+1, ..., base+n-1.
func addBlock(g *core.Graph, method string, n int) (int, error) {
	base := g.MaxVertexID() + 1
	for i := 0; i < n; i++ {
		if err := g.AddVertex(base + i); err != nil {
			return 0, fmt.Errorf("%s: AddVertex(%d): %w: %w", method, base+i, ErrConstructFailed, err)
		}
	}

	return base, nil
}

// link inserts u→v and v→u. On an undirected graph the second call is a
// no-op since core already mirrored the first.
func link(g *core.Graph, method string, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %w: %w", method, u, v, ErrConstructFailed, err)
	}
	if err := g.AddEdge(v, u); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %w: %w", method, v, u, ErrConstructFailed, err)
	}

	return nil
}

// tooFew formats the shared minimum-size error.
func tooFew(method string, n, minN int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minN, ErrTooFewVertices)
}
