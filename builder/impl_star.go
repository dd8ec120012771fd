// SPDX-License-Identifier: MIT
// Package: cinegraph/builder
//
// impl_star.go - implementation of Star(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is the first ID of the block; leaves follow in increasing order.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/cinegraph/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		hub, err := addBlock(g, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = link(g, methodStar, hub, hub+i); err != nil {
				return err
			}
		}

		return nil
	}
}
