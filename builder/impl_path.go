// SPDX-License-Identifier: MIT
// Package: cinegraph/builder
//
// impl_path.go - implementation of Path(n) and Isolated(n).
//
// Contract:
//   - Path: n ≥ 2; edges (b+i-1)-(b+i) for i=1..n-1 in increasing order.
//   - Isolated: n ≥ 1; vertices only.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/cinegraph/core"

const (
	methodPath       = "Path"
	methodIsolated   = "Isolated"
	minPathNodes     = 2
	minIsolatedNodes = 1
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		base, err := addBlock(g, methodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = link(g, methodPath, base+i-1, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Isolated returns a Constructor that adds n vertices with no edges.
func Isolated(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minIsolatedNodes {
			return tooFew(methodIsolated, n, minIsolatedNodes)
		}
		_, err := addBlock(g, methodIsolated, n)

		return err
	}
}
