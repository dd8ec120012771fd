// SPDX-License-Identifier: MIT
// Package: cinegraph/builder
//
// impl_cycle.go - implementation of Cycle(n).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges (b+i)-(b+(i+1)%n) for i=0..n-1 in increasing order.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/cinegraph/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, n, minCycleNodes)
		}
		base, err := addBlock(g, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = link(g, methodCycle, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
