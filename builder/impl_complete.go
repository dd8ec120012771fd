// SPDX-License-Identifier: MIT
// Package: cinegraph/builder
//
// impl_complete.go - implementation of Complete(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Every unordered pair {i<j} is linked, i asc then j asc.
//
// Complexity: O(n²).

package builder

import "github.com/katalvlaran/cinegraph/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, n, minCompleteNodes)
		}
		base, err := addBlock(g, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = link(g, methodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
