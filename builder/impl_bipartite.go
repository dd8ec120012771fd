// SPDX-License-Identifier: MIT
// Package: cinegraph/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left part is the first n1 IDs of the block, right part the next n2.
//   - Every left vertex is linked to every right vertex; no edges inside a part.
//
// Complexity: O(n1·n2).

package builder

import "github.com/katalvlaran/cinegraph/core"

const (
	methodBipartite  = "CompleteBipartite"
	minPartitionSize = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}. It models the
// raw users-rate-movies relation before any similarity projection.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n1 < minPartitionSize {
			return tooFew(methodBipartite, n1, minPartitionSize)
		}
		if n2 < minPartitionSize {
			return tooFew(methodBipartite, n2, minPartitionSize)
		}
		base, err := addBlock(g, methodBipartite, n1+n2)
		if err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err = link(g, methodBipartite, base+i, base+n1+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
