// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - All-pairs shortest hop counts over a core.Graph (Floyd–Warshall).
//
// Contract:
//   - Vertex IDs are exactly {1..N}; row/column i is vertex i.
//   - Unreachable is core.Unreachable, never a large integer; a candidate
//     through k is tested for reachability before it is compared.
//
// Determinism:
//   - Fixed k → i → j loop order; strict improvement only.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/cinegraph/core"
)

const opFloydWarshall = "FloydWarshall"

// FloydWarshall builds the N×N shortest-path matrix of g.
//
// Errors:
//   - ErrGraphNil: g is nil.
//   - ErrTooLarge: N exceeds Options.MaxVertices (checked before allocating).
//   - ErrNonContiguousIDs: the vertex set is not {1..N}.
//
// Complexity: O(N³) time, O(N²) space.
func FloydWarshall(g *core.Graph, opts ...Option) (*DistanceMatrix, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", opFloydWarshall, ErrGraphNil)
	}
	o := gatherOptions(opts...)

	n := g.VertexCount()
	if o.MaxVertices > 0 && n > o.MaxVertices {
		return nil, fmt.Errorf("%s: %d vertices > limit %d (%s): %w",
			opFloydWarshall, n, o.MaxVertices, EstimateCost(n), ErrTooLarge)
	}
	// IDs are positive and distinct, so max == count iff the set is {1..N}.
	if maxID := g.MaxVertexID(); maxID != n {
		return nil, fmt.Errorf("%s: %d vertices, max ID %d: %w",
			opFloydWarshall, n, maxID, ErrNonContiguousIDs)
	}

	d, err := NewDistanceMatrix(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opFloydWarshall, err)
	}
	if err = initDistances(g, d); err != nil {
		return nil, fmt.Errorf("%s: %w", opFloydWarshall, err)
	}
	floydWarshallInPlace(d)

	return d, nil
}

// initDistances writes 1 for every arc; the diagonal is already 0.
func initDistances(g *core.Graph, d *DistanceMatrix) error {
	one := core.Hops(1)
	for u := 1; u <= d.n; u++ {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		for _, v := range nbrs {
			if err = d.Set(u, v, one); err != nil {
				return err
			}
		}
	}

	return nil
}

// floydWarshallInPlace relaxes d over every intermediate vertex.
// Works on the flat buffer directly; no allocations inside the loops.
func floydWarshallInPlace(d *DistanceMatrix) {
	n := d.n
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, cand     core.Distance
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if !ik.IsReachable() {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				cand = ik.Add(data[baseK+j])
				if !cand.IsReachable() {
					continue
				}
				if cand.Less(data[baseI+j]) {
					data[baseI+j] = cand
				}
			}
		}
	}
}
