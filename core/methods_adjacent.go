// SPDX-License-Identifier: MIT
// File: methods_adjacent.go
// Role: Neighborhood and degree queries.
//
// Determinism:
//   - Neighbors() returns out-neighbors sorted ascending.
//   - MaxDegreeVertex() breaks ties toward the smallest vertex ID.
package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the out-neighbors of id, sorted ascending. A vertex with no
// arcs yields an empty, non-nil slice.
//
// Errors:
//   - ErrVertexNotFound: if id is not in the graph.
//
// Complexity: O(d log d), d = out-degree of id.
func (g *Graph) Neighbors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}
	out := make([]int, 0, len(nbrs))
	for to := range nbrs {
		out = append(out, to)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the out-degree of id. For graphs where every edge was inserted
// in both directions this equals the undirected degree.
//
// Errors:
//   - ErrVertexNotFound: if id is not in the graph.
//
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, id)
	}

	return len(nbrs), nil
}

// MaxDegreeVertex returns the vertex with the largest out-degree. On ties the
// smallest vertex ID wins, so the answer is stable across runs.
//
// Errors:
//   - ErrEmptyGraph: if the graph has no vertices.
//
// Complexity: O(V).
func (g *Graph) MaxDegreeVertex() (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.vertices) == 0 {
		return 0, ErrEmptyGraph
	}

	best, bestDeg := 0, -1
	for id, nbrs := range g.adjacency {
		d := len(nbrs)
		if d > bestDeg || (d == bestDeg && id < best) {
			best, bestDeg = id, d
		}
	}

	return best, nil
}
