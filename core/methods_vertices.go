// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - Vertex catalog and adjacency share one RWMutex; queries take the read lock.
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrInvalidVertexID: if id <= 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidVertexID, id)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether the vertex ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns every vertex ID exactly once, sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// VertexCount returns the graph order |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// MaxVertexID returns the largest vertex ID, or 0 for an empty graph.
// Together with VertexCount it tells whether IDs are exactly {1..N}.
// Complexity: O(V).
func (g *Graph) MaxVertexID() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	maxID := 0
	for id := range g.vertices {
		if id > maxID {
			maxID = id
		}
	}

	return maxID
}

// ensureVertex registers id and its adjacency bucket. Caller holds the write lock.
func (g *Graph) ensureVertex(id int) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[int]struct{})
}
