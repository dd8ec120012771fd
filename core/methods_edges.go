// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Arc insertion and existence queries.
//
// Policy:
//   - Arcs are unit weight; there is no weight parameter.
//   - Missing endpoints are auto-added (same as the vertex catalog would).
//   - Re-adding an existing arc is a no-op and does not change EdgeCount.
package core

import "fmt"

// AddEdge inserts the arc from→to, and to→from as well when the graph was
// created WithUndirected.
//
// Errors:
//   - ErrInvalidVertexID: if either endpoint is <= 0.
//   - ErrLoopNotAllowed: if from == to.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int) error {
	if from <= 0 || to <= 0 {
		return fmt.Errorf("%w: edge %d→%d", ErrInvalidVertexID, from, to)
	}
	if from == to {
		return fmt.Errorf("%w: vertex %d", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(from)
	g.ensureVertex(to)
	g.addArc(from, to)
	if g.undirected {
		g.addArc(to, from)
	}

	return nil
}

// HasEdge reports whether the arc from→to exists. Unknown vertices yield false.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[from]
	if !ok {
		return false
	}
	_, ok = nbrs[to]

	return ok
}

// EdgeCount returns the number of arcs. An edge inserted in both directions
// counts twice.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.arcCount
}

// addArc records from→to once. Caller holds the write lock.
func (g *Graph) addArc(from, to int) {
	if _, exists := g.adjacency[from][to]; exists {
		return
	}
	g.adjacency[from][to] = struct{}{}
	g.arcCount++
}
