// SPDX-License-Identifier: MIT
// File: gonum.go
// Role: Export adapter to gonum's graph model.
//
// The export lets callers run gonum's algorithm suite (path, topo, network)
// against the same topology, and gives tests an independent reference
// implementation to compare against.
package core

import (
	"gonum.org/v1/gonum/graph/simple"
)

// Gonum returns a snapshot of g as a *simple.DirectedGraph. Vertex IDs map to
// node IDs one to one; every arc becomes a directed gonum edge of unit weight.
// Complexity: O(V + E).
func (g *Graph) Gonum() *simple.DirectedGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	dg := simple.NewDirectedGraph()
	for id := range g.vertices {
		dg.AddNode(simple.Node(int64(id)))
	}
	for from, nbrs := range g.adjacency {
		for to := range nbrs {
			dg.SetEdge(dg.NewEdge(simple.Node(int64(from)), simple.Node(int64(to))))
		}
	}

	return dg
}
