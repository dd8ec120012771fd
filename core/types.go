// SPDX-License-Identifier: MIT
// Package core defines the central Graph type over positive integer vertex IDs,
// the Distance optional value shared by the shortest-path packages, and the
// sentinel errors used across graph construction and queries.
//
// This file declares Graph, GraphOption, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrInvalidVertexID - vertex ID is zero or negative.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrLoopNotAllowed  - self-loop u→u requested.
//	ErrEmptyGraph      - query requires at least one vertex.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertexID indicates a vertex ID outside the positive integers.
	ErrInvalidVertexID = errors.New("core: vertex ID must be positive")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrEmptyGraph indicates a query that needs at least one vertex ran on an empty graph.
	ErrEmptyGraph = errors.New("core: graph has no vertices")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithUndirected makes AddEdge insert the mirror arc v→u together with u→v.
// EdgeCount still counts arcs, so one undirected edge contributes two.
func WithUndirected() GraphOption {
	return func(g *Graph) { g.undirected = true }
}

// Graph is an in-memory graph of unit-weight arcs between positive integer vertices.
//
// Arcs are stored as adjacency sets: adjacency[from][to] = struct{}{}.
// Parallel arcs collapse into one and self-loops are rejected, so the graph is
// always simple. mu guards vertices, adjacency and arcCount; algorithms only read.
type Graph struct {
	mu sync.RWMutex

	undirected bool // mirror every AddEdge

	vertices  map[int]struct{}
	adjacency map[int]map[int]struct{}
	arcCount  int
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is directed: AddEdge(u, v) inserts only u→v.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[int]struct{}),
		adjacency: make(map[int]map[int]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Undirected reports whether AddEdge mirrors arcs automatically.
func (g *Graph) Undirected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.undirected
}
