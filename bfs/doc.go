// Package bfs provides breadth-first search over a core.Graph, returning hop
// distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (arc count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (arcs) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual arcs via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Hop distances in O(V + E) without a priority queue; the movie
//     neighborhood listing ("everything within r hops") is a depth-limited BFS.
//   - Parent links record the FIRST discovery of each vertex, the strict
//     counterpart of dijkstra's default last-equal predecessor rule.
//
// Determinism
//
//	core.Graph.Neighbors returns IDs in ascending order and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Arcs|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(
//	    g, 1,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(2),
//	    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//	)
//	for depth, ids := range res.Levels() { ... }
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if core.Graph.Neighbors fails for any vertex.
//   - ErrNoPath               from Result.PathTo for an unreached vertex.
//   - Wrapped user-supplied hook errors from OnVisit; ctx.Err() on cancellation.
package bfs
