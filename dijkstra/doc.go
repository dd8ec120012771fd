// Package dijkstra implements single-source shortest paths on unit-weight
// graphs, built on the indexed min-heap from package pqueue.
//
// Overview:
//
//   - Every vertex starts in the queue: the source at 0, the rest unreached.
//   - Each pop settles the closest vertex u and relaxes its out-arcs with
//     the candidate dist[u]+1, lowering the neighbor's priority in place.
//   - Distances are core.Distance values, so "unreached + 1" stays unreached
//     and no sentinel arithmetic can wrap around.
//
// Relaxation rule:
//
//	By default a candidate equal to the current distance is accepted
//	(RelaxLastEqual), so the predecessor map records the LAST relaxation at
//	the final distance rather than the first. Path printing depends on this.
//	WithRelaxation(RelaxFirstFound) switches to the strict rule.
//
// API:
//
//	Dijkstra(g, source, opts...) (prev map[int]int, err error)
//	Run(g, source, opts...)      (*Result, error)
//	PathTo(prev, source, target) ([]int, error)
//	(*Result).PathTo(target)     ([]int, error)
//
// A vertex absent from the predecessor map is either the source or unreached.
//
// Errors:
//
//   - ErrNilGraph: nil graph.
//   - ErrVertexNotFound: source or target not in the graph; wraps
//     core.ErrVertexNotFound.
//   - ErrUnreachable: path requested to a vertex that was not reached.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Thread safety:
//
//	A run only reads the graph. Mutating the graph during a run is not supported.
package dijkstra
