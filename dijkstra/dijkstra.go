// SPDX-License-Identifier: MIT
// File: dijkstra.go
// Role: Unit-weight single-source shortest paths over an indexed min-heap.
//
// Policy:
//   - Every vertex enters the queue up front; improvements use ChangePriority
//     (eager decrease-key, no stale entries).
//   - An unreached distance is queued under rank math.MaxInt. The rank only
//     orders the heap; distances themselves are core.Distance values and are
//     never derived from the rank.
//   - A popped vertex whose distance is still unreachable relaxes nothing.
//
// Determinism:
//   - Vertices are queued in ascending ID order and neighbors are visited in
//     ascending ID order, so Prev is reproducible run to run.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cinegraph/core"
	"github.com/katalvlaran/cinegraph/pqueue"
)

// unreachedRank is the heap priority of a vertex with no known distance.
const unreachedRank = math.MaxInt

// Dijkstra returns the predecessor map of a run from source. See Run for the
// meaning of the map and the errors.
func Dijkstra(g *core.Graph, source int, opts ...Option) (map[int]int, error) {
	res, err := Run(g, source, opts...)
	if err != nil {
		return nil, err
	}

	return res.Prev, nil
}

// Run computes hop distances from source to every vertex of g and the
// predecessor of every reached vertex.
//
// Errors:
//   - ErrNilGraph: g is nil.
//   - ErrVertexNotFound: source is not a vertex of g.
//
// Complexity: O((V + E) log V) time, O(V) space.
func Run(g *core.Graph, source int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}

	r := &runner{
		g:      g,
		source: source,
		opts:   cfg,
	}
	if err := r.init(); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g      *core.Graph
	source int
	opts   Options
	dist   map[int]core.Distance
	prev   map[int]int
	pq     *pqueue.IndexedMinPQ
}

// init seeds distances and enqueues every vertex.
func (r *runner) init() error {
	vertices := r.g.Vertices()
	r.dist = make(map[int]core.Distance, len(vertices))
	r.prev = make(map[int]int, len(vertices))
	r.pq = pqueue.New(len(vertices))

	for _, v := range vertices {
		r.dist[v] = core.Unreachable
	}
	r.dist[r.source] = core.Hops(0)

	for _, v := range vertices {
		if err := r.pq.Push(rank(r.dist[v]), v); err != nil {
			return fmt.Errorf("dijkstra: enqueue %d: %w", v, err)
		}
	}

	return nil
}

// process pops vertices in distance order and relaxes their out-arcs.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		u, _, err := r.pq.Pop()
		if err != nil {
			return fmt.Errorf("dijkstra: pop: %w", err)
		}

		alt := r.dist[u].Add(core.Hops(1))
		if !alt.IsReachable() {
			// everything still queued is unreached as well
			continue
		}

		nbrs, err := r.g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
		}
		for _, v := range nbrs {
			if !r.improves(alt, r.dist[v]) {
				continue
			}
			r.dist[v] = alt
			r.prev[v] = u
			if r.pq.IsPresent(v) {
				if err = r.pq.ChangePriority(rank(alt), v); err != nil {
					return fmt.Errorf("dijkstra: decrease %d: %w", v, err)
				}
			}
		}
	}

	return nil
}

// improves applies the configured tie rule.
func (r *runner) improves(alt, cur core.Distance) bool {
	if r.opts.Relaxation == RelaxFirstFound {
		return alt.Less(cur)
	}

	return alt.LessOrEqual(cur)
}

// rank maps a distance to its heap priority.
func rank(d core.Distance) int {
	if h, ok := d.Value(); ok {
		return h
	}

	return unreachedRank
}
