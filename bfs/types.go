// Package bfs provides tunable options and error definitions
// for breadth‐first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a vertex that was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	// Receives vertex ID and its depth from the start.
	OnEnqueue func(id, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(id, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip arcs by returning false.
	// Called for each arc curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: vertex → distance (in arcs) from the start.
//   - Parent: vertex → its predecessor in the BFS tree (start has none).
type Result struct {
	Start  int
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %d", ErrNoPath, dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	slices.Reverse(path)

	return path, nil
}

// Levels groups the visited vertices by depth: Levels()[d] lists, in visit
// order, every vertex at distance d.
func (r *Result) Levels() [][]int {
	var levels [][]int
	for _, v := range r.Order {
		d := r.Depth[v]
		for len(levels) <= d {
			levels = append(levels, nil)
		}
		levels[d] = append(levels[d], v)
	}

	return levels
}
