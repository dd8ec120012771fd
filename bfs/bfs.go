// Package bfs provides breadth-first search over a core.Graph,
// returning hop distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/cinegraph/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[int]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any user-supplied hook error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, calls OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(id, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each unseen
// neighbor. The first discovery fixes a vertex's parent.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %d: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.res.Parent[nbr] = item.id
		w.enqueue(nbr, nextDepth)
	}

	return nil
}
