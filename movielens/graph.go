// SPDX-License-Identifier: MIT
// File: graph.go
// Role: Movie-similarity graph construction.
//
// Policy:
//   - Every movie becomes a vertex, isolated or not.
//   - A qualifying pair (a, b) yields both arcs a→b and b→a.
//   - Counting runs per movie over the raters' rating lists, so the cost is
//     Σ over users of (movies rated)², not movies² × users.
//
// Determinism:
//   - Vertex IDs follow ascending movie ID; the resulting graph does not depend
//     on map iteration order.
package movielens

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/cinegraph/core"
)

// DefaultThreshold is the minimum number of supporting users for an edge.
const DefaultThreshold = 12

// Adjacency selects which users support an edge between two movies.
type Adjacency int

const (
	// SameRating counts users who gave both movies the same rating.
	SameRating Adjacency = iota + 1
	// SharedRaters counts users who rated both movies.
	SharedRaters
)

func (a Adjacency) String() string {
	switch a {
	case SameRating:
		return "same-rating"
	case SharedRaters:
		return "shared-raters"
	default:
		return fmt.Sprintf("Adjacency(%d)", int(a))
	}
}

// ParseAdjacency accepts "same-rating", "shared-raters", "1" or "2",
// case-insensitively.
func ParseAdjacency(s string) (Adjacency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "same-rating", "1":
		return SameRating, nil
	case "shared-raters", "2":
		return SharedRaters, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAdjacency, s)
	}
}

// Options configure BuildGraph.
type Options struct {
	Adjacency Adjacency
	Threshold int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns SameRating with DefaultThreshold.
func DefaultOptions() Options {
	return Options{Adjacency: SameRating, Threshold: DefaultThreshold}
}

// WithAdjacency selects the edge policy. Panics on an unknown value.
func WithAdjacency(a Adjacency) Option {
	if a != SameRating && a != SharedRaters {
		panic(fmt.Sprintf("movielens: WithAdjacency(%d): unknown policy", int(a)))
	}

	return func(o *Options) { o.Adjacency = a }
}

// WithThreshold sets the minimum support for an edge. Panics if n < 1.
func WithThreshold(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("movielens: WithThreshold(%d): must be >= 1", n))
	}

	return func(o *Options) { o.Threshold = n }
}

// userRating is one entry of a user's rating list, keyed by vertex.
type userRating struct {
	vertex int
	value  float64
}

// BuildGraph turns ds into a similarity graph over dense vertex IDs and
// returns the Index that maps them back to movie IDs.
//
// Errors: ErrNilDataset.
func BuildGraph(ds *Dataset, opts ...Option) (*core.Graph, *Index, error) {
	if ds == nil {
		return nil, nil, ErrNilDataset
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ids := ds.MovieIDs()
	idx := NewIndex(ids)
	g := core.NewGraph(core.WithUndirected())
	for v := 1; v <= idx.Len(); v++ {
		if err := g.AddVertex(v); err != nil {
			return nil, nil, fmt.Errorf("movielens: %w", err)
		}
	}

	byUser := ratingsByUser(ds, ids)
	counts := make([]int, idx.Len()+1)
	var touched []int

	for i, id := range ids {
		a := i + 1
		m := ds.movies[id]
		for user, mine := range m.Ratings {
			for _, r := range byUser[user] {
				if r.vertex <= a {
					continue
				}
				if o.Adjacency == SameRating && r.value != mine {
					continue
				}
				if counts[r.vertex] == 0 {
					touched = append(touched, r.vertex)
				}
				counts[r.vertex]++
			}
		}

		slices.Sort(touched)
		for _, b := range touched {
			if counts[b] >= o.Threshold {
				if err := g.AddEdge(a, b); err != nil {
					return nil, nil, fmt.Errorf("movielens: edge %d-%d: %w", a, b, err)
				}
			}
			counts[b] = 0
		}
		touched = touched[:0]
	}

	return g, idx, nil
}

// ratingsByUser inverts the per-movie rating maps. Each list is ordered by
// vertex because ids is walked in ascending order.
func ratingsByUser(ds *Dataset, ids []int) map[int][]userRating {
	byUser := make(map[int][]userRating)
	for i, id := range ids {
		for user, value := range ds.movies[id].Ratings {
			byUser[user] = append(byUser[user], userRating{vertex: i + 1, value: value})
		}
	}

	return byUser
}
