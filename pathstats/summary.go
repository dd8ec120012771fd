// SPDX-License-Identifier: MIT
// File: summary.go
// Role: One-call graph report combining the reductions in stats.go.
package pathstats

import (
	"fmt"

	"github.com/katalvlaran/cinegraph/core"
	"github.com/katalvlaran/cinegraph/matrix"
)

// Summary is the full statistics report of a graph.
type Summary struct {
	Vertices        int
	Edges           int // arcs
	Density         float64
	MaxDegree       int
	MaxDegreeVertex int
	Diameter        int
	DiameterFrom    int
	DiameterTo      int
	AveragePath     float64
}

// Summarize runs Floyd–Warshall on g (opts are passed through) and fills a
// Summary. Any degenerate statistic aborts with its error rather than
// reporting a zero.
//
// Errors: ErrNilInput, ErrDegenerateGraph, ErrNoFinitePaths, and the
// matrix errors (ErrTooLarge, ErrNonContiguousIDs).
// Complexity: O(N³).
func Summarize(g *core.Graph, opts ...matrix.Option) (*Summary, error) {
	if g == nil {
		return nil, ErrNilInput
	}

	s := &Summary{Vertices: g.VertexCount(), Edges: g.EdgeCount()}

	var err error
	if s.Density, err = Density(g); err != nil {
		return nil, err
	}
	if s.MaxDegreeVertex, err = g.MaxDegreeVertex(); err != nil {
		return nil, fmt.Errorf("pathstats: %w", err)
	}
	if s.MaxDegree, err = g.Degree(s.MaxDegreeVertex); err != nil {
		return nil, fmt.Errorf("pathstats: %w", err)
	}

	m, err := matrix.FloydWarshall(g, opts...)
	if err != nil {
		return nil, fmt.Errorf("pathstats: %w", err)
	}
	if s.Diameter, s.DiameterFrom, s.DiameterTo, err = Diameter(m); err != nil {
		return nil, err
	}
	if s.AveragePath, err = AverageShortestPath(m); err != nil {
		return nil, err
	}

	return s, nil
}
