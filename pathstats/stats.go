// SPDX-License-Identifier: MIT
// File: stats.go
// Role: Pure reductions over the all-pairs distance matrix and the graph.
//
// Policy:
//   - Only reachable entries take part; core.Unreachable is skipped.
//   - Diagonal zeros count as zero-length paths in the average.
//   - Diameter keeps the FIRST maximum met in row-major order (strict >).
package pathstats

import (
	"fmt"

	"github.com/katalvlaran/cinegraph/core"
	"github.com/katalvlaran/cinegraph/matrix"
)

// AverageShortestPath returns the mean of every finite entry of m,
// diagonal included.
//
// Errors: ErrNilInput, ErrNoFinitePaths.
// Complexity: O(N²).
func AverageShortestPath(m *matrix.DistanceMatrix) (float64, error) {
	if m == nil {
		return 0, ErrNilInput
	}

	var sum, count int
	m.Each(func(_, _ int, d core.Distance) {
		if h, ok := d.Value(); ok {
			sum += h
			count++
		}
	})
	if count == 0 {
		return 0, fmt.Errorf("average: %w", ErrNoFinitePaths)
	}

	return float64(sum) / float64(count), nil
}

// Diameter returns the longest finite shortest path in m and the first
// (from, to) pair attaining it in row-major order.
//
// Errors: ErrNilInput, ErrNoFinitePaths.
// Complexity: O(N²).
func Diameter(m *matrix.DistanceMatrix) (length, from, to int, err error) {
	if m == nil {
		return 0, 0, 0, ErrNilInput
	}

	found := false
	m.Each(func(i, j int, d core.Distance) {
		h, ok := d.Value()
		if !ok {
			return
		}
		if !found || h > length {
			length, from, to = h, i, j
			found = true
		}
	})
	if !found {
		return 0, 0, 0, fmt.Errorf("diameter: %w", ErrNoFinitePaths)
	}

	return length, from, to, nil
}

// Density returns arcs / (V·(V−1)). Arcs are counted one per direction, so
// an undirected graph reports twice its undirected-formula density.
//
// Errors: ErrNilInput, ErrDegenerateGraph.
func Density(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrNilInput
	}
	v := g.VertexCount()
	if v < 2 {
		return 0, fmt.Errorf("density of %d vertices: %w", v, ErrDegenerateGraph)
	}

	return float64(g.EdgeCount()) / float64(v*(v-1)), nil
}
