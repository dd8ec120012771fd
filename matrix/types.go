// SPDX-License-Identifier: MIT

// Package matrix: the dense all-pairs distance matrix.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/cinegraph/core"
)

// distanceBytes is the in-memory size of one core.Distance on 64-bit targets.
const distanceBytes = 16

// DistanceMatrix is a square matrix of core.Distance indexed 1..Order() on
// both axes. Storage is a single row-major slice.
type DistanceMatrix struct {
	n    int
	data []core.Distance
}

// NewDistanceMatrix returns an n×n matrix with a zero diagonal and every
// other entry unreachable.
//
// Errors:
//   - ErrBadShape: n < 0.
//
// Complexity: O(n²).
func NewDistanceMatrix(n int) (*DistanceMatrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewDistanceMatrix(%d): %w", n, ErrBadShape)
	}

	m := &DistanceMatrix{n: n, data: make([]core.Distance, n*n)}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = core.Hops(0)
	}

	return m, nil
}

// Order returns N.
func (m *DistanceMatrix) Order() int { return m.n }

// At returns the distance from i to j.
func (m *DistanceMatrix) At(i, j int) (core.Distance, error) {
	k, err := m.offset(i, j)
	if err != nil {
		return core.Unreachable, err
	}

	return m.data[k], nil
}

// Set stores the distance from i to j.
func (m *DistanceMatrix) Set(i, j int, d core.Distance) error {
	k, err := m.offset(i, j)
	if err != nil {
		return err
	}
	m.data[k] = d

	return nil
}

// Each calls fn for every entry in row-major order (i outer, j inner, both
// ascending from 1).
func (m *DistanceMatrix) Each(fn func(i, j int, d core.Distance)) {
	for i := 0; i < m.n; i++ {
		base := i * m.n
		for j := 0; j < m.n; j++ {
			fn(i+1, j+1, m.data[base+j])
		}
	}
}

func (m *DistanceMatrix) offset(i, j int) (int, error) {
	if i < 1 || i > m.n || j < 1 || j > m.n {
		return 0, fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, m.n, m.n, ErrOutOfRange)
	}

	return (i-1)*m.n + (j - 1), nil
}

// Cost is the resource estimate of an all-pairs run.
type Cost struct {
	Bytes       int64 // matrix storage
	Relaxations int64 // inner-loop iterations, N³
}

// EstimateCost reports what FloydWarshall would need for n vertices.
func EstimateCost(n int) Cost {
	n64 := int64(n)
	return Cost{
		Bytes:       n64 * n64 * distanceBytes,
		Relaxations: n64 * n64 * n64,
	}
}

// String renders the estimate for log lines.
func (c Cost) String() string {
	return fmt.Sprintf("%.1f MiB, %d relaxations", float64(c.Bytes)/(1<<20), c.Relaxations)
}
