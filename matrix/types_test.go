// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cinegraph/core"
	"github.com/katalvlaran/cinegraph/matrix"
)

func TestDistanceMatrix_Bounds(t *testing.T) {
	m, err := matrix.NewDistanceMatrix(2)
	require.NoError(t, err)

	assert.Equal(t, core.Hops(0), mustAt(t, m, 2, 2))
	assert.False(t, mustAt(t, m, 1, 2).IsReachable())

	require.NoError(t, m.Set(1, 2, core.Hops(5)))
	assert.Equal(t, core.Hops(5), mustAt(t, m, 1, 2))

	for _, ij := range [][2]int{{0, 1}, {1, 0}, {3, 1}, {1, 3}} {
		_, err = m.At(ij[0], ij[1])
		assert.ErrorIs(t, err, matrix.ErrOutOfRange)
		assert.ErrorIs(t, m.Set(ij[0], ij[1], core.Hops(1)), matrix.ErrOutOfRange)
	}

	_, err = matrix.NewDistanceMatrix(-1)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDistanceMatrix_EachRowMajor(t *testing.T) {
	m, err := matrix.NewDistanceMatrix(2)
	require.NoError(t, err)

	var seen [][2]int
	m.Each(func(i, j int, _ core.Distance) { seen = append(seen, [2]int{i, j}) })
	assert.Equal(t, [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}, seen)
}

func TestEstimateCost(t *testing.T) {
	c := matrix.EstimateCost(1000)
	assert.Equal(t, int64(16_000_000), c.Bytes)
	assert.Equal(t, int64(1_000_000_000), c.Relaxations)
	assert.Contains(t, c.String(), "relaxations")
}
