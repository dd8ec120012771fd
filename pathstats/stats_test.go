// SPDX-License-Identifier: MIT
package pathstats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"

	"github.com/katalvlaran/cinegraph/builder"
	"github.com/katalvlaran/cinegraph/core"
	"github.com/katalvlaran/cinegraph/matrix"
	"github.com/katalvlaran/cinegraph/pathstats"
)

func build(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)

	return g
}

func apsp(t *testing.T, g *core.Graph) *matrix.DistanceMatrix {
	t.Helper()
	m, err := matrix.FloydWarshall(g)
	require.NoError(t, err)

	return m
}

func TestDiameter_PathGraph(t *testing.T) {
	m := apsp(t, build(t, builder.Path(4)))

	length, from, to, err := pathstats.Diameter(m)
	require.NoError(t, err)
	assert.Equal(t, 3, length)
	assert.Equal(t, 1, from)
	assert.Equal(t, 4, to)
}

func TestDiameter_FirstMaximumWins(t *testing.T) {
	m := apsp(t, build(t, builder.Star(5)))

	length, from, to, err := pathstats.Diameter(m)
	require.NoError(t, err)
	assert.Equal(t, 2, length)
	assert.Equal(t, [2]int{2, 3}, [2]int{from, to})
}

func TestDiameter_TwoHopTopologies(t *testing.T) {
	cases := []struct {
		name     string
		ctor     builder.Constructor
		from, to int
	}{
		{"Wheel(6)", builder.Wheel(6), 2, 4},
		{"K(2,3)", builder.CompleteBipartite(2, 3), 1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			length, from, to, err := pathstats.Diameter(apsp(t, build(t, tc.ctor)))
			require.NoError(t, err)
			assert.Equal(t, 2, length)
			assert.Equal(t, [2]int{tc.from, tc.to}, [2]int{from, to})
		})
	}
}

func TestDiameter_SkipsUnreachable(t *testing.T) {
	m := apsp(t, build(t, builder.Path(2), builder.Path(3)))

	length, from, to, err := pathstats.Diameter(m)
	require.NoError(t, err)
	assert.Equal(t, 2, length)
	assert.Equal(t, [2]int{3, 5}, [2]int{from, to})
}

func TestAverageShortestPath(t *testing.T) {
	cases := []struct {
		name string
		g    *core.Graph
		want float64
	}{
		// 16 entries summing to 20
		{"path4", build(t, builder.Path(4)), 1.25},
		// 4 diagonal zeros and 4 ones; cross pairs are unreachable
		{"two edges", build(t, builder.Path(2), builder.Path(2)), 0.5},
		{"isolated", build(t, builder.Isolated(3)), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			avg, err := pathstats.AverageShortestPath(apsp(t, tc.g))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, avg, 1e-12)
		})
	}
}

func TestNoFinitePaths(t *testing.T) {
	empty, err := matrix.NewDistanceMatrix(0)
	require.NoError(t, err)

	_, err = pathstats.AverageShortestPath(empty)
	assert.ErrorIs(t, err, pathstats.ErrNoFinitePaths)
	_, _, _, err = pathstats.Diameter(empty)
	assert.ErrorIs(t, err, pathstats.ErrNoFinitePaths)

	_, err = pathstats.AverageShortestPath(nil)
	assert.ErrorIs(t, err, pathstats.ErrNilInput)
}

func TestDensity(t *testing.T) {
	d, err := pathstats.Density(build(t, builder.Path(4)))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d, 1e-12)

	d, err = pathstats.Density(build(t, builder.Complete(5)))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, d, 1e-12)

	_, err = pathstats.Density(build(t, builder.Isolated(1)))
	assert.ErrorIs(t, err, pathstats.ErrDegenerateGraph)
	_, err = pathstats.Density(nil)
	assert.ErrorIs(t, err, pathstats.ErrNilInput)
}

// TestAverage_AgainstGonum recomputes the average from gonum's all-pairs
// weights on a seeded random graph.
func TestAverage_AgainstGonum(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(8)},
		builder.RandomSparse(35, 0.07))
	require.NoError(t, err)

	ref, ok := path.FloydWarshall(g.Gonum())
	require.True(t, ok)
	var sum float64
	var count int
	for i := 1; i <= 35; i++ {
		for j := 1; j <= 35; j++ {
			w := 0.0
			if i != j {
				w = ref.Weight(int64(i), int64(j))
			}
			if !math.IsInf(w, 1) {
				sum += w
				count++
			}
		}
	}

	avg, err := pathstats.AverageShortestPath(apsp(t, g))
	require.NoError(t, err)
	assert.InDelta(t, sum/float64(count), avg, 1e-9)
}
