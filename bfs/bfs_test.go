package bfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cinegraph/bfs"
	"github.com/katalvlaran/cinegraph/core"
)

func chain(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1))
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 1)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, 1)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	require.NoError(t, g.AddVertex(1))
	_, err = bfs.BFS(g, 1, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(1))

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, res.Order)
	assert.Equal(t, 0, res.Depth[1])
	assert.Empty(t, res.Parent)
}

// TestBFS_CycleAndDepths covers the 4-cycle 1-2-3-4-1.
func TestBFS_CycleAndDepths(t *testing.T) {
	g := core.NewGraph(core.WithUndirected())
	for _, e := range [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 3}, res.Order)
	assert.Equal(t, map[int]int{1: 0, 2: 1, 4: 1, 3: 2}, res.Depth)
	// first discovery wins: 3 is found from 2 before 4
	assert.Equal(t, map[int]int{2: 1, 4: 1, 3: 2}, res.Parent)
	assert.Equal(t, [][]int{{1}, {2, 4}, {3}}, res.Levels())
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(3, 4))

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, res.Order)

	res, err = bfs.BFS(g, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, res.Order)
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(t, 3)
	cases := []struct {
		depth int
		want  []int
	}{
		{1, []int{1, 2}},
		{0, []int{1, 2, 3}},
		{10, []int{1, 2, 3}},
	}
	for _, tc := range cases {
		res, err := bfs.BFS(g, 1, bfs.WithMaxDepth(tc.depth))
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.Order, "MaxDepth=%d", tc.depth)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain arcs.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := chain(t, 3)
	res, err := bfs.BFS(g, 1,
		bfs.WithFilterNeighbor(func(curr, nbr int) bool {
			return !(curr == 2 && nbr == 3)
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, res.Order)
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := chain(t, 3)
	var enq, deq, vis []string
	entry := func(id, d int) string { return strconv.Itoa(id) + "@" + strconv.Itoa(d) }

	_, err := bfs.BFS(g, 1,
		bfs.WithOnEnqueue(func(id, d int) { enq = append(enq, entry(id, d)) }),
		bfs.WithOnDequeue(func(id, d int) { deq = append(deq, entry(id, d)) }),
		bfs.WithOnVisit(func(id, d int) error { vis = append(vis, entry(id, d)); return nil }),
	)
	require.NoError(t, err)

	want := []string{"1@0", "2@1", "3@2"}
	assert.Equal(t, want, enq)
	assert.Equal(t, want, deq)
	assert.Equal(t, want, vis)
}

// TestBFS_OnVisitAbort checks that a hook error stops the walk and is wrapped.
func TestBFS_OnVisitAbort(t *testing.T) {
	stop := errors.New("stop")
	_, err := bfs.BFS(chain(t, 5), 1, bfs.WithOnVisit(func(id, _ int) error {
		if id == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := chain(t, 4)
	require.NoError(t, g.AddVertex(9))

	res, err := bfs.BFS(g, 1)
	require.NoError(t, err)

	p, err := res.PathTo(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, p)

	p, err = res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, p)

	_, err = res.PathTo(9)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(chain(t, 100), 1, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_ConcurrentSafety ensures concurrent runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := chain(t, 50)
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() { _, err := bfs.BFS(g, 1); errs <- err }()
	}
	for i := 0; i < 4; i++ {
		assert.NoError(t, <-errs)
	}
}
