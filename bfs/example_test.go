package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/cinegraph/bfs"
	"github.com/katalvlaran/cinegraph/core"
)

// ExampleBFS_depthLimitOnChain shows a radius-2 neighborhood on the chain 1→…→5.
func ExampleBFS_depthLimitOnChain() {
	g := core.NewGraph()
	for i := 1; i < 5; i++ {
		_ = g.AddEdge(i, i+1)
	}

	res, _ := bfs.BFS(g, 1, bfs.WithMaxDepth(2))
	fmt.Println(res.Order)
	// Output: [1 2 3]
}

// ExampleResult_Levels groups a star's vertices by hop distance.
func ExampleResult_Levels() {
	g := core.NewGraph(core.WithUndirected())
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(1, 3)
	_ = g.AddEdge(3, 4)

	res, _ := bfs.BFS(g, 2)
	for d, ids := range res.Levels() {
		fmt.Println(d, ids)
	}
	// Output:
	// 0 [2]
	// 1 [1]
	// 2 [3]
	// 3 [4]
}
