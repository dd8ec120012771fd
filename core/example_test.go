// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/cinegraph/core"
)

// ExampleGraph builds a small undirected square and queries it.
func ExampleGraph() {
	//	1───2
	//	│   │
	//	4───3
	g := core.NewGraph(core.WithUndirected())
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(3, 4)
	_ = g.AddEdge(4, 1)

	nbrs, _ := g.Neighbors(1)
	fmt.Println("vertices:", g.Vertices())
	fmt.Println("arcs:", g.EdgeCount())
	fmt.Println("neighbors of 1:", nbrs)
	// Output:
	// vertices: [1 2 3 4]
	// arcs: 8
	// neighbors of 1: [2 4]
}

// ExampleDistance shows that Unreachable absorbs addition.
func ExampleDistance() {
	fmt.Println(core.Hops(2).Add(core.Hops(1)))
	fmt.Println(core.Hops(2).Add(core.Unreachable))
	fmt.Println(core.Hops(1_000_000).Less(core.Unreachable))
	// Output:
	// 3
	// ∞
	// true
}
