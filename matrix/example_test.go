// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/cinegraph/core"
	"github.com/katalvlaran/cinegraph/matrix"
)

// ExampleFloydWarshall prints the distance matrix of the path 1-2-3 plus an
// isolated vertex 4.
func ExampleFloydWarshall() {
	g := core.NewGraph(core.WithUndirected())
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddVertex(4)

	m, err := matrix.FloydWarshall(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 1; i <= m.Order(); i++ {
		row := make([]string, 0, m.Order())
		for j := 1; j <= m.Order(); j++ {
			d, _ := m.At(i, j)
			row = append(row, d.String())
		}
		fmt.Println(strings.Join(row, " "))
	}
	// Output:
	// 0 1 2 ∞
	// 1 0 1 ∞
	// 2 1 0 ∞
	// ∞ ∞ ∞ 0
}
