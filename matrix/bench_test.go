// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cinegraph/core"
	"github.com/katalvlaran/cinegraph/matrix"
)

// BenchmarkFloydWarshall_Cycle200 measures APSP on a 200-vertex ring.
func BenchmarkFloydWarshall_Cycle200(b *testing.B) {
	const n = 200
	g := core.NewGraph(core.WithUndirected())
	for v := 1; v <= n; v++ {
		_ = g.AddEdge(v, v%n+1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.FloydWarshall(g)
	}
}
