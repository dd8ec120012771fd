// SPDX-License-Identifier: MIT
// File: path.go
// Role: Path reconstruction from a predecessor map.
package dijkstra

import (
	"fmt"
	"slices"
)

// PathTo walks prev back from target to source and returns the vertices in
// source→target order. A target equal to source yields [source].
//
// Errors:
//   - ErrUnreachable: target has no predecessor chain ending at source.
//
// Complexity: O(path length).
func PathTo(prev map[int]int, source, target int) ([]int, error) {
	path := []int{target}
	cur := target
	// a well-formed chain is never longer than the map itself
	for steps := 0; cur != source; steps++ {
		p, ok := prev[cur]
		if !ok || steps > len(prev) {
			return nil, fmt.Errorf("%w: %d→%d", ErrUnreachable, source, target)
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path, nil
}

// PathTo returns the shortest path from r.Source to target.
//
// Errors:
//   - ErrVertexNotFound: target was not a vertex of the graph.
//   - ErrUnreachable: target was not reached.
func (r *Result) PathTo(target int) ([]int, error) {
	d, ok := r.Dist[target]
	if !ok {
		return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, target)
	}
	if !d.IsReachable() {
		return nil, fmt.Errorf("%w: %d→%d", ErrUnreachable, r.Source, target)
	}

	return PathTo(r.Prev, r.Source, target)
}
