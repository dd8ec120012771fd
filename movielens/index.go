// SPDX-License-Identifier: MIT
package movielens

import "slices"

// Index maps sparse movie IDs onto dense vertex IDs 1..N, assigned in
// ascending movie-ID order.
type Index struct {
	movies   []int       // vertex-1 → movie ID
	vertexOf map[int]int // movie ID → vertex
}

// NewIndex builds an Index over ids. Duplicates are collapsed.
func NewIndex(ids []int) *Index {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	idx := &Index{
		movies:   sorted,
		vertexOf: make(map[int]int, len(sorted)),
	}
	for i, id := range sorted {
		idx.vertexOf[id] = i + 1
	}

	return idx
}

// Vertex returns the vertex assigned to movieID.
func (idx *Index) Vertex(movieID int) (int, bool) {
	v, ok := idx.vertexOf[movieID]
	return v, ok
}

// MovieID returns the movie behind vertex v.
func (idx *Index) MovieID(v int) (int, bool) {
	if v < 1 || v > len(idx.movies) {
		return 0, false
	}

	return idx.movies[v-1], true
}

// Len returns the number of indexed movies.
func (idx *Index) Len() int { return len(idx.movies) }
