// Package movielens loads MovieLens CSV exports and derives a movie-similarity
// graph from them.
//
// Two movies are linked when enough users support the pair:
//
//	SameRating   - users who gave both movies the same rating
//	SharedRaters - users who rated both movies
//
// The support threshold defaults to DefaultThreshold. Vertices are dense IDs
// 1..N assigned by an Index in ascending movie-ID order, so every graph built
// here is also a valid input to matrix.FloydWarshall.
//
// Typical use:
//
//	ds, err := movielens.LoadFiles("ratings.csv", "movies.csv")
//	g, idx, err := movielens.BuildGraph(ds, movielens.WithThreshold(20))
//	v, _ := idx.Vertex(1) // Toy Story
package movielens
