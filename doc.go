// Package cinegraph turns a MovieLens ratings export into a movie-similarity
// graph and measures it with shortest-path statistics.
//
// 🎬 What is cinegraph?
//
//	Two movies are adjacent when enough users support the pair, either by
//	giving both the same rating or simply by rating both. On that graph:
//		• Dijkstra (unit weights, indexed min-heap) finds a shortest chain
//		  of similar movies between any two titles
//		• Floyd–Warshall fills the all-pairs hop matrix
//		• pathstats reduces it to diameter, average path length and density
//
// Packages:
//
//	core/      - Graph over positive int vertex IDs, Distance optional value
//	pqueue/    - IndexedMinPQ with ChangePriority
//	dijkstra/  - single-source hop distances + path reconstruction
//	matrix/    - DistanceMatrix and Floyd–Warshall
//	pathstats/ - diameter, average shortest path, density, Summary
//	bfs/       - breadth-first neighborhoods by hop radius
//	builder/   - deterministic graph fixtures (Path, Cycle, Star, ...)
//	movielens/ - CSV loaders, similarity graph, movie ID ↔ vertex Index
//	cmd/cinegraph - the command-line front end
//
// Quick ASCII example:
//
//	Toy Story ─── Jumanji ─── Heat
//
//	Diameter 2 (Toy Story → Heat), 4 arcs, density 4/6.
//
//	go install github.com/katalvlaran/cinegraph/cmd/cinegraph@latest
//	cinegraph --ratings ratings.csv --movies movies.csv stats
package cinegraph
