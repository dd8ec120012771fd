// Package core provides the in-memory Graph consumed by the shortest-path
// packages, together with the Distance value they share.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are positive integers. Callers that hold sparse external IDs
//     (movie IDs, for instance) remap them to 1..N first.
//   - Arcs are unit weight and stored as adjacency sets:
//     adjacency[from][to] = struct{}{}
//   - Directed by default; WithUndirected mirrors every AddEdge.
//   - No self-loops, no parallel arcs.
//   - One sync.RWMutex guards the whole structure; algorithms take read locks only.
//
// Core Methods:
//
//	// Construction
//	NewGraph(opts ...GraphOption) *Graph
//	AddVertex(id int) error              // O(1)
//	AddEdge(from, to int) error          // O(1)
//
//	// Queries
//	HasVertex(id int) bool               // O(1)
//	HasEdge(from, to int) bool           // O(1)
//	Vertices() []int                     // O(V log V), sorted
//	Neighbors(id int) ([]int, error)     // O(d log d), sorted
//	VertexCount() int                    // O(1)
//	EdgeCount() int                      // O(1), counts arcs
//	Degree(id int) (int, error)          // O(1), out-degree
//	MaxDegreeVertex() (int, error)       // O(V), smallest ID on ties
//	MaxVertexID() int                    // O(V)
//
//	// Interop
//	Gonum() *simple.DirectedGraph        // O(V+E) snapshot
//
// Distance:
//
//	Distance is a hop count with an explicit Unreachable state. It never
//	encodes "no path" as a large integer, so sums cannot overflow into a
//	small finite value:
//
//	core.Hops(2).Add(core.Hops(1))      // 3
//	core.Hops(2).Add(core.Unreachable)  // Unreachable
//	core.Hops(7).Less(core.Unreachable) // true
//
// Errors:
//
//	ErrInvalidVertexID, ErrVertexNotFound, ErrLoopNotAllowed, ErrEmptyGraph.
package core
