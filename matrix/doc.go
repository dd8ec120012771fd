// Package matrix computes all-pairs shortest hop counts (Floyd–Warshall)
// into a dense 1-based DistanceMatrix.
//
// What & Why:
//
//   - FloydWarshall(g) fills d[i][j] with 0 on the diagonal, 1 for each arc
//     and core.Unreachable otherwise, then relaxes through every k.
//   - Entries are core.Distance values; "unreachable + anything" stays
//     unreachable, so the relaxation cannot overflow.
//   - Rows and columns are vertex IDs. The graph must use exactly {1..N};
//     sparse ID spaces are rejected with ErrNonContiguousIDs.
//
// Scaling limit:
//
//	The run is O(N³) time and O(N²) memory. Graphs above
//	Options.MaxVertices (DefaultMaxVertices unless WithMaxVertices says
//	otherwise) are refused with ErrTooLarge before anything is allocated.
//	EstimateCost(n) reports the bytes and relaxations up front.
//
// Errors:
//
//	ErrGraphNil, ErrBadShape, ErrOutOfRange, ErrNonContiguousIDs, ErrTooLarge.
//
// Determinism:
//
//	Fixed k → i → j loop order; Each iterates row-major.
package matrix
