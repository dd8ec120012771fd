// Package pathstats reduces a graph and its all-pairs distance matrix to the
// numbers the analyzer reports: average shortest-path length, diameter with
// its endpoints, and density.
//
// Conventions kept on purpose:
//
//   - The average includes the diagonal zeros, which pulls it toward shorter
//     values compared with an off-diagonal-only mean.
//   - Diameter ties resolve to the first pair met in row-major order.
//   - Density uses the directed formula arcs/(V·(V−1)).
//
// No finite entries, or fewer than two vertices, is an error
// (ErrNoFinitePaths, ErrDegenerateGraph) rather than a zero.
package pathstats
