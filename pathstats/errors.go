// SPDX-License-Identifier: MIT
package pathstats

import "errors"

// Sentinel errors. Degenerate inputs are reported through these, never as a
// computed zero.
var (
	// ErrNoFinitePaths indicates the matrix holds no finite entry to average
	// or maximize (e.g. an empty graph).
	ErrNoFinitePaths = errors.New("pathstats: no finite paths")

	// ErrDegenerateGraph indicates fewer than two vertices, for which density
	// is undefined.
	ErrDegenerateGraph = errors.New("pathstats: graph needs at least two vertices")

	// ErrNilInput indicates a nil graph or matrix.
	ErrNilInput = errors.New("pathstats: nil input")
)
