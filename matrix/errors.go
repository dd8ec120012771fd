// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..."; callers match with errors.Is
// and context is added with fmt.Errorf("ctx: %w", ErrX) at the boundary.

package matrix

import "errors"

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed in.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrBadShape is returned when a requested order is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column outside 1..Order().
	// At/Set return this rather than panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonContiguousIDs indicates the graph's vertex IDs are not exactly
	// {1..N}; remap them (see movielens.Index) before building the matrix.
	ErrNonContiguousIDs = errors.New("matrix: vertex IDs must be exactly 1..N")

	// ErrTooLarge indicates the vertex count exceeds the configured limit.
	// Returned before any O(N²) allocation.
	ErrTooLarge = errors.New("matrix: graph too large for all-pairs shortest paths")
)
