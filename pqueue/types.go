// SPDX-License-Identifier: MIT
// File: types.go
// Role: IndexedMinPQ type, constructor and sentinel errors.
//
// Every failure wraps ErrInvalidOperation; callers that only need "the queue
// was misused" test for the parent, the rest test the specific sentinel.
package pqueue

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is the parent of every queue precondition failure.
var ErrInvalidOperation = errors.New("pqueue: invalid operation")

// Specific precondition failures. Each wraps ErrInvalidOperation.
var (
	// ErrNegativePriority indicates Push or ChangePriority got a priority < 0.
	ErrNegativePriority = fmt.Errorf("%w: negative priority", ErrInvalidOperation)

	// ErrDuplicateElement indicates Push of an element already in the queue.
	ErrDuplicateElement = fmt.Errorf("%w: element already present", ErrInvalidOperation)

	// ErrEmptyQueue indicates Pop/TopElement/TopPriority on an empty queue.
	ErrEmptyQueue = fmt.Errorf("%w: queue is empty", ErrInvalidOperation)

	// ErrElementNotFound indicates ChangePriority/Priority on an absent element.
	ErrElementNotFound = fmt.Errorf("%w: element not present", ErrInvalidOperation)
)

// entry is one (priority, element) pair stored in the heap slice.
type entry struct {
	priority int
	element  int
}

// IndexedMinPQ is a binary min-heap of (priority, element) pairs with an
// element → slice-index map. The map makes membership, priority lookup and
// priority change O(1) to locate.
//
// Invariants:
//   - heap order: heap[parent(i)].priority <= heap[i].priority for i > 0.
//   - position[heap[i].element] == i for every i, and len(position) == len(heap).
//
// The zero value is not usable; construct with New.
type IndexedMinPQ struct {
	heap     []entry
	position map[int]int
}

// New returns an empty queue with room for capacity elements.
// Negative capacity is treated as zero.
func New(capacity int) *IndexedMinPQ {
	if capacity < 0 {
		capacity = 0
	}

	return &IndexedMinPQ{
		heap:     make([]entry, 0, capacity),
		position: make(map[int]int, capacity),
	}
}
