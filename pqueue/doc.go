// Package pqueue provides IndexedMinPQ, a binary min-heap over
// (priority, element) pairs that also tracks where every element sits.
//
// Overview:
//
//   - The heap is a dense slice; an element → index map sits beside it.
//   - The map turns "change the priority of element e" into an O(1) lookup
//     followed by an O(log n) sift, which is what Dijkstra needs for
//     decrease-key without the lazy duplicate-entry pattern.
//   - Priorities are non-negative ints; elements are ints and unique.
//
// Operations:
//
//	Push(priority, element) error        // O(log n)
//	Pop() (element, priority, error)     // O(log n)
//	TopElement() (int, error)            // O(1)
//	TopPriority() (int, error)           // O(1)
//	ChangePriority(priority, elem) error // O(log n)
//	Priority(element) (int, error)       // O(1)
//	IsPresent, Size, IsEmpty, Clear      // O(1)
//
// Tie behavior:
//
//	Pop sinks the moved root past children whose priority is less than or
//	equal to its own, choosing the left child when both children tie. Among
//	equal priorities this fixes which element is reported first, and the
//	order is part of the contract.
//
// Errors:
//
//	Every failure wraps ErrInvalidOperation. The specific sentinels are
//	ErrNegativePriority, ErrDuplicateElement, ErrEmptyQueue and
//	ErrElementNotFound. A failed call never mutates the queue.
//
// Thread safety:
//
//	IndexedMinPQ is not safe for concurrent use.
package pqueue
