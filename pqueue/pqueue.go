// SPDX-License-Identifier: MIT
// File: pqueue.go
// Role: Public operations of IndexedMinPQ.
//
// Policy:
//   - Preconditions are checked before any mutation; a failed call leaves the
//     queue untouched.
//   - All structural changes go through swap/truncate in heap.go, which keep
//     the position map in step with the slice.
package pqueue

import "fmt"

// Push inserts element with the given priority.
//
// Errors:
//   - ErrNegativePriority: priority < 0.
//   - ErrDuplicateElement: element already queued.
//
// Complexity: O(log n).
func (q *IndexedMinPQ) Push(priority, element int) error {
	if priority < 0 {
		return fmt.Errorf("%w: push(%d, %d)", ErrNegativePriority, priority, element)
	}
	if _, ok := q.position[element]; ok {
		return fmt.Errorf("%w: push(%d, %d)", ErrDuplicateElement, priority, element)
	}

	q.heap = append(q.heap, entry{priority: priority, element: element})
	q.position[element] = len(q.heap) - 1
	q.siftUp(len(q.heap) - 1)

	return nil
}

// Pop removes the minimum-priority entry and returns it.
//
// Errors:
//   - ErrEmptyQueue: nothing to pop.
//
// Complexity: O(log n).
func (q *IndexedMinPQ) Pop() (element, priority int, err error) {
	if len(q.heap) == 0 {
		return 0, 0, ErrEmptyQueue
	}

	last := len(q.heap) - 1
	q.swap(0, last)
	top := q.truncate()
	q.siftDown(0)

	return top.element, top.priority, nil
}

// TopElement returns the element with minimum priority without removing it.
// Complexity: O(1).
func (q *IndexedMinPQ) TopElement() (int, error) {
	if len(q.heap) == 0 {
		return 0, ErrEmptyQueue
	}

	return q.heap[0].element, nil
}

// TopPriority returns the minimum priority without removing its entry.
// Complexity: O(1).
func (q *IndexedMinPQ) TopPriority() (int, error) {
	if len(q.heap) == 0 {
		return 0, ErrEmptyQueue
	}

	return q.heap[0].priority, nil
}

// ChangePriority replaces the priority of a queued element and restores heap
// order: upward if the priority went down, downward if it went up.
//
// Errors:
//   - ErrElementNotFound: element not queued.
//   - ErrNegativePriority: newPriority < 0.
//
// Complexity: O(log n).
func (q *IndexedMinPQ) ChangePriority(newPriority, element int) error {
	i, ok := q.position[element]
	if !ok {
		return fmt.Errorf("%w: change(%d, %d)", ErrElementNotFound, newPriority, element)
	}
	if newPriority < 0 {
		return fmt.Errorf("%w: change(%d, %d)", ErrNegativePriority, newPriority, element)
	}

	old := q.heap[i].priority
	q.heap[i].priority = newPriority
	if newPriority > old {
		q.siftDown(i)
	} else {
		q.siftUp(i)
	}

	return nil
}

// Priority returns the current priority of element.
//
// Errors:
//   - ErrElementNotFound: element not queued.
//
// Complexity: O(1).
func (q *IndexedMinPQ) Priority(element int) (int, error) {
	i, ok := q.position[element]
	if !ok {
		return 0, fmt.Errorf("%w: priority(%d)", ErrElementNotFound, element)
	}

	return q.heap[i].priority, nil
}

// IsPresent reports whether element is queued.
func (q *IndexedMinPQ) IsPresent(element int) bool {
	_, ok := q.position[element]
	return ok
}

// Size returns the number of queued elements.
func (q *IndexedMinPQ) Size() int { return len(q.heap) }

// IsEmpty reports whether the queue holds no elements.
func (q *IndexedMinPQ) IsEmpty() bool { return len(q.heap) == 0 }

// Clear removes every element. The backing storage is kept for reuse.
func (q *IndexedMinPQ) Clear() {
	q.heap = q.heap[:0]
	clear(q.position)
}
