// SPDX-License-Identifier: MIT
// File: heap.go
// Role: Binary-heap index arithmetic and the two sift routines.
//
// swap and truncate are the only places that move entries; both update the
// position map in the same step.
package pqueue

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

// swap exchanges slots i and j and re-points both elements.
func (q *IndexedMinPQ) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.position[q.heap[i].element] = i
	q.position[q.heap[j].element] = j
}

// truncate drops the last slot and forgets its element.
func (q *IndexedMinPQ) truncate() entry {
	last := len(q.heap) - 1
	e := q.heap[last]
	q.heap = q.heap[:last]
	delete(q.position, e.element)

	return e
}

// siftUp moves slot i toward the root while its parent has a strictly greater
// priority. Returns the final slot.
func (q *IndexedMinPQ) siftUp(i int) int {
	for i > 0 {
		p := parent(i)
		if q.heap[p].priority <= q.heap[i].priority {
			break
		}
		q.swap(i, p)
		i = p
	}

	return i
}

// siftDown moves slot i toward the leaves. At each step it picks the smaller
// child (left on equal priorities) and swaps when that child's priority is
// less than OR EQUAL to the current one. The "or equal" keeps equal-priority
// entries sinking, which decides which of several tied elements surfaces
// first; callers depend on that order. Returns the final slot.
func (q *IndexedMinPQ) siftDown(i int) int {
	n := len(q.heap)
	for {
		l := left(i)
		if l >= n {
			break
		}
		smallest := l
		if r := right(i); r < n && q.heap[l].priority > q.heap[r].priority {
			smallest = r
		}
		if q.heap[smallest].priority > q.heap[i].priority {
			break
		}
		q.swap(smallest, i)
		i = smallest
	}

	return i
}
