// SPDX-License-Identifier: MIT
package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/cinegraph/pqueue"
)

// ExampleIndexedMinPQ shows decrease-key followed by a full drain.
func ExampleIndexedMinPQ() {
	q := pqueue.New(3)
	_ = q.Push(4, 1)
	_ = q.Push(2, 2)
	_ = q.Push(9, 3)

	_ = q.ChangePriority(1, 3)

	for !q.IsEmpty() {
		e, p, _ := q.Pop()
		fmt.Printf("%d:%d ", e, p)
	}
	fmt.Println()
	// Output: 3:1 2:2 1:4
}
