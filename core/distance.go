// SPDX-License-Identifier: MIT
// File: distance.go
// Role: Hop distance with an explicit "unreachable" state.
//
// Contract:
//   - The zero value is Unreachable.
//   - Unreachable absorbs addition: Unreachable.Add(x) == Unreachable.
//   - Every reachable distance orders before Unreachable; Unreachable is never
//     less than anything, including itself.
package core

import (
	"fmt"
	"strconv"
)

// Distance is a non-negative hop count or Unreachable.
type Distance struct {
	hops      int
	reachable bool
}

// Unreachable marks a vertex pair with no path.
var Unreachable = Distance{}

// Hops returns the reachable distance n. Negative n panics: hop counts cannot
// be negative and a caller producing one has a bug.
func Hops(n int) Distance {
	if n < 0 {
		panic(fmt.Sprintf("core: negative hop count %d", n))
	}

	return Distance{hops: n, reachable: true}
}

// IsReachable reports whether d is a finite distance.
func (d Distance) IsReachable() bool { return d.reachable }

// Value returns the hop count and true, or 0 and false for Unreachable.
func (d Distance) Value() (int, bool) { return d.hops, d.reachable }

// MustHops returns the hop count and panics on Unreachable.
func (d Distance) MustHops() int {
	if !d.reachable {
		panic("core: MustHops on unreachable distance")
	}

	return d.hops
}

// Add returns d + o. If either operand is Unreachable the result is Unreachable.
func (d Distance) Add(o Distance) Distance {
	if !d.reachable || !o.reachable {
		return Unreachable
	}

	return Distance{hops: d.hops + o.hops, reachable: true}
}

// Less reports d < o.
func (d Distance) Less(o Distance) bool {
	switch {
	case !d.reachable:
		return false
	case !o.reachable:
		return true
	default:
		return d.hops < o.hops
	}
}

// LessOrEqual reports d <= o. Two Unreachable values compare equal.
func (d Distance) LessOrEqual(o Distance) bool {
	return !o.Less(d)
}

// String renders the hop count, or "∞" for Unreachable.
func (d Distance) String() string {
	if !d.reachable {
		return "∞"
	}

	return strconv.Itoa(d.hops)
}
