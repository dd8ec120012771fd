// SPDX-License-Identifier: MIT
// Package: cinegraph/builder
//
// impl_wheel.go - implementation of Wheel(n).
//
// Wₙ is a hub joined to every vertex of an outer cycle Cₙ₋₁.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices); the ring needs at least 3 vertices.
//   - The hub is the block's first ID; the ring is the remaining n-1 IDs.
//   - Spokes are emitted before ring edges, both in increasing ring order.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/cinegraph/core"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel Wₙ.
func Wheel(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, n, minWheelNodes)
		}
		hub, err := addBlock(g, methodWheel, n)
		if err != nil {
			return err
		}
		ring := n - 1
		for i := 1; i <= ring; i++ {
			if err = link(g, methodWheel, hub, hub+i); err != nil {
				return err
			}
		}
		for i := 0; i < ring; i++ {
			u, v := hub+1+i, hub+1+(i+1)%ring
			if err = link(g, methodWheel, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}
