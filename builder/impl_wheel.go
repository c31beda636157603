// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub: rim indices 0..n-2, hub index n-1.
//   • Therefore n ≥ 4 (the rim must be a valid cycle).

package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // rim has n-1 ≥ 3 vertices
)

// Wheel returns a Constructor that builds the wheel Wₙ.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		hub := n - 1
		for i := 0; i < hub; i++ {
			if err := addEdge(g, cfg, methodWheel, hub, i); err != nil {
				return err
			}
		}

		return nil
	}
}
