// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// impl_platonic.go: implementation of PlatonicSolid(name, withCenter).
//
// Contract:
//   • Unknown name → ErrOptionViolation.
//   • Shell vertices are indices 0..V-1; shell edges are emitted in the
//     fixed order of variants_platonic.go.
//   • withCenter adds hub index V with spokes to 0..V-1 in ascending order.
//     Every stellated solid is nonplanar; the shells themselves are planar.

package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor that builds the chosen Platonic shell,
// optionally with a central hub joined to every shell vertex.
// Complexity: O(V+E) with V ≤ 20, E ≤ 30.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Lookup canonical data.
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %v: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		edges, ok := platonicEdgeSets[name]
		if !ok {
			return fmt.Errorf("%s: missing edge set for %v: %w", methodPlatonicSolid, name, ErrConstructFailed)
		}

		// 2) Shell.
		for _, ch := range edges {
			if err := addEdge(g, cfg, methodPlatonicSolid, ch.U, ch.V); err != nil {
				return err
			}
		}

		// 3) Optional hub.
		if withCenter {
			for i := 0; i < n; i++ {
				if err := addEdge(g, cfg, methodPlatonicSolid, n, i); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
