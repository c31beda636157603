// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// impl_complete.go: implementation of Complete(n) constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n. Pairs are emitted as
// (i, j), i < j, i ascending then j ascending. K_1 is a single vertex.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
