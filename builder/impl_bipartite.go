// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// impl_bipartite.go: implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side takes indices 0..n1-1, right side n1..n1+n2-1.
//   • Emits every cross pair, left ascending then right ascending.

package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := addEdge(g, cfg, methodCompleteBipartite, i, n1+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
