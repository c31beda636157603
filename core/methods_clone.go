// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy and diagnostic rendering.
// AI-HINT (file):
//   - Clone shares nothing with the source: every neighbour set is reallocated.

package core

import (
	"fmt"
	"strings"
)

// Clone returns a deep copy of the Graph: same adjacency, same edge count.
// Subsequent mutation of either graph never affects the other.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		adjacency: make(map[int]map[int]struct{}, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for v, nbrs := range g.adjacency {
		cp := make(map[int]struct{}, len(nbrs))
		for w := range nbrs {
			cp[w] = struct{}{}
		}
		clone.adjacency[v] = cp
	}

	return clone
}

// String renders one "u -> v" line per directed adjacency entry, sorted.
// It is a diagnostic dump, not a serialization format.
func (g *Graph) String() string {
	var sb strings.Builder
	for _, v := range g.Vertices() {
		nbrs, _ := g.Neighbors(v)
		for _, w := range nbrs {
			fmt.Fprintf(&sb, "%d -> %d\n", v, w)
		}
	}

	return sb.String()
}
