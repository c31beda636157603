// SPDX-License-Identifier: MIT
// Package bfs: two-colouring by BFS layer parity.
package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/planarity/core"
)

// IsBipartite reports whether g admits a proper two-colouring.
//
// Steps:
//  1. Layer the component of the current root; even layers get one
//     colour, odd layers the other.
//  2. Every edge inside the component must join different colours;
//     otherwise return false.
//  3. Drop the coloured vertices; if some remain, restart from the smallest
//     uncoloured one.
//
// A graph with no vertices is bipartite whatever start is. On a non-empty
// graph a missing start is ErrStartVertexNotFound.
func IsBipartite(g *core.Graph, start int) (bool, error) {
	if g.VertexCount() == 0 {
		return true, nil
	}
	if !g.HasVertex(start) {
		return false, fmt.Errorf("IsBipartite(%d): %w", start, ErrStartVertexNotFound)
	}

	remaining := core.VertexSet(g.Vertices())
	root := start
	for {
		res, err := Layers(g, root)
		if err != nil {
			return false, fmt.Errorf("IsBipartite(%d): %w", start, err)
		}
		for _, u := range res.Order {
			nbrs, err := g.Neighbors(u)
			if err != nil {
				return false, fmt.Errorf("IsBipartite(%d): %w", start, err)
			}
			for _, x := range nbrs {
				if res.Depth[u]%2 == res.Depth[x]%2 {
					return false, nil
				}
			}
			delete(remaining, u)
		}
		if len(remaining) == 0 {
			return true, nil
		}
		root = smallest(remaining)
	}
}

// smallest returns the minimum of a non-empty set.
func smallest(set map[int]struct{}) int {
	keys := make([]int, 0, len(set))
	for v := range set {
		keys = append(keys, v)
	}
	sort.Ints(keys)

	return keys[0]
}
