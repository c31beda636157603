// SPDX-License-Identifier: MIT
// Package dfs: FindCycle locates a simple cycle through a start vertex.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

// FindCycle searches g for a simple cycle that passes through start.
//
// Returns (cycle, true, nil) with cycle[0] == start and consecutive
// vertices adjacent (the last one adjacent to start). Returns
// (nil, false, nil) when the search is exhausted, e.g. on a tree.
//
// Steps:
//  1. Push start.
//  2. Pop u; skip it if already explored; otherwise mark explored.
//  3. For each neighbour x of u (ascending): push x; set parent[x] = u if x
//     is unexplored or x == start.
//  4. If x == start, rebuild the cycle start, parent[start], … back to
//     start; return it if it has at least three vertices, else continue.
//
// Complexity: O(V + E) pushes plus O(L) per attempted reconstruction.
func FindCycle(g *core.Graph, start int) ([]int, bool, error) {
	if !g.HasVertex(start) {
		return nil, false, fmt.Errorf("FindCycle(%d): %w", start, ErrStartVertexNotFound)
	}
	w := newWalker(g, start, nil)

	for len(w.stack) > 0 {
		u := w.pop()
		if w.isExplored(u) {
			continue
		}
		w.explored[u] = struct{}{}

		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, false, fmt.Errorf("FindCycle(%d): %w", start, err)
		}
		for _, x := range nbrs {
			w.stack = append(w.stack, x)
			if !w.isExplored(x) || x == start {
				w.parent[x] = u
			}
			if x != start {
				continue
			}
			// u closes a walk back to the root; start-u-start is not a cycle.
			tail, err := w.trace(u, start)
			if err != nil {
				return nil, false, fmt.Errorf("FindCycle(%d): %w", start, err)
			}
			if len(tail)+1 < minCycleLen {
				continue
			}
			return append([]int{start}, tail...), true, nil
		}
	}

	return nil, false, nil
}
