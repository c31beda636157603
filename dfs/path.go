// SPDX-License-Identifier: MIT
// Package dfs: FindPath locates a simple path avoiding a forbidden set.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

// FindPath searches g for a simple path from v1 to v2 that never enters a
// vertex of forbidden. forbidden may be nil; it is read, never modified.
//
// Returns (path, true, nil) with path[0] == v1 and path[len-1] == v2, or
// (nil, false, nil) if v2 is unreachable under the restriction.
//
// The search stops the moment v2 is pushed, so v2 itself is never expanded.
// Complexity: O(V + E).
func FindPath(g *core.Graph, v1, v2 int, forbidden map[int]struct{}) ([]int, bool, error) {
	if !g.HasVertex(v1) {
		return nil, false, fmt.Errorf("FindPath(%d,%d): %w", v1, v2, ErrStartVertexNotFound)
	}
	if _, blocked := forbidden[v2]; blocked {
		return nil, false, nil
	}
	if v1 == v2 {
		return []int{v1}, true, nil
	}
	w := newWalker(g, v1, forbidden)

	for len(w.stack) > 0 {
		u := w.pop()
		if w.isExplored(u) || w.isForbidden(u) {
			continue
		}
		w.explored[u] = struct{}{}

		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, false, fmt.Errorf("FindPath(%d,%d): %w", v1, v2, err)
		}
		for _, x := range nbrs {
			w.stack = append(w.stack, x)
			if !w.isExplored(x) && !w.isForbidden(x) {
				w.parent[x] = u
			}
			if x != v2 {
				continue
			}
			chain, err := w.trace(v2, v1)
			if err != nil {
				return nil, false, fmt.Errorf("FindPath(%d,%d): %w", v1, v2, err)
			}
			// chain is v2 … (child of v1); close with v1 and flip.
			chain = append(chain, v1)
			return Reverse(chain), true, nil
		}
	}

	return nil, false, nil
}
