// SPDX-License-Identifier: MIT

package preflight

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

// Bipartite two-colours g. When g is not bipartite it also returns an odd
// cycle as a vertex sequence in original labels.
func Bipartite(g *core.Graph) (bool, []int, error) {
	ix, err := newIndex(g)
	if err != nil {
		return false, nil, fmt.Errorf("Bipartite: %w", err)
	}
	_, oc, ok := ix.u.Bipartite()
	if ok {
		return true, nil, nil
	}
	cycle := make([]int, len(oc))
	for i, n := range oc {
		cycle[i] = ix.label(n)
	}

	return false, cycle, nil
}
