// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Read-only views of a graph relative to a vertex sequence.
// AI-HINT (file):
//   - Views never return live internals; results are fresh slices/sets.

package core

// Attachments returns the vertices of cycle that are present in g, in cycle order.
// For a piece of a decomposition these are its attachment vertices.
// Complexity: O(len(cycle)).
func Attachments(g *Graph, cycle []int) []int {
	out := make([]int, 0, len(cycle))
	for _, v := range cycle {
		if g.HasVertex(v) {
			out = append(out, v)
		}
	}

	return out
}

// VertexSet returns a fresh set holding the given vertices.
func VertexSet(vs []int) map[int]struct{} {
	set := make(map[int]struct{}, len(vs))
	for _, v := range vs {
		set[v] = struct{}{}
	}

	return set
}

// AddCycle adds every edge of the closed walk cycle[0] … cycle[n-1] cycle[0]
// to g. Edges already present are left as they are.
func AddCycle(g *Graph, cycle []int) error {
	n := len(cycle)
	for i := 0; i+1 < n; i++ {
		if err := g.AddEdge(cycle[i], cycle[i+1]); err != nil {
			return err
		}
	}
	if n > 1 {
		return g.AddEdge(cycle[0], cycle[n-1])
	}

	return nil
}
