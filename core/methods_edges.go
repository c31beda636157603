// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns pairs sorted by (U, V) with U < V.
// AI-HINT (file):
//   - AddEdge is idempotent; only a genuinely new pair bumps EdgeCount.
//   - RemoveEdge never creates or deletes vertices.

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the undirected edge {u, v}, creating missing endpoints.
//
// Steps:
//  1. Reject u == v (ErrLoopNotAllowed).
//  2. Insert u→v; the result of this first insertion decides whether the
//     pair is new.
//  3. Insert the mirror v→u.
//  4. Increment edgeCount only for a new pair.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	nu := g.ensureVertex(u)
	_, existed := nu[v]
	nu[v] = struct{}{}
	g.ensureVertex(v)[u] = struct{}{}
	if !existed {
		g.edgeCount++
	}

	return nil
}

// RemoveEdge deletes the undirected edge {u, v}.
// Both endpoints remain in the graph even if they become isolated.
// Returns ErrEdgeNotFound (and changes nothing) if the edge is absent.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	if !g.HasEdge(u, v) {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether {u, v} is an edge. Unknown vertices yield false.
func (g *Graph) HasEdge(u, v int) bool {
	nu, ok := g.adjacency[u]
	if !ok {
		return false
	}
	_, ok = nu[v]

	return ok
}

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Edges returns every edge once, as U < V, sorted by (U, V).
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}
