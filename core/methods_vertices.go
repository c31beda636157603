// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and Neighbors() return ascending, freshly allocated slices.
//   - Vertex() returns the smallest vertex, so "pick any vertex" is reproducible.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts v as an isolated vertex. Existing vertices are untouched.
func (g *Graph) AddVertex(v int) {
	g.ensureVertex(v)
}

// ensureVertex returns v's neighbour set, creating it if needed.
func (g *Graph) ensureVertex(v int) map[int]struct{} {
	nbrs, ok := g.adjacency[v]
	if !ok {
		nbrs = make(map[int]struct{})
		g.adjacency[v] = nbrs
	}

	return nbrs
}

// HasVertex reports whether v is present.
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.adjacency[v]

	return ok
}

// Vertices returns all vertices in ascending order.
// The slice is a copy; mutating it never affects the graph.
// Complexity: O(V·log V).
func (g *Graph) Vertices() []int {
	out := make([]int, 0, len(g.adjacency))
	for v := range g.adjacency {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// Vertex returns an arbitrary (the smallest) vertex.
// Returns ErrEmptyGraph if the graph has no vertices.
// Complexity: O(V).
func (g *Graph) Vertex() (int, error) {
	if len(g.adjacency) == 0 {
		return 0, ErrEmptyGraph
	}
	first := true
	var min int
	for v := range g.adjacency {
		if first || v < min {
			min, first = v, false
		}
	}

	return min, nil
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	return len(g.adjacency)
}

// Neighbors returns the neighbours of v in ascending order.
// Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(v int) ([]int, error) {
	nbrs, ok := g.adjacency[v]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexNotFound)
	}
	out := make([]int, 0, len(nbrs))
	for w := range nbrs {
		out = append(out, w)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of neighbours of v.
func (g *Graph) Degree(v int) (int, error) {
	nbrs, ok := g.adjacency[v]
	if !ok {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexNotFound)
	}

	return len(nbrs), nil
}

// IsPath reports whether every vertex has degree ≤ 2.
//
// A simple cycle satisfies this too: it is an s-t path with s = t, and the
// planarity recursion treats both the same way.
func (g *Graph) IsPath() bool {
	for _, nbrs := range g.adjacency {
		if len(nbrs) > 2 {
			return false
		}
	}

	return true
}
