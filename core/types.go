// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge types, sentinel errors and the NewGraph constructor.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyGraph indicates that an operation needs at least one vertex.
	ErrEmptyGraph = errors.New("core: graph is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted. Graphs are simple.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an unordered vertex pair. Edges() always reports U < V.
type Edge struct {
	U int
	V int
}

// Graph is an undirected simple graph over int vertices.
//
// adjacency maps every vertex to the set of its neighbours; a vertex whose
// last edge was removed stays present with an empty set. edgeCount is the
// number of distinct unordered pairs currently connected.
type Graph struct {
	adjacency map[int]map[int]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[int]map[int]struct{})}
}

// FromEdges builds a Graph from a list of pairs, stopping at the first error.
// Duplicate pairs are tolerated (AddEdge is idempotent).
func FromEdges(edges []Edge) (*Graph, error) {
	g := NewGraph()
	for _, e := range edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return nil, err
		}
	}

	return g, nil
}
