package core_test

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a graph and add a triangle (vertices are created on demand):
	g := core.NewGraph()
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(3, 1)

	// 2) Adding an existing edge is a no-op:
	_ = g.AddEdge(2, 1)

	// 3) Inspect:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edges:", g.EdgeCount())
	fmt.Println("Path-like:", g.IsPath())

	// 4) Clone and mutate independently:
	c := g.Clone()
	_ = c.RemoveEdge(1, 2)
	fmt.Println("Original still has 1-2:", g.HasEdge(1, 2))
	// Output:
	// Vertices: [1 2 3]
	// Edges: 3
	// Path-like: true
	// Original still has 1-2: true
}
