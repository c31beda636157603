package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/planarity/bfs"
	"github.com/katalvlaran/planarity/core"
)

// ExampleIsBipartite contrasts a square with a triangle.
func ExampleIsBipartite() {
	square := core.NewGraph()
	_ = square.AddEdge(1, 2)
	_ = square.AddEdge(2, 3)
	_ = square.AddEdge(3, 4)
	_ = square.AddEdge(4, 1)

	triangle := core.NewGraph()
	_ = triangle.AddEdge(1, 2)
	_ = triangle.AddEdge(2, 3)
	_ = triangle.AddEdge(3, 1)

	ok1, _ := bfs.IsBipartite(square, 1)
	ok2, _ := bfs.IsBipartite(triangle, 1)
	fmt.Println(ok1, ok2)
	// Output:
	// true false
}
