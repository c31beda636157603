// Package planarity decides whether an undirected simple graph can be drawn
// in the plane without crossing edges.
//
// The test is the recursive cycle-and-pieces method: find a cycle, split the
// rest of the graph into pieces attached to it, check that pieces which would
// collide on the same side of the cycle can be two-coloured, then repeat on
// every piece that is not a plain path.
//
// Packages:
//
//	core/       Graph: adjacency sets over int labels, deterministic order
//	dfs/        FindCycle, FindPath and cycle helpers
//	bfs/        layered search and IsBipartite
//	pieces/     FindPieces: chords and bridges of a graph relative to a cycle
//	interlace/  interlacement graph of pieces around a cycle
//	preflight/  components, blocks and bipartiteness via soniakeys/graph
//	planar/     IsPlanar and Test, the recursive driver
//	builder/    standard graph families (cycles, wheels, K_n, K_{m,n}, solids)
//	edgelist/   text and YAML edge-list reader and writer
//	cmd/planarity  check, generate and inspect from the command line
//
// Quick example:
//
//	    1───2
//	    │ ╲ │
//	    4───3
//
//	g, _ := core.FromEdges([]core.Edge{{1, 2}, {2, 3}, {3, 4}, {4, 1}, {1, 3}})
//	res, _ := planar.IsPlanar(g)
//	fmt.Println(res) // planar (pieces embeddable)
//
//	go install github.com/katalvlaran/planarity/cmd/planarity@latest
package planarity
