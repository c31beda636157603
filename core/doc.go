// SPDX-License-Identifier: MIT
//
// Package core provides the undirected, simple Graph used by every
// planarity routine in this module.
//
// A Graph G = (V, E) is stored as an adjacency map vertex → neighbour set
// plus a running edge counter:
//
//	adjacency[u][v] = struct{}{}  ⇔  adjacency[v][u] = struct{}{}
//
// Vertices are plain ints with no payload. The graph is deliberately small:
//
//   - AddEdge / RemoveEdge keep adjacency symmetric and the counter exact.
//     Re-adding an existing edge is a no-op; self-loops are rejected.
//   - Clone returns a deep copy. Algorithms that consume their input
//     (pieces.FindPieces) must be handed a clone when the caller still
//     needs the original.
//   - Every enumeration (Vertices, Neighbors, Edges) returns a fresh, sorted
//     slice. Callers may mutate the result freely; the graph is never
//     exposed through a live view.
//   - IsPath reports "every vertex has degree ≤ 2", which is also true for
//     a simple cycle.
//
// Graph is not safe for concurrent mutation. The planarity engine is
// single-threaded and each recursive step owns its own copies.
//
// Core methods:
//
//	NewGraph() *Graph
//	AddVertex(v int)
//	AddEdge(u, v int) error          // O(1)
//	RemoveEdge(u, v int) error       // O(1)
//	HasVertex(v int) bool
//	HasEdge(u, v int) bool
//	Neighbors(v int) ([]int, error)  // O(d·log d), sorted
//	Vertices() []int                 // O(V·log V), sorted
//	Vertex() (int, error)            // smallest vertex, ErrEmptyGraph
//	Edges() []Edge                   // O(E·log E), U < V
//	VertexCount(), EdgeCount(), Degree(v)
//	IsPath() bool
//	Clone() *Graph                   // O(V+E) deep copy
//
// Errors:
//
//	ErrEmptyGraph       – Vertex() on a graph without vertices
//	ErrVertexNotFound   – query on a vertex that does not exist
//	ErrEdgeNotFound     – RemoveEdge on a missing edge
//	ErrLoopNotAllowed   – AddEdge(v, v)
package core
