// SPDX-License-Identifier: MIT
//
// Package bfs provides breadth-first layering over a core.Graph and the
// two-colouring test built on it.
//
// Layers explores vertices in increasing distance from a start vertex and
// records, for each vertex, its layer (distance) and BFS parent. IsBipartite
// colours even layers one way and odd layers the other, then checks that no
// edge joins two vertices of the same colour. Disconnected graphs are
// handled one component at a time, restarting from the smallest uncoloured
// vertex until every vertex has been coloured.
//
// The planarity driver runs IsBipartite on the interlacement graph: a
// two-colouring there is an assignment of pieces to the inside or the
// outside of the separating cycle.
//
// Complexity:
//
//   - Layers:      Time O(V + E), Memory O(V)
//   - IsBipartite: Time O(V + E) summed over components, Memory O(V)
package bfs
