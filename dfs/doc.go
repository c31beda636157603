// SPDX-License-Identifier: MIT
//
// Package dfs implements the stack-based depth-first searches used by the
// planarity engine: locating a simple cycle through a start vertex and a
// simple path between two vertices that avoids a forbidden vertex set.
//
// What:
//
//   - FindCycle(g, start): explicit-stack DFS from start. A vertex may be
//     pushed (seen) many times; only its first pop explores it. Parent links
//     are refreshed on every push of an unexplored neighbour and on every
//     push of start itself, so a cycle can be closed through start even
//     though start was explored first. The first reconstructed cycle longer
//     than two vertices is returned.
//   - FindPath(g, v1, v2, forbidden): the same discipline from v1, never
//     entering a forbidden vertex, until v2 is pushed.
//   - Helpers: IndexOf, Reverse, Rotate, CanonicalCycle, ValidateCycle.
//
// Why stack-based instead of recursive: the seen/explored split is what
// lets FindCycle notice the closing edge back to start; a recursive
// three-colour DFS would reject it as a back-edge to an explored vertex.
//
// Absent results are not errors: both searches return found == false.
// Errors are reserved for invalid input (missing start) and broken
// internal invariants.
//
// Complexity:
//
//   - FindCycle / FindPath: Time O(V + E) pushes, Memory O(V + E) stack.
//   - CanonicalCycle:       Time O(L), Booth's minimal rotation.
//
// Errors:
//
//   - ErrStartVertexNotFound  start / v1 is not in the graph
//   - ErrBrokenParentChain    parent reconstruction did not reach the root
package dfs
