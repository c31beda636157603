// SPDX-License-Identifier: MIT

// Package planar decides whether an undirected graph can be drawn in the
// plane without crossing edges.
//
// The test is the classical path-addition scheme:
//
//  1. Pick a cycle C. Split the graph into pieces relative to C (package
//     pieces).
//  2. Every piece that is not a simple path is tested recursively, together
//     with C, around a new cycle made from a path through the piece and an
//     arc of C.
//  3. Pieces must be split between the inside and the outside of C so that
//     no two pieces on the same side interlace: the interlacement graph
//     (package interlace) must be bipartite (package bfs).
//
// A quick edge bound (E ≤ 3V − 6) rejects dense graphs before any search.
//
// Entry points:
//
//   - IsPlanar(g, opts...)   top level: chooses the cycle, returns a Result.
//   - Test(g, cycle, opts...) the recursive decision for a caller-chosen cycle.
//
// Options follow the functional-option pattern used across this module:
// WithMaxDepth bounds the recursion, WithLogger receives a debug trace,
// WithBlocks tests each biconnected block separately.
//
// The package is single-threaded; every call owns its scratch state and
// borrows its input graph.
package planar
