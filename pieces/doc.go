// SPDX-License-Identifier: MIT
//
// Package pieces splits a graph into the pieces of a cycle.
//
// Given a cycle C of G, every edge of G that is not an edge of C belongs to
// exactly one piece:
//
//   - a chord: a single edge joining two cycle vertices that are not
//     neighbours on C;
//   - a bridge: a maximal connected component of G − V(C) together with all
//     edges that join it to C. The cycle vertices such a piece touches are
//     its attachment vertices.
//
//	     1───2
//	    /│    \        cycle 1-2-3-4-5-6
//	   6 │  7  3       chord {1,4}
//	    \│ / \/        bridge {7: 7-3, 7-5}
//	     5───4
//
// Ownership:
//
//   - FindPieces consumes its input: chords are removed from it as they are
//     extracted. Use it only on a graph the caller has already cloned.
//   - Decompose borrows: it clones the graph first and never mutates it.
//
// Output order is stable for a given input: chords in cycle-index order,
// then bridges in ascending order of their smallest vertex.
package pieces
