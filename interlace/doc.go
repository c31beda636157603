// SPDX-License-Identifier: MIT

// Package interlace builds the conflict graph of the pieces of a graph
// relative to a cycle.
//
// Two pieces interlace when they cannot be drawn on the same side of the
// cycle. The test walks the cycle once per pair and counts:
//
//   - alternations: how often the walk switches between an attachment of
//     one piece and an attachment of the other;
//   - shared attachments: cycle vertices attached to both pieces.
//
// A pair interlaces as soon as either count reaches its threshold
// (AlternationThreshold, SharedThreshold). The interlacement graph has one
// vertex per interlacing piece (its index in the input slice) and one edge
// per interlacing pair; a drawing with pieces split between the inside and
// the outside of the cycle exists only if that graph is bipartite.
package interlace
