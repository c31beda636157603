// SPDX-License-Identifier: MIT

// Package edgelist reads and writes graphs as edge lists.
//
// Two formats are supported:
//
// Text, one edge per line, two whitespace-separated integers:
//
//	1 2
//	2 3
//	3 1
//
// Reading stops at the first line whose first two tokens are not both
// integers; the rest of the input is ignored. Blank lines and lines starting
// with '#' are skipped. Tokens after the second are ignored. A line holding a
// single integer is ErrMalformedLine. With WithStrict, any line that would
// stop the reader is ErrMalformedLine instead.
//
// YAML, a mapping with an "edges" list of pairs and optional isolated
// "vertices":
//
//	edges:
//	  - [1, 2]
//	  - [2, 3]
//	vertices: [9]
//
// Self-loops are rejected in both formats (core.ErrLoopNotAllowed).
package edgelist
