// SPDX-License-Identifier: MIT

// Package preflight computes structural diagnostics of a core.Graph before a
// planarity test: connected components, biconnected blocks, the forest
// property, the Euler edge bound, and an independent two-colouring.
//
// Vertices are relabelled densely in ascending order and handed to
// github.com/soniakeys/graph; results are mapped back to the original
// labels. Every function borrows its input.
package preflight
