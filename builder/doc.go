// SPDX-License-Identifier: MIT

// Package builder provides deterministic constructors for the graph families
// used as fixtures by tests and by the `planarity generate` command.
//
// Every constructor is a Constructor closure; BuildGraph creates a fresh
// core.Graph, resolves BuilderOptions once, and applies the constructors in
// order:
//
//	g, err := builder.BuildGraph(nil, builder.Wheel(6))
//	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithOffset(1)},
//		builder.CompleteBipartite(3, 3))
//
// Vertex labels:
//
//   - Constructors number their vertices by index 0..n-1 and map each index
//     through the configured ID function (WithOffset, WithIDScheme).
//   - Families with a distinguished vertex (Star, Wheel) give it a fixed
//     index documented on the constructor.
//
// Families: Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid,
// Petersen, PlatonicSolid (five solids, optionally with a centre hub),
// RandomSparse and RandomRegular (seeded via WithSeed / WithRand).
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed, ErrOptionViolation) wrapped with the
// constructor name; branch with errors.Is. Option constructors panic on
// meaningless input; constructors never panic.
package builder
