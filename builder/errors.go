// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w: "<Method>: <detail>: <sentinel>".

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, degree)
// is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that retries were exhausted, or that a nil
// constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an unknown family parameter (e.g. an unknown
// Platonic solid).
var ErrOptionViolation = errors.New("builder: invalid option value")
