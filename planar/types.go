// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Errors, verdict reasons, results and options of the planarity driver.

package planar

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Sentinel errors.
var (
	// ErrNotBiconnected is returned when no cycle passes through the chosen
	// start vertex of a graph that does contain cycles.
	ErrNotBiconnected = errors.New("planar: not biconnected")

	// ErrDegeneratePiece indicates a non-path piece with fewer than two
	// attachment vertices on the cycle.
	ErrDegeneratePiece = errors.New("planar: piece has fewer than two attachments")

	// ErrNoPiecePath indicates that no path joins the first two attachments
	// of a piece while avoiding the others.
	ErrNoPiecePath = errors.New("planar: no path through piece")

	// ErrDepthExceeded is returned when the recursion passes WithMaxDepth.
	ErrDepthExceeded = errors.New("planar: recursion depth exceeded")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("planar: option violation")
)

// Reason explains a verdict.
type Reason string

const (
	// ReasonAcyclic: the graph has no cycle at all.
	ReasonAcyclic Reason = "acyclic"
	// ReasonCycleOnly: no cycle found from any start leaves a piece.
	ReasonCycleOnly Reason = "cycle without pieces"
	// ReasonEdgeBound: more than 3V − 6 edges.
	ReasonEdgeBound Reason = "edge bound exceeded"
	// ReasonInterlacement: the top-level interlacement graph is not bipartite.
	ReasonInterlacement Reason = "interlacement graph not bipartite"
	// ReasonRecursive: a piece failed its own test.
	ReasonRecursive Reason = "piece not planar"
	// ReasonPieces: every piece passed and the pieces can be split across
	// the cycle.
	ReasonPieces Reason = "pieces embeddable"
)

// Result is the outcome of IsPlanar.
type Result struct {
	Planar bool
	Reason Reason

	// Cycle is the cycle the decision was made around; nil for acyclic
	// graphs. With WithBlocks it belongs to the deciding block.
	Cycle []int
	// Pieces is the number of pieces relative to Cycle.
	Pieces int

	// Calls counts recursive Test invocations; MaxDepth is the deepest one
	// (the top-level Test is depth 0).
	Calls    int
	MaxDepth int
}

// String renders the verdict on one line.
func (r *Result) String() string {
	verdict := "nonplanar"
	if r.Planar {
		verdict = "planar"
	}

	return fmt.Sprintf("%s (%s)", verdict, r.Reason)
}

// Option configures a planarity run.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	MaxDepth int                // 0 = unlimited
	Logger   logrus.FieldLogger // never nil after resolution
	Blocks   bool               // test biconnected blocks separately

	err error
}

// DefaultOptions returns unlimited depth, a discarding logger and whole-graph testing.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l}
}

// WithMaxDepth bounds the recursion depth. Zero means unlimited; negative
// values record ErrOptionViolation.
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("WithMaxDepth(%d): %w", n, ErrOptionViolation)
			return
		}
		o.MaxDepth = n
	}
}

// WithLogger sends a debug trace of the recursion to l. A nil logger is
// ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithBlocks makes IsPlanar split the graph into biconnected blocks and test
// each one; a graph is planar iff all its blocks are.
func WithBlocks() Option {
	return func(o *Options) {
		o.Blocks = true
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o, o.err
}
