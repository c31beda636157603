// SPDX-License-Identifier: MIT
//
// File: planar.go
// Role: Top-level planarity entry point.
// Determinism:
//   - Start vertices are tried in ascending order; blocks in the order
//     returned by preflight.BlockGraphs.

package planar

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/dfs"
	"github.com/katalvlaran/planarity/pieces"
	"github.com/katalvlaran/planarity/preflight"
)

// IsPlanar decides whether g is planar and explains the verdict.
//
// Steps:
//  1. For each vertex v in ascending order, look for a cycle through v.
//     - No cycle: if g is a forest it is planar (ReasonAcyclic); otherwise
//     v does not lie on a cycle and the graph is ErrNotBiconnected.
//  2. Decompose g around the cycle. With no pieces, try the next vertex.
//  3. With pieces: reject on the edge bound, otherwise run Test.
//  4. If no start produced a piece, g is a single cycle: planar.
//
// With WithBlocks, g is first split into biconnected blocks and every block
// goes through the steps above; the first nonplanar block decides.
//
// An empty graph yields core.ErrEmptyGraph.
func IsPlanar(g *core.Graph, opts ...Option) (*Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if g.VertexCount() == 0 {
		return nil, fmt.Errorf("IsPlanar: %w", core.ErrEmptyGraph)
	}
	if o.Blocks {
		return isPlanarByBlocks(g, o)
	}

	return isPlanar(g, o)
}

func isPlanar(g *core.Graph, o Options) (*Result, error) {
	var first []int
	for _, v := range g.Vertices() {
		cycle, found, err := dfs.FindCycle(g, v)
		if err != nil {
			return nil, fmt.Errorf("IsPlanar: %w", err)
		}
		if !found {
			return noCycle(g, v)
		}
		if first == nil {
			first = cycle
		}

		ps, err := pieces.Decompose(g, cycle)
		if err != nil {
			return nil, fmt.Errorf("IsPlanar: %w", err)
		}
		if len(ps) == 0 {
			continue
		}
		o.Logger.WithFields(logrus.Fields{
			"start":  v,
			"cycle":  cycle,
			"pieces": len(ps),
		}).Debug("top-level cycle")

		res := &Result{Cycle: cycle, Pieces: len(ps)}
		if exceedsEdgeBound(g) {
			res.Reason = ReasonEdgeBound
			return res, nil
		}

		t := newTester(o)
		ok, err := t.test(g, cycle, 0)
		if err != nil {
			return nil, fmt.Errorf("IsPlanar: %w", err)
		}
		res.Planar = ok
		res.Calls, res.MaxDepth = t.calls, t.maxDepth
		switch {
		case ok:
			res.Reason = ReasonPieces
		case t.bound && t.failedAt == 0:
			res.Reason = ReasonEdgeBound
		case t.failedAt == 0:
			res.Reason = ReasonInterlacement
		default:
			res.Reason = ReasonRecursive
		}

		return res, nil
	}

	return &Result{Planar: true, Reason: ReasonCycleOnly, Cycle: first}, nil
}

// noCycle handles a start vertex that lies on no cycle.
func noCycle(g *core.Graph, v int) (*Result, error) {
	forest, err := preflight.IsForest(g)
	if err != nil {
		return nil, fmt.Errorf("IsPlanar: %w", err)
	}
	if !forest {
		return nil, fmt.Errorf("IsPlanar(start %d): %w", v, ErrNotBiconnected)
	}

	return &Result{Planar: true, Reason: ReasonAcyclic}, nil
}

func isPlanarByBlocks(g *core.Graph, o Options) (*Result, error) {
	blocks, err := preflight.BlockGraphs(g)
	if err != nil {
		return nil, fmt.Errorf("IsPlanar: %w", err)
	}
	o.Logger.WithField("blocks", len(blocks)).Debug("split into blocks")

	// an edgeless graph has no blocks
	total := &Result{Planar: true, Reason: ReasonAcyclic}
	for i, b := range blocks {
		res, err := isPlanar(b, o)
		if err != nil {
			return nil, fmt.Errorf("IsPlanar(block %d): %w", i, err)
		}
		total.Calls += res.Calls
		if res.MaxDepth > total.MaxDepth {
			total.MaxDepth = res.MaxDepth
		}
		if !res.Planar {
			res.Calls, res.MaxDepth = total.Calls, total.MaxDepth
			return res, nil
		}
		if rank(res.Reason) > rank(total.Reason) {
			total.Reason, total.Cycle, total.Pieces = res.Reason, res.Cycle, res.Pieces
		}
	}

	return total, nil
}

// rank orders planar reasons from least to most informative.
func rank(r Reason) int {
	switch r {
	case ReasonAcyclic:
		return 0
	case ReasonCycleOnly:
		return 1
	default:
		return 2
	}
}
