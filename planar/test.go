// SPDX-License-Identifier: MIT
//
// File: test.go
// Role: Recursive planarity decision around a given cycle.
// AI-HINT (file):
//   - The input graph is never modified; pieces are decomposed from a clone
//     and each piece is a fresh graph owned by this call.

package planar

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/planarity/bfs"
	"github.com/katalvlaran/planarity/core"
	"github.com/katalvlaran/planarity/dfs"
	"github.com/katalvlaran/planarity/interlace"
	"github.com/katalvlaran/planarity/pieces"
)

// tester carries per-run counters through the recursion.
type tester struct {
	opts     Options
	calls    int
	maxDepth int
	// failedAt is the depth of the first negative verdict, -1 while none.
	failedAt int
	bound    bool // first failure was the edge bound
}

func newTester(o Options) *tester {
	return &tester{opts: o, failedAt: -1}
}

// Test reports whether g is planar, deciding around cycle.
// cycle must be a simple cycle of g (at least three vertices, consecutive
// vertices and the closing pair adjacent).
//
// Steps:
//  1. If E > 3V − 6, return false.
//  2. Decompose g relative to cycle; keep copies of the pieces for step 4.
//  3. For each piece that is not a simple path:
//     a. its first two attachments in cycle order are a0 and a1, the rest
//     are forbidden;
//     b. find a path a0 → a1 inside the piece avoiding the forbidden ones;
//     c. the new cycle is that path without its last vertex, followed by
//     the arc of cycle from a1 round to just before a0;
//     d. add the edges of cycle to the piece and recurse; false is final.
//  4. Build the interlacement graph of the pieces; if it has vertices and is
//     not bipartite, return false.
//  5. Return true.
//
// Complexity: exponential in the worst case; each level is O(P·(V + E) + P²·L).
func Test(g *core.Graph, cycle []int, opts ...Option) (bool, error) {
	o, err := resolve(opts)
	if err != nil {
		return false, err
	}
	if err = dfs.ValidateCycle(g, cycle); err != nil {
		return false, fmt.Errorf("Test: %w", err)
	}

	return newTester(o).test(g, cycle, 0)
}

func (t *tester) test(g *core.Graph, cycle []int, depth int) (bool, error) {
	if t.opts.MaxDepth > 0 && depth > t.opts.MaxDepth {
		return false, fmt.Errorf("Test(depth %d): %w", depth, ErrDepthExceeded)
	}
	t.calls++
	if depth > t.maxDepth {
		t.maxDepth = depth
	}
	log := t.opts.Logger.WithFields(logrus.Fields{
		"depth":    depth,
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
	})

	// 1) Euler bound
	if exceedsEdgeBound(g) {
		log.Debug("edge bound exceeded")
		t.fail(depth, true)
		return false, nil
	}

	// 2) Pieces and a snapshot for the interlacement step
	ps, err := pieces.Decompose(g, cycle)
	if err != nil {
		return false, fmt.Errorf("Test(depth %d): %w", depth, err)
	}
	snapshot := make([]*core.Graph, len(ps))
	for i, p := range ps {
		snapshot[i] = p.Clone()
	}
	log.WithField("pieces", len(ps)).Debug("decomposed")

	// 3) Recurse into every non-path piece
	for _, p := range ps {
		if p.IsPath() {
			continue
		}
		next, err := nextCycle(p, cycle)
		if err != nil {
			return false, fmt.Errorf("Test(depth %d): %w", depth, err)
		}
		if err = core.AddCycle(p, cycle); err != nil {
			return false, fmt.Errorf("Test(depth %d): %w", depth, err)
		}
		ok, err := t.test(p, next, depth+1)
		if err != nil || !ok {
			return false, err
		}
	}

	// 4) Pieces must split across the cycle
	ig, err := interlace.MakeInterlacementGraph(snapshot, cycle)
	if err != nil {
		return false, fmt.Errorf("Test(depth %d): %w", depth, err)
	}
	if ig.VertexCount() > 0 {
		root, _ := ig.Vertex()
		ok, err := bfs.IsBipartite(ig, root)
		if err != nil {
			return false, fmt.Errorf("Test(depth %d): %w", depth, err)
		}
		if !ok {
			log.WithField("conflicts", ig.EdgeCount()).Debug("interlacement not bipartite")
			t.fail(depth, false)
			return false, nil
		}
	}

	log.Debug("accepted")
	return true, nil
}

func (t *tester) fail(depth int, bound bool) {
	if t.failedAt < 0 {
		t.failedAt, t.bound = depth, bound
	}
}

// nextCycle builds the cycle a piece is tested around.
func nextCycle(piece *core.Graph, cycle []int) ([]int, error) {
	attach := core.Attachments(piece, cycle)
	if len(attach) < 2 {
		return nil, fmt.Errorf("nextCycle(%v): %w", attach, ErrDegeneratePiece)
	}
	a0, a1 := attach[0], attach[1]
	forbidden := core.VertexSet(attach[2:])

	path, found, err := dfs.FindPath(piece, a0, a1, forbidden)
	if err != nil {
		return nil, fmt.Errorf("nextCycle(%d,%d): %w", a0, a1, err)
	}
	if !found {
		return nil, fmt.Errorf("nextCycle(%d,%d): %w", a0, a1, ErrNoPiecePath)
	}

	// arc of cycle from a1 round to just before a0
	i0, i1 := dfs.IndexOf(cycle, a0), dfs.IndexOf(cycle, a1)
	arc := make([]int, 0, len(cycle))
	arc = append(arc, cycle[i1:]...)
	arc = append(arc, cycle[:i0]...)
	if arc[0] == path[0] {
		arc = dfs.Reverse(arc)
	}

	next := make([]int, 0, len(path)-1+len(arc))
	next = append(next, path[:len(path)-1]...)
	next = append(next, arc...)

	return next, nil
}

// exceedsEdgeBound reports E > 3V − 6 for graphs with at least three vertices.
func exceedsEdgeBound(g *core.Graph) bool {
	v := g.VertexCount()
	return v >= 3 && g.EdgeCount() > 3*v-6
}
