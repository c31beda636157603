// SPDX-License-Identifier: MIT
// Package dfs defines the sentinel errors and the shared stack walker.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

var (
	// ErrStartVertexNotFound indicates that the start vertex does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrBrokenParentChain indicates that walking parent links did not lead
	// back to the search root. It signals a violated internal invariant.
	ErrBrokenParentChain = errors.New("dfs: broken parent chain")
)

// minCycleLen is the smallest cycle FindCycle reports; shorter closures are
// an edge walked there and back.
const minCycleLen = 3

// walker holds per-search scratch state. It never outlives one call.
type walker struct {
	graph     *core.Graph
	stack     []int            // seen vertices, LIFO
	explored  map[int]struct{} // vertices already popped and expanded
	parent    map[int]int      // vertex -> vertex that last pushed it
	forbidden map[int]struct{} // never explored, never parented (may be nil)
}

// newWalker seeds a walker with root on the stack.
func newWalker(g *core.Graph, root int, forbidden map[int]struct{}) *walker {
	n := g.VertexCount()
	return &walker{
		graph:     g,
		stack:     append(make([]int, 0, n), root),
		explored:  make(map[int]struct{}, n),
		parent:    make(map[int]int, n),
		forbidden: forbidden,
	}
}

// pop removes and returns the top of the stack.
func (w *walker) pop() int {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]

	return top
}

func (w *walker) isExplored(v int) bool {
	_, ok := w.explored[v]
	return ok
}

func (w *walker) isForbidden(v int) bool {
	_, ok := w.forbidden[v]
	return ok
}

// trace walks parent links from 'from' until 'root' is reached and returns
// the visited vertices in walk order (from first, root excluded).
// A chain longer than |V| or a missing link yields ErrBrokenParentChain.
func (w *walker) trace(from, root int) ([]int, error) {
	out := []int{from}
	limit := w.graph.VertexCount()
	cur := from
	for {
		p, ok := w.parent[cur]
		if !ok {
			return nil, fmt.Errorf("trace(%d): no parent for %d: %w", from, cur, ErrBrokenParentChain)
		}
		if p == root {
			return out, nil
		}
		if len(out) > limit {
			return nil, fmt.Errorf("trace(%d): chain exceeds %d vertices: %w", from, limit, ErrBrokenParentChain)
		}
		out = append(out, p)
		cur = p
	}
}
