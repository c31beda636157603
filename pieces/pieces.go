// SPDX-License-Identifier: MIT
// Package pieces: chord and bridge extraction relative to a cycle.
package pieces

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

// Decompose returns the pieces of g relative to cycle without touching g.
// Complexity: O(V + E + L²) where L = len(cycle).
func Decompose(g *core.Graph, cycle []int) ([]*core.Graph, error) {
	return FindPieces(g.Clone(), cycle)
}

// FindPieces returns the pieces of g relative to cycle.
//
// g is CONSUMED: every chord edge is removed from it. Pass a clone if the
// graph is still needed.
//
// Steps:
//  1. Chords: for every index pair (i, j) of cycle whose vertices differ,
//     are not cycle neighbours (|i−j| ≠ 1 and ≠ L−1) and are joined by an
//     edge of g, emit that edge as a one-edge piece and remove it from g.
//  2. Bridges: while off-cycle vertices remain, DFS from the smallest one.
//     Every edge incident to an expanded vertex joins the piece; cycle
//     vertices are added but never expanded. Drop the piece's vertices from
//     the pending set.
func FindPieces(g *core.Graph, cycle []int) ([]*core.Graph, error) {
	var out []*core.Graph

	chords, err := extractChords(g, cycle)
	if err != nil {
		return nil, fmt.Errorf("FindPieces: %w", err)
	}
	out = append(out, chords...)

	onCycle := core.VertexSet(cycle)
	pending := make(map[int]struct{})
	for _, v := range g.Vertices() {
		if _, ok := onCycle[v]; !ok {
			pending[v] = struct{}{}
		}
	}

	// g.Vertices() is ascending, so walking it again yields pending
	// vertices smallest first without re-sorting.
	for _, v := range g.Vertices() {
		if _, ok := pending[v]; !ok {
			continue
		}
		piece, err := collectBridge(g, v, onCycle)
		if err != nil {
			return nil, fmt.Errorf("FindPieces: %w", err)
		}
		out = append(out, piece)
		for _, u := range piece.Vertices() {
			delete(pending, u)
		}
	}

	return out, nil
}

// extractChords removes and returns every chord of cycle present in g.
func extractChords(g *core.Graph, cycle []int) ([]*core.Graph, error) {
	var chords []*core.Graph
	n := len(cycle)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			u, v := cycle[i], cycle[j]
			if u == v || !g.HasEdge(u, v) || !nonAdjacentOnCycle(i, j, n) {
				continue
			}
			chord := core.NewGraph()
			if err := chord.AddEdge(u, v); err != nil {
				return nil, err
			}
			if err := g.RemoveEdge(u, v); err != nil {
				return nil, err
			}
			chords = append(chords, chord)
		}
	}

	return chords, nil
}

// nonAdjacentOnCycle reports whether positions i and j of an n-cycle are
// not neighbours around it.
func nonAdjacentOnCycle(i, j, n int) bool {
	d := i - j
	if d < 0 {
		d = -d
	}

	return d != 1 && d != n-1
}

// collectBridge gathers the bridge containing the off-cycle vertex root.
func collectBridge(g *core.Graph, root int, onCycle map[int]struct{}) (*core.Graph, error) {
	piece := core.NewGraph()
	explored := make(map[int]struct{})
	stack := []int{root}

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, done := explored[u]; done {
			continue
		}
		explored[u] = struct{}{}

		nbrs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		for _, x := range nbrs {
			if err := piece.AddEdge(u, x); err != nil {
				return nil, err
			}
			if _, stop := onCycle[x]; !stop {
				stack = append(stack, x)
			}
		}
	}
	// An off-cycle vertex with no edges still forms a (degenerate) piece.
	piece.AddVertex(root)

	return piece, nil
}

// IsChord reports whether piece is a single edge between two cycle vertices.
func IsChord(piece *core.Graph, cycle []int) bool {
	if piece.EdgeCount() != 1 || piece.VertexCount() != 2 {
		return false
	}

	return len(core.Attachments(piece, cycle)) == 2
}
