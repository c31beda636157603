// SPDX-License-Identifier: MIT
//
// File: preflight.go
// Role: Connectivity, block and forest diagnostics.
// Determinism:
//   - Blocks are sorted by their smallest edge; edges inside a block are
//     sorted by (U, V).

package preflight

import (
	"fmt"
	"sort"

	"github.com/soniakeys/graph"

	"github.com/katalvlaran/planarity/core"
)

// Report summarises the structure of a graph.
type Report struct {
	Vertices    int
	Edges       int
	Components  int
	Connected   bool
	Acyclic     bool // E == V − components
	Biconnected bool // connected, ≥ 3 vertices, a single block
	Blocks      int

	// WithinEdgeBound is false when E > 3V − 6 on a graph of ≥ 3 vertices,
	// which alone rules out planarity.
	WithinEdgeBound bool
}

// Analyze computes a Report for g.
// Complexity: O(V + E) plus O(V·log V) for relabelling.
func Analyze(g *core.Graph) (*Report, error) {
	ix, err := newIndex(g)
	if err != nil {
		return nil, fmt.Errorf("Analyze: %w", err)
	}

	rep := &Report{
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
	}
	reps, _, _ := ix.u.ConnectedComponentReps()
	rep.Components = len(reps)
	rep.Connected = ix.u.IsConnected()
	rep.Acyclic = rep.Edges == rep.Vertices-rep.Components
	rep.WithinEdgeBound = rep.Vertices < 3 || rep.Edges <= 3*rep.Vertices-6

	ix.u.TarjanBiconnectedComponents(func([]graph.Edge) bool {
		rep.Blocks++
		return true
	})
	rep.Biconnected = rep.Connected && rep.Vertices >= 3 && rep.Blocks == 1

	return rep, nil
}

// IsForest reports whether g has no cycle.
func IsForest(g *core.Graph) (bool, error) {
	rep, err := Analyze(g)
	if err != nil {
		return false, fmt.Errorf("IsForest: %w", err)
	}

	return rep.Acyclic, nil
}

// Blocks returns the biconnected components of g as edge lists. A bridge
// edge forms a block of its own; isolated vertices belong to no block.
func Blocks(g *core.Graph) ([][]core.Edge, error) {
	ix, err := newIndex(g)
	if err != nil {
		return nil, fmt.Errorf("Blocks: %w", err)
	}

	var out [][]core.Edge
	ix.u.TarjanBiconnectedComponents(func(bcc []graph.Edge) bool {
		block := make([]core.Edge, 0, len(bcc))
		for _, e := range bcc {
			block = append(block, ix.edge(e))
		}
		sortEdges(block)
		out = append(out, block)
		return true
	})
	sort.Slice(out, func(i, j int) bool { return less(out[i][0], out[j][0]) })

	return out, nil
}

// BlockGraphs returns each block of g as its own graph.
func BlockGraphs(g *core.Graph) ([]*core.Graph, error) {
	blocks, err := Blocks(g)
	if err != nil {
		return nil, err
	}
	out := make([]*core.Graph, 0, len(blocks))
	for _, b := range blocks {
		bg, err := core.FromEdges(b)
		if err != nil {
			return nil, fmt.Errorf("BlockGraphs: %w", err)
		}
		out = append(out, bg)
	}

	return out, nil
}

func sortEdges(es []core.Edge) {
	sort.Slice(es, func(i, j int) bool { return less(es[i], es[j]) })
}

func less(a, b core.Edge) bool {
	if a.U != b.U {
		return a.U < b.U
	}
	return a.V < b.V
}
