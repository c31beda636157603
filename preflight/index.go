// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: Dense relabelling between core.Graph vertices and graph.NI.

package preflight

import (
	"github.com/soniakeys/graph"

	"github.com/katalvlaran/planarity/core"
)

// index maps the sparse vertex labels of a core.Graph onto 0..n-1.
type index struct {
	labels []int            // NI -> label, ascending
	ids    map[int]graph.NI // label -> NI
	u      graph.Undirected
}

// newIndex relabels g. Neighbour lists inherit the ascending order of
// core.Graph.Neighbors, so traversals are deterministic.
func newIndex(g *core.Graph) (*index, error) {
	labels := g.Vertices()
	ix := &index{
		labels: labels,
		ids:    make(map[int]graph.NI, len(labels)),
		u:      graph.Undirected{AdjacencyList: make(graph.AdjacencyList, len(labels))},
	}
	for i, v := range labels {
		ix.ids[v] = graph.NI(i)
	}
	for i, v := range labels {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		arcs := make([]graph.NI, 0, len(nbrs))
		for _, w := range nbrs {
			arcs = append(arcs, ix.ids[w])
		}
		ix.u.AdjacencyList[i] = arcs
	}

	return ix, nil
}

func (ix *index) label(n graph.NI) int { return ix.labels[n] }

// edge converts a graph.Edge back to a normalised core.Edge.
func (ix *index) edge(e graph.Edge) core.Edge {
	a, b := ix.label(e.N1), ix.label(e.N2)
	if a > b {
		a, b = b, a
	}

	return core.Edge{U: a, V: b}
}
