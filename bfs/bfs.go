// SPDX-License-Identifier: MIT
// Package bfs: layered breadth-first search.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   []queueItem
	visited map[int]bool
	res     *LayerResult
}

// Layers runs breadth-first search on g from start.
// Neighbours are expanded in ascending order, so the result is deterministic.
// Returns ErrStartVertexNotFound, ErrOptionViolation, or a hook error.
func Layers(g *core.Graph, start int, opts ...Option) (*LayerResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("Layers(%d): %w", start, ErrStartVertexNotFound)
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[int]bool, n),
		res: &LayerResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}
	w.enqueue(start, 0, start)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent and layer.
// The root passes itself as parent and gets none recorded.
func (w *walker) enqueue(v, d, parent int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	if parent != v {
		w.res.Parent[v] = parent
	}
	if d == len(w.res.Layers) {
		w.res.Layers = append(w.res.Layers, nil)
	}
	w.res.Layers[d] = append(w.res.Layers[d], v)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		nbrs, err := w.graph.Neighbors(item.v)
		if err != nil {
			return err
		}
		for _, x := range nbrs {
			if !w.visited[x] {
				w.enqueue(x, next, item.v)
			}
		}
	}

	return nil
}
