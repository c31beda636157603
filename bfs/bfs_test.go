package bfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/bfs"
	"github.com/katalvlaran/planarity/core"
)

// cycleGraph builds C_n over vertices offset..offset+n-1.
func cycleGraph(t *testing.T, g *core.Graph, n, offset int) *core.Graph {
	t.Helper()
	if g == nil {
		g = core.NewGraph()
	}
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddEdge(offset+i, offset+(i+1)%n))
	}
	return g
}

// TestLayers_Errors verifies that invalid inputs and options are rejected.
func TestLayers_Errors(t *testing.T) {
	g := cycleGraph(t, nil, 4, 0)
	_, err := bfs.Layers(g, 42)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.Layers(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	boom := errors.New("boom")
	_, err = bfs.Layers(g, 0, bfs.WithOnVisit(func(v, _ int) error {
		if v == 2 {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
}

// TestLayers_Cycle covers depths, layers and paths on C6.
func TestLayers_Cycle(t *testing.T) {
	g := cycleGraph(t, nil, 6, 0)
	res, err := bfs.Layers(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 5, 2, 4, 3}, res.Order)
	assert.Equal(t, [][]int{{0}, {1, 5}, {2, 4}, {3}}, res.Layers)
	assert.Equal(t, 3, res.Depth[3])

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
	_, err = res.PathTo(99)
	assert.Error(t, err)
}

// TestLayers_MaxDepth limits exploration.
func TestLayers_MaxDepth(t *testing.T) {
	g := cycleGraph(t, nil, 6, 0)
	res, err := bfs.Layers(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 5}, res.Order)
}

// TestIsBipartite covers cycles, edgeless graphs and multiple components.
func TestIsBipartite(t *testing.T) {
	for n := 3; n <= 9; n++ {
		g := cycleGraph(t, nil, n, 1)
		ok, err := bfs.IsBipartite(g, 1)
		require.NoError(t, err)
		assert.Equal(t, n%2 == 0, ok, "C_%d", n)
	}

	// empty graph, any start
	ok, err := bfs.IsBipartite(core.NewGraph(), 7)
	require.NoError(t, err)
	assert.True(t, ok)

	// edgeless graph
	iso := core.NewGraph()
	iso.AddVertex(1)
	iso.AddVertex(2)
	ok, err = bfs.IsBipartite(iso, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	// even cycle + separate triangle: the odd component is found after restart
	mixed := cycleGraph(t, nil, 4, 0)
	cycleGraph(t, mixed, 3, 10)
	ok, err = bfs.IsBipartite(mixed, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	// two even components
	even := cycleGraph(t, nil, 4, 0)
	cycleGraph(t, even, 6, 10)
	ok, err = bfs.IsBipartite(even, 10)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = bfs.IsBipartite(even, 99)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
}
