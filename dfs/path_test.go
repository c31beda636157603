package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/dfs"
)

// TestFindPath_Forbidden covers unrestricted, partially and fully blocked searches.
//
//	1 ── 2 ── 3 ── 4
//	│    └─ 6 ┘    │
//	└───── 5 ──────┘
func TestFindPath_Forbidden(t *testing.T) {
	g := mustGraph(t,
		[2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4},
		[2]int{1, 5}, [2]int{5, 4},
		[2]int{2, 6}, [2]int{6, 3},
	)

	path, found, err := dfs.FindPath(g, 1, 4, nil)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []int{1, 5, 4}, path)

	path, found, err = dfs.FindPath(g, 1, 4, map[int]struct{}{5: {}})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, path[0])
	assert.Equal(t, 4, path[len(path)-1])
	assert.NotContains(t, path, 5)
	for i := 0; i+1 < len(path); i++ {
		assert.True(t, g.HasEdge(path[i], path[i+1]))
	}

	_, found, err = dfs.FindPath(g, 1, 4, map[int]struct{}{2: {}, 5: {}})
	require.NoError(t, err)
	assert.False(t, found)
}

// TestFindPath_Edges covers trivial and invalid requests.
func TestFindPath_Edges(t *testing.T) {
	g := mustGraph(t, [2]int{1, 2}, [2]int{3, 4})

	path, found, err := dfs.FindPath(g, 1, 2, nil)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []int{1, 2}, path)

	_, found, err = dfs.FindPath(g, 1, 4, nil)
	require.NoError(t, err)
	assert.False(t, found, "different components")

	_, found, err = dfs.FindPath(g, 1, 2, map[int]struct{}{2: {}})
	require.NoError(t, err)
	assert.False(t, found, "target forbidden")

	path, found, err = dfs.FindPath(g, 3, 3, nil)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []int{3}, path)

	_, _, err = dfs.FindPath(g, 9, 1, nil)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}
