package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/planarity/dfs"
)

func TestHelpers(t *testing.T) {
	s := []int{4, 3, 2, 1, 6, 5}
	assert.Equal(t, 3, dfs.IndexOf(s, 1))
	assert.Equal(t, -1, dfs.IndexOf(s, 9))
	assert.Equal(t, []int{5, 6, 1, 2, 3, 4}, dfs.Reverse(s))
	assert.Equal(t, []int{1, 6, 5, 4, 3, 2}, dfs.Rotate(s, 3))
	assert.Equal(t, []int{5, 4, 3, 2, 1, 6}, dfs.Rotate(s, -1))
	assert.Equal(t, []int{}, dfs.Rotate(nil, 2))
	assert.Equal(t, []int{1, 6, 5, 4, 3, 2}, dfs.MinimalRotation(s))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, dfs.CanonicalCycle(s))
	assert.Equal(t, []int{4, 3, 2, 1, 6, 5}, s, "inputs untouched")
}

func TestValidateCycle(t *testing.T) {
	g := mustGraph(t, ring(5)...)
	assert.NoError(t, dfs.ValidateCycle(g, []int{3, 4, 5, 1, 2}))
	assert.ErrorIs(t, dfs.ValidateCycle(g, []int{1, 2}), dfs.ErrNotACycle)
	assert.ErrorIs(t, dfs.ValidateCycle(g, []int{1, 2, 3}), dfs.ErrNotACycle)
	assert.ErrorIs(t, dfs.ValidateCycle(g, []int{1, 2, 1, 5}), dfs.ErrNotACycle)
}
