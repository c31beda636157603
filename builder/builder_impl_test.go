// File: builder_impl_test.go
// Functional tests for every Constructor: counts, degrees, labels and
// error sentinels.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarity/builder"
	"github.com/katalvlaran/planarity/core"
)

func degrees(t *testing.T, g *core.Graph) map[int]int {
	t.Helper()
	out := make(map[int]int)
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		require.NoError(t, err)
		out[d]++
	}
	return out
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		ctor         builder.Constructor
		wantV, wantE int
		wantDegrees  map[int]int // degree -> number of vertices
	}{
		{"Cycle(5)", builder.Cycle(5), 5, 5, map[int]int{2: 5}},
		{"Path(4)", builder.Path(4), 4, 3, map[int]int{1: 2, 2: 2}},
		{"Star(5)", builder.Star(5), 5, 4, map[int]int{1: 4, 4: 1}},
		{"Wheel(6)", builder.Wheel(6), 6, 10, map[int]int{3: 5, 5: 1}},
		{"Complete(5)", builder.Complete(5), 5, 10, map[int]int{4: 5}},
		{"Complete(1)", builder.Complete(1), 1, 0, map[int]int{0: 1}},
		{"CompleteBipartite(2,3)", builder.CompleteBipartite(2, 3), 5, 6, map[int]int{3: 2, 2: 3}},
		{"Grid(3,4)", builder.Grid(3, 4), 12, 17, map[int]int{2: 4, 3: 6, 4: 2}},
		{"Grid(1,1)", builder.Grid(1, 1), 1, 0, map[int]int{0: 1}},
		{"Petersen", builder.Petersen(), 10, 15, map[int]int{3: 10}},
		{"Tetrahedron", builder.PlatonicSolid(builder.Tetrahedron, false), 4, 6, map[int]int{3: 4}},
		{"Cube", builder.PlatonicSolid(builder.Cube, false), 8, 12, map[int]int{3: 8}},
		{"Octahedron", builder.PlatonicSolid(builder.Octahedron, false), 6, 12, map[int]int{4: 6}},
		{"Dodecahedron", builder.PlatonicSolid(builder.Dodecahedron, false), 20, 30, map[int]int{3: 20}},
		{"Icosahedron", builder.PlatonicSolid(builder.Icosahedron, false), 12, 30, map[int]int{5: 12}},
		{"Cube+Center", builder.PlatonicSolid(builder.Cube, true), 9, 20, map[int]int{4: 8, 8: 1}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			assert.Equal(t, tc.wantDegrees, degrees(t, g))
		})
	}
}

func TestBuilders_Labels(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithOffset(1)}, builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, g.Vertices())
	assert.True(t, g.HasEdge(4, 1))

	// hub of a wheel is the last index
	g, err = builder.BuildGraph(nil, builder.Wheel(5))
	require.NoError(t, err)
	d, err := g.Degree(4)
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	// bipartite right side follows the left side
	g, err = builder.BuildGraph(nil, builder.CompleteBipartite(3, 3))
	require.NoError(t, err)
	assert.True(t, g.HasEdge(0, 3))
	assert.False(t, g.HasEdge(0, 1))

	g, err = builder.BuildGraph([]builder.BuilderOption{
		builder.WithIDScheme(func(i int) int { return 10 * (i + 1) }),
	}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{U: 10, V: 20}, {U: 20, V: 30}}, g.Edges())
}

func TestBuilders_Compose(t *testing.T) {
	// two constructors on the same labels overlap idempotently
	g, err := builder.BuildGraph(nil, builder.Cycle(4), builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())

	g = core.NewGraph()
	require.NoError(t, builder.Apply(g, builder.Path(3), builder.WithOffset(5)))
	assert.Equal(t, []int{5, 6, 7}, g.Vertices())
}

func TestBuilders_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,3)", builder.CompleteBipartite(0, 3), builder.ErrTooFewVertices},
		{"Grid(0,2)", builder.Grid(0, 2), builder.ErrTooFewVertices},
		{"Platonic(99)", builder.PlatonicSolid(builder.PlatonicName(99), false), builder.ErrOptionViolation},
		{"RandomSparse p>1", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse no rng", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"RandomRegular odd", builder.RandomRegular(5, 3), builder.ErrTooFewVertices},
		{"RandomRegular no rng", builder.RandomRegular(6, 3), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestRandomSparse(t *testing.T) {
	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(12, 0.3))
		require.NoError(t, err)
		return g
	}
	a, b := build(42), build(42)
	assert.Equal(t, a.Edges(), b.Edges(), "same seed, same graph")
	assert.Equal(t, 12, a.VertexCount())

	full, err := builder.BuildGraph(nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 10, full.EdgeCount())

	empty, err := builder.BuildGraph(nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.EdgeCount())
	assert.Equal(t, 5, empty.VertexCount())
}

func TestRandomRegular(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomRegular(8, 2))
	if err != nil {
		require.ErrorIs(t, err, builder.ErrConstructFailed)
		return
	}
	assert.Equal(t, map[int]int{2: 8}, degrees(t, g))

	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomRegular(4, 0))
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestParsePlatonicName(t *testing.T) {
	p, err := builder.ParsePlatonicName("icosahedron")
	require.NoError(t, err)
	assert.Equal(t, builder.Icosahedron, p)
	assert.Equal(t, "Icosahedron", p.String())

	_, err = builder.ParsePlatonicName("torus")
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}
