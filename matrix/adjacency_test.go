package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma/builder"
	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/core"
	"github.com/katalvlaran/chroma/matrix"
)

var _ coloring.Graph[int] = (*matrix.Adjacency)(nil)

func TestNewAdjacency_Wheel(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Wheel(4))
	require.NoError(t, err)

	a, err := matrix.NewAdjacency(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3", "Center"}, a.Labels())
	assert.Equal(t, 5, a.VertexCount())

	nbrs, err := a.NeighborIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, nbrs)
	d, err := a.Degree(4)
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	for _, s := range coloring.Strategies {
		viaMatrix, err := coloring.Run[int](a, s, coloring.WithSeed(3))
		require.NoError(t, err)
		viaCore, err := coloring.Run[string](g, s, coloring.WithSeed(3))
		require.NoError(t, err)
		assert.Equal(t, viaCore.ColorsUsed, viaMatrix.ColorsUsed, s.String())

		// Indices follow sorted IDs, so colours translate one to one.
		labels := a.Labels()
		for i, c := range viaMatrix.Colors {
			assert.Equal(t, viaCore.Colors[labels[i]], c, "%s %s", s, labels[i])
		}
	}
}

func TestFromRows(t *testing.T) {
	a, err := matrix.FromRows([][]int{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})
	require.NoError(t, err)
	res, err := coloring.LargestFirst[int](a)
	require.NoError(t, err)
	assert.Equal(t, 3, res.ColorsUsed)

	c, err := a.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, c)
	_, err = a.At(0, 3)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	_, err = a.NeighborIDs(-1)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfRange)

	_, err = matrix.FromRows([][]int{{0, 1}, {1}})
	assert.ErrorIs(t, err, matrix.ErrNotSquare)
	_, err = matrix.FromRows([][]int{{0, -1}, {-1, 0}})
	assert.ErrorIs(t, err, matrix.ErrNegativeEntry)
}

func TestFromRows_InvalidForColoring(t *testing.T) {
	cases := map[string][][]int{
		"asymmetric": {{0, 1}, {0, 0}},
		"loop":       {{1, 1}, {1, 0}},
		"multi":      {{0, 2}, {2, 0}},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			a, err := matrix.FromRows(rows)
			require.NoError(t, err)
			_, err = coloring.DSatur[int](a)
			assert.ErrorIs(t, err, coloring.ErrInvalidGraph)
		})
	}
}

func TestToGraph_RoundTrip(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	for _, e := range [][2]string{{"a", "b"}, {"a", "b"}, {"b", "c"}, {"c", "c"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("z"))

	a, err := matrix.NewAdjacency(g)
	require.NoError(t, err)
	ab, _ := a.At(0, 1)
	assert.Equal(t, 2, ab)
	cc, _ := a.At(2, 2)
	assert.Equal(t, 1, cc)
	dc, _ := a.Degree(2)
	assert.Equal(t, 3, dc)

	back, err := a.ToGraph()
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), back.Vertices())
	assert.Equal(t, g.EdgeCount(), back.EdgeCount())
	for _, v := range g.Vertices() {
		want, _ := g.Degree(v)
		got, _ := back.Degree(v)
		assert.Equal(t, want, got, v)
	}

	_, err = matrix.NewAdjacency(nil)
	assert.ErrorIs(t, err, matrix.ErrMatrixNilGraph)
}

func TestAdjacency_RowsAndSymmetry(t *testing.T) {
	a, err := matrix.FromRows([][]int{{0, 2}, {2, 1}})
	require.NoError(t, err)
	assert.True(t, a.Symmetric())

	rows := a.Rows()
	assert.Equal(t, [][]int{{0, 2}, {2, 1}}, rows)
	rows[0][1] = 7
	v, err := a.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	b, err := matrix.FromRows([][]int{{0, 1}, {0, 0}})
	require.NoError(t, err)
	assert.False(t, b.Symmetric())
}
