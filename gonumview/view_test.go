package gonumview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/gonumview"
)

var _ coloring.Graph[int64] = (*gonumview.View)(nil)

func cycle(n int64) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := int64(0); i < n; i++ {
		g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node((i + 1) % n)})
	}

	return g
}

// TestView_Queries checks the Graph View contract on a simple graph.
func TestView_Queries(t *testing.T) {
	v := gonumview.New(cycle(5))

	assert.Equal(t, 5, v.VertexCount())
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, v.Vertices())

	nbrs, err := v.NeighborIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4}, nbrs)

	d, err := v.Degree(3)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	_, err = v.NeighborIDs(99)
	assert.ErrorIs(t, err, gonumview.ErrNodeNotFound)
	_, err = v.Degree(99)
	assert.ErrorIs(t, err, gonumview.ErrNodeNotFound)
}

// TestView_Coloring runs every strategy over a gonum odd cycle.
func TestView_Coloring(t *testing.T) {
	v := gonumview.New(cycle(7))

	for _, s := range coloring.Strategies {
		for _, interchange := range []bool{false, true} {
			res, err := coloring.Run[int64](v, s, coloring.WithSeed(1), coloring.WithInterchange(interchange))
			require.NoError(t, err)
			require.NoError(t, coloring.Verify[int64](v, res.Colors))
			assert.Equal(t, 3, res.ColorsUsed)
		}
	}
}

// TestView_MultigraphRejected: parallel lines and self-loops fail validation.
func TestView_MultigraphRejected(t *testing.T) {
	parallel := multi.NewUndirectedGraph()
	a, b := multi.Node(1), multi.Node(2)
	parallel.SetLine(parallel.NewLine(a, b))
	parallel.SetLine(parallel.NewLine(a, b))

	d, err := gonumview.New(parallel).Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	_, err = coloring.DSatur[int64](gonumview.New(parallel))
	assert.ErrorIs(t, err, coloring.ErrInvalidGraph)

	looped := multi.NewUndirectedGraph()
	looped.SetLine(looped.NewLine(a, a))
	looped.SetLine(looped.NewLine(a, b))

	_, err = coloring.LargestFirst[int64](gonumview.New(looped))
	assert.ErrorIs(t, err, coloring.ErrInvalidGraph)
}

// TestView_Empty colours an empty gonum graph.
func TestView_Empty(t *testing.T) {
	res, err := coloring.SmallestLast[int64](gonumview.New(simple.NewUndirectedGraph()))
	require.NoError(t, err)
	assert.Zero(t, res.ColorsUsed)
	assert.Empty(t, res.Colors)
}
