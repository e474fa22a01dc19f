package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma/bfs"
	"github.com/katalvlaran/chroma/builder"
	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/core"
)

func build(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)
	return g
}

func TestBFS_PathDepths(t *testing.T) {
	g := build(t, builder.Path(5))

	res, err := bfs.BFS(g, "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, res.Order)
	assert.Equal(t, 4, res.Depth["4"])

	path, err := res.PathTo("3")
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3"}, path)
}

func TestBFS_Options(t *testing.T) {
	g := build(t, builder.Star(5))

	res, err := bfs.BFS(g, "1", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", builder.CenterVertexID}, res.Order)
	_, err = res.PathTo("2")
	assert.Error(t, err)

	res, err = bfs.BFS(g, builder.CenterVertexID, bfs.WithFilterNeighbor(func(_, nb string) bool { return nb != "3" }))
	require.NoError(t, err)
	assert.NotContains(t, res.Order, "3")
	assert.Len(t, res.Order, 4)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, builder.CenterVertexID, bfs.WithOnVisit(func(id string, _ int) error {
		if id == "2" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	_, err = bfs.BFS(g, "1", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "a")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := build(t, builder.Cycle(4))
	_, err = bfs.BFS(g, "x")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "0", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"x", "y"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("m"))

	comps, err := bfs.Components(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"m"}, {"x", "y"}}, comps)

	empty, err := bfs.Components(context.Background(), core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestBipartition(t *testing.T) {
	for name, g := range map[string]*core.Graph{
		"even cycle": build(t, builder.Cycle(8)),
		"grid":       build(t, builder.Grid(4, 5)),
		"bipartite":  build(t, builder.CompleteBipartite(3, 4)),
		"crown":      build(t, builder.Crown(5)),
	} {
		t.Run(name, func(t *testing.T) {
			side, err := bfs.Bipartition(context.Background(), g)
			require.NoError(t, err)
			require.NoError(t, coloring.Verify(g, side))

			// Two colours is optimal here; DSatur reaches it on bipartite inputs.
			res, err := coloring.DSatur(g)
			require.NoError(t, err)
			assert.Equal(t, 2, res.ColorsUsed)
		})
	}
}

func TestBipartition_OddCycle(t *testing.T) {
	for _, n := range []int{3, 5, 9} {
		g := build(t, builder.Cycle(n))
		_, err := bfs.Bipartition(context.Background(), g)
		require.ErrorIs(t, err, bfs.ErrNotBipartite)

		var oc *bfs.OddCycleError
		require.ErrorAs(t, err, &oc)
		assert.Len(t, oc.Cycle, n, "the only odd cycle of C_%d is itself", n)
		for i, v := range oc.Cycle {
			assert.True(t, g.HasEdge(v, oc.Cycle[(i+1)%len(oc.Cycle)]), "%v", oc.Cycle)
		}
	}

	wheel := build(t, builder.Wheel(6))
	_, err := bfs.Bipartition(context.Background(), wheel)
	var oc *bfs.OddCycleError
	require.ErrorAs(t, err, &oc)
	assert.Equal(t, 1, len(oc.Cycle)%2)
}
