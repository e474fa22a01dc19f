package coloring_test

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma/builder"
	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/core"
)

var _ coloring.Graph[string] = (*core.Graph)(nil)

// mustBuild builds a fixture or fails the test.
func mustBuild(t testing.TB, ctor builder.Constructor, opts ...builder.BuilderOption) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, opts, ctor)
	require.NoError(t, err)

	return g
}

// variant is one strategy × interchange combination.
type variant struct {
	strategy    coloring.Strategy
	interchange bool
}

func (v variant) String() string {
	return fmt.Sprintf("%s/interchange=%t", v.strategy, v.interchange)
}

// allVariants lists every runnable strategy with and without interchange.
func allVariants() []variant {
	out := make([]variant, 0, 2*len(coloring.Strategies))
	for _, s := range coloring.Strategies {
		out = append(out, variant{s, false}, variant{s, true})
	}

	return out
}

// runVariant runs v on g; RandomSequential gets a fixed seed.
func runVariant(g *core.Graph, v variant, extra ...coloring.Option) (*coloring.Result[string], error) {
	opts := append([]coloring.Option{
		coloring.WithInterchange(v.interchange),
		coloring.WithSeed(2024),
	}, extra...)

	return coloring.Run[string](g, v.strategy, opts...)
}

// requireValid asserts totality, properness and colour-range consistency.
func requireValid[V cmp.Ordered](t *testing.T, g coloring.Graph[V], res *coloring.Result[V]) {
	t.Helper()
	require.NotNil(t, res)
	require.NoError(t, coloring.Verify(g, res.Colors))
	require.Len(t, res.Colors, g.VertexCount())
	require.Len(t, res.Order, g.VertexCount())

	maxColor := 0
	for _, c := range res.Colors {
		maxColor = max(maxColor, c)
	}
	require.Equal(t, maxColor, res.ColorsUsed)

	for i, cls := range res.ColorClasses() {
		require.NotEmpty(t, cls, "color %d unused", i+1)
	}
}

// fakeGraph is a hand-rolled Graph View used to feed malformed input.
type fakeGraph struct {
	verts    []int
	adj      map[int][]int
	degDelta map[int]int
	count    int // -1 means len(verts)
	err      error
}

func newFake(verts []int, edges [][2]int) *fakeGraph {
	f := &fakeGraph{verts: verts, adj: make(map[int][]int), degDelta: map[int]int{}, count: -1}
	for _, e := range edges {
		f.adj[e[0]] = append(f.adj[e[0]], e[1])
		f.adj[e[1]] = append(f.adj[e[1]], e[0])
	}

	return f
}

func (f *fakeGraph) VertexCount() int {
	if f.count >= 0 {
		return f.count
	}

	return len(f.verts)
}

func (f *fakeGraph) Vertices() []int { return slices.Clone(f.verts) }

func (f *fakeGraph) NeighborIDs(v int) ([]int, error) {
	if f.err != nil {
		return nil, f.err
	}

	return slices.Clone(f.adj[v]), nil
}

func (f *fakeGraph) Degree(v int) (int, error) {
	if f.err != nil {
		return 0, f.err
	}

	return len(f.adj[v]) + f.degDelta[v], nil
}

var errBackend = errors.New("backend unavailable")
