package graphio_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chroma/builder"
	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/core"
	"github.com/katalvlaran/chroma/graphio"
)

const triangleWithTail = `# triangle a-b-c with a tail c-d
% matrix-market style comment
a b
b c
c a

c d
lonely
`

func TestFormatFromPath(t *testing.T) {
	cases := []struct {
		path string
		want graphio.Format
	}{
		{"g.txt", graphio.FormatEdgeList},
		{"dir/g.edges", graphio.FormatEdgeList},
		{"g.JSON", graphio.FormatJSON},
		{"g.yaml", graphio.FormatYAML},
		{"g.yml", graphio.FormatYAML},
	}
	for _, tc := range cases {
		got, err := graphio.FormatFromPath(tc.path)
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.want, got, tc.path)
	}

	_, err := graphio.FormatFromPath("graph")
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
	_, err = graphio.FormatFromPath("graph.csv")
	assert.ErrorIs(t, err, graphio.ErrUnknownFormat)
	assert.Equal(t, "yaml", graphio.FormatYAML.String())
}

func TestRead_EdgeList(t *testing.T) {
	g, err := graphio.Read(strings.NewReader(triangleWithTail), graphio.FormatEdgeList)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d", "lonely"}, g.Vertices())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("a", "c"))
	d, err := g.Degree("lonely")
	require.NoError(t, err)
	assert.Zero(t, d)

	res, err := coloring.DSatur(g)
	require.NoError(t, err)
	assert.Equal(t, 3, res.ColorsUsed)
}

func TestRead_EdgeListSyntax(t *testing.T) {
	_, err := graphio.Read(strings.NewReader("a b\na b c\n"), graphio.FormatEdgeList)
	require.ErrorIs(t, err, graphio.ErrSyntax)
	assert.Contains(t, err.Error(), "line 2")
}

// Malformed graphs load, then fail at the colouring boundary.
func TestRead_PermissiveThenRejected(t *testing.T) {
	for name, src := range map[string]string{
		"loop":  "a b\nb b\n",
		"multi": "a b\nb a\n",
	} {
		t.Run(name, func(t *testing.T) {
			g, err := graphio.Read(strings.NewReader(src), graphio.FormatEdgeList)
			require.NoError(t, err)
			_, err = coloring.LargestFirst(g)
			assert.ErrorIs(t, err, coloring.ErrInvalidGraph)
		})
	}
}

func TestRead_JSONAndYAML(t *testing.T) {
	js := `{"vertices": ["x"], "edges": [["a","b"],["b","c"]]}`
	g, err := graphio.Read(strings.NewReader(js), graphio.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "x"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())

	ym := "vertices: [x]\nedges:\n  - [a, b]\n  - [b, c]\n"
	g, err = graphio.Read(strings.NewReader(ym), graphio.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "x"}, g.Vertices())
	assert.Equal(t, 2, g.EdgeCount())
}

func TestRead_DocumentErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		f    graphio.Format
	}{
		{"json three endpoints", `{"edges": [["a","b","c"]]}`, graphio.FormatJSON},
		{"json unknown field", `{"nodes": []}`, graphio.FormatJSON},
		{"json broken", `{"edges": [`, graphio.FormatJSON},
		{"yaml one endpoint", "edges:\n  - [a]\n", graphio.FormatYAML},
		{"yaml empty id", "edges:\n  - ['', b]\n", graphio.FormatYAML},
		{"yaml unknown field", "nodes: []\n", graphio.FormatYAML},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphio.Read(strings.NewReader(tc.src), tc.f)
			assert.ErrorIs(t, err, graphio.ErrSyntax)
		})
	}
}

func TestWriteGraph_RoundTrip(t *testing.T) {
	src, err := builder.BuildGraph(nil, nil, builder.Wheel(5))
	require.NoError(t, err)
	require.NoError(t, src.AddVertex("iso"))

	for _, f := range []graphio.Format{graphio.FormatEdgeList, graphio.FormatJSON, graphio.FormatYAML} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, graphio.WriteGraph(&buf, src, f))

			got, err := graphio.Read(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, src.Vertices(), got.Vertices())
			assert.Equal(t, src.EdgeCount(), got.EdgeCount())
			for _, e := range src.Edges() {
				assert.True(t, got.HasEdge(e.From, e.To), "%s-%s", e.From, e.To)
			}
		})
	}
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	src, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	require.NoError(t, err)

	for _, name := range []string{"c6.txt", "c6.json", "c6.yml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, graphio.WriteGraphFile(path, src))
		got, err := graphio.ReadFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, 6, got.EdgeCount(), name)
	}

	_, err = graphio.ReadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
	assert.ErrorIs(t, graphio.WriteGraphFile(filepath.Join(dir, "c6.bin"), src), graphio.ErrUnknownFormat)
}

func TestWriteReport(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("b", "c")
	_, _ = g.AddEdge("c", "d")
	_, _ = g.AddEdge("d", "a")
	res, err := coloring.Greedy(g, []string{"a", "b", "c", "d"}, coloring.WithInterchange(true))
	require.NoError(t, err)

	rep := graphio.NewReport(g, res, "run-1", 1500*time.Microsecond)
	assert.Equal(t, "greedy", rep.Strategy)
	assert.Equal(t, 4, rep.Vertices)
	assert.Equal(t, 3, rep.Edges)
	assert.Equal(t, 2, rep.ColorsUsed)
	assert.Equal(t, 1, rep.Swaps)
	assert.Equal(t, "1.5ms", rep.Elapsed)

	var js bytes.Buffer
	require.NoError(t, graphio.WriteReport(&js, rep, graphio.FormatJSON))
	var fromJSON graphio.Report
	require.NoError(t, json.Unmarshal(js.Bytes(), &fromJSON))
	assert.Equal(t, rep, fromJSON)
	assert.Contains(t, js.String(), `"colors_used": 2`)

	var ym bytes.Buffer
	require.NoError(t, graphio.WriteReport(&ym, rep, graphio.FormatYAML))
	var fromYAML graphio.Report
	require.NoError(t, yaml.Unmarshal(ym.Bytes(), &fromYAML))
	assert.Equal(t, rep, fromYAML)

	assert.ErrorIs(t, graphio.WriteReport(&js, rep, graphio.FormatEdgeList), graphio.ErrUnknownFormat)
}

func TestMatrixFormat(t *testing.T) {
	f, err := graphio.FormatFromPath("g.adj")
	require.NoError(t, err)
	assert.Equal(t, graphio.FormatMatrix, f)

	src := "# 4-cycle\n0 1 0 1\n1 0 1 0\n0 1 0 1\n1 0 1 0\n"
	g, err := graphio.Read(strings.NewReader(src), graphio.FormatMatrix)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())

	res, err := coloring.DSatur(g)
	require.NoError(t, err)
	assert.Equal(t, 2, res.ColorsUsed)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteGraph(&buf, g, graphio.FormatMatrix))
	back, err := graphio.Read(&buf, graphio.FormatMatrix)
	require.NoError(t, err)
	assert.Equal(t, g.EdgeCount(), back.EdgeCount())

	_, err = graphio.Read(strings.NewReader("0 1\n0 0\n"), graphio.FormatMatrix)
	assert.ErrorIs(t, err, graphio.ErrSyntax)
	_, err = graphio.Read(strings.NewReader("0 1 0\n1 0\n"), graphio.FormatMatrix)
	assert.ErrorIs(t, err, graphio.ErrSyntax)
	_, err = graphio.Read(strings.NewReader("0 x\n"), graphio.FormatMatrix)
	assert.ErrorIs(t, err, graphio.ErrSyntax)
}
