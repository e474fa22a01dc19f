// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/core"
	"github.com/katalvlaran/chroma/matrix"
)

// Report is the serialised outcome of one colouring run.
type Report struct {
	RunID       string         `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Strategy    string         `json:"strategy" yaml:"strategy"`
	Interchange bool           `json:"interchange" yaml:"interchange"`
	Vertices    int            `json:"vertices" yaml:"vertices"`
	Edges       int            `json:"edges" yaml:"edges"`
	ColorsUsed  int            `json:"colors_used" yaml:"colors_used"`
	Swaps       int            `json:"swaps" yaml:"swaps"`
	Elapsed     string         `json:"elapsed,omitempty" yaml:"elapsed,omitempty"`
	Coloring    map[string]int `json:"coloring" yaml:"coloring"`
	Order       []string       `json:"order" yaml:"order"`
}

// NewReport summarises res over g. RunID and elapsed are optional.
func NewReport(g *core.Graph, res *coloring.Result[string], runID string, elapsed time.Duration) Report {
	rep := Report{
		RunID:       runID,
		Strategy:    res.Strategy.String(),
		Interchange: res.Interchange,
		Vertices:    g.VertexCount(),
		Edges:       g.EdgeCount(),
		ColorsUsed:  res.ColorsUsed,
		Swaps:       res.Swaps,
		Coloring:    res.Colors,
		Order:       res.Order,
	}
	if elapsed > 0 {
		rep.Elapsed = elapsed.String()
	}

	return rep
}

// WriteReport encodes rep as JSON or YAML. Edge lists cannot carry a report.
func WriteReport(w io.Writer, rep Report, f Format) error {
	return encode(w, rep, f)
}

// WriteGraph encodes g in format f.
func WriteGraph(w io.Writer, g *core.Graph, f Format) error {
	switch f {
	case FormatEdgeList:
		return writeEdgeList(w, g)
	case FormatMatrix:
		return writeMatrix(w, g)
	}

	return encode(w, NewDocument(g), f)
}

// WriteGraphFile creates path and writes g in the format implied by its
// extension.
func WriteGraphFile(path string, g *core.Graph) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("graphio: create %s: %w", path, err)
	}
	if err := WriteGraph(fh, g, f); err != nil {
		_ = fh.Close()
		return err
	}

	return fh.Close()
}

// NewDocument lists isolated vertices explicitly and every edge in insertion
// order.
func NewDocument(g *core.Graph) Document {
	doc := Document{Edges: [][]string{}}
	for _, v := range g.Vertices() {
		if d, _ := g.Degree(v); d == 0 {
			doc.Vertices = append(doc.Vertices, v)
		}
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, []string{e.From, e.To})
	}

	return doc
}

func encode(w io.Writer, v any, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	return fmt.Errorf("%w: cannot encode %v", ErrUnknownFormat, f)
}

func writeEdgeList(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# vertices: %d edges: %d\n", g.VertexCount(), g.EdgeCount())
	doc := NewDocument(g)
	for _, v := range doc.Vertices {
		fmt.Fprintln(bw, v)
	}
	for _, e := range doc.Edges {
		fmt.Fprintln(bw, e[0], e[1])
	}

	return bw.Flush()
}

// writeMatrix writes the adjacency matrix with a header comment naming the
// vertex of each row. Reading it back names vertices by row index.
func writeMatrix(w io.Writer, g *core.Graph) error {
	a, err := matrix.NewAdjacency(g)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# rows: %v\n", a.Labels())
	for _, row := range a.Rows() {
		fmt.Fprintln(bw, strings.Trim(fmt.Sprint(row), "[]"))
	}

	return bw.Flush()
}
