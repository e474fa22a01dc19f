// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chroma/core"
	"github.com/katalvlaran/chroma/matrix"
)

// Document is the JSON/YAML shape of a graph.
type Document struct {
	Vertices []string   `json:"vertices,omitempty" yaml:"vertices,omitempty"`
	Edges    [][]string `json:"edges" yaml:"edges"`
}

// ReadFile opens path and reads it in the format implied by its extension.
func ReadFile(path string) (*core.Graph, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer fh.Close()

	g, err := Read(fh, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Read decodes a graph from r.
func Read(r io.Reader, f Format) (*core.Graph, error) {
	switch f {
	case FormatEdgeList:
		return readEdgeList(r)
	case FormatJSON:
		var doc Document
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: json: %v", ErrSyntax, err)
		}
		return doc.Graph()
	case FormatYAML:
		var doc Document
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("graphio: read: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, fmt.Errorf("%w: yaml: %v", ErrSyntax, err)
		}
		return doc.Graph()
	case FormatMatrix:
		return readMatrix(r)
	}

	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Graph materialises the document. Every edge must have exactly two
// non-empty endpoints.
func (d *Document) Graph() (*core.Graph, error) {
	g := newGraph()
	for i, v := range d.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("%w: vertex %d: %v", ErrSyntax, i, err)
		}
	}
	for i, e := range d.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("%w: edge %d: want 2 endpoints, got %d", ErrSyntax, i, len(e))
		}
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %v", ErrSyntax, i, err)
		}
	}

	return g, nil
}

func readEdgeList(r io.Reader) (*core.Graph, error) {
	g := newGraph()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' || text[0] == '%' {
			continue
		}
		fields := strings.Fields(text)
		switch len(fields) {
		case 1:
			if err := g.AddVertex(fields[0]); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, line, err)
			}
		case 2:
			if _, err := g.AddEdge(fields[0], fields[1]); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, line, err)
			}
		default:
			return nil, fmt.Errorf("%w: line %d: want 1 or 2 fields, got %d", ErrSyntax, line, len(fields))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: scan: %w", err)
	}

	return g, nil
}

// readMatrix parses one row of non-negative integers per line. Vertices are
// named by row index; the matrix must be symmetric.
func readMatrix(r io.Reader) (*core.Graph, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' || text[0] == '%' {
			continue
		}
		fields := strings.Fields(text)
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, line, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: scan: %w", err)
	}

	a, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if !a.Symmetric() {
		return nil, fmt.Errorf("%w: adjacency matrix is not symmetric", ErrSyntax)
	}
	return a.ToGraph()
}

func newGraph() *core.Graph {
	return core.NewGraph(core.WithLoops(), core.WithMultiEdges())
}
