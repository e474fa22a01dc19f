// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/chroma/core"
)

// Sentinel errors.
var (
	// ErrMatrixNilGraph is returned when a nil graph is converted.
	ErrMatrixNilGraph = errors.New("matrix: graph is nil")

	// ErrNotSquare is returned for ragged or non-square rows.
	ErrNotSquare = errors.New("matrix: rows must form a square matrix")

	// ErrNegativeEntry is returned for entries below zero.
	ErrNegativeEntry = errors.New("matrix: negative entry")

	// ErrIndexOutOfRange is returned for vertex indices outside [0, n).
	ErrIndexOutOfRange = errors.New("matrix: index out of range")
)

// Adjacency is a dense n×n edge-count matrix.
type Adjacency struct {
	n      int
	cells  []int // row-major
	labels []string
}

// NewAdjacency builds the matrix of g. Index i corresponds to the i-th
// vertex of g.Vertices() (sorted ascending).
func NewAdjacency(g *core.Graph) (*Adjacency, error) {
	if g == nil {
		return nil, ErrMatrixNilGraph
	}
	labels := g.Vertices()
	index := make(map[string]int, len(labels))
	for i, id := range labels {
		index[id] = i
	}

	a := newAdjacency(len(labels))
	a.labels = labels
	for _, e := range g.Edges() {
		i, j := index[e.From], index[e.To]
		a.cells[i*a.n+j]++
		if i != j {
			a.cells[j*a.n+i]++
		}
	}

	return a, nil
}

// FromRows copies rows into a new matrix. Labels default to "0".."n-1".
func FromRows(rows [][]int) (*Adjacency, error) {
	n := len(rows)
	a := newAdjacency(n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNotSquare, i, len(row), n)
		}
		for j, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("%w: (%d,%d)=%d", ErrNegativeEntry, i, j, c)
			}
			a.cells[i*n+j] = c
		}
	}
	a.labels = make([]string, n)
	for i := range a.labels {
		a.labels[i] = strconv.Itoa(i)
	}

	return a, nil
}

func newAdjacency(n int) *Adjacency {
	return &Adjacency{n: n, cells: make([]int, n*n)}
}

// At returns the edge count between i and j.
func (a *Adjacency) At(i, j int) (int, error) {
	if err := a.check(i); err != nil {
		return 0, err
	}
	if err := a.check(j); err != nil {
		return 0, err
	}
	return a.cells[i*a.n+j], nil
}

// Rows returns a copy of the matrix as rows.
func (a *Adjacency) Rows() [][]int {
	rows := make([][]int, a.n)
	for i := range rows {
		rows[i] = append([]int(nil), a.cells[i*a.n:(i+1)*a.n]...)
	}
	return rows
}

// Symmetric reports whether entry (i,j) equals (j,i) everywhere.
func (a *Adjacency) Symmetric() bool {
	for i := 0; i < a.n; i++ {
		for j := i + 1; j < a.n; j++ {
			if a.cells[i*a.n+j] != a.cells[j*a.n+i] {
				return false
			}
		}
	}
	return true
}

// Labels returns the vertex ID of every index.
func (a *Adjacency) Labels() []string {
	return append([]string(nil), a.labels...)
}

// VertexCount returns n.
func (a *Adjacency) VertexCount() int { return a.n }

// Vertices returns 0..n-1.
func (a *Adjacency) Vertices() []int {
	vs := make([]int, a.n)
	for i := range vs {
		vs[i] = i
	}
	return vs
}

// NeighborIDs lists the columns of row i with a non-zero entry, ascending.
func (a *Adjacency) NeighborIDs(i int) ([]int, error) {
	if err := a.check(i); err != nil {
		return nil, err
	}
	var nbrs []int
	row := a.cells[i*a.n : (i+1)*a.n]
	for j, c := range row {
		if c > 0 {
			nbrs = append(nbrs, j)
		}
	}
	return nbrs, nil
}

// Degree sums row i, counting the diagonal twice.
func (a *Adjacency) Degree(i int) (int, error) {
	if err := a.check(i); err != nil {
		return 0, err
	}
	d := 0
	row := a.cells[i*a.n : (i+1)*a.n]
	for j, c := range row {
		if j == i {
			c *= 2
		}
		d += c
	}
	return d, nil
}

// ToGraph rebuilds a core.Graph from the upper triangle (diagonal
// included), using the labels as vertex IDs. Loops and multi-edges are
// allowed in the result.
func (a *Adjacency) ToGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	for _, id := range a.labels {
		if err := g.AddVertex(id); err != nil {
			return nil, err
		}
	}
	for i := 0; i < a.n; i++ {
		for j := i; j < a.n; j++ {
			for k := 0; k < a.cells[i*a.n+j]; k++ {
				if _, err := g.AddEdge(a.labels[i], a.labels[j]); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}

func (a *Adjacency) check(i int) error {
	if i < 0 || i >= a.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, a.n)
	}
	return nil
}
