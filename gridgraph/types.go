// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrUncoloredRegion indicates Paint was given a colouring without some region.
	ErrUncoloredRegion = errors.New("gridgraph: region has no color")
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options contains tunable parameters for grid analysis.
type Options struct {
	// Conn decides both which cells merge into a region and which regions
	// count as neighbours.
	Conn Connectivity
}

// DefaultOptions returns Conn4.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// Map is an immutable rectangular grid. Cells[y][x] holds the region label.
type Map struct {
	Width, Height int
	Cells         [][]int
	Conn          Connectivity
	offsets       [][2]int
}

// Region is one contiguous group of equal-valued cells.
type Region struct {
	// ID is the vertex ID in the region graph.
	ID string
	// Value is the grid label shared by every cell of the region.
	Value int
	// Cells are row-major cell indices in flood-fill order.
	Cells []int
}
