// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighbourhood lattice.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex IDs are "r,c", added in row-major order; cfg.idFn is not used.
//   - For each cell the right edge is emitted before the bottom edge.
//
// Complexity:
//   - Time: O(rows·cols) vertices and edges.
//   - Space: O(1) extra.
//
// Determinism:
//   - Row-major vertex order; right edge before bottom edge per cell.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/chroma/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
// Grids are bipartite.
//
// Errors:
//   - ErrTooFewVertices if rows or cols < 1.
//
// Complexity:
//   - Time O(rows·cols), Space O(1) beyond the graph.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addVertices(g, methodGrid, gridVertexID(r, c)); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridVertexID(r, c)
				if c+1 < cols {
					if err := addEdge(g, methodGrid, u, gridVertexID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, u, gridVertexID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// gridVertexID formats a coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
