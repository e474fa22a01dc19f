// SPDX-License-Identifier: MIT

// Package gridgraph turns a 2D grid of region labels into a map-colouring
// problem.
//
// What:
//
//   - Map wraps a rectangular [][]int grid; equal values that touch form one
//     region, negative values are holes that belong to no region.
//   - Partition labels every cell with its region (BFS flood fill).
//   - Partition.Graph builds the region adjacency graph as a *core.Graph,
//     ready for any colouring strategy.
//   - Partition.Paint projects a colouring back onto the cells.
//
// Why:
//
//   - Political maps, floor plans and raster segmentations become graphs
//     whose proper colourings keep neighbouring regions distinct.
//
// Complexity:
//
//   - Partition: O(W·H·d) time, O(W·H) memory (d = 4 or 8).
//   - Graph:     O(W·H·d + R) time.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: invalid input grid.
//   - ErrUncoloredRegion: Paint got a colouring missing a region.
package gridgraph
