// SPDX-License-Identifier: MIT

// Package matrix provides a dense adjacency-matrix representation of a
// graph that satisfies coloring.Graph[int].
//
// Row i / column j holds the number of edges between vertices i and j; the
// diagonal holds self-loops, each counting 2 towards the degree. The matrix
// is taken as given: an asymmetric matrix, a diagonal entry or a count above
// one is representable and is rejected by the colouring engine as
// coloring.ErrInvalidGraph.
//
// Labels map indices back to the vertex IDs of the core.Graph a matrix was
// built from, so results can be translated with Labels().
//
// Complexity: building O(V² + E), NeighborIDs and Degree O(V), memory O(V²).
package matrix
