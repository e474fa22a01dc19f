// SPDX-License-Identifier: MIT

// Package graphio reads graphs into core.Graph and writes graphs and
// colouring reports.
//
// Supported graph formats:
//
//   - Edge list (.txt, .edges): one edge "u v" per line, a single token
//     declares an isolated vertex, lines starting with '#' or '%' are
//     comments.
//   - JSON (.json) and YAML (.yaml, .yml): {"vertices": [...], "edges":
//     [["u","v"], ...]}.
//   - Adjacency matrix (.adj): one row of edge counts per line, vertices
//     named by row index. The matrix must be symmetric.
//
// Graphs are read into a permissive core.Graph (loops and multi-edges
// allowed) so malformed inputs reach the colouring engine, which rejects
// them with coloring.ErrInvalidGraph.
package graphio
