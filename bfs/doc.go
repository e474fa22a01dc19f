// Package bfs provides breadth-first search over a core.Graph and the
// structural checks built on it that bound a colouring from below.
//
// What
//
//   - BFS explores vertices in non-decreasing distance from a start vertex
//     and returns a Result with the visit Order, Depth and Parent links.
//   - Hooks: OnVisit (may abort with an error), FilterNeighbor, MaxDepth.
//   - Components partitions the vertex set into connected components.
//   - Bipartition 2-colours the graph by depth parity, or reports an odd
//     cycle witness with ErrNotBipartite.
//
// Why
//
//   - A graph is 2-colourable exactly when it is bipartite, so Bipartition
//     tells whether a greedy result of 2 colours is optimal and whether a
//     result above 2 colours could be improved.
//   - Components let callers colour or report parts independently.
//
// Determinism
//
//	core.Graph returns vertices and neighbours sorted ascending, and BFS
//	enqueues neighbours in that order, so every result is reproducible.
//
// Complexity
//
//	Time O(V + E), memory O(V).
//
// Errors
//
//	ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, ErrNeighbors,
//	ErrNotBipartite, context errors and OnVisit errors (wrapped).
package bfs
