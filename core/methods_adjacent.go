// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: neighbourhood queries.
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc, whatever the map
//     iteration order.
// Concurrency:
//   - Existence check under muVert, bucket scan under muEdgeAdj read lock.

package core

import "sort"

// NeighborIDs returns the unique IDs adjacent to id, sorted ascending.
// A vertex carrying a self-loop lists itself.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Validate vertex existence (ErrVertexNotFound).
//   - Stage 3: Collect every neighbour whose edge bucket is non-empty, so
//     parallel edges contribute one entry.
//   - Stage 4: Sort lexicographically and return.
//
// Behavior highlights:
//   - The returned slice is freshly allocated; callers may modify it.
//   - On a simple graph len(NeighborIDs(id)) == Degree(id).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Determinism:
//   - Lexicographic order by contract.
//
// Complexity:
//   - Time O(d log d), Space O(d), d = number of distinct neighbours.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]string, 0, len(g.adjacency[id]))
	for nbr, bucket := range g.adjacency[id] {
		if len(bucket) > 0 {
			ids = append(ids, nbr)
		}
	}
	sort.Strings(ids)

	return ids, nil
}
