// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj.

package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = struct{}{}

	g.muEdgeAdj.Lock()
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex together with every incident edge.
//
// Implementation:
//   - Stage 1: Validate id (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, check existence (ErrVertexNotFound).
//   - Stage 3: Under muEdgeAdj write lock, drop every incident edge from the
//     catalog and the mirrored buckets of each neighbour.
//   - Stage 4: Remove the vertex from the catalog.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex is absent.
//
// Complexity:
//   - Time O(deg(id)), Space O(1).
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	for nbr, bucket := range g.adjacency[id] {
		for eid := range bucket {
			delete(g.edges, eid)
		}
		if nbr != id {
			delete(g.adjacency[nbr], id)
		}
	}
	delete(g.adjacency, id)
	g.muEdgeAdj.Unlock()

	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
//
// Determinism:
//   - Lexicographic order, so two graphs with the same vertex set list
//     them identically regardless of insertion order.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edge endpoints incident to id.
//
// Parallel edges each count once; a self-loop counts twice (the classic
// graph-theory convention). On a simple graph Degree(id) therefore equals
// len(NeighborIDs(id)), which consumers may use to detect malformed input.
//
// Implementation:
//   - Stage 1: Validate id and its existence under muVert read lock.
//   - Stage 2: Under muEdgeAdj read lock, sum bucket sizes per neighbour,
//     doubling the bucket of id itself.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Concurrency:
//   - Locks taken in the order muVert -> muEdgeAdj, so the count is a
//     consistent snapshot against concurrent RemoveVertex.
//
// Complexity:
//   - Time O(deg(id)), Space O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	deg := 0
	for nbr, bucket := range g.adjacency[id] {
		if nbr == id {
			deg += 2 * len(bucket)
			continue
		}
		deg += len(bucket)
	}

	return deg, nil
}
