// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
//
// Determinism:
//   - Edges() returns edges sorted by numeric Edge.ID suffix ascending
//     (insertion order).
//   - nextEdgeID() is monotonic ("e" + decimal).
//
// Concurrency:
//   - Mutations under muEdgeAdj write lock, queries under its read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = 'e'

// AddEdge creates an undirected edge between from and to, adding missing
// endpoints first. It returns the generated edge ID.
//
// Implementation:
//   - Stage 1: Validate endpoints and the loop policy before any mutation.
//   - Stage 2: Ensure both endpoints exist (AddVertex is idempotent).
//   - Stage 3: Under muEdgeAdj write lock, enforce the multi-edge policy.
//   - Stage 4: Allocate the next edge ID, record the edge in the catalog and
//     link it in both directions (once for a self-loop).
//
// Errors:
//   - ErrEmptyVertexID if either endpoint is empty.
//   - ErrLoopNotAllowed if from == to and loops are disabled.
//   - ErrMultiEdgeNotAllowed if the pair is already connected and
//     multi-edges are disabled.
//
// Determinism:
//   - Edge IDs are "e1", "e2", ... in call order.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to}

	link(g, from, to, eid)
	if from != to {
		link(g, to, from, eid)
	}

	return eid, nil
}

// RemoveEdge deletes one edge by ID.
//
// Errors:
//   - ErrEdgeNotFound if eid is unknown.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	unlink(g, e.From, e.To, eid)
	if e.From != e.To {
		unlink(g, e.To, e.From, eid)
	}

	return nil
}

// HasEdge reports whether at least one edge connects from and to.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		return edgeSeq(out[i].ID) < edgeSeq(out[j].ID)
	})

	return out
}

// EdgeCount returns the number of edges (parallel edges counted separately).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns "e<n>" for the next value of the atomic counter.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq parses the numeric suffix of an edge ID produced by nextEdgeID.
func edgeSeq(eid string) uint64 {
	n, _ := strconv.ParseUint(eid[1:], 10, 64)
	return n
}

// link records eid in adjacency[from][to]. Caller holds muEdgeAdj.
func link(g *Graph, from, to, eid string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
	g.adjacency[from][to][eid] = struct{}{}
}

// unlink removes eid from adjacency[from][to], dropping empty buckets.
// Caller holds muEdgeAdj.
func unlink(g *Graph, from, to, eid string) {
	bucket := g.adjacency[from][to]
	delete(bucket, eid)
	if len(bucket) == 0 {
		delete(g.adjacency[from], to)
	}
}
