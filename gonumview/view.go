// SPDX-License-Identifier: MIT

// Package gonumview exposes gonum undirected graphs as coloring.Graph[int64],
// so simple.UndirectedGraph, multi.UndirectedGraph and any other
// graph.Undirected implementation can be coloured without copying into
// core.Graph.
//
// Multigraphs (anything with Lines) report parallel lines in Degree, which
// lets the colouring engine reject them as multi-edges. Self-loops show up
// in NeighborIDs and are rejected the same way.
package gonumview

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
)

// ErrNodeNotFound is returned for IDs that are not nodes of the wrapped graph.
var ErrNodeNotFound = errors.New("gonumview: node not found")

// multigraph is the subset of graph.Multigraph used for degree counting.
type multigraph interface {
	Lines(uid, vid int64) graph.Lines
}

// View adapts a graph.Undirected. It holds no copy; reads go straight to the
// wrapped graph, so the graph must not be mutated during a colouring run.
type View struct {
	g graph.Undirected
}

// New wraps g.
func New(g graph.Undirected) *View {
	return &View{g: g}
}

// VertexCount returns the number of nodes.
func (v *View) VertexCount() int {
	return len(graph.NodesOf(v.g.Nodes()))
}

// Vertices returns node IDs sorted ascending.
func (v *View) Vertices() []int64 {
	nodes := graph.NodesOf(v.g.Nodes())
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	slices.Sort(ids)

	return ids
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
func (v *View) NeighborIDs(id int64) ([]int64, error) {
	if v.g.Node(id) == nil {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	nodes := graph.NodesOf(v.g.From(id))
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	slices.Sort(ids)

	return ids, nil
}

// Degree counts edge endpoints at id; parallel lines count separately.
func (v *View) Degree(id int64) (int, error) {
	nbrs, err := v.NeighborIDs(id)
	if err != nil {
		return 0, err
	}
	mg, ok := v.g.(multigraph)
	if !ok {
		return len(nbrs), nil
	}

	deg := 0
	for _, nb := range nbrs {
		deg += len(graph.LinesOf(mg.Lines(id, nb)))
	}

	return deg, nil
}
