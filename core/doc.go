// Package core provides a thread-safe, undirected in-memory Graph with
// string vertex IDs. It is the default Graph View consumed by the
// coloring package.
//
// Storage uses nested maps, adjacency[u][v][edgeID], mirrored for u != v,
// so edge insertion, removal and membership are O(1). Two RW locks keep
// contention low: muVert for the vertex catalog, muEdgeAdj for edges and
// adjacency.
//
// Options:
//
//	WithLoops()       permit self-loops (otherwise ErrLoopNotAllowed)
//	WithMultiEdges()  permit parallel edges (otherwise ErrMultiEdgeNotAllowed)
//
// Both modes exist for fixtures and importers that must carry malformed
// input as-is; the coloring engine rejects such graphs with
// coloring.ErrInvalidGraph.
//
// Determinism:
//
//	Vertices() and NeighborIDs() return IDs sorted ascending; Edges()
//	returns edges in insertion order.
//
// Methods:
//
//	AddVertex(id) error                  O(1)
//	HasVertex(id) bool                   O(1)
//	RemoveVertex(id) error               O(deg)
//	AddEdge(from, to) (edgeID, error)    O(1)
//	RemoveEdge(edgeID) error             O(1)
//	HasEdge(from, to) bool               O(1)
//	Vertices() []string                  O(V log V)
//	NeighborIDs(id) ([]string, error)    O(d log d)
//	Degree(id) (int, error)              O(d)
//	VertexCount(), EdgeCount() int       O(1)
//	Edges() []Edge                       O(E log E)
package core
