// Package chroma colours the vertices of undirected graphs so that no edge
// joins two vertices of the same colour, using greedy heuristics.
//
// What is inside?
//
//	coloring/   the engine: RandomSequential, LargestFirst, SmallestLast
//	             (degeneracy), DSatur and Greedy, with an optional depth-1
//	             interchange optimizer, Verify and DegeneracyOrder
//	core/       thread-safe undirected graph with string IDs
//	builder/    deterministic fixtures: cycles, wheels, grids, G(n,p), ...
//	bfs/        traversal, components and bipartiteness (2-colourability)
//	matrix/     dense adjacency-matrix Graph View
//	gonumview/  Graph View over gonum undirected graphs
//	gridgraph/  map colouring: grid regions as a region adjacency graph
//	graphio/    edge list, JSON and YAML input; JSON/YAML reports
//	timing/     per-step timing of any strategy
//	metrics/    Prometheus collectors for colouring runs
//	bench/      parallel strategy comparison on random graphs
//	config/     TOML/YAML configuration with hot reload
//	server/     HTTP API
//
// The engine consumes any type implementing coloring.Graph[V]; core.Graph,
// matrix.Adjacency and gonumview.View are three such representations.
//
// Quick example:
//
//	    a───b
//	    │   │
//	    d───c
//
//	g := core.NewGraph()
//	g.AddEdge("a", "b"); g.AddEdge("b", "c"); g.AddEdge("c", "d"); g.AddEdge("d", "a")
//	res, _ := coloring.DSatur(g) // 2 colours: {a, c} and {b, d}
//
// The chroma command (cmd/chroma) wraps all of this for files and HTTP.
//
//	go install github.com/katalvlaran/chroma/cmd/chroma@latest
package chroma
