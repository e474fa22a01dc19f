// Package coloring computes proper vertex colourings of undirected simple
// graphs with greedy heuristics.
//
// What
//
//   - One greedy engine: each vertex, in visitation order, takes the smallest
//     positive colour unused by its already-coloured neighbours.
//   - Four orderings feeding that engine:
//   - RandomSequential: uniform random permutation from an explicit seed
//   - LargestFirst:     degree descending, lowest ID first among ties
//   - SmallestLast:     reverse degeneracy order (see DegeneracyOrder)
//   - DSatur:           most distinct neighbour colours first, then degree
//   - Greedy colours in a caller-supplied order; Run dispatches by Strategy.
//   - WithInterchange(true) enables a depth-1 Kempe-style swap: before a
//     vertex opens a new colour, a neighbour holding a colour alone may move
//     to another existing colour so the vertex can reuse the vacated one.
//   - Verify checks any colouring for totality and properness.
//
// Graph View
//
//	The engine reads graphs only through Graph[V]: vertex count, vertex
//	enumeration, neighbour enumeration and degree. core.Graph satisfies
//	Graph[string]; gonumview adapts gonum graphs as Graph[int64]. Input is
//	validated before any strategy runs: self-loops, multi-edges, asymmetric
//	or dangling adjacency and duplicate IDs are ErrInvalidGraph.
//
// Determinism
//
//	Vertices are sorted by ID before anything else happens, and every tie is
//	broken towards the lowest ID. LargestFirst, SmallestLast, DSatur and Greedy
//	are therefore fully reproducible; RandomSequential depends only on the
//	seed or *rand.Rand it is given.
//
// Complexity (V = |Vertices|, E = |Edges|, Δ = max degree)
//
//   - Validation:     O(V log V + E log Δ)
//   - Greedy colorer: O(V + E) plus interchange attempts
//   - LargestFirst:   O(V log V)
//   - SmallestLast:   O((V + E) log V)
//   - DSatur:         O(V² + E)
//
// Usage
//
//	res, err := coloring.DSatur[string](g, coloring.WithInterchange(true))
//	if err != nil {
//		// ErrGraphNil, ErrInvalidGraph, ErrNeighbors, ErrOptionViolation,
//		// or ctx.Err() when cancelled through WithContext
//	}
//	fmt.Println(res.ColorsUsed, res.Colors)
//
//	res, err = coloring.RandomSequential[string](g, coloring.WithSeed(42))
//
// Options
//
//   - WithContext(ctx):      cancellation, checked between vertices.
//   - WithInterchange(b):    toggle the interchange optimizer.
//   - WithSeed(n), WithRand: random source for RandomSequential.
//   - WithOnPrepared(fn):    hook once the order is known.
//   - WithOnStep(fn):        hook after each vertex is coloured.
//
// Concurrency
//
//	Each call owns its snapshot, colouring and saturation table. Concurrent
//	calls over the same graph are safe provided the graph is not mutated
//	meanwhile.
package coloring
