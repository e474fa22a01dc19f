// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph View contract, result types, strategies and sentinel errors.

package coloring

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sentinel errors. Callers branch with errors.Is; every returned error wraps
// exactly one of these with call-site context.
var (
	// ErrGraphNil is returned when a nil Graph View is passed.
	ErrGraphNil = errors.New("coloring: graph is nil")

	// ErrInvalidGraph reports a self-loop, a multi-edge, an asymmetric or
	// dangling adjacency, or a duplicated vertex ID.
	ErrInvalidGraph = errors.New("coloring: invalid graph")

	// ErrInvalidOrder reports a visitation order of the wrong length, with an
	// unknown vertex, or with a repeated vertex.
	ErrInvalidOrder = errors.New("coloring: invalid visitation order")

	// ErrNeighbors is returned when the Graph View fails to enumerate
	// neighbours or report a degree.
	ErrNeighbors = errors.New("coloring: neighbor iteration error")

	// ErrNeedRandSource is returned by RandomSequential when neither WithSeed
	// nor WithRand was supplied.
	ErrNeedRandSource = errors.New("coloring: rng is required")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coloring: invalid option supplied")

	// ErrUnknownStrategy is returned by ParseStrategy and Run for unknown names.
	ErrUnknownStrategy = errors.New("coloring: unknown strategy")

	// ErrColorOverflow signals an inconsistent state: a vertex saw every colour
	// in 1..|V| among its neighbours. Unreachable for valid input.
	ErrColorOverflow = errors.New("coloring: no free color in range")

	// ErrImproperColoring is returned by Verify when an edge is monochromatic.
	ErrImproperColoring = errors.New("coloring: adjacent vertices share a color")

	// ErrIncompleteColoring is returned by Verify when a vertex has no colour,
	// a non-positive colour, or the colouring names an unknown vertex.
	ErrIncompleteColoring = errors.New("coloring: coloring is incomplete")
)

// Graph is the read-only capability the engine consumes. Any representation
// (adjacency list, matrix, CSR, a third-party graph library) can implement it.
//
// Contract: undirected and simple. NeighborIDs(v) lists each neighbour once,
// never v itself, and u ∈ NeighborIDs(v) ⇔ v ∈ NeighborIDs(u).
// Degree(v) == len(NeighborIDs(v)). Violations are reported as ErrInvalidGraph.
type Graph[V cmp.Ordered] interface {
	// VertexCount returns |V|.
	VertexCount() int

	// Vertices enumerates every vertex exactly once, in any order.
	Vertices() []V

	// NeighborIDs enumerates the neighbours of v.
	NeighborIDs(v V) ([]V, error)

	// Degree returns the number of edge endpoints at v.
	Degree(v V) (int, error)
}

// Coloring maps each coloured vertex to a positive colour.
type Coloring[V cmp.Ordered] map[V]int

// Result is the outcome of one colouring run.
type Result[V cmp.Ordered] struct {
	// Strategy that produced the visitation order.
	Strategy Strategy

	// Interchange reports whether the interchange optimizer was enabled.
	Interchange bool

	// Colors is the final colouring; colours are 1..ColorsUsed.
	Colors Coloring[V]

	// ColorsUsed is the maximum colour assigned (0 for the empty graph).
	ColorsUsed int

	// Order is the sequence in which vertices were coloured.
	Order []V

	// Swaps counts successful interchanges.
	Swaps int
}

// ColorClasses groups vertices by colour: classes[c-1] holds the vertices
// coloured c, sorted ascending.
func (r *Result[V]) ColorClasses() [][]V {
	classes := make([][]V, r.ColorsUsed)
	for _, v := range r.Order {
		c := r.Colors[v]
		classes[c-1] = append(classes[c-1], v)
	}
	for _, cls := range classes {
		slices.Sort(cls)
	}

	return classes
}

// Step describes one vertex being coloured. It is passed to WithOnStep hooks.
type Step struct {
	// Index is the zero-based position in the visitation sequence.
	Index int

	// Color assigned to the vertex.
	Color int

	// MaxColor is the running maximum after this step.
	MaxColor int

	// Interchanged is true when the colour came from a successful interchange.
	Interchanged bool
}

// Strategy names a vertex-ordering heuristic.
type Strategy int

// Supported strategies.
const (
	// StrategyGreedy colours in a caller-supplied order (Greedy).
	StrategyGreedy Strategy = iota
	// StrategyRandomSequential colours in a seeded uniform random order.
	StrategyRandomSequential
	// StrategyLargestFirst colours by degree descending.
	StrategyLargestFirst
	// StrategySmallestLast colours in reverse degeneracy order.
	StrategySmallestLast
	// StrategyDSatur colours by saturation, then degree.
	StrategyDSatur
)

// Strategies lists every strategy that needs no explicit order, in the order
// reports print them.
var Strategies = []Strategy{
	StrategyRandomSequential,
	StrategyLargestFirst,
	StrategySmallestLast,
	StrategyDSatur,
}

// String returns the canonical kebab-case name.
func (s Strategy) String() string {
	switch s {
	case StrategyGreedy:
		return "greedy"
	case StrategyRandomSequential:
		return "random-sequential"
	case StrategyLargestFirst:
		return "largest-first"
	case StrategySmallestLast:
		return "smallest-last"
	case StrategyDSatur:
		return "dsatur"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a name or abbreviation (rs, lf, sl, dsatur) to a Strategy.
// Matching is case-insensitive; underscores are treated as dashes.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	switch key {
	case "rs", "random", "random-sequential":
		return StrategyRandomSequential, nil
	case "lf", "largest-first":
		return StrategyLargestFirst, nil
	case "sl", "smallest-last", "degeneracy":
		return StrategySmallestLast, nil
	case "dsatur", "d-satur", "saturation":
		return StrategyDSatur, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}
