// SPDX-License-Identifier: MIT
//
// File: ordering.go
// Role: precomputed visitation orders (random sequential, largest first,
// smallest last) and the Run dispatcher.

package coloring

import (
	"cmp"
	"fmt"
	"slices"
)

// RandomSequential colours g in a uniformly random order drawn from the
// source supplied with WithSeed or WithRand. Without one it returns
// ErrNeedRandSource; the engine never falls back to a global generator.
func RandomSequential[V cmp.Ordered](g Graph[V], opts ...Option) (*Result[V], error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if o.Rand == nil {
		return nil, ErrNeedRandSource
	}
	s, err := newSnapshot(g)
	if err != nil {
		return nil, err
	}

	order := identity(s.size())
	o.Rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	return colorOrdered(s, StrategyRandomSequential, order, o)
}

// LargestFirst colours g by degree descending, lowest ID first among equal
// degrees.
func LargestFirst[V cmp.Ordered](g Graph[V], opts ...Option) (*Result[V], error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	s, err := newSnapshot(g)
	if err != nil {
		return nil, err
	}

	return colorOrdered(s, StrategyLargestFirst, largestFirstOrder(&s.topology), o)
}

func largestFirstOrder(t *topology) []int {
	order := identity(t.size())
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(t.deg[b], t.deg[a])
	})

	return order
}

// SmallestLast colours g in reverse degeneracy order (see DegeneracyOrder).
// The result uses at most degeneracy(g)+1 colours.
func SmallestLast[V cmp.Ordered](g Graph[V], opts ...Option) (*Result[V], error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	s, err := newSnapshot(g)
	if err != nil {
		return nil, err
	}

	order, _ := degeneracy(&s.topology)
	slices.Reverse(order)

	return colorOrdered(s, StrategySmallestLast, order, o)
}

// Run dispatches to the entry point for strategy. StrategyGreedy needs an
// explicit order and is rejected here; call Greedy instead.
func Run[V cmp.Ordered](g Graph[V], strategy Strategy, opts ...Option) (*Result[V], error) {
	switch strategy {
	case StrategyRandomSequential:
		return RandomSequential(g, opts...)
	case StrategyLargestFirst:
		return LargestFirst(g, opts...)
	case StrategySmallestLast:
		return SmallestLast(g, opts...)
	case StrategyDSatur:
		return DSatur(g, opts...)
	case StrategyGreedy:
		return nil, fmt.Errorf("%w: %s requires an explicit order", ErrUnknownStrategy, strategy)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
}

func identity(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
