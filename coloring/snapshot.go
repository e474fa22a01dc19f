// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: validate a Graph View and freeze it into dense integer indices.
//
// Index i is the i-th smallest vertex ID, so "lowest identifier" tie-breaks
// everywhere in the engine reduce to "lowest index".

package coloring

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// topology is the index-based adjacency every strategy runs on.
type topology struct {
	adj [][]int // sorted ascending neighbour indices
	deg []int   // len(adj[i])
}

func (t *topology) size() int { return len(t.adj) }

// snapshot pairs a topology with the identifiers it was built from.
type snapshot[V cmp.Ordered] struct {
	topology
	ids   []V       // index -> ID, ascending
	index map[V]int // ID -> index
}

// newSnapshot validates g and copies its adjacency.
//
// Checks, in order: nil view, vertex count, duplicate IDs, neighbour
// enumeration errors, self-loops, unknown neighbours, duplicate neighbours,
// Degree vs. neighbour count (catches parallel edges) and symmetry.
//
// Complexity: O(V log V + E log Δ).
func newSnapshot[V cmp.Ordered](g Graph[V]) (*snapshot[V], error) {
	if isNilGraph(g) {
		return nil, ErrGraphNil
	}

	ids := slices.Clone(g.Vertices())
	if len(ids) != g.VertexCount() {
		return nil, fmt.Errorf("%w: Vertices() returned %d IDs, VertexCount() = %d",
			ErrInvalidGraph, len(ids), g.VertexCount())
	}
	slices.Sort(ids)

	n := len(ids)
	index := make(map[V]int, n)
	for i, id := range ids {
		if i > 0 && ids[i-1] == id {
			return nil, fmt.Errorf("%w: duplicate vertex %v", ErrInvalidGraph, id)
		}
		index[id] = i
	}

	s := &snapshot[V]{
		topology: topology{adj: make([][]int, n), deg: make([]int, n)},
		ids:      ids,
		index:    index,
	}

	for i, id := range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("%w: neighbors of %v: %w", ErrNeighbors, id, err)
		}
		deg, err := g.Degree(id)
		if err != nil {
			return nil, fmt.Errorf("%w: degree of %v: %w", ErrNeighbors, id, err)
		}

		row := make([]int, 0, len(nbrs))
		for _, nb := range nbrs {
			if nb == id {
				return nil, fmt.Errorf("%w: self-loop at %v", ErrInvalidGraph, id)
			}
			j, ok := index[nb]
			if !ok {
				return nil, fmt.Errorf("%w: %v lists unknown neighbor %v", ErrInvalidGraph, id, nb)
			}
			row = append(row, j)
		}
		slices.Sort(row)
		for k := 1; k < len(row); k++ {
			if row[k] == row[k-1] {
				return nil, fmt.Errorf("%w: multi-edge %v-%v", ErrInvalidGraph, id, ids[row[k]])
			}
		}
		if deg != len(row) {
			return nil, fmt.Errorf("%w: degree of %v is %d but it has %d distinct neighbors (multi-edge)",
				ErrInvalidGraph, id, deg, len(row))
		}

		s.adj[i] = row
		s.deg[i] = len(row)
	}

	for i, row := range s.adj {
		for _, j := range row {
			if _, found := slices.BinarySearch(s.adj[j], i); !found {
				return nil, fmt.Errorf("%w: edge %v-%v is not symmetric", ErrInvalidGraph, ids[i], ids[j])
			}
		}
	}

	return s, nil
}

// edgeCount returns |E| of the validated snapshot.
func (t *topology) edgeCount() int {
	sum := 0
	for _, d := range t.deg {
		sum += d
	}

	return sum / 2
}

// resolveOrder maps a caller-supplied order to indices, rejecting wrong
// length, unknown vertices and repeats before anything is coloured.
func (s *snapshot[V]) resolveOrder(order []V) ([]int, error) {
	n := s.size()
	if len(order) != n {
		return nil, fmt.Errorf("%w: length %d, graph has %d vertices", ErrInvalidOrder, len(order), n)
	}

	out := make([]int, n)
	seen := make([]bool, n)
	for k, v := range order {
		i, ok := s.index[v]
		if !ok {
			return nil, fmt.Errorf("%w: unknown vertex %v at position %d", ErrInvalidOrder, v, k)
		}
		if seen[i] {
			return nil, fmt.Errorf("%w: vertex %v repeated at position %d", ErrInvalidOrder, v, k)
		}
		seen[i] = true
		out[k] = i
	}

	return out, nil
}

// checkPermutation validates an internally derived order.
func checkPermutation(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("%w: length %d, graph has %d vertices", ErrInvalidOrder, len(order), n)
	}
	seen := make([]bool, n)
	for k, i := range order {
		if i < 0 || i >= n || seen[i] {
			return fmt.Errorf("%w: index %d at position %d", ErrInvalidOrder, i, k)
		}
		seen[i] = true
	}

	return nil
}

// result converts engine state back to identifiers.
func (s *snapshot[V]) result(strategy Strategy, c *colorer) *Result[V] {
	colors := make(Coloring[V], s.size())
	order := make([]V, 0, len(c.visited))
	for _, i := range c.visited {
		colors[s.ids[i]] = c.color[i]
		order = append(order, s.ids[i])
	}

	return &Result[V]{
		Strategy:    strategy,
		Interchange: c.opts.Interchange,
		Colors:      colors,
		ColorsUsed:  c.maxColor,
		Order:       order,
		Swaps:       c.swaps,
	}
}

// isNilGraph catches both a nil interface and a typed nil pointer.
func isNilGraph[V cmp.Ordered](g Graph[V]) bool {
	if g == nil {
		return true
	}
	rv := reflect.ValueOf(g)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}

	return false
}
