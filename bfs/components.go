// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/chroma/core"
)

// Components returns the connected components of g. Each component is
// sorted ascending; components are ordered by their smallest vertex.
func Components(ctx context.Context, g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	WithContext(ctx)(&o)

	visited := make(map[string]bool, g.VertexCount())
	var comps [][]string
	for _, v := range g.Vertices() {
		if visited[v] {
			continue
		}
		w := newWalker(g, o, visited)
		if err := w.walk(v); err != nil {
			return nil, err
		}
		comp := w.res.Order
		slices.Sort(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}

// OddCycleError carries an odd cycle found by Bipartition. It matches
// ErrNotBipartite with errors.Is.
type OddCycleError struct {
	// Cycle lists the vertices of the cycle in order; the last vertex is
	// adjacent to the first.
	Cycle []string
}

func (e *OddCycleError) Error() string {
	return fmt.Sprintf("%v: odd cycle %v", ErrNotBipartite, e.Cycle)
}

// Is reports whether target is ErrNotBipartite.
func (e *OddCycleError) Is(target error) bool { return target == ErrNotBipartite }

// Bipartition 2-colours g by BFS depth parity, returning colours 1 and 2.
// Isolated vertices get colour 1. A self-loop or an edge inside one parity
// class yields an *OddCycleError.
func Bipartition(ctx context.Context, g *core.Graph) (map[string]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	WithContext(ctx)(&o)

	side := make(map[string]int, g.VertexCount())
	visited := make(map[string]bool, g.VertexCount())
	for _, v := range g.Vertices() {
		if visited[v] {
			continue
		}
		w := newWalker(g, o, visited)
		if err := w.walk(v); err != nil {
			return nil, err
		}
		for _, u := range w.res.Order {
			side[u] = 1 + w.res.Depth[u]%2
		}
		for _, u := range w.res.Order {
			nbrs, err := g.NeighborIDs(u)
			if err != nil {
				return nil, fmt.Errorf("%w: neighbors of %q: %w", ErrNeighbors, u, err)
			}
			for _, x := range nbrs {
				if side[x] == side[u] {
					return nil, &OddCycleError{Cycle: oddCycle(w.res, u, x)}
				}
			}
		}
	}

	return side, nil
}

// oddCycle joins the tree paths of u and x at their lowest common ancestor.
// u and x share depth parity, so the cycle closed by edge u-x is odd.
func oddCycle(r *Result, u, x string) []string {
	if u == x {
		return []string{u}
	}
	pu, _ := r.PathTo(u)
	px, _ := r.PathTo(x)
	i := 0
	for i+1 < len(pu) && i+1 < len(px) && pu[i+1] == px[i+1] {
		i++
	}
	cycle := slices.Clone(pu[i:])
	for j := len(px) - 1; j > i; j-- {
		cycle = append(cycle, px[j])
	}

	return cycle
}
