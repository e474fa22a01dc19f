// SPDX-License-Identifier: MIT
//
// File: greedy.go
// Role: the greedy colorer shared by every strategy, plus the Greedy entry
// point that colours in a caller-supplied order.

package coloring

import (
	"cmp"
	"fmt"
)

// colorer encapsulates mutable colouring state for one run.
type colorer struct {
	t        *topology
	opts     Options
	color    []int // 0 = uncoloured
	maxColor int
	visited  []int // indices in the order they were coloured
	swaps    int

	// scratch, indexed by colour 0..n+1
	mark    []int
	stamp   int
	count   []int
	holder  []int
	candSet []int
	candGen int

	// onRecolor is notified when the interchange optimizer moves a vertex
	// from one colour to another. DSatur uses it to keep saturations exact.
	onRecolor func(u, from, to int)
}

func newColorer(t *topology, o Options) *colorer {
	n := t.size()

	return &colorer{
		t:       t,
		opts:    o,
		color:   make([]int, n),
		visited: make([]int, 0, n),
		mark:    make([]int, n+2),
		count:   make([]int, n+2),
		holder:  make([]int, n+2),
		candSet: make([]int, n+2),
	}
}

// smallestFree returns the lowest colour in 1..n absent from v's coloured
// neighbours, or 0 if every colour is taken.
func (c *colorer) smallestFree(v int) int {
	c.stamp++
	for _, nb := range c.t.adj[v] {
		if k := c.color[nb]; k > 0 {
			c.mark[k] = c.stamp
		}
	}
	for k := 1; k <= c.t.size(); k++ {
		if c.mark[k] != c.stamp {
			return k
		}
	}

	return 0
}

// colorVertex assigns v its colour and records the step.
func (c *colorer) colorVertex(v int) error {
	k := c.smallestFree(v)
	if k == 0 {
		return fmt.Errorf("%w: vertex index %d", ErrColorOverflow, v)
	}

	interchanged := false
	if k > c.maxColor && c.opts.Interchange {
		if freed, ok := c.interchange(v, k); ok {
			k = freed
			interchanged = true
		}
	}

	c.color[v] = k
	if k > c.maxColor {
		c.maxColor = k
	}
	c.visited = append(c.visited, v)

	c.opts.OnStep(Step{
		Index:        len(c.visited) - 1,
		Color:        k,
		MaxColor:     c.maxColor,
		Interchanged: interchanged,
	})

	return nil
}

// colorSequence colours order front to back, checking for cancellation
// between vertices.
func (c *colorer) colorSequence(order []int) error {
	for _, v := range order {
		select {
		case <-c.opts.Ctx.Done():
			return c.opts.Ctx.Err()
		default:
		}
		if err := c.colorVertex(v); err != nil {
			return err
		}
	}

	return nil
}

// Greedy colours every vertex of g in the given order, each with the
// smallest colour unused by its already-coloured neighbours.
//
// The order must list every vertex exactly once; otherwise ErrInvalidOrder is
// returned before anything is coloured. Graph validation errors
// (ErrGraphNil, ErrInvalidGraph, ErrNeighbors) take precedence.
func Greedy[V cmp.Ordered](g Graph[V], order []V, opts ...Option) (*Result[V], error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	s, err := newSnapshot(g)
	if err != nil {
		return nil, err
	}
	idx, err := s.resolveOrder(order)
	if err != nil {
		return nil, err
	}

	return colorOrdered(s, StrategyGreedy, idx, o)
}

// colorOrdered runs the colorer over a precomputed, validated order.
func colorOrdered[V cmp.Ordered](s *snapshot[V], strategy Strategy, order []int, o Options) (*Result[V], error) {
	if err := checkPermutation(order, s.size()); err != nil {
		return nil, err
	}
	o.OnPrepared()

	c := newColorer(&s.topology, o)
	if err := c.colorSequence(order); err != nil {
		return nil, err
	}

	return s.result(strategy, c), nil
}
