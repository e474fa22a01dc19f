// SPDX-License-Identifier: MIT
//
// File: dsatur.go
// Role: DSatur, which interleaves vertex selection with colouring.

package coloring

import "cmp"

// DSatur colours g one vertex at a time, always picking the uncoloured
// vertex whose coloured neighbours show the most distinct colours. Ties go to
// the higher degree, then to the lower ID. Selection is a linear scan, so the
// run is O(V² + E).
//
// With interchange enabled a swap changes the colour of an already-coloured
// vertex; the saturations of its uncoloured neighbours are updated to match.
func DSatur[V cmp.Ordered](g Graph[V], opts ...Option) (*Result[V], error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	s, err := newSnapshot(g)
	if err != nil {
		return nil, err
	}

	c := newColorer(&s.topology, o)
	tr := newSaturation(&s.topology)
	c.onRecolor = func(u, from, to int) { tr.recolored(u, from, to) }
	o.OnPrepared()

	for tr.count > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		v := tr.next()
		if err := c.colorVertex(v); err != nil {
			return nil, err
		}
		tr.colored(v, c.color[v])
	}

	return s.result(StrategyDSatur, c), nil
}
