// SPDX-License-Identifier: MIT
//
// File: verify.go
// Role: independent properness and totality check for any colouring.

package coloring

import (
	"cmp"
	"fmt"
)

// Verify checks that col colours every vertex of g with a positive colour,
// names no vertex outside g, and gives no edge the same colour at both ends.
//
// Returns ErrIncompleteColoring or ErrImproperColoring (wrapped with the
// offending vertex or edge), or any graph validation error.
func Verify[V cmp.Ordered](g Graph[V], col Coloring[V]) error {
	s, err := newSnapshot(g)
	if err != nil {
		return err
	}

	for _, id := range s.ids {
		c, ok := col[id]
		if !ok {
			return fmt.Errorf("%w: vertex %v has no color", ErrIncompleteColoring, id)
		}
		if c <= 0 {
			return fmt.Errorf("%w: vertex %v has color %d", ErrIncompleteColoring, id, c)
		}
	}
	if len(col) != len(s.ids) {
		for id := range col {
			if _, ok := s.index[id]; !ok {
				return fmt.Errorf("%w: unknown vertex %v", ErrIncompleteColoring, id)
			}
		}
	}

	for i, row := range s.adj {
		for _, j := range row {
			if j <= i {
				continue
			}
			if col[s.ids[i]] == col[s.ids[j]] {
				return fmt.Errorf("%w: edge %v-%v has color %d",
					ErrImproperColoring, s.ids[i], s.ids[j], col[s.ids[i]])
			}
		}
	}

	return nil
}
