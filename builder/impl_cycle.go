// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_cycle.go - Cycle(n) and Path(n).
//
// Contract:
//   - Cycle: n ≥ 3, Path: n ≥ 2 (else ErrTooFewVertices).
//   - Vertices cfg.idFn(0..n-1) in ascending index order.
//   - Edges emitted i-(i+1) for ascending i; Cycle closes with (n-1)-0.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges.
//   - Space: O(n) for the ID slice.
//
// Determinism:
//   - Deterministic IDs via cfg.idFn.
//   - Deterministic edge emission order by increasing i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chroma/core"
)

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle returns a Constructor that builds the simple cycle C_n.
// Even n is 2-colourable, odd n needs exactly 3 colours.
//
// Implementation:
//   - Stage 1: Validate n ≥ 3 before touching g.
//   - Stage 2: Add vertices cfg.idFn(0..n-1) in ascending order.
//   - Stage 3: Emit ring edges i-(i+1) for ascending i, closing with (n-1)-0.
//
// Errors:
//   - ErrTooFewVertices if n < 3.
//   - Core errors from AddVertex/AddEdge, wrapped with the method name.
//
// Determinism:
//   - Same n and ID scheme give the same vertices and edge IDs.
//
// Complexity:
//   - Time O(n), Space O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, methodCycle, ids...); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds the simple path P_n.
//
// Errors:
//   - ErrTooFewVertices if n < 2.
//
// Determinism:
//   - Edges i-(i+1) emitted for ascending i.
//
// Complexity:
//   - Time O(n), Space O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, methodPath, ids...); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
