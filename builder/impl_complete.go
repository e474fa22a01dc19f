// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_complete.go - Complete(n), CompleteBipartite(n1, n2) and Crown(n).
//
// Contract:
//   - Complete: n ≥ 1; vertices cfg.idFn(0..n-1); edges (i,j) for i<j, i then j ascending.
//   - CompleteBipartite / Crown: sides labelled cfg.leftPrefix+i and
//     cfg.rightPrefix+j; cross edges emitted left index first.
//
// Complexity:
//   - Complete: O(n²) edges.
//   - CompleteBipartite, Crown: O(n1·n2) edges.
//
// Determinism:
//   - Vertex insertion and edge emission orders are fixed by the loop
//     nesting above; no randomness is drawn.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/chroma/core"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodCrown             = "Crown"
	minCompleteNodes        = 1
	minPartitionSize        = 1
	minCrownSide            = 2
)

// Complete returns a Constructor that builds K_n. Every colouring of K_n
// uses exactly n colours.
//
// Implementation:
//   - Stage 1: Validate n ≥ 1.
//   - Stage 2: Add vertices cfg.idFn(0..n-1).
//   - Stage 3: Emit (i,j) for every i<j, i outer and j inner, both ascending.
//
// Errors:
//   - ErrTooFewVertices if n < 1.
//
// Determinism:
//   - Edge IDs follow the (i,j) emission order.
//
// Complexity:
//   - Time O(n²), Space O(n).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, methodComplete, ids...); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2}.
//
// Implementation:
//   - Stage 1: Validate n1, n2 ≥ 1.
//   - Stage 2: Add the left side cfg.leftPrefix+0..n1-1, then the right side.
//   - Stage 3: Emit every cross edge, left index outer.
//
// Errors:
//   - ErrTooFewVertices if either side is empty.
//
// Determinism:
//   - Side labels come from WithPartitionPrefix; edge order is left-major.
//
// Complexity:
//   - Time O(n1·n2), Space O(n1+n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left, right := sides(cfg, n1, n2)
		if err := addVertices(g, methodCompleteBipartite, left...); err != nil {
			return err
		}
		if err := addVertices(g, methodCompleteBipartite, right...); err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Crown returns a Constructor for the crown graph S_n: K_{n,n} with the
// perfect matching Li-Ri removed. It is bipartite, yet greedy colouring in
// the order L0,R0,L1,R1,... needs n colours.
//
// Errors:
//   - ErrTooFewVertices if n < 2.
//
// Determinism:
//   - Same emission order as CompleteBipartite with the pairs (i,i) skipped.
//
// Complexity:
//   - Time O(n²), Space O(n).
func Crown(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCrownSide {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCrown, n, minCrownSide, ErrTooFewVertices)
		}

		left, right := sides(cfg, n, n)
		if err := addVertices(g, methodCrown, left...); err != nil {
			return err
		}
		if err := addVertices(g, methodCrown, right...); err != nil {
			return err
		}
		for i, u := range left {
			for j, v := range right {
				if i == j {
					continue
				}
				if err := addEdge(g, methodCrown, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

func sides(cfg builderConfig, n1, n2 int) (left, right []string) {
	left = make([]string, n1)
	for i := range left {
		left[i] = cfg.leftPrefix + strconv.Itoa(i)
	}
	right = make([]string, n2)
	for j := range right {
		right[j] = cfg.rightPrefix + strconv.Itoa(j)
	}

	return left, right
}
