// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_star.go - Star(n) and Wheel(n), both built around the hub "Center".
//
// Contract:
//   - Star: n ≥ 2 vertices in total, leaves cfg.idFn(1..n-1).
//   - Wheel: rim of n ≥ 3 vertices cfg.idFn(0..n-1) plus the hub, so n+1
//     vertices and 2n edges. Rim edges are emitted before spokes.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges.
//   - Space: O(n) for the ID slice.
//
// Determinism:
//   - The hub ID is fixed (CenterVertexID); leaves and rim use cfg.idFn.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chroma/core"
)

// CenterVertexID is the fixed hub ID used by Star and Wheel.
const CenterVertexID = "Center"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 3
)

// Star returns a Constructor that builds a star with n vertices: the hub
// and n-1 leaves. Any proper colouring of a star uses exactly 2 colours.
//
// Implementation:
//   - Stage 1: Validate n ≥ 2.
//   - Stage 2: Add the hub, then each leaf cfg.idFn(1..n-1) followed by its spoke.
//
// Errors:
//   - ErrTooFewVertices if n < 2.
//
// Complexity:
//   - Time O(n), Space O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		if err := addVertices(g, methodStar, CenterVertexID); err != nil {
			return err
		}
		for _, leaf := range indexIDs(cfg, 1, n-1) {
			if err := addVertices(g, methodStar, leaf); err != nil {
				return err
			}
			if err := addEdge(g, methodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds C_n plus a hub joined to every rim
// vertex. Its chromatic number is 3 for even n and 4 for odd n.
//
// Implementation:
//   - Stage 1: Validate n ≥ 3.
//   - Stage 2: Build the rim with Cycle(n) using the same cfg.
//   - Stage 3: Add the hub and emit spokes to rim vertices in ascending order.
//
// Errors:
//   - ErrTooFewVertices if n < 3.
//
// Determinism:
//   - Rim edges always precede spokes, so edge IDs are stable.
//
// Complexity:
//   - Time O(n), Space O(n).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		if err := Cycle(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		if err := addVertices(g, methodWheel, CenterVertexID); err != nil {
			return err
		}
		for _, rim := range indexIDs(cfg, 0, n) {
			if err := addEdge(g, methodWheel, CenterVertexID, rim); err != nil {
				return err
			}
		}

		return nil
	}
}
