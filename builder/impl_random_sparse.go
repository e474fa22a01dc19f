// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_random_sparse.go - RandomSparse(n, p): the G(n,p) model.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices), 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource); p = 0
//     and p = 1 are deterministic and draw nothing.
//   - Unordered pairs {i,j}, i<j, tried in i-then-j ascending order, one
//     Bernoulli draw per pair, so a fixed seed fixes the edge set.
//
// Complexity:
//   - Time: O(n²) pair checks, one rng draw each when 0 < p < 1.
//   - Space: O(n) for the ID slice.
//
// Determinism:
//   - A fixed seed (WithSeed) fixes the edge set and edge IDs.
//   - Sharing one *rand.Rand across constructors makes later ones depend on
//     how many draws earlier ones made.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chroma/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p): each of the
// n(n-1)/2 possible edges is included independently with probability p.
//
// Implementation:
//   - Stage 1: Validate n, p and the presence of cfg.rng.
//   - Stage 2: Add vertices cfg.idFn(0..n-1).
//   - Stage 3: For each pair i<j in ascending order keep the edge when
//     rng.Float64() < p.
//
// Errors:
//   - ErrTooFewVertices if n < 1.
//   - ErrInvalidProbability if p is outside [0,1].
//   - ErrNeedRandSource if 0 < p < 1 and no rng was configured.
//
// Complexity:
//   - Time O(n²), Space O(n).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := indexIDs(cfg, 0, n)
		if err := addVertices(g, methodRandomSparse, ids...); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				switch p {
				case probMin:
					keep = false
				case probMax:
					keep = true
				default:
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
