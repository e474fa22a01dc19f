// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Constructors return sentinels wrapped with "<Method>: ...: %w".
//   - Callers branch with errors.Is, never on message text.
//   - Validation order: sizes, then probabilities, then RNG presence.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology minimum
// (n for Cycle/Path/Star/Wheel/Complete, partition sizes, grid dimensions).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed:
// a nil constructor or graph, or an unknown family name.
var ErrConstructFailed = errors.New("builder: construction failed")
