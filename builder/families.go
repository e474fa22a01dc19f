// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// families.go - name-based lookup used by the CLI, the HTTP API and config files.

package builder

import (
	"fmt"
	"strings"
)

// Family names accepted by ByName.
const (
	FamilyComplete  = "complete"
	FamilyCycle     = "cycle"
	FamilyPath      = "path"
	FamilyStar      = "star"
	FamilyWheel     = "wheel"
	FamilyGrid      = "grid"
	FamilyBipartite = "bipartite"
	FamilyCrown     = "crown"
	FamilyRandom    = "random"
)

// Families lists every name ByName understands, in help-text order.
var Families = []string{
	FamilyComplete, FamilyCycle, FamilyPath, FamilyStar, FamilyWheel,
	FamilyGrid, FamilyBipartite, FamilyCrown, FamilyRandom,
}

// ByName maps a family name to its Constructor.
//
// n is the size parameter of the family: vertex count for most, rim size for
// wheel, side length for grid, partition size for bipartite and crown.
// p is used by random only.
func ByName(family string, n int, p float64) (Constructor, error) {
	switch strings.ToLower(strings.TrimSpace(family)) {
	case FamilyComplete:
		return Complete(n), nil
	case FamilyCycle:
		return Cycle(n), nil
	case FamilyPath:
		return Path(n), nil
	case FamilyStar:
		return Star(n), nil
	case FamilyWheel:
		return Wheel(n), nil
	case FamilyGrid:
		return Grid(n, n), nil
	case FamilyBipartite:
		return CompleteBipartite(n, n), nil
	case FamilyCrown:
		return Crown(n), nil
	case FamilyRandom, "gnp":
		return RandomSparse(n, p), nil
	}

	return nil, fmt.Errorf("ByName: unknown family %q (want one of %s): %w",
		family, strings.Join(Families, ", "), ErrConstructFailed)
}
