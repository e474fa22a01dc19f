// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/chroma/coloring"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks names, ranges and limits, reporting all problems at once.
func Validate(cfg *Config) error {
	var errs []string

	if _, err := log.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level: unknown level %q", cfg.Log.Level))
	}
	switch cfg.Log.Format {
	case "text", "json", "logfmt":
	default:
		errs = append(errs, fmt.Sprintf("log.format: want text, json or logfmt, got %q", cfg.Log.Format))
	}
	if _, err := coloring.ParseStrategy(cfg.Coloring.Strategy); err != nil {
		errs = append(errs, fmt.Sprintf("coloring.strategy: unknown strategy %q", cfg.Coloring.Strategy))
	}
	if cfg.Coloring.TimeoutMs < 0 {
		errs = append(errs, "coloring.timeout_ms: must not be negative")
	}
	if cfg.Server.MaxVertices < 0 || cfg.Server.MaxEdges < 0 || cfg.Server.MaxBodyKB < 0 {
		errs = append(errs, "server: limits must not be negative")
	}
	for i, n := range cfg.Bench.Sizes {
		if n < 1 {
			errs = append(errs, fmt.Sprintf("bench.sizes[%d]: must be >= 1, got %d", i, n))
		}
	}
	for i, p := range cfg.Bench.Probabilities {
		if p < 0 || p > 1 {
			errs = append(errs, fmt.Sprintf("bench.probabilities[%d]: must be in [0,1], got %g", i, p))
		}
	}
	if cfg.Bench.Workers < 0 {
		errs = append(errs, "bench.workers: must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}
	return nil
}
