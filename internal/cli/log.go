// Package cli implements the chroma command-line interface.
//
// # Commands
//
//   - color: colour a graph file with one strategy and report the result
//   - generate: write a graph from a named family (cycle, wheel, random, ...)
//   - bench: compare every strategy with and without interchange on G(n,p)
//   - serve: run the HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// and the loaded configuration travel through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/chroma/config"
)

// newLogger creates a logger for the [log] section of cfg, forcing debug
// level when verbose is set.
func newLogger(w io.Writer, cfg config.LogConfig, verbose bool) *log.Logger {
	l := cfg.NewLogger(w)
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// progress logs completion of an operation with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Coloured 42 vertices (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext falls back to log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext falls back to config.Default().
func configFromContext(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey).(*config.Config); ok {
		return c
	}
	return config.Default()
}
