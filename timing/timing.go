// SPDX-License-Identifier: MIT

// Package timing measures colouring runs without altering them.
//
// Measure wraps any strategy: it chains its own OnPrepared/OnStep hooks in
// front of the caller's, stamps the end of preparation and every step, and
// returns a Report alongside the unchanged Result.
package timing

import (
	"cmp"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/chroma/coloring"
)

// Step is one coloured vertex with its offset from the start of the run.
type Step struct {
	coloring.Step
	At time.Duration
}

// Report describes one measured run.
type Report struct {
	RunID       string
	Strategy    coloring.Strategy
	Interchange bool
	Vertices    int
	ColorsUsed  int
	Swaps       int
	Started     time.Time
	// Prepared is the offset at which the order (or saturation table) was
	// ready; zero when the run failed before preparing.
	Prepared time.Duration
	Elapsed  time.Duration
	Steps    []Step
	Err      error
}

// Outcome labels the run: "ok", "canceled" or "error".
func (r *Report) Outcome() string {
	switch {
	case r.Err == nil:
		return "ok"
	case errors.Is(r.Err, context.Canceled), errors.Is(r.Err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}

// Interchanges counts the steps whose colour came from an interchange.
func (r *Report) Interchanges() int {
	n := 0
	for _, s := range r.Steps {
		if s.Interchanged {
			n++
		}
	}

	return n
}

// ColoringTime is the time spent after preparation.
func (r *Report) ColoringTime() time.Duration {
	return r.Elapsed - r.Prepared
}

// Option configures Measure.
type Option func(*config)

type config struct {
	now   func() time.Time
	runID string
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// WithRunID fixes the run ID instead of generating a UUID.
func WithRunID(id string) Option {
	return func(c *config) { c.runID = id }
}

// Measure runs strategy on g.
func Measure[V cmp.Ordered](g coloring.Graph[V], strategy coloring.Strategy, copts []coloring.Option, opts ...Option) (*coloring.Result[V], *Report, error) {
	return measure(strategy, copts, opts, func(o ...coloring.Option) (*coloring.Result[V], error) {
		return coloring.Run(g, strategy, o...)
	})
}

// MeasureGreedy runs coloring.Greedy on g with order.
func MeasureGreedy[V cmp.Ordered](g coloring.Graph[V], order []V, copts []coloring.Option, opts ...Option) (*coloring.Result[V], *Report, error) {
	return measure(coloring.StrategyGreedy, copts, opts, func(o ...coloring.Option) (*coloring.Result[V], error) {
		return coloring.Greedy(g, order, o...)
	})
}

func measure[V cmp.Ordered](
	strategy coloring.Strategy,
	copts []coloring.Option,
	opts []Option,
	run func(...coloring.Option) (*coloring.Result[V], error),
) (*coloring.Result[V], *Report, error) {
	cfg := config{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.runID == "" {
		cfg.runID = uuid.NewString()
	}

	// Resolve the caller's options locally so their hooks can be chained.
	user := coloring.DefaultOptions()
	for _, opt := range copts {
		opt(&user)
	}

	rep := &Report{
		RunID:       cfg.runID,
		Strategy:    strategy,
		Interchange: user.Interchange,
		Started:     cfg.now(),
	}
	hooks := []coloring.Option{
		coloring.WithOnPrepared(func() {
			rep.Prepared = cfg.now().Sub(rep.Started)
			user.OnPrepared()
		}),
		coloring.WithOnStep(func(s coloring.Step) {
			rep.Steps = append(rep.Steps, Step{Step: s, At: cfg.now().Sub(rep.Started)})
			user.OnStep(s)
		}),
	}

	res, err := run(append(append([]coloring.Option(nil), copts...), hooks...)...)
	rep.Elapsed = cfg.now().Sub(rep.Started)
	if err != nil {
		rep.Err = err
		return nil, rep, err
	}
	rep.Vertices = len(res.Order)
	rep.ColorsUsed = res.ColorsUsed
	rep.Swaps = res.Swaps

	return res, rep, nil
}
