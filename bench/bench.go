// SPDX-License-Identifier: MIT

// Package bench compares colouring variants on random G(n,p) graphs.
//
// Every (size, probability) pair yields one graph; every strategy runs on it
// with and without interchange. Runs execute in parallel under a worker
// limit, each result is checked for properness, and all seeds derive from
// one parent seed so a benchmark is reproducible regardless of scheduling.
package bench

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/chroma/builder"
	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/core"
	"github.com/katalvlaran/chroma/timing"
)

// ErrEmptyPlan is returned when no graph or no variant is requested.
var ErrEmptyPlan = errors.New("bench: nothing to run")

// Config describes a benchmark plan.
type Config struct {
	Sizes         []int
	Probabilities []float64
	// Strategies defaults to coloring.Strategies.
	Strategies []coloring.Strategy
	// Interchange lists the optimizer settings to try; defaults to both.
	Interchange []bool
	// Workers bounds concurrent runs; <= 0 means GOMAXPROCS.
	Workers int
	Seed    int64
	// Observe, if set, receives every report. Calls are serialised.
	Observe func(*timing.Report)
}

// Row is the outcome of one variant on one graph.
type Row struct {
	N           int
	P           float64
	Vertices    int
	Edges       int
	Strategy    coloring.Strategy
	Interchange bool
	ColorsUsed  int
	Swaps       int
	Elapsed     time.Duration
	RunID       string
}

type job struct {
	graph       int
	strategy    coloring.Strategy
	interchange bool
	seed        int64
}

// Run executes the plan. Rows come back ordered by graph, then strategy,
// then interchange setting, independent of scheduling. The first failing
// run cancels the rest.
func Run(ctx context.Context, cfg Config) ([]Row, error) {
	if len(cfg.Strategies) == 0 {
		cfg.Strategies = coloring.Strategies
	}
	if len(cfg.Interchange) == 0 {
		cfg.Interchange = []bool{false, true}
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}

	type instance struct {
		n int
		p float64
		g *core.Graph
	}
	var graphs []instance
	for _, n := range cfg.Sizes {
		for _, p := range cfg.Probabilities {
			seed := coloring.DeriveSeed(cfg.Seed, uint64(len(graphs)))
			g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
			if err != nil {
				return nil, fmt.Errorf("bench: G(%d, %g): %w", n, p, err)
			}
			graphs = append(graphs, instance{n: n, p: p, g: g})
		}
	}

	var jobs []job
	for gi := range graphs {
		for _, s := range cfg.Strategies {
			for _, ic := range cfg.Interchange {
				jobs = append(jobs, job{
					graph:       gi,
					strategy:    s,
					interchange: ic,
					seed:        coloring.DeriveSeed(cfg.Seed, uint64(len(graphs)+len(jobs))),
				})
			}
		}
	}
	if len(jobs) == 0 {
		return nil, ErrEmptyPlan
	}

	rows := make([]Row, len(jobs))
	reports := make(chan *timing.Report, len(jobs))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for i, j := range jobs {
		i, j := i, j
		inst := graphs[j.graph]
		eg.Go(func() error {
			res, rep, err := timing.Measure(inst.g, j.strategy, []coloring.Option{
				coloring.WithContext(ctx),
				coloring.WithInterchange(j.interchange),
				coloring.WithSeed(j.seed),
			})
			reports <- rep
			if err != nil {
				return fmt.Errorf("bench: %s on G(%d, %g): %w", j.strategy, inst.n, inst.p, err)
			}
			if err := coloring.Verify(inst.g, res.Colors); err != nil {
				return fmt.Errorf("bench: %s on G(%d, %g): %w", j.strategy, inst.n, inst.p, err)
			}
			rows[i] = Row{
				N:           inst.n,
				P:           inst.p,
				Vertices:    inst.g.VertexCount(),
				Edges:       inst.g.EdgeCount(),
				Strategy:    j.strategy,
				Interchange: j.interchange,
				ColorsUsed:  res.ColorsUsed,
				Swaps:       res.Swaps,
				Elapsed:     rep.Elapsed,
				RunID:       rep.RunID,
			}
			return nil
		})
	}
	err := eg.Wait()
	close(reports)
	if cfg.Observe != nil {
		for rep := range reports {
			cfg.Observe(rep)
		}
	}
	if err != nil {
		return nil, err
	}

	return rows, nil
}
