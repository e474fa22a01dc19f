package cli

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chroma/bench"
	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/timing"
)

type benchOpts struct {
	sizes      []int
	probs      []float64
	strategies []string
	workers    int
	seed       int64
	detail     bool
}

func newBenchCmd() *cobra.Command {
	var opts benchOpts

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare strategies on random G(n,p) graphs",
		Long: `Bench colours one random graph per (n, p) pair with every strategy, with and
without the interchange optimizer, checks every colouring for properness and
prints the colours used and the time taken. Unset flags fall back to the
[bench] section of the configuration.`,
		Example: `  chroma bench -n 100,200 -p 0.1,0.5,0.9
  chroma bench -n 500 -p 0.5 --workers 8 --seed 3 --detail`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context()).Bench
			if !cmd.Flags().Changed("sizes") {
				opts.sizes = cfg.Sizes
			}
			if !cmd.Flags().Changed("probabilities") {
				opts.probs = cfg.Probabilities
			}
			if !cmd.Flags().Changed("workers") {
				opts.workers = cfg.Workers
			}
			if !cmd.Flags().Changed("seed") {
				opts.seed = cfg.Seed
			}
			return runBench(cmd, opts)
		},
	}

	cmd.Flags().IntSliceVarP(&opts.sizes, "sizes", "n", nil, "vertex counts")
	cmd.Flags().Float64SliceVarP(&opts.probs, "probabilities", "p", nil, "edge probabilities")
	cmd.Flags().StringSliceVarP(&opts.strategies, "strategies", "s", nil, "strategies to compare (default: all)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "parallel runs (default: GOMAXPROCS)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "parent seed for graphs and random orders")
	cmd.Flags().BoolVar(&opts.detail, "detail", false, "print one row per graph and variant")

	return cmd
}

func runBench(cmd *cobra.Command, opts benchOpts) error {
	logger := loggerFromContext(cmd.Context())

	var strategies []coloring.Strategy
	for _, name := range opts.strategies {
		s, err := coloring.ParseStrategy(name)
		if err != nil {
			return err
		}
		strategies = append(strategies, s)
	}

	var mu sync.Mutex
	failed := 0
	prog := newProgress(logger)
	rows, err := bench.Run(cmd.Context(), bench.Config{
		Sizes:         opts.sizes,
		Probabilities: opts.probs,
		Strategies:    strategies,
		Workers:       opts.workers,
		Seed:          opts.seed,
		Observe: func(rep *timing.Report) {
			mu.Lock()
			defer mu.Unlock()
			if rep.Err != nil {
				failed++
			}
			logger.Debug("run", "id", rep.RunID, "strategy", rep.Strategy, "interchange", rep.Interchange,
				"vertices", rep.Vertices, "colors", rep.ColorsUsed, "outcome", rep.Outcome())
		},
	})
	if err != nil {
		if failed > 0 {
			logger.Warn("bench aborted", "failed_runs", failed)
		}
		return err
	}
	prog.done(fmt.Sprintf("Ran %d colourings", len(rows)))

	out := cmd.OutOrStdout()
	if opts.detail {
		var table [][]string
		for _, r := range rows {
			table = append(table, []string{
				strconv.Itoa(r.N),
				strconv.FormatFloat(r.P, 'g', -1, 64),
				strconv.Itoa(r.Edges),
				r.Strategy.String(),
				strconv.FormatBool(r.Interchange),
				strconv.Itoa(r.ColorsUsed),
				strconv.Itoa(r.Swaps),
				r.Elapsed.String(),
			})
		}
		fmt.Fprintln(out, renderTable(
			[]string{"n", "p", "edges", "strategy", "interchange", "colors", "swaps", "time"}, table))
	}

	var summary [][]string
	for _, s := range bench.Summarize(rows) {
		summary = append(summary, []string{
			s.Strategy.String(),
			strconv.FormatBool(s.Interchange),
			strconv.Itoa(s.Runs),
			strconv.FormatFloat(s.MeanColors, 'f', 2, 64),
			strconv.Itoa(s.MinColors),
			strconv.Itoa(s.MaxColors),
			strconv.Itoa(s.Swaps),
			s.Elapsed.String(),
		})
	}
	printTitle(out, "summary")
	fmt.Fprintln(out, renderTable(
		[]string{"strategy", "interchange", "graphs", "mean colors", "min", "max", "swaps", "total time"}, summary))
	return nil
}
