package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chroma/bfs"
	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/core"
	"github.com/katalvlaran/chroma/graphio"
	"github.com/katalvlaran/chroma/gridgraph"
	"github.com/katalvlaran/chroma/timing"
)

// colorOpts holds the flags of the color command. Unset flags fall back to
// the [coloring] section of the configuration.
type colorOpts struct {
	input       string
	format      string
	strategy    string
	interchange bool
	seed        int64
	order       []string
	output      string
	classes     bool
	timeout     time.Duration
	regions     bool
	diagonal    bool
}

func newColorCmd() *cobra.Command {
	var opts colorOpts

	cmd := &cobra.Command{
		Use:   "color",
		Short: "Colour a graph file and report the result",
		Long: `Colour reads a graph (edge list, JSON or YAML), colours it with the selected
strategy and prints a summary. With --output the full report, including the
colouring and the visitation order, is written as JSON or YAML.`,
		Example: `  chroma color -i graph.txt -s dsatur --interchange
  chroma color -i graph.json -s rs --seed 7 -o result.yaml
  chroma color -i graph.txt --order a,b,c,d
  chroma color -i map.txt --regions`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context()).Coloring
			if !cmd.Flags().Changed("strategy") {
				opts.strategy = cfg.Strategy
			}
			if !cmd.Flags().Changed("interchange") {
				opts.interchange = cfg.Interchange
			}
			if !cmd.Flags().Changed("seed") {
				opts.seed = cfg.Seed
			}
			if !cmd.Flags().Changed("timeout") && cfg.TimeoutMs > 0 {
				opts.timeout = time.Duration(cfg.TimeoutMs) * time.Millisecond
			}
			return runColor(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "graph file, or - for stdin")
	cmd.Flags().StringVar(&opts.format, "format", "", "input format: edgelist, json, yaml, matrix (default: from extension)")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "dsatur", "ordering strategy: rs, lf, sl, dsatur")
	cmd.Flags().BoolVar(&opts.interchange, "interchange", false, "enable the interchange optimizer")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "seed for random-sequential")
	cmd.Flags().StringSliceVar(&opts.order, "order", nil, "explicit visitation order (greedy)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the report to a .json or .yaml file")
	cmd.Flags().BoolVar(&opts.classes, "classes", false, "print the colour classes")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "abort the run after this long")
	cmd.Flags().BoolVar(&opts.regions, "regions", false, "treat the input as a grid map and colour its regions")
	cmd.Flags().BoolVar(&opts.diagonal, "diagonal", false, "with --regions, cells touching at corners are neighbours")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runColor(cmd *cobra.Command, opts colorOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	var (
		g         *core.Graph
		partition *gridgraph.Partition
		err       error
	)
	if opts.regions {
		partition, err = readMap(cmd, opts.input, opts.diagonal)
		if err != nil {
			return err
		}
		g = partition.Graph()
	} else if g, err = readGraph(cmd, opts.input, opts.format); err != nil {
		return err
	}
	logger.Debug("graph loaded", "vertices", g.VertexCount(), "edges", g.EdgeCount())

	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}
	copts := []coloring.Option{
		coloring.WithContext(ctx),
		coloring.WithInterchange(opts.interchange),
		coloring.WithSeed(opts.seed),
		coloring.WithOnStep(func(s coloring.Step) {
			if s.Interchanged {
				logger.Debug("interchange", "step", s.Index, "color", s.Color)
			}
		}),
	}

	prog := newProgress(logger)
	var (
		res *coloring.Result[string]
		rep *timing.Report
	)
	if len(opts.order) > 0 {
		res, rep, err = timing.MeasureGreedy(g, opts.order, copts)
	} else {
		strategy, perr := coloring.ParseStrategy(opts.strategy)
		if perr != nil {
			return perr
		}
		res, rep, err = timing.Measure(g, strategy, copts)
	}
	if err != nil {
		return err
	}
	if err := coloring.Verify(g, res.Colors); err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	prog.done(fmt.Sprintf("Coloured %d vertices with %d colours", g.VertexCount(), res.ColorsUsed))

	comps, err := bfs.Components(ctx, g)
	if err != nil {
		return err
	}
	bipartite := true
	if _, err := bfs.Bipartition(ctx, g); err != nil {
		if !errors.Is(err, bfs.ErrNotBipartite) {
			return err
		}
		bipartite = false
		logger.Debug("not bipartite", "err", err)
	}
	bound := lowerBound(g.VertexCount(), g.EdgeCount(), bipartite)
	if res.ColorsUsed == bound {
		logger.Debug("colouring is optimal", "colors", res.ColorsUsed)
	}

	out := cmd.OutOrStdout()
	printTitle(out, "chroma "+res.Strategy.String())
	printKV(out,
		[2]string{"run", rep.RunID},
		[2]string{"vertices", strconv.Itoa(g.VertexCount())},
		[2]string{"edges", strconv.Itoa(g.EdgeCount())},
		[2]string{"interchange", strconv.FormatBool(res.Interchange)},
		[2]string{"components", strconv.Itoa(len(comps))},
		[2]string{"bipartite", strconv.FormatBool(bipartite)},
		[2]string{"colors", strconv.Itoa(res.ColorsUsed)},
		[2]string{"lower bound", strconv.Itoa(bound)},
		[2]string{"swaps", strconv.Itoa(res.Swaps)},
		[2]string{"prepared", rep.Prepared.String()},
		[2]string{"elapsed", rep.Elapsed.String()},
	)
	if opts.classes {
		for i, cls := range res.ColorClasses() {
			fmt.Fprintf(out, "%d: %v\n", i+1, cls)
		}
	}

	if partition != nil {
		painted, err := partition.Paint(res.Colors)
		if err != nil {
			return err
		}
		for _, row := range painted {
			fmt.Fprintln(out, strings.Trim(fmt.Sprint(row), "[]"))
		}
	}

	if opts.output != "" {
		if err := writeReport(opts.output, graphio.NewReport(g, res, rep.RunID, rep.Elapsed)); err != nil {
			return err
		}
		logger.Info("Report written", "path", opts.output)
	}
	return nil
}

// lowerBound is the chromatic lower bound known without search: 0 for the
// empty graph, 1 without edges, 2 for bipartite graphs, 3 otherwise.
func lowerBound(vertices, edges int, bipartite bool) int {
	switch {
	case vertices == 0:
		return 0
	case edges == 0:
		return 1
	case bipartite:
		return 2
	default:
		return 3
	}
}

func readGraph(cmd *cobra.Command, input, format string) (*core.Graph, error) {
	if input == "-" {
		f := graphio.FormatEdgeList
		if format != "" {
			var err error
			if f, err = graphio.ParseFormat(format); err != nil {
				return nil, err
			}
		}
		return graphio.Read(cmd.InOrStdin(), f)
	}
	if format == "" {
		return graphio.ReadFile(input)
	}

	f, err := graphio.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return graphio.Read(fh, f)
}

// readMap parses a region grid and partitions it.
func readMap(cmd *cobra.Command, input string, diagonal bool) (*gridgraph.Partition, error) {
	var r io.Reader = cmd.InOrStdin()
	if input != "-" {
		fh, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		r = fh
	}
	grid, err := gridgraph.ReadGrid(r)
	if err != nil {
		return nil, err
	}
	opts := gridgraph.DefaultOptions()
	if diagonal {
		opts.Conn = gridgraph.Conn8
	}
	m, err := gridgraph.New(grid, opts)
	if err != nil {
		return nil, err
	}
	return m.Partition(), nil
}

func writeReport(path string, rep graphio.Report) error {
	f, err := graphio.FormatFromPath(path)
	if err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := graphio.WriteReport(fh, rep, f); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
