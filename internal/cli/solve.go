package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pathmax/pathmax/pkg/graph"
	"github.com/pathmax/pathmax/pkg/solve"
	"github.com/pathmax/pathmax/pkg/solve/approx"
	"github.com/pathmax/pathmax/pkg/solve/exact"
)

// solveOpts holds the command-line flags shared by both solve engines.
type solveOpts struct {
	workers  int  // solver parallelism (0 = GOMAXPROCS)
	showTime bool // log elapsed wall time
}

// newSolveCmd creates the solve command with its exact and approx subcommands.
// Both read a graph from a file argument or stdin and write the best value and
// path to stdout. Diagnostics go to stderr so the result stays pipeable.
func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the longest simple path in a graph",
		Long: `Find the longest simple path in a weighted undirected graph.

The graph is read from the given file, or from stdin when no file is
given. The input format is a header line "n m" followed by m lines
"u v w" with string vertex labels and a positive weight.

Output is two lines on stdout: the total path weight (truncated to an
integer) and the space-separated vertex sequence.`,
	}

	cmd.AddCommand(newSolveExactCmd())
	cmd.AddCommand(newSolveApproxCmd())

	return cmd
}

// newSolveExactCmd creates the exhaustive-search subcommand.
// The exact engine guarantees an optimal answer but its runtime grows
// factorially, so it is only practical for small graphs.
func newSolveExactCmd() *cobra.Command {
	opts := solveOpts{}

	cmd := &cobra.Command{
		Use:   "exact [graph.txt]",
		Short: "Solve exhaustively (optimal, small graphs only)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			g, source, err := readGraphArg(args)
			if err != nil {
				return err
			}
			logger.Debugf("Loaded %s: %d vertices, %d edges", source, g.Order(), g.Size())

			p := newProgress(logger)
			spinner := newSpinner(ctx, fmt.Sprintf("Searching %d vertices exhaustively...", g.Order()))
			spinner.Start()

			res, err := exact.Solve(ctx, g, exact.Options{Workers: opts.workers})
			spinner.Stop()
			if err != nil {
				return err
			}

			if opts.showTime {
				p.done(fmt.Sprintf("Solved %d-vertex graph", g.Order()))
			}
			return writeResult(res)
		},
	}

	cmd.Flags().IntVar(&opts.workers, "workers", 0, "parallel start vertices (0 = all CPUs)")
	cmd.Flags().BoolVar(&opts.showTime, "time", false, "log elapsed wall time")

	return cmd
}

// newSolveApproxCmd creates the randomized multi-strategy subcommand.
func newSolveApproxCmd() *cobra.Command {
	opts := solveOpts{}
	var (
		seed          int64
		starts        int
		seedsPerStart int
	)

	cmd := &cobra.Command{
		Use:   "approx [graph.txt]",
		Short: "Solve with randomized greedy strategies (fast, near-optimal)",
		Long: `Solve with randomized greedy strategies.

The approximate engine runs several construction strategies (lookahead
depths 0-2, backtracking repair, reverse construction) from multiple
start vertices and random seeds, and keeps the best path found. The
same --seed always reproduces the same answer, and a larger seed budget
can only improve it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			g, source, err := readGraphArg(args)
			if err != nil {
				return err
			}
			logger.Debugf("Loaded %s: %d vertices, %d edges", source, g.Order(), g.Size())

			aopts := approxOptions(cfg, seed, opts.workers)
			if cmd.Flags().Changed("starts") {
				aopts.Starts = starts
			}
			if cmd.Flags().Changed("seeds-per-start") {
				aopts.SeedsPerStart = seedsPerStart
			}

			p := newProgress(logger)
			res, err := approx.Solve(ctx, g, aopts)
			if err != nil {
				return err
			}

			if opts.showTime {
				p.done(fmt.Sprintf("Solved %d-vertex graph", g.Order()))
			}
			return writeResult(res)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "base random seed (same seed, same answer)")
	cmd.Flags().IntVar(&starts, "starts", 0, "max start vertices to try (0 = all)")
	cmd.Flags().IntVar(&seedsPerStart, "seeds-per-start", 0, "random restarts per start vertex (0 = default)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "parallel attempts (0 = all CPUs)")
	cmd.Flags().BoolVar(&opts.showTime, "time", false, "log elapsed wall time")

	return cmd
}

// approxOptions builds approximate-engine options from the loaded config.
func approxOptions(cfg *Config, seed int64, workers int) approx.Options {
	opts := approx.Options{
		Seed:          seed,
		Starts:        cfg.Approx.Starts,
		SeedsPerStart: cfg.Approx.SeedsPerStart,
		Workers:       cfg.Approx.Workers,
		Greedy:        cfg.greedyOptions(),
	}
	if workers != 0 {
		opts.Workers = workers
	}
	return opts
}

// readGraphArg reads the graph from the file argument, or from stdin
// when no argument is given. It returns the graph and a short source
// label for log messages.
func readGraphArg(args []string) (*graph.Graph, string, error) {
	if len(args) == 0 {
		g, err := graph.Read(os.Stdin)
		return g, "stdin", err
	}
	g, err := graph.ReadFile(args[0])
	return g, args[0], err
}

// writeResult prints the solver result in the two-line output format.
func writeResult(res solve.Result) error {
	return graph.WriteResult(os.Stdout, res.Value, res.Path)
}
