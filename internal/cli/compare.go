package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pathmax/pathmax/pkg/bench"
	"github.com/pathmax/pathmax/pkg/errors"
)

// compareOpts holds the command-line flags for the compare command.
type compareOpts struct {
	seed             int64  // base seed for the approximate engine
	maxExactVertices int    // exact-solver cutoff
	workers          int    // solver parallelism
	output           string // JSON report path ("" = no report file)
	jsonStdout       bool   // write the JSON report to stdout
	plain            bool   // disable the live progress display
}

// newCompareCmd creates the compare command, which runs both engines over
// a corpus of case files and reports how close the approximate engine gets
// to the exact optimum.
func newCompareCmd() *cobra.Command {
	opts := compareOpts{}

	cmd := &cobra.Command{
		Use:   "compare <file|dir>...",
		Short: "Compare exact and approximate solvers over test cases",
		Long: `Compare exact and approximate solvers over test cases.

Each argument is a case file or a directory of *.txt case files. Both
engines solve every case; the report records values, timings, and the
approximation ratio. Cases larger than --max-exact-vertices skip the
exact engine, which is factorial in the vertex count.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			files, err := collectCases(args)
			if err != nil {
				return err
			}
			logger.Debugf("Collected %d case files", len(files))

			ropts := bench.Options{
				MaxExactVertices: cfg.Compare.MaxExactVertices,
				Approx:           approxOptions(cfg, opts.seed, opts.workers),
				ExactWorkers:     opts.workers,
			}
			if cmd.Flags().Changed("max-exact-vertices") {
				ropts.MaxExactVertices = opts.maxExactVertices
			}

			var report *bench.Report
			if opts.plain || opts.jsonStdout {
				report, err = runComparePlain(cmd, files, ropts)
			} else {
				report, err = runCompareTUI(cmd, files, ropts)
			}
			if err != nil {
				return err
			}

			if opts.jsonStdout {
				return report.WriteJSON(os.Stdout)
			}

			fmt.Println(renderSummaryTable(report))
			if opts.output != "" {
				if err := writeReportFile(report, opts.output); err != nil {
					return err
				}
				printFile(opts.output)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "base random seed for the approximate engine")
	cmd.Flags().IntVar(&opts.maxExactVertices, "max-exact-vertices", bench.DefaultMaxExactVertices, "skip the exact solver above this vertex count")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "solver parallelism (0 = all CPUs)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the JSON report to this file")
	cmd.Flags().BoolVar(&opts.jsonStdout, "json", false, "write the JSON report to stdout")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "log per-case lines instead of the live display")

	return cmd
}

// runComparePlain runs the comparison with per-case log lines.
func runComparePlain(cmd *cobra.Command, files []string, ropts bench.Options) (*bench.Report, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	ropts.OnCase = func(index, total int, res bench.CaseResult) {
		switch {
		case res.Error != "":
			logger.Warnf("[%d/%d] %s: %s", index+1, total, res.File, res.Error)
		case res.ExactSkipped:
			logger.Infof("[%d/%d] %s: approx %d (exact skipped at %d vertices)",
				index+1, total, res.File, int64(res.ApproxValue), res.Vertices)
		default:
			logger.Infof("[%d/%d] %s: exact %d, approx %d, ratio %.3f",
				index+1, total, res.File, int64(res.ExactValue), int64(res.ApproxValue), res.Ratio)
		}
	}

	runner := bench.NewRunner(ropts, logger)
	return runner.Run(ctx, files)
}

// runCompareTUI runs the comparison behind a live bubbletea progress view.
// The runner executes in a goroutine and streams case results into the model;
// the view writes to stderr so the summary and report stay clean on stdout.
func runCompareTUI(cmd *cobra.Command, files []string, ropts bench.Options) (*bench.Report, error) {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	p := tea.NewProgram(NewCompareModel(len(files)), tea.WithOutput(os.Stderr), tea.WithContext(ctx))

	ropts.OnCase = func(index, total int, res bench.CaseResult) {
		p.Send(caseMsg{index: index, total: total, res: res})
	}

	var (
		report *bench.Report
		runErr error
	)
	go func() {
		report, runErr = bench.NewRunner(ropts, logger).Run(ctx, files)
		p.Send(runDoneMsg{err: runErr})
	}()

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	if m, ok := final.(CompareModel); ok && m.Quitting {
		return nil, errors.New(errors.ErrCodeInternal, "comparison aborted")
	}
	if runErr != nil {
		return nil, runErr
	}
	return report, nil
}

// collectCases expands file and directory arguments into a sorted list of
// case files. Directories contribute their *.txt entries.
func collectCases(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "stat %s", arg)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(arg, "*.txt"))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidOption, "no case files found")
	}
	sort.Strings(files)
	return files, nil
}

// writeReportFile writes the JSON report to path.
func writeReportFile(report *bench.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.WriteJSON(f)
}
