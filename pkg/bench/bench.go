// Package bench runs the exact and approximate solvers side by side over
// a corpus of test-case files and aggregates quality and timing results.
//
// Each case is read, solved by both engines, and recorded with wall-clock
// timings and the approximation ratio (approximate value / exact value).
// The exact solver is skipped above a configurable vertex count, since
// its runtime is factorial; those cases still record the approximate
// result. Failures are recorded per case and do not abort the run.
package bench

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/pathmax/pathmax/pkg/graph"
	"github.com/pathmax/pathmax/pkg/solve/approx"
	"github.com/pathmax/pathmax/pkg/solve/exact"
)

// DefaultMaxExactVertices is the largest graph the exact solver is asked
// to handle during comparison runs.
const DefaultMaxExactVertices = 14

// Options configures a comparison run.
type Options struct {
	// MaxExactVertices gates the exact solver (0 selects the default).
	MaxExactVertices int

	// Approx carries the approximate-engine options, including the
	// base seed for reproducible runs.
	Approx approx.Options

	// ExactWorkers is passed to the exact solver's outer loop.
	ExactWorkers int

	// OnCase, when set, is invoked after every finished case with its
	// index and the running total. Used for live progress display.
	OnCase func(index, total int, res CaseResult)
}

// CaseResult is the outcome of one test case.
type CaseResult struct {
	File         string  `json:"file"`
	Vertices     int     `json:"vertices,omitempty"`
	Edges        int     `json:"edges,omitempty"`
	ExactValue   float64 `json:"exact_value,omitempty"`
	ApproxValue  float64 `json:"approx_value,omitempty"`
	Ratio        float64 `json:"ratio,omitempty"` // approx / exact, 1.0 means optimal
	ExactMillis  float64 `json:"exact_ms,omitempty"`
	ApproxMillis float64 `json:"approx_ms,omitempty"`
	ExactSkipped bool    `json:"exact_skipped,omitempty"`
	Error        string  `json:"error,omitempty"`
}

// Summary aggregates a run.
type Summary struct {
	Cases      int     `json:"cases"`
	Failed     int     `json:"failed"`
	Compared   int     `json:"compared"` // cases where both engines ran
	Optimal    int     `json:"optimal"`  // compared cases with ratio == 1
	MeanRatio  float64 `json:"mean_ratio,omitempty"`
	WorstRatio float64 `json:"worst_ratio,omitempty"`
}

// Report is the full result of a comparison run, tagged with a unique
// run ID so reports from repeated runs can be told apart.
type Report struct {
	RunID   string       `json:"run_id"`
	Started time.Time    `json:"started"`
	Seed    int64        `json:"seed"`
	Cases   []CaseResult `json:"cases"`
	Summary Summary      `json:"summary"`
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Runner executes comparison runs.
type Runner struct {
	opts   Options
	logger *log.Logger
}

// NewRunner creates a comparison runner. A nil logger falls back to the
// default logger.
func NewRunner(opts Options, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	if opts.MaxExactVertices <= 0 {
		opts.MaxExactVertices = DefaultMaxExactVertices
	}
	return &Runner{opts: opts, logger: logger}
}

// Run solves every file with both engines and returns the aggregated
// report. The context aborts the run between cases.
func (r *Runner) Run(ctx context.Context, files []string) (*Report, error) {
	report := &Report{
		RunID:   uuid.NewString(),
		Started: time.Now(),
		Seed:    r.opts.Approx.Seed,
		Cases:   make([]CaseResult, 0, len(files)),
	}

	start := time.Now()
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res := r.runCase(ctx, file)
		report.Cases = append(report.Cases, res)
		if r.opts.OnCase != nil {
			r.opts.OnCase(i, len(files), res)
		}
	}
	report.Summary = summarize(report.Cases)

	r.logger.Infof("Compared %d cases (%s)", report.Summary.Cases, time.Since(start).Round(time.Millisecond))
	return report, nil
}

func (r *Runner) runCase(ctx context.Context, file string) CaseResult {
	res := CaseResult{File: file}

	g, err := graph.ReadFile(file)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Vertices = g.Order()
	res.Edges = g.Size()

	t0 := time.Now()
	approxRes, err := approx.Solve(ctx, g, r.opts.Approx)
	res.ApproxMillis = ms(time.Since(t0))
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.ApproxValue = approxRes.Value

	if g.Order() > r.opts.MaxExactVertices {
		res.ExactSkipped = true
		r.logger.Debugf("%s: %d vertices, exact solver skipped", file, g.Order())
		return res
	}

	t0 = time.Now()
	exactRes, err := exact.Solve(ctx, g, exact.Options{Workers: r.opts.ExactWorkers})
	res.ExactMillis = ms(time.Since(t0))
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.ExactValue = exactRes.Value

	if exactRes.Value > 0 {
		res.Ratio = approxRes.Value / exactRes.Value
	} else {
		res.Ratio = 1
	}
	return res
}

func summarize(cases []CaseResult) Summary {
	s := Summary{Cases: len(cases), WorstRatio: math.Inf(1)}

	sum := 0.0
	for _, c := range cases {
		switch {
		case c.Error != "":
			s.Failed++
		case c.ExactSkipped:
			// approximate-only, no ratio
		default:
			s.Compared++
			sum += c.Ratio
			if c.Ratio == 1 {
				s.Optimal++
			}
			if c.Ratio < s.WorstRatio {
				s.WorstRatio = c.Ratio
			}
		}
	}

	if s.Compared > 0 {
		s.MeanRatio = sum / float64(s.Compared)
	} else {
		s.WorstRatio = 0
	}
	return s
}

func ms(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
