// Package approx implements the approximate longest-path engine: a
// randomized, multi-strategy greedy search with local repair.
//
// The orchestrator drives the greedy path builder across the closed
// cross-product of (start vertex, seed, strategy) attempts and keeps the
// best path seen. The attempt set is precomputed and finite; there is no
// convergence criterion or early stopping, so total runtime stays
// polynomial in the graph size times the budget.
//
// Attempts are independent: each reads only the immutable graph and
// writes its own private construction state. The single shared artifact
// is the monotone best-result register, which makes the attempt loop
// trivially parallelizable.
package approx

import (
	"context"
	"math/rand"
	"slices"
	"strings"
	"sync"

	"github.com/pathmax/pathmax/pkg/errors"
	"github.com/pathmax/pathmax/pkg/graph"
	"github.com/pathmax/pathmax/pkg/solve"
	"github.com/pathmax/pathmax/pkg/solve/greedy"
)

// Default budget tunables.
const (
	// DefaultSeedsPerStart is the number of independent randomized
	// attempts per (start, strategy) pair.
	DefaultSeedsPerStart = 4

	// The 8-12 vertex band is where greedy search is most often misled
	// into a suboptimal local structure while still being cheap to
	// sample heavily, so those graphs get a larger budget.
	boostLowOrder  = 8
	boostHighOrder = 12

	// DefaultBoostFactor scales the seed budget inside the boost band.
	DefaultBoostFactor = 1.35
)

// Options configures the orchestrator.
type Options struct {
	// Seed is the base random seed. All attempt sources derive from it,
	// so a fixed Seed reproduces the whole search exactly. Zero selects
	// seed 1 to keep the default reproducible.
	Seed int64

	// Starts caps how many start vertices are tried, taken in degree
	// order. Zero means all vertices.
	Starts int

	// SeedsPerStart is the attempt budget per (start, strategy) pair
	// before size-adaptive boosting. Zero selects DefaultSeedsPerStart.
	SeedsPerStart int

	// Workers is the number of goroutines running attempts. Zero or one
	// means sequential.
	Workers int

	// Greedy carries the path-builder tunables.
	Greedy greedy.Options
}

// attempt is one entry of the precomputed search plan.
type attempt struct {
	start    string
	strategy greedy.Strategy
	seed     int64
}

// Solve runs the budgeted multi-start greedy search over g and returns
// the best path found. It never fails on a well-formed graph; an empty
// graph yields an EMPTY_GRAPH error, matching the construction-time
// failure it would have surfaced.
func Solve(ctx context.Context, g *graph.Graph, opts Options) (solve.Result, error) {
	if g == nil || g.Order() == 0 {
		return solve.Result{}, errors.New(errors.ErrCodeEmptyGraph, "graph has no vertices")
	}

	plan := buildPlan(g, opts)
	best := &solve.Best{}

	// The start vertex itself is always a valid result, so even a plan
	// interrupted immediately reports a usable path.
	best.Offer(solve.Result{Value: 0, Path: graph.Path{plan[0].start}})

	if opts.Workers > 1 {
		if err := runParallel(ctx, g, plan, best, opts); err != nil {
			return solve.Result{}, err
		}
		return best.Result(), nil
	}

	for _, a := range plan {
		if err := ctx.Err(); err != nil {
			return solve.Result{}, err
		}
		runAttempt(g, a, best, opts.Greedy)
	}
	return best.Result(), nil
}

func runAttempt(g *graph.Graph, a attempt, best *solve.Best, opts greedy.Options) {
	rng := rand.New(rand.NewSource(a.seed))
	best.Offer(greedy.Build(g, a.start, rng, a.strategy, opts))
}

func runParallel(ctx context.Context, g *graph.Graph, plan []attempt, best *solve.Best, opts Options) error {
	attempts := make(chan attempt)
	var wg sync.WaitGroup

	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for a := range attempts {
				runAttempt(g, a, best, opts.Greedy)
			}
		}()
	}

	var err error
feed:
	for _, a := range plan {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case attempts <- a:
		}
	}
	close(attempts)
	wg.Wait()
	return err
}

// buildPlan precomputes the closed (start, seed, strategy) attempt set.
// Start vertices are ranked by degree descending: high-degree vertices
// statistically admit longer extensible paths and are explored first, so
// a Starts cap spends the budget where it is most likely to pay off.
func buildPlan(g *graph.Graph, opts Options) []attempt {
	starts := startOrder(g)
	if opts.Starts > 0 && opts.Starts < len(starts) {
		starts = starts[:opts.Starts]
	}

	seeds := seedBudget(g.Order(), opts.SeedsPerStart)
	base := opts.Seed
	if base == 0 {
		base = 1
	}

	strategies := greedy.Strategies()
	plan := make([]attempt, 0, len(starts)*seeds*len(strategies))
	for si, start := range starts {
		for k := 0; k < seeds; k++ {
			for _, strat := range strategies {
				plan = append(plan, attempt{
					start:    start,
					strategy: strat,
					seed:     deriveSeed(base, uint64(si), uint64(k), uint64(strat)),
				})
			}
		}
	}
	return plan
}

// startOrder returns the vertices ranked by degree descending, label
// ascending on equal degrees.
func startOrder(g *graph.Graph) []string {
	vs := g.Vertices()
	slices.SortFunc(vs, func(a, b string) int {
		if d := g.Degree(b) - g.Degree(a); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	return vs
}

// seedBudget returns the per-(start, strategy) attempt count, boosted for
// graphs in the empirically problematic 8-12 vertex band.
func seedBudget(order, perStart int) int {
	if perStart <= 0 {
		perStart = DefaultSeedsPerStart
	}
	if order >= boostLowOrder && order <= boostHighOrder {
		boosted := float64(perStart) * DefaultBoostFactor
		perStart = int(boosted)
		if boosted > float64(perStart) {
			perStart++ // round up
		}
	}
	return perStart
}

// deriveSeed mixes the base seed and the attempt coordinates through a
// SplitMix64-style finalizer, giving every attempt an independent,
// reproducible random stream.
func deriveSeed(base int64, start, seed, strat uint64) int64 {
	x := uint64(base) ^ (start+1)*0x9e3779b97f4a7c15 ^ (seed+1)*0xbf58476d1ce4e5b9 ^ (strat + 1)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
