// Package exact implements the exhaustive longest-simple-path solver.
//
// The solver enumerates every simple path from every start vertex using
// depth-first backtracking (choose, explore, unchoose) and keeps the
// maximum-weight path found. Runtime is factorial in the vertex count, so
// it is only suitable for small graphs (roughly 20 vertices or fewer);
// input-size gating is the caller's responsibility.
//
// The recursion is expressed as an explicit frame stack rather than call
// recursion, so deep graphs cannot exhaust the goroutine stack. The outer
// loop over start vertices can optionally run on a worker pool; workers
// share a single monotone best-result register.
package exact

import (
	"context"
	"sync"

	"github.com/pathmax/pathmax/pkg/errors"
	"github.com/pathmax/pathmax/pkg/graph"
	"github.com/pathmax/pathmax/pkg/solve"
)

// Options configures the exact solver.
type Options struct {
	// Workers is the number of goroutines for the outer start-vertex
	// loop. Zero or one means sequential, which also makes tie-breaking
	// deterministic (first found wins in vertex order).
	Workers int
}

// Solve returns a provably maximum-weight simple path in g.
// Ties in value keep the first path found. Returns an EMPTY_GRAPH error
// when g has no vertices; a single-vertex graph yields a trivial
// zero-value path. The context is checked between start vertices, so a
// cancelled ctx aborts the remaining search and returns ctx.Err().
func Solve(ctx context.Context, g *graph.Graph, opts Options) (solve.Result, error) {
	if g == nil || g.Order() == 0 {
		return solve.Result{}, errors.New(errors.ErrCodeEmptyGraph, "graph has no vertices")
	}

	ig := index(g)
	best := &solve.Best{}

	if opts.Workers > 1 {
		if err := solveParallel(ctx, ig, best, opts.Workers); err != nil {
			return solve.Result{}, err
		}
		return best.Result(), nil
	}

	for s := range ig.labels {
		if err := ctx.Err(); err != nil {
			return solve.Result{}, err
		}
		best.Offer(searchFrom(ig, s))
	}
	return best.Result(), nil
}

func solveParallel(ctx context.Context, ig *indexed, best *solve.Best, workers int) error {
	starts := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range starts {
				best.Offer(searchFrom(ig, s))
			}
		}()
	}

	var err error
feed:
	for s := range ig.labels {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case starts <- s:
		}
	}
	close(starts)
	wg.Wait()
	return err
}

// arc is one directed half of an undirected edge in the index form.
type arc struct {
	to     int
	weight float64
}

// indexed is the integer-indexed adjacency form used by the search loop.
// Arc order mirrors graph.Neighbors: weight descending.
type indexed struct {
	labels []string
	arcs   [][]arc
}

func index(g *graph.Graph) *indexed {
	labels := g.Vertices()
	at := make(map[string]int, len(labels))
	for i, v := range labels {
		at[v] = i
	}

	arcs := make([][]arc, len(labels))
	for i, v := range labels {
		ns := g.Neighbors(v)
		arcs[i] = make([]arc, len(ns))
		for j, n := range ns {
			arcs[i][j] = arc{to: at[n.Vertex], weight: n.Weight}
		}
	}
	return &indexed{labels: labels, arcs: arcs}
}

// searchFrom exhaustively explores all simple paths starting at s and
// returns the best one. Each stack frame records the vertex it entered,
// the next arc index to try, and the weight of the edge used to enter it
// (for the unchoose step).
func searchFrom(ig *indexed, s int) solve.Result {
	n := len(ig.labels)
	visited := make([]bool, n)
	path := make([]int, 1, n)
	next := make([]int, 1, n)
	entered := make([]float64, 1, n)

	visited[s] = true
	path[0] = s

	value := 0.0
	bestValue := 0.0
	bestPath := []int{s}

	for len(path) > 0 {
		top := len(path) - 1
		v := path[top]

		// Choose: advance to the first unvisited neighbor not yet tried
		// at this frame.
		advanced := false
		for i := next[top]; i < len(ig.arcs[v]); i++ {
			a := ig.arcs[v][i]
			if visited[a.to] {
				continue
			}
			next[top] = i + 1
			visited[a.to] = true
			path = append(path, a.to)
			next = append(next, 0)
			entered = append(entered, a.weight)
			value += a.weight
			if value > bestValue {
				bestValue = value
				bestPath = append(bestPath[:0], path...)
			}
			advanced = true
			break
		}
		if advanced {
			continue
		}

		// Unchoose: dead end or all neighbors explored.
		visited[v] = false
		value -= entered[top]
		path = path[:top]
		next = next[:top]
		entered = entered[:top]
	}

	out := make(graph.Path, len(bestPath))
	for i, idx := range bestPath {
		out[i] = ig.labels[idx]
	}
	return solve.Result{Value: bestValue, Path: out}
}
