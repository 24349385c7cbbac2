// Package greedy implements single-path construction heuristics for the
// approximate longest-path engine.
//
// A build never fails: it returns whatever path was constructed, at
// minimum the single-vertex path of its start. Dead ends and exhausted
// repair budgets are normal termination conditions, not errors.
//
// Randomness is confined to tie-breaking; scoring formulas are
// deterministic on the graph. Threading the random source through every
// call keeps runs reproducible given a fixed seed and attempt ordering.
package greedy

import (
	"math/rand"

	"github.com/pathmax/pathmax/pkg/graph"
	"github.com/pathmax/pathmax/pkg/solve"
)

// Default tunables. The blend factor and retry cap are empirical, not
// contractual; callers can override them through Options.
const (
	// DefaultBeta is the lookahead blend factor: how strongly a
	// candidate's onward options count against its immediate weight.
	DefaultBeta = 0.3

	// DefaultBacktrackRetries bounds dead-end repair per construction.
	// The cap keeps the heuristic polynomial; this is shallow local
	// repair, not full backtracking search.
	DefaultBacktrackRetries = 3
)

// Options holds the tunable constants of the path builder.
// The zero value selects the defaults.
type Options struct {
	// Beta is the lookahead blend factor (0 selects DefaultBeta).
	Beta float64
	// BacktrackRetries is the dead-end repair budget for the Backtrack
	// strategy (0 selects DefaultBacktrackRetries).
	BacktrackRetries int
}

func (o Options) withDefaults() Options {
	if o.Beta <= 0 {
		o.Beta = DefaultBeta
	}
	if o.BacktrackRetries <= 0 {
		o.BacktrackRetries = DefaultBacktrackRetries
	}
	return o
}

// Build constructs one candidate path from start using the given
// strategy. The start must be a vertex of g. Ties between equally scored
// candidates are broken uniformly at random using rng; a nil rng falls
// back to a fixed-seed source so the builder stays deterministic rather
// than picking up ambient randomness.
func Build(g *graph.Graph, start string, rng *rand.Rand, strat Strategy, opts Options) solve.Result {
	opts = opts.withDefaults()
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if strat == Reverse {
		return buildReverse(g, start, rng, opts)
	}
	return buildForward(g, start, rng, strat, opts)
}

func buildForward(g *graph.Graph, start string, rng *rand.Rand, strat Strategy, opts Options) solve.Result {
	visited := map[string]bool{start: true}
	path := graph.Path{start}
	value := 0.0

	depth := lookaheadDepth(strat)
	retries := 0
	if strat == Backtrack {
		retries = opts.BacktrackRetries
	}
	exclude := ""

	for {
		tail := path[len(path)-1]
		cand, ok := pick(g, tail, visited, exclude, depth, opts.Beta, rng)
		if !ok {
			if retries > 0 && len(path) > 1 {
				// Undo the last step and retry once at the new tail,
				// excluding the removed vertex.
				prev := path[len(path)-2]
				w, _ := g.Weight(prev, tail)
				value -= w
				delete(visited, tail)
				path = path[:len(path)-1]
				exclude = tail
				retries--
				continue
			}
			break
		}
		visited[cand.vertex] = true
		path = append(path, cand.vertex)
		value += cand.weight
		exclude = ""
	}

	return solve.Result{Value: value, Path: path}
}

// buildReverse grows the path by prepending predecessors of the head,
// using the one-step lookahead scoring. On an undirected graph this
// anchors the start at the far end of the constructed path, which is
// valuable when the optimal path's distant endpoint is a poor forward
// start but a good backward anchor.
func buildReverse(g *graph.Graph, start string, rng *rand.Rand, opts Options) solve.Result {
	visited := map[string]bool{start: true}
	path := graph.Path{start}
	value := 0.0

	for {
		head := path[0]
		cand, ok := pick(g, head, visited, "", 1, opts.Beta, rng)
		if !ok {
			break
		}
		visited[cand.vertex] = true
		path = append(graph.Path{cand.vertex}, path...)
		value += cand.weight
	}

	return solve.Result{Value: value, Path: path}
}

func lookaheadDepth(strat Strategy) int {
	switch strat {
	case Lookahead0:
		return 0
	case Lookahead2:
		return 2
	default:
		// Lookahead1 and Backtrack share the one-step scoring.
		return 1
	}
}

type candidate struct {
	vertex string
	weight float64 // immediate edge weight
	score  float64 // lookahead-blended score
}

// pick selects the next extension of the path ending (or starting) at
// cur. Candidates are the unvisited neighbors of cur minus an optional
// one-shot exclusion. The best candidate maximizes score, then immediate
// weight, then is drawn uniformly at random among exact ties.
func pick(g *graph.Graph, cur string, visited map[string]bool, exclude string, depth int, beta float64, rng *rand.Rand) (candidate, bool) {
	var tied []candidate

	for _, n := range g.Neighbors(cur) {
		if visited[n.Vertex] || n.Vertex == exclude {
			continue
		}
		c := candidate{
			vertex: n.Vertex,
			weight: n.Weight,
			score:  n.Weight + lookahead(g, n.Vertex, visited, depth, beta),
		}
		switch {
		case len(tied) == 0 || better(c, tied[0]):
			tied = append(tied[:0], c)
		case c.score == tied[0].score && c.weight == tied[0].weight:
			tied = append(tied, c)
		}
	}

	if len(tied) == 0 {
		return candidate{}, false
	}
	if len(tied) == 1 {
		return tied[0], true
	}
	return tied[rng.Intn(len(tied))], true
}

// better orders candidates by score, falling back to immediate weight so
// that score ties prefer the heavier first edge before random choice.
func better(a, b candidate) bool {
	if a.score != b.score {
		return a.score > b.score
	}
	return a.weight > b.weight
}

// lookahead estimates the discounted value of the best continuation from
// cand, assuming cand is about to be visited. Weight comparisons are
// exact; only beta discounts deeper edges.
func lookahead(g *graph.Graph, cand string, visited map[string]bool, depth int, beta float64) float64 {
	if depth <= 0 {
		return 0
	}

	visited[cand] = true
	best := 0.0
	for _, n := range g.Neighbors(cand) {
		if visited[n.Vertex] {
			continue
		}
		v := n.Weight + lookahead(g, n.Vertex, visited, depth-1, beta)
		if v > best {
			best = v
		}
	}
	delete(visited, cand)

	return beta * best
}
