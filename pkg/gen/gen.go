// Package gen produces graph test cases in the solver input text format.
//
// The shapes mirror the classes of graphs the solvers are evaluated on:
// complete and dense graphs stress the exact solver, trees and sparse
// graphs stress dead-end handling, and the trap shape is adversarial for
// greedy search (an attractive heavy edge leading into a stub next to a
// lighter chain worth more in total).
//
// Generation is deterministic given a random source: the same seed
// reproduces the same case byte for byte.
package gen

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/pathmax/pathmax/pkg/errors"
	"github.com/pathmax/pathmax/pkg/graph"
)

// Weight bounds for generated edges, matching the evaluation corpus.
const (
	MinWeight = 1
	MaxWeight = 100
)

// Shape names accepted by Generate.
const (
	ShapeComplete = "complete"
	ShapeTree     = "tree"
	ShapePath     = "path"
	ShapeCycle    = "cycle"
	ShapeSparse   = "sparse"
	ShapeDense    = "dense"
	ShapeStar     = "star"
	ShapeTrap     = "trap"
	ShapeRandom   = "random"
)

// Shapes lists all supported shape names.
func Shapes() []string {
	return []string{
		ShapeComplete, ShapeTree, ShapePath, ShapeCycle,
		ShapeSparse, ShapeDense, ShapeStar, ShapeTrap, ShapeRandom,
	}
}

// Case is a generated test case: a vertex set and an edge list that
// serialize to the solver input format.
type Case struct {
	Vertices []string
	Edges    []graph.Edge
}

// Graph builds the immutable graph model for the case.
func (c Case) Graph() (*graph.Graph, error) {
	return graph.New(c.Vertices, c.Edges)
}

// WriteTo serializes the case in the input text format: the "n m" header
// followed by one "u v w" line per edge.
func (c Case) WriteTo(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", len(c.Vertices), len(c.Edges)); err != nil {
		return err
	}
	for _, e := range c.Edges {
		if _, err := fmt.Fprintf(w, "%s %s %g\n", e.U, e.V, e.Weight); err != nil {
			return err
		}
	}
	return nil
}

// Generate dispatches to the named shape. The m parameter is only used
// by the sparse and random shapes; dense derives its edge count from a
// fixed density. Returns an INVALID_SHAPE error for unknown names.
func Generate(shape string, n, m int, rng *rand.Rand) (Case, error) {
	if n < 1 {
		return Case{}, errors.New(errors.ErrCodeInvalidOption, "shape %q needs at least 1 vertex, got %d", shape, n)
	}
	switch shape {
	case ShapeComplete:
		return Complete(n, rng), nil
	case ShapeTree:
		return Tree(n, rng), nil
	case ShapePath:
		return Chain(n, rng), nil
	case ShapeCycle:
		return Cycle(n, rng), nil
	case ShapeSparse:
		return Sparse(n, m, rng), nil
	case ShapeDense:
		return Dense(n, 0.7, rng), nil
	case ShapeStar:
		return Star(n, rng), nil
	case ShapeTrap:
		return Trap(n, rng), nil
	case ShapeRandom:
		return Sparse(n, m, rng), nil
	default:
		return Case{}, errors.New(errors.ErrCodeInvalidShape, "unknown shape %q", shape)
	}
}

// Complete generates the complete graph on n vertices.
func Complete(n int, rng *rand.Rand) Case {
	vs := labels(n)
	var edges []graph.Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, graph.Edge{U: vs[i], V: vs[j], Weight: randWeight(rng)})
		}
	}
	return Case{Vertices: vs, Edges: edges}
}

// Tree generates a random tree: each new vertex attaches to a uniformly
// chosen earlier vertex.
func Tree(n int, rng *rand.Rand) Case {
	vs := labels(n)
	var edges []graph.Edge
	for i := 1; i < n; i++ {
		u := vs[rng.Intn(i)]
		edges = append(edges, graph.Edge{U: u, V: vs[i], Weight: randWeight(rng)})
	}
	return Case{Vertices: vs, Edges: edges}
}

// Chain generates a simple path graph v1-v2-...-vn.
func Chain(n int, rng *rand.Rand) Case {
	vs := labels(n)
	var edges []graph.Edge
	for i := 0; i+1 < n; i++ {
		edges = append(edges, graph.Edge{U: vs[i], V: vs[i+1], Weight: randWeight(rng)})
	}
	return Case{Vertices: vs, Edges: edges}
}

// Cycle generates a cycle through all n vertices. For n < 3 it degrades
// to a chain, since smaller cycles would need self-loops or parallel
// edges.
func Cycle(n int, rng *rand.Rand) Case {
	if n < 3 {
		return Chain(n, rng)
	}
	vs := labels(n)
	var edges []graph.Edge
	for i := 0; i < n; i++ {
		edges = append(edges, graph.Edge{U: vs[i], V: vs[(i+1)%n], Weight: randWeight(rng)})
	}
	return Case{Vertices: vs, Edges: edges}
}

// Sparse generates a graph with n vertices and m edges sampled uniformly
// from all vertex pairs, plus a random spanning tree so every vertex
// appears in at least one edge. m is clamped to the complete-graph edge
// count.
func Sparse(n, m int, rng *rand.Rand) Case {
	max := n * (n - 1) / 2
	if m > max {
		m = max
	}

	// Spanning tree first: the input format cannot express isolated
	// vertices, so every case must touch all n labels.
	c := Tree(n, rng)
	vs := c.Vertices

	have := make(map[[2]string]bool, len(c.Edges))
	for _, e := range c.Edges {
		have[pairKey(e.U, e.V)] = true
	}

	var rest [][2]string
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !have[pairKey(vs[i], vs[j])] {
				rest = append(rest, [2]string{vs[i], vs[j]})
			}
		}
	}
	rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })

	for _, p := range rest {
		if len(c.Edges) >= m {
			break
		}
		c.Edges = append(c.Edges, graph.Edge{U: p[0], V: p[1], Weight: randWeight(rng)})
	}
	return c
}

// Dense generates a graph at the given edge density (fraction of the
// complete graph).
func Dense(n int, density float64, rng *rand.Rand) Case {
	m := int(float64(n*(n-1)/2) * density)
	return Sparse(n, m, rng)
}

// Star generates a star: v1 connected to every other vertex. Every
// longest path in a star has exactly two edges, which makes it a sharp
// test for dead-end repair.
func Star(n int, rng *rand.Rand) Case {
	vs := labels(n)
	var edges []graph.Edge
	for i := 1; i < n; i++ {
		edges = append(edges, graph.Edge{U: vs[0], V: vs[i], Weight: randWeight(rng)})
	}
	return Case{Vertices: vs, Edges: edges}
}

// Trap generates a graph adversarial for greedy search: a heavy edge
// from v1 into a short stub next to a chain of medium edges worth more
// in total, plus a few random cross edges to keep the shape interesting.
// Needs at least 4 vertices; smaller n degrades to a chain.
func Trap(n int, rng *rand.Rand) Case {
	if n < 4 {
		return Chain(n, rng)
	}
	vs := labels(n)
	edges := []graph.Edge{
		{U: vs[0], V: vs[1], Weight: 100},
		{U: vs[1], V: vs[2], Weight: 1},
		{U: vs[0], V: vs[3], Weight: 30},
	}
	for i := 3; i < min(n, 6); i++ {
		if i+1 < n {
			edges = append(edges, graph.Edge{U: vs[i], V: vs[i+1], Weight: 30})
		}
	}
	for i := 4; i < n; i++ {
		for j := i + 1; j < min(i+3, n); j++ {
			edges = append(edges, graph.Edge{U: vs[i], V: vs[j], Weight: float64(10 + rng.Intn(41))})
		}
	}
	return Case{Vertices: vs, Edges: edges}
}

func labels(n int) []string {
	vs := make([]string, n)
	for i := range vs {
		vs[i] = fmt.Sprintf("v%d", i+1)
	}
	return vs
}

func randWeight(rng *rand.Rand) float64 {
	return float64(MinWeight + rng.Intn(MaxWeight-MinWeight+1))
}

func pairKey(u, v string) [2]string {
	if u > v {
		u, v = v, u
	}
	return [2]string{u, v}
}
