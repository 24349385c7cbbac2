package graph

import (
	"math"
	"slices"
	"strings"

	"github.com/pathmax/pathmax/pkg/errors"
)

// Edge is an undirected, weighted connection between two distinct vertices.
// Vertex labels are opaque tokens; a vertex exists by appearing in an edge.
type Edge struct {
	U, V   string  // Endpoint labels
	Weight float64 // Non-negative edge weight
}

// Neighbor is one entry of a vertex's adjacency list: the vertex on the
// other end of an edge together with the edge weight.
type Neighbor struct {
	Vertex string
	Weight float64
}

// Graph is an immutable undirected graph with non-negative edge weights.
//
// Adjacency lists are sorted by weight descending (label ascending on equal
// weights), which makes greedy scans deterministic up to explicit
// tie-breaking. Parallel edges between the same pair collapse to the
// maximum weight, since only weight affects path value.
//
// The zero value is not usable - use New or Build to create a Graph.
// A Graph is safe for concurrent readers; it is never mutated after
// construction.
type Graph struct {
	vertices []string              // sorted labels
	adj      map[string][]Neighbor // label -> neighbors, weight descending
	size     int                   // distinct undirected edges
}

// New creates a graph over an explicit vertex set. Every edge must
// reference two distinct vertices from the set, and weights must be
// finite and non-negative. Returns an EMPTY_GRAPH error when the vertex
// set is empty, or a MALFORMED_INPUT error for invalid edges.
func New(vertices []string, edges []Edge) (*Graph, error) {
	if len(vertices) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyGraph, "graph has no vertices")
	}

	known := make(map[string]bool, len(vertices))
	for _, v := range vertices {
		if v == "" {
			return nil, errors.New(errors.ErrCodeMalformedInput, "empty vertex label")
		}
		if known[v] {
			return nil, errors.New(errors.ErrCodeMalformedInput, "duplicate vertex label %q", v)
		}
		known[v] = true
	}

	g := &Graph{
		vertices: slices.Sorted(slices.Values(vertices)),
		adj:      make(map[string][]Neighbor, len(vertices)),
	}

	// weight[u][v] holds the collapsed (maximum) parallel edge weight.
	weight := make(map[string]map[string]float64, len(vertices))
	for i, e := range edges {
		if err := validateEdge(i, e); err != nil {
			return nil, err
		}
		if !known[e.U] {
			return nil, errors.New(errors.ErrCodeMalformedInput, "edge %d references unknown vertex %q", i, e.U)
		}
		if !known[e.V] {
			return nil, errors.New(errors.ErrCodeMalformedInput, "edge %d references unknown vertex %q", i, e.V)
		}
		if w, ok := weight[e.U][e.V]; !ok || e.Weight > w {
			setWeight(weight, e.U, e.V, e.Weight)
			setWeight(weight, e.V, e.U, e.Weight)
		}
	}

	for u, row := range weight {
		for v, w := range row {
			g.adj[u] = append(g.adj[u], Neighbor{Vertex: v, Weight: w})
			if u < v {
				g.size++
			}
		}
	}
	for _, ns := range g.adj {
		sortNeighbors(ns)
	}

	return g, nil
}

// Build creates a graph from an edge list against a declared vertex count.
// The vertex set is the union of labels appearing in edges; its cardinality
// must equal n, otherwise a MALFORMED_INPUT error is returned. This is the
// construction contract of the text input format.
func Build(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, errors.New(errors.ErrCodeMalformedInput, "negative vertex count %d", n)
	}
	if n == 0 {
		return nil, errors.New(errors.ErrCodeEmptyGraph, "graph has no vertices")
	}

	seen := make(map[string]bool)
	var vertices []string
	for _, e := range edges {
		for _, label := range []string{e.U, e.V} {
			if !seen[label] {
				seen[label] = true
				vertices = append(vertices, label)
			}
		}
	}
	if len(vertices) != n {
		return nil, errors.New(errors.ErrCodeMalformedInput,
			"declared %d vertices but edges name %d", n, len(vertices))
	}

	return New(vertices, edges)
}

// Vertices returns all vertex labels in ascending order.
// The returned slice is a copy and may be modified by the caller.
func (g *Graph) Vertices() []string {
	return slices.Clone(g.vertices)
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.vertices) }

// Size returns the number of distinct undirected edges.
func (g *Graph) Size() int { return g.size }

// Has reports whether the vertex exists in the graph.
func (g *Graph) Has(v string) bool {
	_, ok := slices.BinarySearch(g.vertices, v)
	return ok
}

// Neighbors returns the adjacency list of v, sorted by weight descending
// and label ascending on ties. The returned slice must not be modified.
// Unknown vertices yield nil.
func (g *Graph) Neighbors(v string) []Neighbor {
	return g.adj[v]
}

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v string) int {
	return len(g.adj[v])
}

// Weight returns the weight of the edge {u, v} and whether it exists.
func (g *Graph) Weight(u, v string) (float64, bool) {
	for _, n := range g.adj[u] {
		if n.Vertex == v {
			return n.Weight, true
		}
	}
	return 0, false
}

func validateEdge(i int, e Edge) error {
	if e.U == "" || e.V == "" {
		return errors.New(errors.ErrCodeMalformedInput, "edge %d has an empty vertex label", i)
	}
	if e.U == e.V {
		return errors.New(errors.ErrCodeMalformedInput, "edge %d is a self-loop on %q", i, e.U)
	}
	if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
		return errors.New(errors.ErrCodeMalformedInput, "edge %d has a non-finite weight", i)
	}
	if e.Weight < 0 {
		return errors.New(errors.ErrCodeMalformedInput, "edge %d has negative weight %v", i, e.Weight)
	}
	return nil
}

func setWeight(weight map[string]map[string]float64, u, v string, w float64) {
	if weight[u] == nil {
		weight[u] = make(map[string]float64)
	}
	weight[u][v] = w
}

func sortNeighbors(ns []Neighbor) {
	slices.SortFunc(ns, func(a, b Neighbor) int {
		if a.Weight != b.Weight {
			if a.Weight > b.Weight {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Vertex, b.Vertex)
	})
}
