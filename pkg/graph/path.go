package graph

import (
	"strings"

	"github.com/pathmax/pathmax/pkg/errors"
)

// Path is an ordered sequence of distinct vertex labels in which every
// consecutive pair is connected by a graph edge. A single-vertex Path is
// valid and has value zero.
type Path []string

// String returns the space-separated vertex labels, matching the output
// text format.
func (p Path) String() string {
	return strings.Join(p, " ")
}

// Value recomputes the total weight of p over g by summing the weights of
// its consecutive edges. It returns a MALFORMED_INPUT error when p is
// empty, repeats a vertex, names an unknown vertex, or uses a pair that is
// not connected in g. Feeding a solver's output path back through Value
// reproduces the reported total exactly.
func (p Path) Value(g *Graph) (float64, error) {
	if len(p) == 0 {
		return 0, errors.New(errors.ErrCodeMalformedInput, "empty path")
	}

	seen := make(map[string]bool, len(p))
	total := 0.0
	for i, v := range p {
		if !g.Has(v) {
			return 0, errors.New(errors.ErrCodeMalformedInput, "path names unknown vertex %q", v)
		}
		if seen[v] {
			return 0, errors.New(errors.ErrCodeMalformedInput, "path repeats vertex %q", v)
		}
		seen[v] = true

		if i == 0 {
			continue
		}
		w, ok := g.Weight(p[i-1], v)
		if !ok {
			return 0, errors.New(errors.ErrCodeMalformedInput, "path uses missing edge %s-%s", p[i-1], v)
		}
		total += w
	}
	return total, nil
}

// Simple reports whether p is a valid simple path over g: no repeated
// vertex and every consecutive pair connected by an existing edge.
func (p Path) Simple(g *Graph) bool {
	_, err := p.Value(g)
	return err == nil
}

// Reversed returns a copy of p with the vertex order reversed. Reversing
// a path does not change its value on an undirected graph.
func (p Path) Reversed() Path {
	out := make(Path, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}
