// Package render converts graphs and solved paths to Graphviz output.
//
// The node-link diagram shows the full graph with the best path
// highlighted, which makes it easy to eyeball why a heuristic result
// diverges from the exact one on a given case.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/pathmax/pathmax/pkg/graph"
)

// ToDOT converts a graph to Graphviz DOT format. When highlight is
// non-empty, its vertices and consecutive edges are emphasized: filled
// nodes and thick colored edges, with the rest of the graph dimmed.
func ToDOT(g *graph.Graph, highlight graph.Path) string {
	onPath := make(map[string]bool, len(highlight))
	onEdge := make(map[[2]string]bool, len(highlight))
	for i, v := range highlight {
		onPath[v] = true
		if i > 0 {
			onEdge[edgeKey(highlight[i-1], v)] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		if onPath[v] {
			fmt.Fprintf(&buf, "  %q [fillcolor=\"#9ad1d4\", penwidth=2];\n", v)
		} else {
			fmt.Fprintf(&buf, "  %q;\n", v)
		}
	}

	buf.WriteString("\n")
	for _, u := range g.Vertices() {
		for _, n := range g.Neighbors(u) {
			if u > n.Vertex {
				continue // emit each undirected edge once
			}
			label := fmt.Sprintf("label=\"%g\"", n.Weight)
			if onEdge[edgeKey(u, n.Vertex)] {
				fmt.Fprintf(&buf, "  %q -- %q [%s, color=\"#d1495b\", penwidth=3];\n", u, n.Vertex, label)
			} else {
				fmt.Fprintf(&buf, "  %q -- %q [%s, color=\"#bbbbbb\"];\n", u, n.Vertex, label)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

func edgeKey(u, v string) [2]string {
	if u > v {
		u, v = v, u
	}
	return [2]string{u, v}
}
