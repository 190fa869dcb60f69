package tracegraph

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT representation of the trace graph.
//
// The DOT format can be rendered with Graphviz tools (dot, neato, etc.) or
// programmatically with RenderSVG. The output is a complete DOT digraph with
// styling suitable for documentation and debugging.
//
// Node representation:
//   - Item vertices: rounded boxes labeled with the item's canonical form
//   - Nonterminal vertices: ellipses labeled with the nonterminal name
//
// Edges are labeled with their (prefix, cursor, suffix) symbol sets. Output
// order follows vertex and edge insertion order, so the rendering is
// deterministic for a fixed construction sequence.
func (g *Graph) ToDOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph TraceGraph {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, style=filled, fillcolor=white];\n")
	buf.WriteString("  edge [fontname=\"SF Mono, Menlo, monospace\", fontsize=10];\n\n")

	for id, n := range g.nodes {
		switch n.(type) {
		case ItemNode:
			fmt.Fprintf(&buf, "  n%d [label=%q, shape=box, style=\"filled,rounded\"];\n", id, n.String())
		case NonterminalNode:
			fmt.Fprintf(&buf, "  n%d [label=%q, shape=ellipse];\n", id, n.String())
		}
	}

	if len(g.edges) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range g.edges {
		fmt.Fprintf(&buf, "  n%d -> n%d [label=%q];\n", e.from, e.to, e.label.String())
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders the trace graph as an SVG image.
//
// RenderSVG generates a DOT representation via ToDOT, then uses Graphviz to
// render it to SVG format. The returned bytes are a complete SVG document
// suitable for embedding in HTML or saving to a file.
//
// All errors are wrapped with context using fmt.Errorf with %w, suitable for
// unwrapping with errors.Unwrap or errors.Is.
func (g *Graph) RenderSVG() ([]byte, error) {
	dot := g.ToDOT()

	gv, err := graphviz.New(context.Background())
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(context.Background(), parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
