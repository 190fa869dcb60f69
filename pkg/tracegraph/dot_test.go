package tracegraph

import (
	"strings"
	"testing"
)

func TestToDOT(t *testing.T) {
	g := New()
	x := ItemNode{Item: mustItem(t, "S = a (*) N b")}
	n := NonterminalNode{Name: "N"}
	g.AddEdge(n, x, SymbolSets{Prefix: syms(t, "a"), Cursor: cursorSym("N"), Suffix: syms(t, "b")})

	dot := g.ToDOT()

	if !strings.HasPrefix(dot, "digraph TraceGraph {") {
		t.Errorf("missing digraph header:\n%s", dot)
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Errorf("missing closing brace:\n%s", dot)
	}

	// Item vertices render as rounded boxes, nonterminals as ellipses.
	wantFragments := []string{
		`label="N", shape=ellipse`,
		`label="S = a (*) N b", shape=box, style="filled,rounded"`,
		`[label="([a], N, [b])"]`,
		"rankdir=LR;",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(dot, frag) {
			t.Errorf("DOT output missing %q:\n%s", frag, dot)
		}
	}

	// One edge statement.
	if got := strings.Count(dot, "->"); got != 1 {
		t.Errorf("edge statements = %d, want 1", got)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	build := func() *Graph {
		g := New()
		x := ItemNode{Item: mustItem(t, "S = a (*) N b")}
		y := ItemNode{Item: mustItem(t, "N = (*) y")}
		n := NonterminalNode{Name: "N"}
		g.AddEdge(n, x, SymbolSets{Prefix: syms(t, "a"), Cursor: cursorSym("N"), Suffix: syms(t, "b")})
		g.AddEdge(y, n, SymbolSets{})
		return g
	}

	first := build().ToDOT()
	for i := 0; i < 5; i++ {
		if got := build().ToDOT(); got != first {
			t.Fatalf("ToDOT not deterministic on run %d:\n%s\n---\n%s", i, first, got)
		}
	}
}

func TestToDOTEmptyGraph(t *testing.T) {
	dot := New().ToDOT()
	if !strings.Contains(dot, "digraph TraceGraph {") {
		t.Errorf("empty graph DOT malformed:\n%s", dot)
	}
	if strings.Contains(dot, "->") {
		t.Errorf("empty graph has edges:\n%s", dot)
	}
}
