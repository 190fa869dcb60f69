// Package tracegraph builds and searches the trace graphs used to diagnose
// LR parser conflicts.
//
// # Overview
//
// When automaton construction finds a shift/reduce or reduce/reduce conflict,
// a bare state number is useless to the grammar author. The diagnosis
// pipeline instead wants to answer: "by what concrete input can the parser
// arrive in a state containing this item?" A trace graph summarizes the
// backward reachability of that item, and path enumeration turns each simple
// backward path into an example: a flat symbol sequence plus a cursor offset
// marking the conflicting dot.
//
// Vertices take one of two forms ([ItemNode], [NonterminalNode]): LR(0)
// items serve only as the start and end points of a trace, and every
// intermediate vertex is a nonterminal derivation step. Edges carry
// [SymbolSets] labels - the (prefix, cursor, suffix) symbol tuple that the
// transition contributes to an example.
//
// # Basic Usage
//
// Create a graph with [New], populate it with [Graph.AddEdge] (vertices are
// created and deduplicated on the fly), then pull traces one at a time:
//
//	g := tracegraph.New()
//	g.AddEdge(from, to, label) // repeated during backtrace analysis
//
//	e, err := g.EnumeratePathsFrom(conflictItem)
//	if err != nil {
//		return err // item was never inserted
//	}
//	for t, ok := e.Next(); ok; t, ok = e.Next() {
//		fmt.Println(t)
//	}
//
// Enumeration is lazy: each [PathEnumerator.Advance] resumes the suspended
// depth-first search rather than materializing all paths up front. Paths are
// simple - a nonterminal vertex is never visited twice within one path - so
// enumeration terminates even when the graph contains cycles.
//
// # Concurrency
//
// A Graph is mutated by a single owner during construction, then frozen.
// Enumerators never write to the graph, so any number of them may run
// concurrently over the same frozen graph; interleaving construction with
// enumeration is not supported.
//
// # Observability
//
// Construction and search emit through the hooks in
// [github.com/parsetools/lrtrace/pkg/observability]. The default hooks are
// no-ops; they carry no functional contract.
package tracegraph
