package tracegraph

import (
	"slices"

	"github.com/parsetools/lrtrace/pkg/grammar"
	"github.com/parsetools/lrtrace/pkg/observability"
)

// Trace is one assembled diagnosis example: a flat symbol sequence and the
// offset of the conflicting dot within it (0 <= Cursor <= len(Symbols)).
type Trace struct {
	Symbols []grammar.Symbol
	Cursor  int
}

// String renders the trace with the dot marker inserted at the cursor,
// e.g. "if Expr then (*) Stmt else Stmt".
func (t Trace) String() string {
	before := grammar.JoinSymbols(t.Symbols[:t.Cursor])
	after := grammar.JoinSymbols(t.Symbols[t.Cursor:])
	switch {
	case before == "" && after == "":
		return "(*)"
	case before == "":
		return "(*) " + after
	case after == "":
		return before + " (*)"
	default:
		return before + " (*) " + after
	}
}

// frame is one level of the backward search: a vertex, the label of the edge
// that led to it from the frame below, and a cursor over the vertex's
// not-yet-visited incoming edges.
type frame struct {
	node  NodeID
	label SymbolSets
	edges []int // incoming edge indices of node, in insertion order
	next  int   // cursor into edges
}

// PathEnumerator walks a frozen trace graph backward from a target item,
// lazily producing every simple path that ends at another item vertex. Each
// step of the walk reveals one assembled [Trace].
//
// The search is a resumable depth-first traversal over incoming edges, kept
// as an explicit frame stack: the bottom frame is the target item and the top
// frame is the current frontier. Nonterminal vertices already on the stack
// are skipped, so paths never revisit a derivation step and the enumeration
// is finite. The enumerator never mutates the graph; a fresh enumerator must
// be constructed to re-enumerate.
//
// Usage is read-then-advance:
//
//	e, err := g.EnumeratePathsFrom(item)
//	...
//	for symbols, cursor, ok := e.SymbolsAndCursor(); ok; symbols, cursor, ok = e.SymbolsAndCursor() {
//		use(symbols, cursor)
//		e.Advance()
//	}
//
// or equivalently via [PathEnumerator.Next].
type PathEnumerator struct {
	graph *Graph
	stack []frame

	// Trace assembled for the path currently held on the stack.
	symbols []grammar.Symbol
	cursor  int
}

// newPathEnumerator starts a search at the given vertex and advances to the
// first trace, if any.
func newPathEnumerator(g *Graph, target NodeID) *PathEnumerator {
	e := &PathEnumerator{graph: g}
	observability.Search().OnSearchStart(g.nodes[target].String())
	e.push(target, SymbolSets{})
	e.findNextTrace()
	return e
}

// Advance moves to the next trace. It returns false when the enumeration is
// exhausted; once exhausted it stays exhausted.
func (e *PathEnumerator) Advance() bool {
	if len(e.stack) == 0 {
		return false
	}
	// The top of the stack is the item vertex that completed the current
	// trace. Pop it so the search resumes at the next untried incoming edge
	// one level up.
	e.stack = e.stack[:len(e.stack)-1]
	return e.findNextTrace()
}

// SymbolsAndCursor returns the current trace, or ok=false when the
// enumeration is exhausted. The returned slice is reused by the next call to
// Advance; callers that retain it must copy.
func (e *PathEnumerator) SymbolsAndCursor() ([]grammar.Symbol, int, bool) {
	if len(e.stack) == 0 {
		return nil, 0, false
	}
	return e.symbols, e.cursor, true
}

// Next returns a copy of the current trace and advances past it. It returns
// ok=false once the enumeration is exhausted.
func (e *PathEnumerator) Next() (Trace, bool) {
	symbols, cursor, ok := e.SymbolsAndCursor()
	if !ok {
		return Trace{}, false
	}
	t := Trace{Symbols: slices.Clone(symbols), Cursor: cursor}
	e.Advance()
	return t, true
}

// findNextTrace resumes the depth-first search at the top frame's next
// untried incoming edge and runs until it either completes a path at an item
// vertex (assembling the trace and returning true) or empties the stack
// (exhaustion, returning false).
func (e *PathEnumerator) findNextTrace() bool {
	for len(e.stack) > 0 {
		top := &e.stack[len(e.stack)-1]
		if top.next >= len(top.edges) {
			// No incoming edges left at this level: backtrack.
			e.stack = e.stack[:len(e.stack)-1]
			continue
		}
		ed := e.graph.edges[top.edges[top.next]]
		top.next++

		switch e.graph.nodes[ed.from].(type) {
		case ItemNode:
			// Reached an item "X = ...p (*) ...s": the path is complete,
			// with ...p still to be pushed during assembly.
			e.push(ed.from, ed.label)
			e.assemble()
			return true
		case NonterminalNode:
			// Skip the candidate if the vertex is already on the current
			// path; descending into it would build a cyclic derivation.
			if e.onStack(ed.from) {
				observability.Search().OnCycleSkipped(e.graph.nodes[ed.from].String())
				continue
			}
			e.push(ed.from, ed.label)
		}
	}
	observability.Search().OnExhausted()
	return false
}

// push makes the vertex the new top of the stack, recording the label that
// led to it and a fresh cursor over its incoming edges.
func (e *PathEnumerator) push(id NodeID, label SymbolSets) {
	e.stack = append(e.stack, frame{node: id, label: label, edges: e.graph.incoming[id]})
}

// onStack reports whether the vertex is part of the current path.
func (e *PathEnumerator) onStack(id NodeID) bool {
	for i := range e.stack {
		if e.stack[i].node == id {
			return true
		}
	}
	return false
}

// assemble builds the symbol sequence and cursor for the path currently on
// the stack. With the stack ordered bottom (target item) to top (start item):
//
//   - the prefix block is the concatenation of each frame's label prefix,
//     taken top to bottom; the cursor offset is the block's length
//   - the single cursor symbol comes from the label at stack position 1,
//     the first step adjacent to the target (relies on the construction
//     precondition that a nonterminal step separates any two items)
//   - each frame's label suffix follows, taken bottom to top
func (e *PathEnumerator) assemble() {
	e.symbols = e.symbols[:0]
	for i := len(e.stack) - 1; i >= 0; i-- {
		e.symbols = append(e.symbols, e.stack[i].label.Prefix...)
	}
	e.cursor = len(e.symbols)
	if c := e.stack[1].label.Cursor; c != nil {
		e.symbols = append(e.symbols, *c)
	}
	for i := range e.stack {
		e.symbols = append(e.symbols, e.stack[i].label.Suffix...)
	}
	observability.Search().OnTraceFound(Trace{Symbols: e.symbols, Cursor: e.cursor}.String(), e.cursor)
}
