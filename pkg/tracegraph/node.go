package tracegraph

import (
	"slices"
	"strings"

	"github.com/parsetools/lrtrace/pkg/grammar"
)

// Node is a vertex in the trace graph. It has exactly two implementations:
//
//   - [ItemNode]: an LR(0) item. Item nodes are only ever the start or end
//     points of a trace; a complete trace stretches from some start item to
//     the end item, and every intermediate node is a nonterminal.
//   - [NonterminalNode]: an intermediate derivation-step marker, identified
//     by nonterminal name alone.
//
// Nodes are compared structurally: adding two independently constructed but
// equal values resolves to the same vertex.
type Node interface {
	// String renders the node for logs and DOT output.
	String() string

	// key returns the structural identity used to deduplicate vertices.
	// Unexported so the variant set stays closed.
	key() string
}

// ItemNode wraps an LR(0) item as a trace endpoint.
type ItemNode struct {
	Item grammar.Item
}

func (n ItemNode) String() string { return n.Item.String() }

func (n ItemNode) key() string { return "item\x00" + n.Item.String() }

// NonterminalNode marks an intermediate derivation step for a nonterminal.
// For a shift trace these stand for items with the cursor at the beginning
// ("X = (*) ..."); for a reduce trace, items that can reduce without
// shifting further terminals.
type NonterminalNode struct {
	Name string
}

func (n NonterminalNode) String() string { return n.Name }

func (n NonterminalNode) key() string { return "nt\x00" + n.Name }

// SymbolSets labels a trace-graph edge. An edge A -> B labeled
// (Prefix, Cursor, Suffix) states that a transition from a state containing
// A to a state containing B is possible by pushing the Prefix symbols, with
// B accounting for the single Cursor symbol, and the Suffix symbols pushed
// after B is popped.
type SymbolSets struct {
	Prefix []grammar.Symbol
	Cursor *grammar.Symbol // nil when the edge carries no cursor symbol
	Suffix []grammar.Symbol
}

// Equal reports whether two labels carry identical symbol sets.
func (s SymbolSets) Equal(o SymbolSets) bool {
	if !slices.Equal(s.Prefix, o.Prefix) || !slices.Equal(s.Suffix, o.Suffix) {
		return false
	}
	if (s.Cursor == nil) != (o.Cursor == nil) {
		return false
	}
	return s.Cursor == nil || *s.Cursor == *o.Cursor
}

// String renders the label as a (prefix, cursor, suffix) tuple,
// e.g. "([if Expr then], Stmt, [])". A missing cursor renders as "_".
func (s SymbolSets) String() string {
	var b strings.Builder
	b.WriteString("([")
	b.WriteString(grammar.JoinSymbols(s.Prefix))
	b.WriteString("], ")
	if s.Cursor != nil {
		b.WriteString(s.Cursor.Name)
	} else {
		b.WriteString("_")
	}
	b.WriteString(", [")
	b.WriteString(grammar.JoinSymbols(s.Suffix))
	b.WriteString("])")
	return b.String()
}
