// Package grammar provides the value types shared by the conflict-diagnosis
// pipeline: grammar symbols, productions, and LR items.
//
// All types are plain comparable-by-value structs. Two items built
// independently from the same production and dot position are equal, which is
// what allows the trace graph to key nodes structurally instead of by
// pointer identity.
//
// # Item Syntax
//
// Items have a canonical textual form with the dot written as "(*)":
//
//	Stmt = if Expr then Stmt (*) else Stmt
//
// [ParseItem] accepts this form and [Item.String] produces it, so items
// round-trip through scenario files and log output. Symbols whose name starts
// with an upper-case letter are nonterminals; everything else (including
// quoted tokens such as "+") is a terminal.
package grammar

import "strings"

// SymbolKind distinguishes terminals from nonterminal references.
type SymbolKind int

const (
	// SymbolTerminal is a token consumed directly from the input.
	SymbolTerminal SymbolKind = iota
	// SymbolNonterminal is a reference to a production head.
	SymbolNonterminal
)

// Symbol is a single grammar symbol, compared by value.
// The zero value is not usable - construct symbols with Terminal or
// Nonterminal, or parse them with ParseSymbol.
type Symbol struct {
	Kind SymbolKind
	Name string
}

// Terminal returns a terminal symbol with the given token name.
func Terminal(name string) Symbol {
	return Symbol{Kind: SymbolTerminal, Name: name}
}

// Nonterminal returns a nonterminal reference symbol.
func Nonterminal(name string) Symbol {
	return Symbol{Kind: SymbolNonterminal, Name: name}
}

// IsTerminal reports whether the symbol is a terminal token.
func (s Symbol) IsTerminal() bool { return s.Kind == SymbolTerminal }

// IsNonterminal reports whether the symbol references a nonterminal.
func (s Symbol) IsNonterminal() bool { return s.Kind == SymbolNonterminal }

// String returns the symbol's name.
func (s Symbol) String() string { return s.Name }

// JoinSymbols renders a symbol sequence as a space-separated string.
// Returns the empty string for an empty or nil sequence.
func JoinSymbols(symbols []Symbol) string {
	var b strings.Builder
	for i, s := range symbols {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.Name)
	}
	return b.String()
}

// Production is a grammar production: a nonterminal head and the symbol
// sequence it expands to. An empty Rhs represents an epsilon production.
type Production struct {
	Lhs string   // Nonterminal name
	Rhs []Symbol // Expansion, in order
}

// String renders the production in canonical form, e.g. "Expr = Expr + Term".
func (p Production) String() string {
	var b strings.Builder
	b.WriteString(p.Lhs)
	b.WriteString(" =")
	for _, s := range p.Rhs {
		b.WriteByte(' ')
		b.WriteString(s.Name)
	}
	return b.String()
}
