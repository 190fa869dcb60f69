package grammar

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrInvalidItem is returned by ParseItem when the input does not have
	// the form "Lhs = symbols... (*) symbols..." with exactly one dot marker.
	ErrInvalidItem = errors.New("invalid item syntax")

	// ErrInvalidSymbol is returned by ParseSymbol for an empty token.
	ErrInvalidSymbol = errors.New("invalid symbol")
)

// dotMarker is the textual form of the item dot.
const dotMarker = "(*)"

// Item is an LR(0) item: a production plus a dot position in 0..len(Rhs).
// Items are compared structurally via their canonical String form, so two
// items describing the same configuration are interchangeable regardless of
// how they were constructed.
type Item struct {
	Production Production
	Dot        int // Position of the dot within Rhs, 0..len(Rhs)
}

// String renders the item in canonical form with the dot marker,
// e.g. "Expr = Expr (*) + Term".
func (it Item) String() string {
	var b strings.Builder
	b.WriteString(it.Production.Lhs)
	b.WriteString(" =")
	for i, s := range it.Production.Rhs {
		if i == it.Dot {
			b.WriteString(" " + dotMarker)
		}
		b.WriteByte(' ')
		b.WriteString(s.Name)
	}
	if it.Dot >= len(it.Production.Rhs) {
		b.WriteString(" " + dotMarker)
	}
	return b.String()
}

// AtStart reports whether the dot is at the beginning of the production.
func (it Item) AtStart() bool { return it.Dot == 0 }

// AtEnd reports whether the dot is at the end of the production
// (a reduce configuration).
func (it Item) AtEnd() bool { return it.Dot >= len(it.Production.Rhs) }

// SymbolAfterDot returns the symbol immediately after the dot and true,
// or the zero Symbol and false when the dot is at the end.
func (it Item) SymbolAfterDot() (Symbol, bool) {
	if it.AtEnd() {
		return Symbol{}, false
	}
	return it.Production.Rhs[it.Dot], true
}

// LR1Item is a lookahead-bearing item as produced by LR(1) automaton
// construction. The trace graph only works with LR(0) items; callers holding
// LR(1) items convert them with LR0 before inserting nodes.
type LR1Item struct {
	Core      Item
	Lookahead []Symbol // Terminals admissible after a reduce
}

// LR0 returns the item with its lookahead discarded.
func (it LR1Item) LR0() Item { return it.Core }

// String renders the item followed by its lookahead set,
// e.g. "Expr = Expr (*) + Term [+ EOF]".
func (it LR1Item) String() string {
	return fmt.Sprintf("%s [%s]", it.Core, JoinSymbols(it.Lookahead))
}

// ParseSymbol parses a single symbol token. Quoted tokens ("+") are
// terminals; tokens starting with an upper-case letter are nonterminals;
// everything else is a terminal.
func ParseSymbol(tok string) (Symbol, error) {
	if tok == "" {
		return Symbol{}, ErrInvalidSymbol
	}
	if len(tok) >= 2 && strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) {
		inner := tok[1 : len(tok)-1]
		if inner == "" {
			return Symbol{}, ErrInvalidSymbol
		}
		return Terminal(inner), nil
	}
	r, _ := utf8.DecodeRuneInString(tok)
	if unicode.IsUpper(r) {
		return Nonterminal(tok), nil
	}
	return Terminal(tok), nil
}

// ParseItem parses the canonical item form produced by Item.String,
// e.g. "Stmt = if Expr then Stmt (*) else Stmt". The left-hand side must be
// a nonterminal name and exactly one dot marker must appear on the right.
func ParseItem(s string) (Item, error) {
	lhs, rhs, ok := strings.Cut(s, "=")
	if !ok {
		return Item{}, fmt.Errorf("%w: missing %q in %q", ErrInvalidItem, "=", s)
	}

	head := strings.TrimSpace(lhs)
	sym, err := ParseSymbol(head)
	if err != nil || !sym.IsNonterminal() {
		return Item{}, fmt.Errorf("%w: left-hand side %q is not a nonterminal", ErrInvalidItem, head)
	}

	item := Item{Production: Production{Lhs: head}, Dot: -1}
	for _, tok := range strings.Fields(rhs) {
		if tok == dotMarker {
			if item.Dot >= 0 {
				return Item{}, fmt.Errorf("%w: multiple dot markers in %q", ErrInvalidItem, s)
			}
			item.Dot = len(item.Production.Rhs)
			continue
		}
		sym, err := ParseSymbol(tok)
		if err != nil {
			return Item{}, fmt.Errorf("%w: bad symbol %q in %q", ErrInvalidItem, tok, s)
		}
		item.Production.Rhs = append(item.Production.Rhs, sym)
	}
	if item.Dot < 0 {
		return Item{}, fmt.Errorf("%w: missing dot marker in %q", ErrInvalidItem, s)
	}
	return item, nil
}
