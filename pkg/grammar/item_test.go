package grammar

import (
	"errors"
	"testing"
)

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Symbol
		wantErr bool
	}{
		{name: "Terminal", input: "if", want: Terminal("if")},
		{name: "Nonterminal", input: "Expr", want: Nonterminal("Expr")},
		{name: "QuotedTerminal", input: `"+"`, want: Terminal("+")},
		{name: "QuotedUppercase", input: `"X"`, want: Terminal("X")},
		{name: "Punctuation", input: "+", want: Terminal("+")},
		{name: "Empty", input: "", wantErr: true},
		{name: "EmptyQuotes", input: `""`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSymbol(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSymbol: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseSymbol(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseItem(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantDot int
		wantLhs string
		wantRhs int
		wantErr bool
	}{
		{name: "DotInMiddle", input: "Stmt = if Expr then Stmt (*) else Stmt", wantDot: 4, wantLhs: "Stmt", wantRhs: 6},
		{name: "DotAtStart", input: "Expr = (*) Expr + Term", wantDot: 0, wantLhs: "Expr", wantRhs: 3},
		{name: "DotAtEnd", input: "Expr = Expr + Term (*)", wantDot: 3, wantLhs: "Expr", wantRhs: 3},
		{name: "Epsilon", input: "Opt = (*)", wantDot: 0, wantLhs: "Opt", wantRhs: 0},
		{name: "MissingEquals", input: "Expr (*) + Term", wantErr: true},
		{name: "MissingDot", input: "Expr = Expr + Term", wantErr: true},
		{name: "TwoDots", input: "Expr = (*) Expr (*)", wantErr: true},
		{name: "TerminalLhs", input: "x = (*) y", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseItem(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrInvalidItem) {
					t.Errorf("error = %v, want ErrInvalidItem", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseItem: %v", err)
			}
			if got.Dot != tt.wantDot {
				t.Errorf("Dot = %d, want %d", got.Dot, tt.wantDot)
			}
			if got.Production.Lhs != tt.wantLhs {
				t.Errorf("Lhs = %q, want %q", got.Production.Lhs, tt.wantLhs)
			}
			if len(got.Production.Rhs) != tt.wantRhs {
				t.Errorf("len(Rhs) = %d, want %d", len(got.Production.Rhs), tt.wantRhs)
			}
		})
	}
}

func TestItemStringRoundTrip(t *testing.T) {
	inputs := []string{
		"Stmt = if Expr then Stmt (*) else Stmt",
		"Expr = (*) Expr + Term",
		"Expr = Expr + Term (*)",
		"Opt = (*)",
	}

	for _, in := range inputs {
		item, err := ParseItem(in)
		if err != nil {
			t.Fatalf("ParseItem(%q): %v", in, err)
		}
		if got := item.String(); got != in {
			t.Errorf("round trip: got %q, want %q", got, in)
		}
	}
}

func TestItemStructuralEquality(t *testing.T) {
	a, err := ParseItem("Expr = Expr (*) + Term")
	if err != nil {
		t.Fatal(err)
	}
	b := Item{
		Production: Production{
			Lhs: "Expr",
			Rhs: []Symbol{Nonterminal("Expr"), Terminal("+"), Nonterminal("Term")},
		},
		Dot: 1,
	}
	if a.String() != b.String() {
		t.Errorf("independently built items differ: %q vs %q", a, b)
	}
}

func TestItemAccessors(t *testing.T) {
	item, err := ParseItem("Expr = Expr (*) + Term")
	if err != nil {
		t.Fatal(err)
	}
	if item.AtStart() || item.AtEnd() {
		t.Errorf("AtStart = %v, AtEnd = %v, want false, false", item.AtStart(), item.AtEnd())
	}
	sym, ok := item.SymbolAfterDot()
	if !ok || sym != Terminal("+") {
		t.Errorf("SymbolAfterDot = %v, %v, want +, true", sym, ok)
	}

	end, _ := ParseItem("Expr = Expr + Term (*)")
	if !end.AtEnd() {
		t.Error("AtEnd = false, want true")
	}
	if _, ok := end.SymbolAfterDot(); ok {
		t.Error("SymbolAfterDot ok = true at end of production")
	}
}

func TestLR1ItemLR0(t *testing.T) {
	core, err := ParseItem("Expr = Expr (*) + Term")
	if err != nil {
		t.Fatal(err)
	}
	lr1 := LR1Item{Core: core, Lookahead: []Symbol{Terminal("+"), Terminal(")")}}

	if got := lr1.LR0(); got.String() != core.String() {
		t.Errorf("LR0() = %v, want %v", got, core)
	}
	if got, want := lr1.String(), "Expr = Expr (*) + Term [+ )]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
