// Package scenario loads trace graph fixtures from TOML files.
//
// A scenario file describes a trace graph as data: a name, the target item
// the analysis starts from, and the labeled edges. Vertex references are
// plain strings; a reference containing "=" is parsed as an LR item, anything
// else is a nonterminal name. Example:
//
//	name = "shift-reduce"
//	target = "S = a (*) N b"
//
//	[[edges]]
//	from = "N"
//	to = "S = a (*) N b"
//	prefix = ["a"]
//	cursor = "N"
//	suffix = ["b"]
//
//	[[edges]]
//	from = "N = (*) y"
//	to = "N"
//
// Scenarios exist so the CLI can exercise the enumerator without a full
// grammar analysis front end; they are also convenient as regression
// fixtures.
package scenario

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/parsetools/lrtrace/pkg/errors"
	"github.com/parsetools/lrtrace/pkg/grammar"
	"github.com/parsetools/lrtrace/pkg/tracegraph"
)

// Scenario is a loaded fixture: a named trace graph plus the target item for
// enumeration.
type Scenario struct {
	Name   string
	Target grammar.Item
	Graph  *tracegraph.Graph
}

type fileSpec struct {
	Name   string     `toml:"name"`
	Target string     `toml:"target"`
	Edges  []edgeSpec `toml:"edges"`
}

type edgeSpec struct {
	From   string   `toml:"from"`
	To     string   `toml:"to"`
	Prefix []string `toml:"prefix"`
	Cursor string   `toml:"cursor"`
	Suffix []string `toml:"suffix"`
}

// Load reads and parses a scenario file from disk.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scenario file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "reading %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "parsing %s", path)
	}
	return s, nil
}

// Parse decodes a scenario from TOML and builds its trace graph.
func Parse(data []byte) (*Scenario, error) {
	var spec fileSpec
	if err := toml.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "decoding TOML")
	}

	if err := errors.ValidateScenarioName(spec.Name); err != nil {
		return nil, err
	}
	if spec.Target == "" {
		return nil, errors.New(errors.ErrCodeInvalidScenario, "scenario %q has no target item", spec.Name)
	}
	target, err := grammar.ParseItem(spec.Target)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidItem, err, "target of scenario %q", spec.Name)
	}
	if len(spec.Edges) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidScenario, "scenario %q has no edges", spec.Name)
	}

	g := tracegraph.New()
	for i, e := range spec.Edges {
		from, err := parseNodeRef(e.From)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "edge %d: from", i)
		}
		to, err := parseNodeRef(e.To)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "edge %d: to", i)
		}
		label, err := parseLabel(e)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "edge %d: label", i)
		}
		g.AddEdge(from, to, label)
	}

	// The target must appear as a vertex, so enumeration can start.
	if !g.ContainsItem(target) {
		return nil, errors.New(errors.ErrCodeItemNotFound,
			"target of scenario %q does not appear in any edge", spec.Name)
	}

	return &Scenario{Name: spec.Name, Target: target, Graph: g}, nil
}

// parseNodeRef resolves a vertex reference: a string containing "=" is an LR
// item in canonical syntax, anything else is a nonterminal name.
func parseNodeRef(ref string) (tracegraph.Node, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.New(errors.ErrCodeInvalidScenario, "empty vertex reference")
	}
	if strings.Contains(ref, "=") {
		item, err := grammar.ParseItem(ref)
		if err != nil {
			return nil, err
		}
		return tracegraph.ItemNode{Item: item}, nil
	}
	if err := errors.ValidateNonterminalName(ref); err != nil {
		return nil, err
	}
	return tracegraph.NonterminalNode{Name: ref}, nil
}

// parseLabel builds the edge's symbol sets. The cursor entry, when present,
// must name a nonterminal.
func parseLabel(e edgeSpec) (tracegraph.SymbolSets, error) {
	var label tracegraph.SymbolSets

	var err error
	if label.Prefix, err = parseSymbolList(e.Prefix); err != nil {
		return tracegraph.SymbolSets{}, err
	}
	if label.Suffix, err = parseSymbolList(e.Suffix); err != nil {
		return tracegraph.SymbolSets{}, err
	}

	if e.Cursor != "" {
		if err := errors.ValidateNonterminalName(e.Cursor); err != nil {
			return tracegraph.SymbolSets{}, err
		}
		c := grammar.Nonterminal(e.Cursor)
		label.Cursor = &c
	}
	return label, nil
}

func parseSymbolList(tokens []string) ([]grammar.Symbol, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]grammar.Symbol, len(tokens))
	for i, tok := range tokens {
		s, err := grammar.ParseSymbol(tok)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSymbol, err, "symbol %q", tok)
		}
		out[i] = s
	}
	return out, nil
}
