package tracegraph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/parsetools/lrtrace/pkg/grammar"
	"github.com/parsetools/lrtrace/pkg/observability"
)

// ErrUnknownItem is returned by [Graph.EnumeratePathsFrom] when the target
// item was never inserted into the graph. An item that exists but has no
// incoming edges is not an error; it yields an immediately exhausted
// enumerator.
var ErrUnknownItem = errors.New("item not present in trace graph")

// NodeID is a stable identifier for a vertex, assigned densely in insertion
// order. IDs are only meaningful within the graph that issued them.
type NodeID int

// edge is a directed labeled edge between two vertices.
type edge struct {
	from, to NodeID
	label    SymbolSets
}

// Graph is the trace graph: a directed multigraph over [Node] values with
// [SymbolSets]-labeled edges. It summarizes how the parser can arrive in a
// state containing a particular LR item, so that conflict diagnostics can
// show concrete example inputs.
//
// Vertices are deduplicated by value; edges are deduplicated on the full
// (from, to, label) triple, so two edges between the same pair of vertices
// coexist as long as their labels differ.
//
// The graph is built once by a single owner and then treated as frozen.
// It is not safe to interleave mutation with enumeration; any number of
// enumerators may run over a frozen graph, since each keeps its search state
// private and only reads the graph.
//
// Construction precondition: the upstream backtrace analysis never inserts a
// direct item-to-item edge; at least one nonterminal step separates any two
// item vertices. Trace assembly relies on this (see [PathEnumerator]).
type Graph struct {
	nodes    []Node
	index    map[string]NodeID
	edges    []edge
	incoming [][]int // node -> edge indices, insertion order
	outgoing [][]int // node -> edge indices, insertion order
}

// New creates an empty trace graph.
func New() *Graph {
	return &Graph{index: make(map[string]NodeID)}
}

// AddNode returns the identifier for the vertex holding the given value,
// creating the vertex if it is not yet known. Idempotent: equal values map
// to the same identifier regardless of how often or where they were built.
func (g *Graph) AddNode(n Node) NodeID {
	if id, ok := g.index[n.key()]; ok {
		return id
	}
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, n)
	g.index[n.key()] = id
	g.incoming = append(g.incoming, nil)
	g.outgoing = append(g.outgoing, nil)
	observability.Graph().OnNodeAdded(n.String(), int(id))
	return id
}

// AddEdge inserts a directed edge from -> to with the given label, creating
// the endpoint vertices as needed. Inserting an edge identical in source,
// destination, and label to an existing one is a no-op.
func (g *Graph) AddEdge(from, to Node, label SymbolSets) {
	f := g.AddNode(from)
	t := g.AddNode(to)
	for _, ei := range g.outgoing[f] {
		if e := g.edges[ei]; e.to == t && e.label.Equal(label) {
			observability.Graph().OnDuplicateEdge(from.String(), to.String(), label.String())
			return
		}
	}
	ei := len(g.edges)
	g.edges = append(g.edges, edge{from: f, to: t, label: label})
	g.outgoing[f] = append(g.outgoing[f], ei)
	g.incoming[t] = append(g.incoming[t], ei)
	observability.Graph().OnEdgeAdded(from.String(), to.String(), label.String())
}

// NodeCount returns the number of vertices.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct labeled edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Node returns the vertex value for an identifier issued by AddNode.
func (g *Graph) Node(id NodeID) (Node, bool) {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil, false
	}
	return g.nodes[id], true
}

// Nodes returns all vertex values in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// String renders every edge as "from -label-> to", one per line, in
// insertion order. Intended for debug logs and test failure output.
func (g *Graph) String() string {
	var b strings.Builder
	for i, e := range g.edges {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s -%s-> %s", g.nodes[e.from], e.label, g.nodes[e.to])
	}
	return b.String()
}

// ContainsItem reports whether the item has a vertex in the graph.
func (g *Graph) ContainsItem(item grammar.Item) bool {
	_, ok := g.index[ItemNode{Item: item}.key()]
	return ok
}

// EnumeratePathsFrom creates a [PathEnumerator] rooted at the vertex for the
// given item. The item must already be in the graph; if it is not,
// EnumeratePathsFrom returns an error wrapping [ErrUnknownItem].
func (g *Graph) EnumeratePathsFrom(item grammar.Item) (*PathEnumerator, error) {
	id, ok := g.index[ItemNode{Item: item}.key()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItem, item)
	}
	return newPathEnumerator(g, id), nil
}
