package observability

import "testing"

func TestNoopHooksDoNotPanic(t *testing.T) {
	g := NoopGraphHooks{}
	g.OnNodeAdded("Expr = (*) Expr + Term", 0)
	g.OnEdgeAdded("Expr", "Expr = (*) Expr + Term", "([], Expr, [+ Term])")
	g.OnDuplicateEdge("Expr", "Expr = (*) Expr + Term", "([], Expr, [+ Term])")

	s := NoopSearchHooks{}
	s.OnSearchStart("Expr = Expr (*) + Term")
	s.OnCycleSkipped("Expr")
	s.OnTraceFound("Expr (*) + Term", 1)
	s.OnExhausted()
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Graph().(NoopGraphHooks); !ok {
		t.Error("Graph() should return NoopGraphHooks by default")
	}
	if _, ok := Search().(NoopSearchHooks); !ok {
		t.Error("Search() should return NoopSearchHooks by default")
	}

	customGraph := &testGraphHooks{}
	SetGraphHooks(customGraph)
	if Graph() != customGraph {
		t.Error("SetGraphHooks should set custom hooks")
	}

	customSearch := &testSearchHooks{}
	SetSearchHooks(customSearch)
	if Search() != customSearch {
		t.Error("SetSearchHooks should set custom hooks")
	}

	Reset()
	if _, ok := Graph().(NoopGraphHooks); !ok {
		t.Error("Reset() should restore NoopGraphHooks")
	}
	if _, ok := Search().(NoopSearchHooks); !ok {
		t.Error("Reset() should restore NoopSearchHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testSearchHooks{}
	SetSearchHooks(custom)

	SetSearchHooks(nil)

	if Search() != custom {
		t.Error("SetSearchHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testGraphHooks struct{ NoopGraphHooks }
type testSearchHooks struct{ NoopSearchHooks }
