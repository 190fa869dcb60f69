// Package observability provides hooks for instrumenting trace-graph
// construction and path search.
//
// The core library performs no logging of its own; instead it emits events
// through the hooks registered here. This keeps pkg/tracegraph free of
// logging-framework dependencies while letting a front end (the CLI, a test,
// a parser generator embedding the library) observe graph growth and search
// progress when it wants to.
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces per event category
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Register hooks before building graphs:
//
//	observability.SetSearchHooks(&myHooks{})
//	// ... build and enumerate
//
// Hooks carry no functional contract: they must not influence deduplication
// or search outcomes, and implementations should be cheap since graph
// construction can emit many events.
package observability

import "sync"

// GraphHooks receives events from trace-graph construction.
type GraphHooks interface {
	// OnNodeAdded records a newly created vertex and its identifier.
	// Idempotent re-adds of a known value do not fire.
	OnNodeAdded(node string, id int)

	// OnEdgeAdded records a newly inserted labeled edge.
	OnEdgeAdded(from, to, label string)

	// OnDuplicateEdge records an insertion dropped by deduplication.
	OnDuplicateEdge(from, to, label string)
}

// SearchHooks receives events from backward path enumeration.
type SearchHooks interface {
	// OnSearchStart records the target item of a new enumerator.
	OnSearchStart(target string)

	// OnCycleSkipped records a candidate rejected by the on-path check.
	OnCycleSkipped(node string)

	// OnTraceFound records an assembled trace and its cursor offset.
	OnTraceFound(trace string, cursor int)

	// OnExhausted records the end of an enumeration.
	OnExhausted()
}

// NoopGraphHooks is a no-op implementation of GraphHooks.
type NoopGraphHooks struct{}

func (NoopGraphHooks) OnNodeAdded(string, int)                {}
func (NoopGraphHooks) OnEdgeAdded(string, string, string)     {}
func (NoopGraphHooks) OnDuplicateEdge(string, string, string) {}

// NoopSearchHooks is a no-op implementation of SearchHooks.
type NoopSearchHooks struct{}

func (NoopSearchHooks) OnSearchStart(string)     {}
func (NoopSearchHooks) OnCycleSkipped(string)    {}
func (NoopSearchHooks) OnTraceFound(string, int) {}
func (NoopSearchHooks) OnExhausted()             {}

var (
	graphHooks  GraphHooks  = NoopGraphHooks{}
	searchHooks SearchHooks = NoopSearchHooks{}
	hooksMu     sync.RWMutex
)

// SetGraphHooks registers custom graph hooks.
// This should be called once at startup before any graph is built.
func SetGraphHooks(h GraphHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		graphHooks = h
	}
}

// SetSearchHooks registers custom search hooks.
// This should be called once at startup before any enumeration begins.
func SetSearchHooks(h SearchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		searchHooks = h
	}
}

// Graph returns the registered graph hooks.
func Graph() GraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return graphHooks
}

// Search returns the registered search hooks.
func Search() SearchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return searchHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	graphHooks = NoopGraphHooks{}
	searchHooks = NoopSearchHooks{}
}
