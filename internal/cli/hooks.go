package cli

import (
	"github.com/charmbracelet/log"

	"github.com/parsetools/lrtrace/pkg/observability"
)

// logGraphHooks mirrors graph construction events into debug logs.
type logGraphHooks struct {
	logger *log.Logger
}

func (h logGraphHooks) OnNodeAdded(node string, id int) {
	h.logger.Debug("vertex added", "id", id, "node", node)
}

func (h logGraphHooks) OnEdgeAdded(from, to, label string) {
	h.logger.Debug("edge added", "from", from, "to", to, "label", label)
}

func (h logGraphHooks) OnDuplicateEdge(from, to, label string) {
	h.logger.Debug("duplicate edge skipped", "from", from, "to", to, "label", label)
}

// logSearchHooks mirrors path search events into debug logs.
type logSearchHooks struct {
	logger *log.Logger
}

func (h logSearchHooks) OnSearchStart(target string) {
	h.logger.Debug("search started", "target", target)
}

func (h logSearchHooks) OnCycleSkipped(node string) {
	h.logger.Debug("cycle skipped", "node", node)
}

func (h logSearchHooks) OnTraceFound(trace string, cursor int) {
	h.logger.Debug("trace found", "trace", trace, "cursor", cursor)
}

func (h logSearchHooks) OnExhausted() {
	h.logger.Debug("enumeration exhausted")
}

// installDebugHooks routes library instrumentation into the CLI logger.
// It is a no-op unless debug logging is enabled, so the hot path stays free
// of logging overhead at the default level.
func (c *CLI) installDebugHooks() {
	if c.Logger.GetLevel() > log.DebugLevel {
		return
	}
	observability.SetGraphHooks(logGraphHooks{logger: c.Logger})
	observability.SetSearchHooks(logSearchHooks{logger: c.Logger})
}
