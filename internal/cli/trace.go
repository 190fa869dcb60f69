package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parsetools/lrtrace/pkg/scenario"
)

// traceCommand creates the trace command for enumerating conflict examples.
func (c *CLI) traceCommand() *cobra.Command {
	var maxTraces int

	cmd := &cobra.Command{
		Use:   "trace <scenario.toml>",
		Short: "Enumerate example inputs leading to a conflict item",
		Long: `Trace loads a scenario file describing a trace graph and enumerates the
backward paths from its target item. Each path is printed as a flat symbol
sequence with a (*) marker at the conflict position.

Traces are produced lazily in a deterministic order; use --max to bound how
many are printed for graphs with a large number of paths.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.installDebugHooks()
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runTrace(ctx, args[0], maxTraces)
		},
	}

	cmd.Flags().IntVarP(&maxTraces, "max", "n", 10, "maximum number of traces to print (0 = unlimited)")

	return cmd
}

func (c *CLI) runTrace(ctx context.Context, path string, maxTraces int) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	s, err := scenario.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("scenario loaded",
		"name", s.Name,
		"vertices", s.Graph.NodeCount(),
		"edges", s.Graph.EdgeCount())

	e, err := s.Graph.EnumeratePathsFrom(s.Target)
	if err != nil {
		return err
	}

	printInfo("scenario %s", StyleHighlight.Render(s.Name))
	printKeyValue("target", s.Target.String())
	printStats(s.Graph.NodeCount(), s.Graph.EdgeCount())
	printNewline()

	count := 0
	for t, ok := e.Next(); ok; t, ok = e.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		count++
		printTrace(count, t)
		if maxTraces > 0 && count >= maxTraces {
			printDetail("stopped after %d traces, rerun with --max 0 for all", count)
			break
		}
	}

	if count == 0 {
		printWarning("no traces: %s has no incoming paths", s.Target)
		return nil
	}

	prog.done(fmt.Sprintf("Enumerated %d traces", count))
	return nil
}
