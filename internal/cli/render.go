package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/parsetools/lrtrace/pkg/errors"
	"github.com/parsetools/lrtrace/pkg/scenario"
)

// Render output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// renderCommand creates the render command for exporting trace graphs.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "render <scenario.toml>",
		Short: "Render a scenario's trace graph as DOT or SVG",
		Long: `Render loads a scenario file and writes its trace graph in Graphviz DOT
format or as an SVG image. Item vertices are drawn as rounded boxes and
nonterminal vertices as ellipses; edges carry their symbol set labels.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.installDebugHooks()
			return c.runRender(args[0], output, format)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <scenario>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", FormatDOT, "output format: dot or svg")

	return cmd
}

func (c *CLI) runRender(path, output, format string) error {
	format = strings.ToLower(format)
	if err := apperrors.ValidateRenderFormat(format); err != nil {
		return err
	}

	s, err := scenario.Load(path)
	if err != nil {
		return err
	}
	c.Logger.Debug("scenario loaded",
		"name", s.Name,
		"vertices", s.Graph.NodeCount(),
		"edges", s.Graph.EdgeCount())

	var data []byte
	switch format {
	case FormatDOT:
		data = []byte(s.Graph.ToDOT())
	case FormatSVG:
		data, err = s.Graph.RenderSVG()
		if err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInternal, err, "rendering %s", s.Name)
		}
	}

	if output == "" {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		output = base + "." + format
	}
	if err := apperrors.ValidateOutputPath(output); err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "writing %s", output)
	}

	printSuccess("rendered %s", StyleHighlight.Render(s.Name))
	printFile(output)
	return nil
}
