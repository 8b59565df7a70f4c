package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tiledock/pkg/dock"
	errs "github.com/matzehuels/tiledock/pkg/errors"
	"github.com/matzehuels/tiledock/pkg/geom"
	"github.com/matzehuels/tiledock/pkg/workspace"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	size   sizeFlags
	svg    bool   // render SVG with Graphviz instead of printing DOT
	output string // output file; stdout when empty
}

// graphCommand creates the graph command, which exports the split tree built
// by a sequence of placements.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph <direction>...",
		Short: "Export the split tree of a workspace as Graphviz DOT or SVG",
		Example: `  tiledock graph left right below | dot -Tpng > layout.png
  tiledock graph left right below --svg -o layout.svg`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeDirections,
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs, err := parseDirections(args)
			if err != nil {
				return err
			}
			container, err := c.container(cmd, opts.size)
			if err != nil {
				return err
			}
			if opts.output != "" {
				if err := errs.ValidatePath(opts.output); err != nil {
					return err
				}
			}
			return runGraph(cmd.Context(), container, dirs, opts)
		},
	}

	opts.size.register(cmd)
	cmd.Flags().BoolVar(&opts.svg, "svg", false, "render SVG instead of DOT")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runGraph(ctx context.Context, container geom.Rect, dirs []dock.Direction, opts graphOpts) error {
	ws, _, err := buildWorkspace(ctx, container, dirs)
	if err != nil {
		return err
	}

	data := []byte(ws.ToDOT())
	if opts.svg {
		if data, err = renderSVG(ctx, data); err != nil {
			return err
		}
	}

	if opts.output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printFile(opts.output)
	return nil
}

func renderSVG(ctx context.Context, dot []byte) ([]byte, error) {
	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinnerWithContext(ctx, os.Stderr, "Rendering SVG...")
	spinner.Start()

	svg, err := workspace.RenderSVG(ctx, string(dot))
	spinner.Stop()
	if err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}
	prog.done("Rendered SVG")
	return svg, nil
}
