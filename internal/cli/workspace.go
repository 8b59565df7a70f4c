package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tiledock/pkg/dock"
	errs "github.com/matzehuels/tiledock/pkg/errors"
	"github.com/matzehuels/tiledock/pkg/geom"
	"github.com/matzehuels/tiledock/pkg/workspace"
)

// sizeFlags holds the --width/--height flags shared by commands that build a
// workspace.
type sizeFlags struct {
	width  float64
	height float64
}

func (s *sizeFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&s.width, "width", defaultWidth, "container width in pixels (default from config)")
	cmd.Flags().Float64Var(&s.height, "height", defaultHeight, "container height in pixels (default from config)")
}

// container resolves the flags against the config: flags win when given.
func (c *CLI) container(cmd *cobra.Command, s sizeFlags) (geom.Rect, error) {
	cfg := c.Config.Container()
	w, h := cfg.Width(), cfg.Height()
	if cmd.Flags().Changed("width") {
		w = s.width
	}
	if cmd.Flags().Changed("height") {
		h = s.height
	}
	if err := errs.ValidateDimension("width", w); err != nil {
		return geom.Rect{}, err
	}
	if err := errs.ValidateDimension("height", h); err != nil {
		return geom.Rect{}, err
	}
	return geom.XYWH(0, 0, w, h), nil
}

// parseDirections parses each argument with dock.ParseDirection.
func parseDirections(args []string) ([]dock.Direction, error) {
	dirs := make([]dock.Direction, 0, len(args))
	for _, a := range args {
		d, err := dock.ParseDirection(a)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, d)
	}
	return dirs, nil
}

// completeDirections offers the direction names for shell completion.
func completeDirections(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(dock.Directions))
	for i, d := range dock.Directions {
		names[i] = d.String()
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

// buildWorkspace adds one panel per direction to a fresh workspace, in order.
func buildWorkspace(ctx context.Context, container geom.Rect, dirs []dock.Direction) (*workspace.Workspace, []dock.Placement, error) {
	ws := workspace.New(workspace.WithContainer(container))
	mgr := dock.NewManager(ws, ws, dock.WithLogger(loggerFromContext(ctx)))

	placements := make([]dock.Placement, 0, len(dirs))
	for i, d := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		p, err := mgr.AddPanel(ctx, d)
		if err != nil {
			return nil, nil, fmt.Errorf("panel %d: %w", i+1, err)
		}
		placements = append(placements, p)
	}
	return ws, placements, nil
}
