package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tiledock/pkg/dock"
	"github.com/matzehuels/tiledock/pkg/geom"
	"github.com/matzehuels/tiledock/pkg/snapshot"
	"github.com/matzehuels/tiledock/pkg/workspace"
)

// addOpts holds the command-line flags for the add command.
type addOpts struct {
	size     sizeFlags
	snapshot string // print the final geometry as a snapshot in this format
}

// addCommand creates the add command: start from an empty workspace and dock
// one panel per direction argument.
func (c *CLI) addCommand() *cobra.Command {
	var opts addOpts

	cmd := &cobra.Command{
		Use:   "add <direction>...",
		Short: "Add panels to an empty workspace and show where they land",
		Example: `  tiledock add left left right below
  tiledock add within right --snapshot toml > layout.toml`,
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
			var format snapshot.Format
			if opts.snapshot != "" {
				if format, err = snapshot.ParseFormat(opts.snapshot); err != nil {
					return err
				}
			}
			return runAdd(cmd.Context(), container, dirs, format)
		},
	}

	opts.size.register(cmd)
	cmd.Flags().StringVar(&opts.snapshot, "snapshot", "", "print the resulting geometry as a snapshot: toml, yaml")

	return cmd
}

func runAdd(ctx context.Context, container geom.Rect, dirs []dock.Direction, format snapshot.Format) error {
	ws, placements, err := buildWorkspace(ctx, container, dirs)
	if err != nil {
		return err
	}

	if format != "" {
		return snapshot.Write(snapshot.Capture(ws, ws), os.Stdout, format)
	}

	for _, p := range placements {
		printPlacement(ws, p)
	}
	printNewline()
	fmt.Println(groupTable(ws))
	printNextStep("Export the split tree", "tiledock graph "+joinDirections(dirs))
	return nil
}

func printPlacement(ws *workspace.Workspace, p dock.Placement) {
	title := p.Panel.ID
	if demo, ok := dock.ParamsAs[dock.DemoParams](p.Panel); ok {
		title = demo.Title
	}

	g, idx, _ := ws.FindPanel(p.Panel.ID)
	switch {
	case p.NewGroup():
		printSuccess("%s %s new group %s at the %s edge", StyleValue.Render(title), iconArrow, StyleHighlight.Render(g.ID()), p.Position.Direction)
	case p.Decision.Matched:
		printSuccess("%s %s %s, tab %d", StyleValue.Render(title), iconArrow, StyleHighlight.Render(g.ID()), idx+1)
	default:
		printSuccess("%s %s %s, tab %d %s", StyleValue.Render(title), iconArrow, StyleHighlight.Render(g.ID()), idx+1, StyleDim.Render("(fallback)"))
	}
}

// groupTable renders the workspace groups with their rectangles.
func groupTable(ws *workspace.Workspace) string {
	var rows [][]string
	for _, dg := range ws.Groups() {
		g := dg.(*workspace.Group)
		rect := "-"
		if r, ok := ws.Rect(g); ok {
			rect = r.String()
		}
		rows = append(rows, []string{g.ID(), strconv.Itoa(g.PanelCount()), g.LockMode().String(), rect})
	}
	return renderTable([]string{"Group", "Panels", "Lock", "Rect"}, rows)
}

func joinDirections(dirs []dock.Direction) string {
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = d.String()
	}
	return strings.Join(names, " ")
}
