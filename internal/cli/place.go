package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tiledock/pkg/dock"
	"github.com/matzehuels/tiledock/pkg/snapshot"
)

// placeCommand creates the place command, which replays placement decisions
// against a snapshot file without changing anything.
func (c *CLI) placeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "place <snapshot> [direction...]",
		Short: "Show which group would receive a panel in a snapshot",
		Long: `Load a TOML or YAML geometry snapshot and show, for each direction, which
group a new panel would be docked into. Without directions, all five are
evaluated.`,
		Example: `  tiledock place layout.toml left
  tiledock place layout.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs := dock.Directions
			if len(args) > 1 {
				var err error
				if dirs, err = parseDirections(args[1:]); err != nil {
					return err
				}
			}
			return runPlace(cmd.Context(), args[0], dirs)
		},
	}
}

func runPlace(ctx context.Context, path string, dirs []dock.Direction) error {
	logger := loggerFromContext(ctx)

	snap, err := snapshot.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("snapshot loaded", "path", path, "groups", snap.Len())

	decisions := evaluate(snap, dirs)
	if len(decisions) == 1 {
		printDecision(decisions[0])
		return nil
	}

	rows := make([][]string, len(decisions))
	for i, d := range decisions {
		rows[i] = []string{d.Direction.String(), targetLabel(d), outcomeLabel(d), strconv.Itoa(d.Eligible), strconv.Itoa(d.Matching)}
	}
	fmt.Println(renderTable([]string{"Direction", "Target", "Outcome", "Eligible", "Matching"}, rows))
	return nil
}

// evaluate runs the placement engine for each direction against snap.
func evaluate(snap *snapshot.Snapshot, dirs []dock.Direction) []dock.Decision {
	out := make([]dock.Decision, len(dirs))
	for i, d := range dirs {
		out[i] = dock.SelectTarget(d, snap.Groups(), snap)
	}
	return out
}

func printDecision(d dock.Decision) {
	printKeyValue("direction", d.Direction.String())
	printKeyValue("target", targetLabel(d))
	printKeyValue("outcome", outcomeLabel(d))
	printKeyValue("eligible", strconv.Itoa(d.Eligible))
	printKeyValue("matching", strconv.Itoa(d.Matching))
}

func targetLabel(d dock.Decision) string {
	if !d.Found() {
		return "(new group)"
	}
	return d.TargetID()
}

func outcomeLabel(d dock.Decision) string {
	switch {
	case !d.Found():
		return "new group at " + d.Direction.String() + " edge"
	case d.Matched:
		return "matched"
	default:
		return "fallback (fewest panels)"
	}
}
