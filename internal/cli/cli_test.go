package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tiledock/pkg/dock"
	errs "github.com/matzehuels/tiledock/pkg/errors"
	"github.com/matzehuels/tiledock/pkg/geom"
	"github.com/matzehuels/tiledock/pkg/snapshot"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	want := []string{"place", "add", "graph", "serve", "tui", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered (err = %v)", name, err)
		}
	}
}

func TestRootCommandRejectsBadDirection(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"add", "sideways"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	err := root.ExecuteContext(context.Background())
	if !errs.Is(err, errs.ErrCodeInvalidDirection) {
		t.Errorf("err = %v, want INVALID_DIRECTION", err)
	}
}

func TestConfigLevelApplies(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"debug\"\n")
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"--config", path, "completion", "bash"})
	root.SetOut(io.Discard)

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}

func TestParseDirections(t *testing.T) {
	dirs, err := parseDirections([]string{"left", "top", "center"})
	if err != nil {
		t.Fatalf("parseDirections: %v", err)
	}
	want := []dock.Direction{dock.Left, dock.Above, dock.Within}
	for i := range want {
		if dirs[i] != want[i] {
			t.Errorf("dirs[%d] = %q, want %q", i, dirs[i], want[i])
		}
	}

	if _, err := parseDirections([]string{"left", "nowhere"}); !errs.Is(err, errs.ErrCodeInvalidDirection) {
		t.Errorf("err = %v, want INVALID_DIRECTION", err)
	}
}

func TestBuildWorkspace(t *testing.T) {
	ctx := withLogger(context.Background(), log.New(io.Discard))
	dirs := []dock.Direction{dock.Left, dock.Left, dock.Right, dock.Below}

	ws, placements, err := buildWorkspace(ctx, geom.XYWH(0, 0, 1200, 800), dirs)
	if err != nil {
		t.Fatalf("buildWorkspace: %v", err)
	}
	if len(placements) != len(dirs) {
		t.Fatalf("got %d placements, want %d", len(placements), len(dirs))
	}

	// left: new group; left: fallback into it; right and below: the lone
	// group is not at either edge relative to anything, so they join it too.
	if !placements[0].NewGroup() {
		t.Error("first panel should open a group")
	}
	for i, p := range placements[1:] {
		if p.NewGroup() {
			t.Errorf("placement %d opened a new group", i+1)
		}
	}
	if ws.Len() != 1 || ws.PanelCount() != 4 {
		t.Errorf("workspace has %d groups / %d panels, want 1 / 4", ws.Len(), ws.PanelCount())
	}
}

func TestBuildWorkspaceCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := buildWorkspace(ctx, geom.XYWH(0, 0, 100, 100), []dock.Direction{dock.Left}); err == nil {
		t.Error("canceled context should stop the build")
	}
}

func TestEvaluateSnapshot(t *testing.T) {
	snap, err := snapshot.Load(filepath.Join("testdata", "rows.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		dir     dock.Direction
		target  string
		matched bool
	}{
		{dock.Above, "header", true},
		{dock.Below, "body", true},
		{dock.Within, "body", true},
		// Neither row is left of the other; fallback picks fewest panels.
		{dock.Left, "header", false},
		{dock.Right, "header", false},
	}
	for i, d := range evaluate(snap, []dock.Direction{dock.Above, dock.Below, dock.Within, dock.Left, dock.Right}) {
		tt := tests[i]
		if d.TargetID() != tt.target || d.Matched != tt.matched {
			t.Errorf("%s: got %q (matched=%v), want %q (matched=%v)", tt.dir, d.TargetID(), d.Matched, tt.target, tt.matched)
		}
	}
}

func TestOutcomeLabel(t *testing.T) {
	if got := outcomeLabel(dock.Decision{Direction: dock.Left}); got != "new group at left edge" {
		t.Errorf("outcomeLabel(none) = %q", got)
	}
	if got := targetLabel(dock.Decision{}); got != "(new group)" {
		t.Errorf("targetLabel(none) = %q", got)
	}
}
