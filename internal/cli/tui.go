package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tiledock/pkg/dock"
	"github.com/matzehuels/tiledock/pkg/geom"
	"github.com/matzehuels/tiledock/pkg/workspace"
)

// Terminal cells are mapped to pixels so that the placement tolerance keeps
// its meaning on screen.
const (
	cellWidth  = 8
	cellHeight = 16
	chromeRows = 3 // title, status and help lines
)

var (
	tuiStatusStyle = lipgloss.NewStyle().Foreground(colorGray)
	tuiErrorStyle  = lipgloss.NewStyle().Foreground(colorRed)
	tuiHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// tuiCommand creates the tui command.
func (c *CLI) tuiCommand() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Dock panels interactively in the terminal",
		Long: `Open an interactive workspace sized to the terminal.

  h/←  add left      l/→  add right     k/↑  add above
  j/↓  add below     c/⏎  add within    tab  select group
  x    cycle lock    H    toggle header d    remove group
  q    quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), logFile)
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "write placement logs to this file")

	return cmd
}

func runTUI(ctx context.Context, logFile string) error {
	var w io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		w = f
	}
	logger := newLogger(w, loggerFromContext(ctx).GetLevel())

	ws := workspace.New()
	mgr := dock.NewManager(ws, ws, dock.WithLogger(logger))

	_, err := tea.NewProgram(newWorkspaceModel(ctx, ws, mgr), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// workspaceModel - Interactive docking
// =============================================================================

type workspaceModel struct {
	ctx        context.Context
	ws         *workspace.Workspace
	mgr        *dock.Manager
	cols, rows int
	selected   string
	status     string
	err        error
}

func newWorkspaceModel(ctx context.Context, ws *workspace.Workspace, mgr *dock.Manager) workspaceModel {
	return workspaceModel{ctx: ctx, ws: ws, mgr: mgr, status: "press h/j/k/l/c to add a panel"}
}

var keyDirections = map[string]dock.Direction{
	"h": dock.Left, "left": dock.Left,
	"l": dock.Right, "right": dock.Right,
	"k": dock.Above, "up": dock.Above,
	"j": dock.Below, "down": dock.Below,
	"c": dock.Within, "enter": dock.Within,
}

func (m workspaceModel) Init() tea.Cmd {
	return nil
}

func (m workspaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = max(msg.Height-chromeRows, 1)
		m.ws.Resize(geom.XYWH(0, 0, float64(m.cols*cellWidth), float64(m.rows*cellHeight)))
	case tea.KeyMsg:
		key := msg.String()
		if d, ok := keyDirections[key]; ok {
			return m.addPanel(d), nil
		}
		switch key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.selected = m.cycle(1)
		case "shift+tab":
			m.selected = m.cycle(-1)
		case "x":
			m = m.updateSelected(func(g *workspace.Group) error {
				return m.ws.SetLocked(g.ID(), nextLockMode(g.LockMode()))
			})
		case "H":
			m = m.updateSelected(func(g *workspace.Group) error {
				return m.ws.SetHeaderHidden(g.ID(), !g.HeaderHidden())
			})
		case "d", "backspace":
			if m.err = m.ws.RemoveGroup(m.selected); m.err == nil {
				m.status = "removed " + m.selected
			}
			m.selected = m.cycle(0)
		}
	}
	return m, nil
}

func (m workspaceModel) addPanel(d dock.Direction) workspaceModel {
	p, err := m.mgr.AddPanel(m.ctx, d)
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil

	g, _, _ := m.ws.FindPanel(p.Panel.ID)
	m.selected = g.ID()
	title := p.Panel.ID
	if demo, ok := dock.ParamsAs[dock.DemoParams](p.Panel); ok {
		title = demo.Title
	}
	switch {
	case p.NewGroup():
		m.status = fmt.Sprintf("%s %s new group %s (%s)", title, iconArrow, g.ID(), d)
	case p.Decision.Matched:
		m.status = fmt.Sprintf("%s %s %s (%s)", title, iconArrow, g.ID(), d)
	default:
		m.status = fmt.Sprintf("%s %s %s (%s, fallback)", title, iconArrow, g.ID(), d)
	}
	return m
}

func (m workspaceModel) updateSelected(fn func(*workspace.Group) error) workspaceModel {
	g, err := m.ws.Group(m.selected)
	if err != nil {
		m.err = err
		return m
	}
	m.err = fn(g)
	if m.err == nil {
		m.status = fmt.Sprintf("%s: %s", g.ID(), groupState(g))
	}
	return m
}

// cycle returns the ID of the group step positions away from the selection,
// wrapping around. step 0 keeps a valid selection.
func (m workspaceModel) cycle(step int) string {
	groups := m.ws.Groups()
	if len(groups) == 0 {
		return ""
	}
	idx := 0
	for i, g := range groups {
		if g.ID() == m.selected {
			idx = i
			break
		}
	}
	idx = ((idx+step)%len(groups) + len(groups)) % len(groups)
	return groups[idx].ID()
}

func nextLockMode(l dock.LockMode) dock.LockMode {
	switch l {
	case dock.Unlocked:
		return dock.Locked
	case dock.Locked:
		return dock.LockedNoDrop
	default:
		return dock.Unlocked
	}
}

func groupState(g *workspace.Group) string {
	parts := []string{fmt.Sprintf("%d panels", g.PanelCount())}
	if g.LockMode() != dock.Unlocked {
		parts = append(parts, g.LockMode().String())
	}
	if g.HeaderHidden() {
		parts = append(parts, "header hidden")
	}
	return strings.Join(parts, ", ")
}

func (m workspaceModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("tiledock"))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d groups · %d panels", m.ws.Len(), m.ws.PanelCount())))
	b.WriteString("\n")

	if m.cols == 0 {
		b.WriteString(StyleDim.Render("waiting for terminal size..."))
		return b.String()
	}

	b.WriteString(m.canvas())

	if m.err != nil {
		b.WriteString(tuiErrorStyle.Render(iconError + " " + m.err.Error()))
	} else {
		b.WriteString(tuiStatusStyle.Render(iconInfo + " " + m.status))
	}
	b.WriteString("\n")
	b.WriteString(tuiHelpStyle.Render("h/j/k/l/c add  tab select  x lock  H header  d remove  q quit"))
	return b.String()
}

// =============================================================================
// Canvas
// =============================================================================

// Border runes: horizontal, vertical, then corners clockwise from top-left.
var (
	borderNormal   = []rune("─│┌┐┘└")
	borderSelected = []rune("━┃┏┓┛┗")
	borderLocked   = []rune("┄┆┌┐┘└")
)

// canvas draws every group rectangle as a box scaled to terminal cells.
func (m workspaceModel) canvas() string {
	grid := make([][]rune, m.rows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", m.cols))
	}

	rects := m.ws.Rects()
	for _, dg := range m.ws.Groups() {
		g := dg.(*workspace.Group)
		r, ok := rects[g.ID()]
		if !ok {
			continue
		}
		x0, y0 := int(r.Left)/cellWidth, int(r.Top)/cellHeight
		x1, y1 := int(r.Right)/cellWidth-1, int(r.Bottom)/cellHeight-1
		x1, y1 = min(x1, m.cols-1), min(y1, m.rows-1)
		if x1-x0 < 1 || y1-y0 < 1 {
			continue
		}

		border := borderNormal
		switch {
		case g.ID() == m.selected:
			border = borderSelected
		case !dock.IsEligible(g):
			border = borderLocked
		}
		drawBox(grid, x0, y0, x1, y1, border)
		writeText(grid, x0+1, y0+1, x1-1, g.ID())
		if y1-y0 > 2 {
			writeText(grid, x0+1, y0+2, x1-1, groupState(g))
		}
	}

	var b strings.Builder
	for _, row := range grid {
		b.WriteString(string(row))
		b.WriteString("\n")
	}
	return b.String()
}

func drawBox(grid [][]rune, x0, y0, x1, y1 int, border []rune) {
	for x := x0 + 1; x < x1; x++ {
		grid[y0][x], grid[y1][x] = border[0], border[0]
	}
	for y := y0 + 1; y < y1; y++ {
		grid[y][x0], grid[y][x1] = border[1], border[1]
	}
	grid[y0][x0], grid[y0][x1] = border[2], border[3]
	grid[y1][x1], grid[y1][x0] = border[4], border[5]
}

// writeText writes s at (x, y), clipped at column maxX.
func writeText(grid [][]rune, x, y, maxX int, s string) {
	for _, r := range s {
		if x > maxX {
			return
		}
		grid[y][x] = r
		x++
	}
}
