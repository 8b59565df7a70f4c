package dock

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tiledock/pkg/observability"
)

// Placement describes the panel a Manager created and where it went.
type Placement struct {
	Panel    Panel
	Position PanelPosition
	Decision Decision
}

// NewGroup reports whether the panel opened a new group.
func (p Placement) NewGroup() bool { return !p.Position.Relative() }

// Manager is the layout facade: it owns no layout state and turns each
// AddPanel request into one decision plus one layout command.
type Manager struct {
	layout       Layout
	geometry     Geometry
	ids          IDSource
	logger       *log.Logger
	hooks        observability.PlacementHooks
	component    string
	tabComponent string
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for decision traces.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithIDSource overrides panel identity and token generation.
func WithIDSource(s IDSource) Option {
	return func(m *Manager) {
		if s != nil {
			m.ids = s
		}
	}
}

// WithHooks sends placement events to h instead of the globally registered
// observability hooks.
func WithHooks(h observability.PlacementHooks) Option {
	return func(m *Manager) { m.hooks = h }
}

// WithComponents sets the component names stamped on created panels.
func WithComponents(component, tab string) Option {
	return func(m *Manager) {
		m.component = component
		m.tabComponent = tab
	}
}

// NewManager creates a manager over layout, reading rectangles from geometry.
// Both are required; a Layout that also implements Geometry may be passed
// twice.
func NewManager(layout Layout, geometry Geometry, opts ...Option) *Manager {
	m := &Manager{
		layout:       layout,
		geometry:     geometry,
		ids:          UUIDSource(),
		logger:       log.Default(),
		component:    DefaultComponent,
		tabComponent: DefaultTabComponent,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SelectTarget evaluates a placement against the current layout without
// changing it.
func (m *Manager) SelectTarget(d Direction) Decision {
	return SelectTarget(d, m.layout.Groups(), m.geometry)
}

// AddPanel creates one panel in direction d.
//
// The panel joins the selected group as its last tab, or opens a new group in
// the raw direction when no group qualifies. Every call creates a new panel
// identity. The returned error comes from the layout command only.
func (m *Manager) AddPanel(ctx context.Context, d Direction) (Placement, error) {
	start := time.Now()
	dec := m.SelectTarget(d)
	elapsed := time.Since(start)

	m.hookset().OnDecision(ctx, d.String(), dec.TargetID(), dec.Matched, dec.Eligible, dec.Matching, elapsed)
	m.logger.Debug("placement decided",
		"direction", d,
		"target", dec.TargetID(),
		"matched", dec.Matched,
		"eligible", dec.Eligible,
		"matching", dec.Matching)

	pos := PanelPosition{Direction: d}
	if dec.Found() {
		pos = PanelPosition{ReferenceGroup: dec.Target.ID(), Index: dec.Target.PanelCount()}
	}

	panel := m.newPanel()
	err := m.layout.AddPanel(AddPanelOptions{Panel: panel, Position: pos})
	m.hookset().OnPanelAdded(ctx, panel.ID, pos.ReferenceGroup, !pos.Relative(), err)
	if err != nil {
		return Placement{}, fmt.Errorf("add panel %s: %w", d, err)
	}

	if pos.Relative() {
		m.logger.Info("panel added", "panel", panel.ID, "group", pos.ReferenceGroup, "index", pos.Index)
	} else {
		m.logger.Info("panel added in new group", "panel", panel.ID, "direction", d)
	}
	return Placement{Panel: panel, Position: pos, Decision: dec}, nil
}

func (m *Manager) newPanel() Panel {
	return Panel{
		ID:           m.ids.PanelID(),
		Component:    m.component,
		TabComponent: m.tabComponent,
		Params: DemoParams{
			Title:  "Panel-" + m.ids.Token(4),
			Random: m.ids.Token(8),
		},
	}
}

func (m *Manager) hookset() observability.PlacementHooks {
	if m.hooks != nil {
		return m.hooks
	}
	return observability.Placement()
}
