package workspace

import (
	"slices"

	"github.com/matzehuels/tiledock/pkg/dock"
)

// Group is a leaf of the workspace tree hosting an ordered list of panels.
type Group struct {
	id           string
	panels       []dock.Panel
	lock         dock.LockMode
	headerHidden bool
}

// ID implements dock.Group.
func (g *Group) ID() string { return g.id }

// LockMode implements dock.Group.
func (g *Group) LockMode() dock.LockMode { return g.lock }

// HeaderHidden implements dock.Group.
func (g *Group) HeaderHidden() bool { return g.headerHidden }

// PanelCount implements dock.Group.
func (g *Group) PanelCount() int { return len(g.panels) }

// Panels returns a copy of the group's panels in tab order.
func (g *Group) Panels() []dock.Panel { return slices.Clone(g.panels) }

func (g *Group) insert(p dock.Panel, index int) {
	index = max(0, min(index, len(g.panels)))
	g.panels = slices.Insert(g.panels, index, p)
}

func (g *Group) indexOf(panelID string) int {
	return slices.IndexFunc(g.panels, func(p dock.Panel) bool { return p.ID == panelID })
}
