package snapshot

import (
	"github.com/matzehuels/tiledock/pkg/dock"
	errs "github.com/matzehuels/tiledock/pkg/errors"
	"github.com/matzehuels/tiledock/pkg/geom"
)

// Group is one frozen group. It implements dock.Group.
type Group struct {
	id           string
	rect         geom.Rect
	rendered     bool
	lock         dock.LockMode
	headerHidden bool
	panels       int
}

func (g *Group) ID() string              { return g.id }
func (g *Group) LockMode() dock.LockMode { return g.lock }
func (g *Group) HeaderHidden() bool      { return g.headerHidden }
func (g *Group) PanelCount() int         { return g.panels }

// Snapshot is a read-only layout with fixed geometry.
type Snapshot struct {
	container geom.Rect
	mounted   bool
	groups    []*Group
	byID      map[string]*Group
}

// Container implements dock.Geometry.
func (s *Snapshot) Container() (geom.Rect, bool) { return s.container, s.mounted }

// Rect implements dock.Geometry. Groups from other layouts are matched by ID.
func (s *Snapshot) Rect(g dock.Group) (geom.Rect, bool) {
	if g == nil {
		return geom.Rect{}, false
	}
	sg, ok := s.byID[g.ID()]
	if !ok || !sg.rendered {
		return geom.Rect{}, false
	}
	return sg.rect, true
}

// Groups implements dock.Layout, in file order.
func (s *Snapshot) Groups() []dock.Group {
	out := make([]dock.Group, len(s.groups))
	for i, g := range s.groups {
		out[i] = g
	}
	return out
}

// Group looks up a group by ID.
func (s *Snapshot) Group(id string) (*Group, bool) {
	g, ok := s.byID[id]
	return g, ok
}

// Len returns the number of groups.
func (s *Snapshot) Len() int { return len(s.groups) }

// AddPanel implements dock.Layout. Snapshots are immutable, so it always
// fails with UNSUPPORTED.
func (s *Snapshot) AddPanel(opts dock.AddPanelOptions) error {
	return errs.New(errs.ErrCodeUnsupported, "snapshot is read-only")
}

// Capture freezes the groups of layout and the rectangles geo reports for
// them.
func Capture(layout dock.Layout, geo dock.Geometry) *Snapshot {
	s := &Snapshot{byID: make(map[string]*Group)}
	if geo != nil {
		s.container, s.mounted = geo.Container()
	}
	for _, g := range layout.Groups() {
		if g == nil {
			continue
		}
		sg := &Group{
			id:           g.ID(),
			lock:         g.LockMode(),
			headerHidden: g.HeaderHidden(),
			panels:       g.PanelCount(),
		}
		if geo != nil {
			sg.rect, sg.rendered = geo.Rect(g)
		}
		s.groups = append(s.groups, sg)
		s.byID[sg.id] = sg
	}
	return s
}
