package dock

import (
	"fmt"

	"github.com/matzehuels/tiledock/pkg/geom"
)

type fakeGroup struct {
	id     string
	lock   LockMode
	hidden bool
	panels int
}

func (g *fakeGroup) ID() string         { return g.id }
func (g *fakeGroup) LockMode() LockMode { return g.lock }
func (g *fakeGroup) HeaderHidden() bool { return g.hidden }
func (g *fakeGroup) PanelCount() int    { return g.panels }

// fakeGeometry serves fixed rectangles keyed by group ID.
type fakeGeometry struct {
	container geom.Rect
	unmounted bool
	rects     map[string]geom.Rect
}

func (f *fakeGeometry) Container() (geom.Rect, bool) {
	return f.container, !f.unmounted
}

func (f *fakeGeometry) Rect(g Group) (geom.Rect, bool) {
	r, ok := f.rects[g.ID()]
	return r, ok
}

// fixture is a named group set laid out in a 1200x800 container.
type fixture struct {
	groups []*fakeGroup
	geo    *fakeGeometry
}

func newFixture() *fixture {
	return &fixture{geo: &fakeGeometry{
		container: geom.XYWH(0, 0, 1200, 800),
		rects:     map[string]geom.Rect{},
	}}
}

func (f *fixture) add(id string, r geom.Rect, panels int) *fakeGroup {
	g := &fakeGroup{id: id, panels: panels}
	f.groups = append(f.groups, g)
	f.geo.rects[id] = r
	return g
}

func (f *fixture) list() []Group {
	out := make([]Group, len(f.groups))
	for i, g := range f.groups {
		out[i] = g
	}
	return out
}

// columns lays out three equal columns: left, center, right.
func columns() *fixture {
	f := newFixture()
	f.add("left", geom.XYWH(0, 0, 400, 800), 1)
	f.add("center", geom.XYWH(400, 0, 400, 800), 1)
	f.add("right", geom.XYWH(800, 0, 400, 800), 1)
	return f
}

// cross lays out four groups around a center group with 4px gutters, so
// the center is strictly surrounded.
func cross() *fixture {
	f := newFixture()
	f.add("top", geom.Rect{Left: 300, Top: 0, Right: 900, Bottom: 200}, 1)
	f.add("left", geom.Rect{Left: 0, Top: 200, Right: 300, Bottom: 600}, 1)
	f.add("center", geom.Rect{Left: 304, Top: 204, Right: 896, Bottom: 596}, 1)
	f.add("right", geom.Rect{Left: 900, Top: 200, Right: 1200, Bottom: 600}, 1)
	f.add("bottom", geom.Rect{Left: 300, Top: 600, Right: 900, Bottom: 800}, 1)
	return f
}

// fakeLayout records every AddPanel command.
type fakeLayout struct {
	*fixture
	calls []AddPanelOptions
	err   error
}

func (l *fakeLayout) Groups() []Group { return l.list() }

func (l *fakeLayout) AddPanel(opts AddPanelOptions) error {
	if l.err != nil {
		return l.err
	}
	l.calls = append(l.calls, opts)
	if opts.Position.Relative() {
		for _, g := range l.groups {
			if g.id == opts.Position.ReferenceGroup {
				g.panels++
			}
		}
	}
	return nil
}

// seqIDs hands out predictable identities.
type seqIDs struct{ n int }

func (s *seqIDs) PanelID() string {
	s.n++
	return fmt.Sprintf("panel-%d", s.n)
}

func (s *seqIDs) Token(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'x'
	}
	return string(b)
}
