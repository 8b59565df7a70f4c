package workspace

import (
	"fmt"
	"slices"

	"github.com/matzehuels/tiledock/pkg/dock"
	errs "github.com/matzehuels/tiledock/pkg/errors"
	"github.com/matzehuels/tiledock/pkg/geom"
)

// Orientation is the axis along which a branch splits its rectangle.
type Orientation int

const (
	// Row lays children out left to right.
	Row Orientation = iota
	// Column lays children out top to bottom.
	Column
)

func (o Orientation) String() string {
	if o == Column {
		return "column"
	}
	return "row"
}

type node struct {
	parent      *node
	orientation Orientation
	children    []*node
	weight      float64
	group       *Group
}

func (n *node) leaf() bool { return n.group != nil }

// Workspace is a split tree of groups inside a container.
type Workspace struct {
	root      *node
	container geom.Rect
	mounted   bool
	leaves    map[string]*node
	nextID    func() string
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithContainer mounts the workspace in r.
func WithContainer(r geom.Rect) Option {
	return func(w *Workspace) {
		w.container = r
		w.mounted = true
	}
}

// WithGroupIDs overrides group identity generation. fn must not repeat.
func WithGroupIDs(fn func() string) Option {
	return func(w *Workspace) {
		if fn != nil {
			w.nextID = fn
		}
	}
}

// New creates an empty workspace. Until a container is set the workspace is
// unmounted and reports no geometry.
func New(opts ...Option) *Workspace {
	seq := 0
	w := &Workspace{
		leaves: map[string]*node{},
		nextID: func() string {
			seq++
			return fmt.Sprintf("group-%d", seq)
		},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Resize mounts the workspace in r.
func (w *Workspace) Resize(r geom.Rect) {
	w.container = r
	w.mounted = true
}

// Unmount drops the container; rectangles become unavailable.
func (w *Workspace) Unmount() { w.mounted = false }

// Container implements dock.Geometry.
func (w *Workspace) Container() (geom.Rect, bool) {
	return w.container, w.mounted
}

// Rect implements dock.Geometry. The rectangle is recomputed from the tree on
// every call.
func (w *Workspace) Rect(g dock.Group) (geom.Rect, bool) {
	if !w.mounted || g == nil {
		return geom.Rect{}, false
	}
	r, ok := w.Rects()[g.ID()]
	return r, ok
}

// Rects computes every group rectangle, keyed by group ID. It returns nil
// while unmounted.
func (w *Workspace) Rects() map[string]geom.Rect {
	if !w.mounted || w.root == nil {
		return nil
	}
	out := make(map[string]geom.Rect, len(w.leaves))
	layoutNode(w.root, w.container, out)
	return out
}

func layoutNode(n *node, r geom.Rect, out map[string]geom.Rect) {
	if n.leaf() {
		out[n.group.id] = r
		return
	}

	total := 0.0
	for _, c := range n.children {
		total += c.weight
	}

	rest := r
	for i, c := range n.children {
		if i == len(n.children)-1 {
			layoutNode(c, rest, out)
			return
		}
		var part geom.Rect
		if n.orientation == Row {
			part, rest = rest.SplitX(r.Width() * c.weight / total)
		} else {
			part, rest = rest.SplitY(r.Height() * c.weight / total)
		}
		layoutNode(c, part, out)
	}
}

// Groups implements dock.Layout. Groups are listed depth-first, which is
// left to right and top to bottom within each branch.
func (w *Workspace) Groups() []dock.Group {
	var out []dock.Group
	w.eachGroup(func(g *Group) { out = append(out, g) })
	return out
}

// Len returns the number of groups.
func (w *Workspace) Len() int { return len(w.leaves) }

// PanelCount returns the number of panels across all groups.
func (w *Workspace) PanelCount() int {
	n := 0
	for _, l := range w.leaves {
		n += len(l.group.panels)
	}
	return n
}

func (w *Workspace) eachGroup(fn func(*Group)) {
	var walk func(*node)
	walk = func(n *node) {
		if n.leaf() {
			fn(n.group)
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	if w.root != nil {
		walk(w.root)
	}
}

// Group looks up a group by ID.
func (w *Workspace) Group(id string) (*Group, error) {
	l, ok := w.leaves[id]
	if !ok {
		return nil, errs.New(errs.ErrCodeGroupNotFound, "group %q not found", id)
	}
	return l.group, nil
}

// FindPanel returns the group hosting the panel and its tab index.
func (w *Workspace) FindPanel(panelID string) (*Group, int, bool) {
	for _, l := range w.leaves {
		if i := l.group.indexOf(panelID); i >= 0 {
			return l.group, i, true
		}
	}
	return nil, -1, false
}

// AddPanel implements dock.Layout. A relative position inserts the panel into
// the reference group at the index (clamped to the tab range); otherwise a
// new group is created at the root edge named by the direction.
func (w *Workspace) AddPanel(opts dock.AddPanelOptions) error {
	if opts.Panel.ID == "" {
		return errs.New(errs.ErrCodeInvalidInput, "panel id cannot be empty")
	}
	if _, _, ok := w.FindPanel(opts.Panel.ID); ok {
		return errs.New(errs.ErrCodeInvalidInput, "panel %q already exists", opts.Panel.ID)
	}

	if opts.Position.Relative() {
		g, err := w.Group(opts.Position.ReferenceGroup)
		if err != nil {
			return err
		}
		g.insert(opts.Panel, opts.Position.Index)
		return nil
	}

	g, err := w.AddGroup(opts.Position.Direction)
	if err != nil {
		return err
	}
	g.insert(opts.Panel, 0)
	return nil
}

// AddGroup creates an empty group at the root edge named by d.
func (w *Workspace) AddGroup(d dock.Direction) (*Group, error) {
	if !d.Valid() {
		return nil, errs.New(errs.ErrCodeInvalidDirection, "cannot create a group in direction %q", d)
	}

	id := w.nextID()
	if _, taken := w.leaves[id]; taken {
		return nil, errs.New(errs.ErrCodeInternal, "group id %q generated twice", id)
	}
	leaf := &node{group: &Group{id: id}, weight: 1}
	w.leaves[id] = leaf

	if w.root == nil {
		w.root = leaf
		return leaf.group, nil
	}

	switch d {
	case dock.Within:
		if w.root.leaf() {
			w.wrapRoot(Row, leaf, false)
		} else {
			w.root.attach(leaf, len(w.root.children))
		}
	case dock.Left, dock.Right:
		w.attachEdge(Row, leaf, d == dock.Left)
	case dock.Above, dock.Below:
		w.attachEdge(Column, leaf, d == dock.Above)
	}
	return leaf.group, nil
}

func (w *Workspace) attachEdge(o Orientation, leaf *node, first bool) {
	if !w.root.leaf() && w.root.orientation == o {
		idx := len(w.root.children)
		if first {
			idx = 0
		}
		w.root.attach(leaf, idx)
		return
	}
	w.wrapRoot(o, leaf, first)
}

// wrapRoot replaces the root with a branch holding the old root and leaf.
func (w *Workspace) wrapRoot(o Orientation, leaf *node, first bool) {
	old := w.root
	old.weight = 1
	branch := &node{orientation: o, weight: 1}
	branch.attach(old, 0)
	if first {
		branch.attach(leaf, 0)
	} else {
		branch.attach(leaf, 1)
	}
	w.root = branch
}

func (n *node) attach(c *node, idx int) {
	c.parent = n
	n.children = slices.Insert(n.children, idx, c)
}

// SetLocked changes a group's lock mode.
func (w *Workspace) SetLocked(id string, mode dock.LockMode) error {
	g, err := w.Group(id)
	if err != nil {
		return err
	}
	g.lock = mode
	return nil
}

// SetHeaderHidden shows or hides a group's header.
func (w *Workspace) SetHeaderHidden(id string, hidden bool) error {
	g, err := w.Group(id)
	if err != nil {
		return err
	}
	g.headerHidden = hidden
	return nil
}

// RemovePanel closes a panel. A group left without panels is removed.
func (w *Workspace) RemovePanel(panelID string) error {
	g, idx, ok := w.FindPanel(panelID)
	if !ok {
		return errs.New(errs.ErrCodePanelNotFound, "panel %q not found", panelID)
	}
	g.panels = slices.Delete(g.panels, idx, idx+1)
	if len(g.panels) == 0 {
		return w.RemoveGroup(g.id)
	}
	return nil
}

// RemoveGroup removes a group and its panels, collapsing branches that are
// left with a single child.
func (w *Workspace) RemoveGroup(id string) error {
	leaf, ok := w.leaves[id]
	if !ok {
		return errs.New(errs.ErrCodeGroupNotFound, "group %q not found", id)
	}
	delete(w.leaves, id)

	parent := leaf.parent
	if parent == nil {
		w.root = nil
		return nil
	}
	parent.children = slices.DeleteFunc(parent.children, func(c *node) bool { return c == leaf })
	if len(parent.children) == 1 {
		w.collapse(parent)
	}
	return nil
}

// collapse replaces a single-child branch with its child.
func (w *Workspace) collapse(branch *node) {
	child := branch.children[0]
	child.weight = branch.weight
	child.parent = branch.parent

	if branch.parent == nil {
		w.root = child
		return
	}
	siblings := branch.parent.children
	siblings[slices.Index(siblings, branch)] = child
}
