package workspace

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/tiledock/pkg/dock"
	"github.com/matzehuels/tiledock/pkg/geom"
)

// Node is a read-only copy of one tree node, used for export.
type Node struct {
	// Group is set for leaves.
	Group *Group
	// Orientation and Children are set for branches.
	Orientation Orientation
	Children    []Node
	// Rect is the node's rectangle; zero while unmounted.
	Rect geom.Rect
}

// Tree returns a copy of the split tree. ok is false for an empty workspace.
func (w *Workspace) Tree() (Node, bool) {
	if w.root == nil {
		return Node{}, false
	}
	rects := w.Rects()

	var build func(n *node) Node
	build = func(n *node) Node {
		if n.leaf() {
			return Node{Group: n.group, Rect: rects[n.group.id]}
		}
		out := Node{Orientation: n.orientation}
		for i, c := range n.children {
			child := build(c)
			out.Children = append(out.Children, child)
			if i == 0 {
				out.Rect = child.Rect
			} else {
				out.Rect = union(out.Rect, child.Rect)
			}
		}
		return out
	}
	return build(w.root), true
}

func union(a, b geom.Rect) geom.Rect {
	return geom.Rect{
		Left:   min(a.Left, b.Left),
		Top:    min(a.Top, b.Top),
		Right:  max(a.Right, b.Right),
		Bottom: max(a.Bottom, b.Bottom),
	}
}

// ToDOT converts the split tree to Graphviz DOT format. Branches are drawn as
// ellipses labelled with their axis; groups as boxes listing their state and
// panel count. Locked or header-hidden groups are greyed out.
func (w *Workspace) ToDOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph workspace {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	root, ok := w.Tree()
	if ok {
		seq := 0
		var emit func(n Node) string
		emit = func(n Node) string {
			if n.Group != nil {
				id := n.Group.id
				fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(groupAttrs(n), ", "))
				return id
			}
			seq++
			id := fmt.Sprintf("split-%d", seq)
			fmt.Fprintf(&buf, "  %q [shape=ellipse, label=%q];\n", id, n.Orientation.String())
			for _, c := range n.Children {
				fmt.Fprintf(&buf, "  %q -> %q;\n", id, emit(c))
			}
			return id
		}
		emit(root)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func groupAttrs(n Node) []string {
	g := n.Group
	lines := []string{g.id, fmt.Sprintf("panels: %d", len(g.panels))}
	if g.lock != dock.Unlocked {
		lines = append(lines, g.lock.String())
	}
	if g.headerHidden {
		lines = append(lines, "header hidden")
	}
	if !n.Rect.Empty() {
		lines = append(lines, n.Rect.String())
	}

	attrs := []string{"shape=box", fmt.Sprintf("label=%q", strings.Join(lines, "\n"))}
	if g.lock != dock.Unlocked || g.headerHidden {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	} else {
		attrs = append(attrs, "style=\"rounded,filled\"", "fillcolor=white")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
