// Package pkg provides the libraries behind tiledock, a panel-docking layout
// manager for tiled, multi-group workspaces.
//
// # Overview
//
// A caller asks for a new panel "left", "right", "above", "below" or
// "within" the workspace. The layout manager decides which existing group
// receives it, or opens a new group at that edge when none qualifies.
//
//	caller
//	   ↓
//	[dock] Manager.AddPanel(direction)
//	   ↓
//	[dock] SelectTarget: eligibility → classification → fewest panels
//	   ↓
//	one create-panel command against the layout ([workspace] or your own)
//
// # Quick Start
//
//	ws := workspace.New(workspace.WithContainer(geom.XYWH(0, 0, 1200, 800)))
//	mgr := dock.NewManager(ws, ws)
//
//	p, err := mgr.AddPanel(ctx, dock.Left)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p.Panel.ID, p.Position.ReferenceGroup, p.NewGroup())
//
// # Main Packages
//
// [dock] - The placement engine and layout manager facade. Works against any
// layout that implements [dock.Layout] and [dock.Geometry].
//
// [workspace] - An in-memory split-tree layout of groups with live geometry,
// plus DOT/SVG export of the tree.
//
// [snapshot] - Frozen geometry fixtures in TOML or YAML for replaying
// decisions offline.
//
// [geom] - The rectangle type shared by all of the above.
//
// [observability] - Hook registry for placement and HTTP events.
//
// [errors] - Coded errors used at the package boundaries.
//
// [dock]: https://pkg.go.dev/github.com/matzehuels/tiledock/pkg/dock
// [dock.Layout]: https://pkg.go.dev/github.com/matzehuels/tiledock/pkg/dock#Layout
// [dock.Geometry]: https://pkg.go.dev/github.com/matzehuels/tiledock/pkg/dock#Geometry
// [workspace]: https://pkg.go.dev/github.com/matzehuels/tiledock/pkg/workspace
// [snapshot]: https://pkg.go.dev/github.com/matzehuels/tiledock/pkg/snapshot
// [geom]: https://pkg.go.dev/github.com/matzehuels/tiledock/pkg/geom
// [observability]: https://pkg.go.dev/github.com/matzehuels/tiledock/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/tiledock/pkg/errors
package pkg
