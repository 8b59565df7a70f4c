// Package snapshot provides static geometry fixtures for the placement engine.
//
// # Overview
//
// A snapshot freezes what the engine needs to see of a layout at one moment:
// the container rectangle plus, for each group, its identity, rectangle,
// lock mode, header visibility and panel count. A [Snapshot] implements both
// [dock.Layout] (read-only, AddPanel always fails) and [dock.Geometry], so a
// decision can be reproduced offline:
//
//	snap, err := snapshot.Load("testdata/cross.toml")
//	if err != nil {
//	    return err
//	}
//	d := dock.SelectTarget(dock.Left, snap.Groups(), snap)
//
// # File Format
//
// Snapshots are written in TOML or YAML; the format is chosen from the file
// extension (.toml, .yaml, .yml):
//
//	[container]
//	left = 0
//	top = 0
//	right = 1200
//	bottom = 800
//
//	[[groups]]
//	id = "editor"
//	panels = 2
//	rect = { left = 0, top = 0, right = 600, bottom = 800 }
//
//	[[groups]]
//	id = "terminal"
//	lock = "no-drop"
//	header_hidden = false
//	panels = 1
//	rect = { left = 600, top = 0, right = 1200, bottom = 800 }
//
// Omitting the container marks the layout as unmounted. Omitting a group's
// rect marks that group as not rendered. Lock accepts the strings understood
// by [dock.ParseLockMode].
//
// # Validation
//
// [Read] and [Load] reject empty or duplicate group IDs, unknown lock modes,
// negative panel counts and inverted rectangles with an INVALID_SNAPSHOT
// error naming the offending group.
//
// # Capture
//
// [Capture] freezes any live layout (for example a [workspace.Workspace]) so
// that its decisions can be replayed. [Write] encodes a snapshot back to
// either format.
package snapshot
