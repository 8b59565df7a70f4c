// Package workspace is an in-memory dock layout: a split tree of panel
// groups laid out inside a container rectangle.
//
// A [Workspace] implements both [dock.Layout] and [dock.Geometry], so it can
// be handed straight to [dock.NewManager]. Rectangles are derived from the
// tree and the container on every query; nothing is cached, so a resize or a
// structural change is visible to the very next placement decision.
//
// # Tree
//
// Branch nodes split their rectangle between children along one axis: a
// [Row] lays children out left to right, a [Column] top to bottom. Leaves are
// groups. New groups created without a reference group attach to the root
// edge named by the direction:
//
//	left, above   first child of a root Row / Column
//	right, below  last child of a root Row / Column
//	within        last child of the root, whatever its axis
//
// When the root splits along the other axis it is wrapped in a new branch.
//
// Removing the last panel of a group removes the group, and branches left
// with a single child collapse into their parent.
//
// A Workspace is not safe for concurrent use.
package workspace
