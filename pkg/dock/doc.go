// Package dock decides where a new panel goes in a tiled, multi-group
// workspace.
//
// A caller asks for a panel "in a direction" (left, right, above, below or
// within). The [Manager] collects the current groups from a [Layout], reads
// their live rectangles through a [Geometry] provider and hands both to
// [SelectTarget], which returns the group the panel should join. When no group
// qualifies the panel opens a brand-new group in the raw direction instead.
//
// # Placement
//
// Selection runs in three steps:
//
//  1. Eligibility: locked groups (Locked or LockedNoDrop) and groups with a
//     hidden header never receive panels.
//  2. Classification: each eligible group is tested against the direction
//     using only the relative order of group edges (see [Matches]). A small
//     [Tolerance] absorbs sub-pixel and border noise.
//  3. Reduction: among matching groups the one hosting the fewest panels
//     wins; when nothing matches, the eligible group with the fewest panels
//     wins. Ties go to the group that comes first in [Layout.Groups] order.
//
// The "within" predicate treats two different signals as centrality: being
// surrounded on all four sides, or having the largest area. They can disagree
// (a large corner group is "within" too). Both clauses are kept on purpose.
//
// # Failure modes
//
// Nothing in this package fails on geometry. A missing container, a group
// that is not rendered or an empty eligible set all degrade to "no match",
// and the manager falls back as described above. The only error
// [Manager.AddPanel] returns is the one reported by the layout command.
//
// # Concurrency
//
// A decision reads the layout and geometry synchronously and keeps no state
// between calls. Callers must not mutate the layout while a decision runs;
// surfaces that can be reached concurrently serialize calls themselves.
package dock
