package dock

import "github.com/matzehuels/tiledock/pkg/geom"

// LockMode controls whether a group accepts new panels.
type LockMode int

const (
	// Unlocked groups accept panels.
	Unlocked LockMode = iota
	// Locked groups refuse new panels.
	Locked
	// LockedNoDrop groups refuse new panels and are not drop targets.
	LockedNoDrop
)

func (m LockMode) String() string {
	switch m {
	case Locked:
		return "locked"
	case LockedNoDrop:
		return "no-drop"
	default:
		return "unlocked"
	}
}

// ParseLockMode is the inverse of LockMode.String. The empty string and
// "none" map to Unlocked.
func ParseLockMode(s string) (LockMode, bool) {
	switch s {
	case "", "unlocked", "none", "false":
		return Unlocked, true
	case "locked", "true":
		return Locked, true
	case "no-drop", "no-drop-target", "nodrop":
		return LockedNoDrop, true
	}
	return Unlocked, false
}

// Group is a read-only view of one panel group owned by the dock layout.
// Identity is carried by ID; two values with the same ID are the same group.
type Group interface {
	ID() string
	LockMode() LockMode
	HeaderHidden() bool
	PanelCount() int
}

// Geometry reads live rectangles at decision time.
//
// Container reports the bounding box hosting every group; ok is false while
// the layout is not mounted. Rect reports a group's rectangle in the same
// coordinate space; ok is false for groups that are not currently rendered.
type Geometry interface {
	Container() (geom.Rect, bool)
	Rect(g Group) (geom.Rect, bool)
}

// Layout is the query and command surface of the dock layout.
type Layout interface {
	// Groups enumerates the current groups. The order is the iteration order
	// used for tie-breaks.
	Groups() []Group
	// AddPanel adds exactly one panel, creating a group when the position has
	// no reference group.
	AddPanel(opts AddPanelOptions) error
}

// PanelPosition says where a new panel goes: either relative to an existing
// group at a tab index, or in a raw direction relative to the whole layout.
type PanelPosition struct {
	ReferenceGroup string    `json:"reference_group,omitempty"`
	Index          int       `json:"index"`
	Direction      Direction `json:"direction,omitempty"`
}

// Relative reports whether the position targets an existing group.
func (p PanelPosition) Relative() bool { return p.ReferenceGroup != "" }

// AddPanelOptions is the single command a Manager issues per request.
type AddPanelOptions struct {
	Panel    Panel
	Position PanelPosition
}
