package dock

// Decision is the outcome of one placement decision.
type Decision struct {
	Direction Direction
	// Target is the chosen group, or nil when a new group must be created.
	Target Group
	// Matched is true when Target satisfied the direction; false means it
	// came from the fewest-panels fallback.
	Matched bool
	// Eligible and Matching count the groups that passed each stage.
	Eligible int
	Matching int
}

// Found reports whether a target group was chosen.
func (d Decision) Found() bool { return d.Target != nil }

// TargetID returns the target's ID, or "" when none was chosen.
func (d Decision) TargetID() string {
	if d.Target == nil {
		return ""
	}
	return d.Target.ID()
}

// IsEligible reports whether g may receive a new panel.
func IsEligible(g Group) bool {
	switch g.LockMode() {
	case Locked, LockedNoDrop:
		return false
	}
	return !g.HeaderHidden()
}

// Eligible returns the groups that may receive a new panel, in input order.
func Eligible(groups []Group) []Group {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		if g != nil && IsEligible(g) {
			out = append(out, g)
		}
	}
	return out
}

// SelectTarget picks the group a new panel in direction d should join.
//
// The result is always drawn from Eligible(groups). Groups without a
// rectangle take part in the fallback but never match a direction. The
// function is pure: identical groups, geometry and direction yield the same
// decision.
func SelectTarget(d Direction, groups []Group, geo Geometry) Decision {
	eligible := Eligible(groups)
	dec := Decision{Direction: d, Eligible: len(eligible)}
	if len(eligible) == 0 {
		return dec
	}

	var matching []Group
	if positions, ok := Positions(eligible, geo); ok {
		for _, g := range eligible {
			if Matches(d, g.ID(), positions) {
				matching = append(matching, g)
			}
		}
	}
	dec.Matching = len(matching)

	if len(matching) > 0 {
		dec.Target = fewestPanels(matching)
		dec.Matched = true
		return dec
	}
	dec.Target = fewestPanels(eligible)
	return dec
}

// fewestPanels returns the group hosting the fewest panels. Ties keep the
// earliest group.
func fewestPanels(groups []Group) Group {
	best := groups[0]
	for _, g := range groups[1:] {
		if g.PanelCount() < best.PanelCount() {
			best = g
		}
	}
	return best
}
