package dock

import "github.com/matzehuels/tiledock/pkg/geom"

// Tolerance absorbs sub-pixel and border noise when comparing group edges.
const Tolerance = 10.0

// GroupPosition is the per-decision geometry of one group. Edge offsets and
// the center are relative to the container's top-left corner so several
// containers can share a viewport without interfering.
type GroupPosition struct {
	Group   Group
	Rect    geom.Rect
	CenterX float64
	CenterY float64
	Left    float64
	Right   float64
	Top     float64
	Bottom  float64
}

// Area returns the area of the group's rectangle.
func (p GroupPosition) Area() float64 { return p.Rect.Area() }

// Positions builds the geometry of every group that currently has a
// rectangle. Groups without one are skipped. ok is false when the container is
// unavailable or no group could be positioned.
func Positions(groups []Group, geo Geometry) (positions []GroupPosition, ok bool) {
	if geo == nil {
		return nil, false
	}
	container, mounted := geo.Container()
	if !mounted {
		return nil, false
	}

	positions = make([]GroupPosition, 0, len(groups))
	for _, g := range groups {
		r, rendered := geo.Rect(g)
		if !rendered {
			continue
		}
		rel := r.RelativeTo(container)
		positions = append(positions, GroupPosition{
			Group:   g,
			Rect:    r,
			CenterX: rel.CenterX(),
			CenterY: rel.CenterY(),
			Left:    rel.Left,
			Right:   rel.Right,
			Top:     rel.Top,
			Bottom:  rel.Bottom,
		})
	}
	return positions, len(positions) > 0
}

// Matches reports whether the group with id structurally occupies the
// position implied by d among positions. positions should hold every
// positioned eligible group, the target included.
//
// An unknown direction, an empty set or a target missing from positions
// never matches.
func Matches(d Direction, id string, positions []GroupPosition) bool {
	idx := -1
	for i, p := range positions {
		if p.Group.ID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	switch d {
	case Left:
		return isLeftmost(idx, positions)
	case Right:
		return isRightmost(idx, positions)
	case Above:
		return isTopmost(idx, positions)
	case Below:
		return isBottommost(idx, positions)
	case Within:
		return isCenter(idx, positions)
	default:
		return false
	}
}

// someOther reports whether some position other than positions[idx] satisfies fn.
func someOther(idx int, positions []GroupPosition, fn func(other, target GroupPosition) bool) bool {
	target := positions[idx]
	for i, p := range positions {
		if i != idx && fn(p, target) {
			return true
		}
	}
	return false
}

func leftOf(o, t GroupPosition) bool  { return o.Right < t.Left+Tolerance }
func rightOf(o, t GroupPosition) bool { return o.Left > t.Right-Tolerance }
func aboveOf(o, t GroupPosition) bool   { return o.Bottom < t.Top+Tolerance }
func belowOf(o, t GroupPosition) bool   { return o.Top > t.Bottom-Tolerance }

// Nothing to its left, and something to its right.
func isLeftmost(idx int, ps []GroupPosition) bool {
	return !someOther(idx, ps, leftOf) && someOther(idx, ps, rightOf)
}

// Nothing to its right, and something to its left.
func isRightmost(idx int, ps []GroupPosition) bool {
	return !someOther(idx, ps, rightOf) && someOther(idx, ps, leftOf)
}

// Nothing above it, and something below it.
func isTopmost(idx int, ps []GroupPosition) bool {
	return !someOther(idx, ps, aboveOf) && someOther(idx, ps, belowOf)
}

// Nothing below it, and something above it.
func isBottommost(idx int, ps []GroupPosition) bool {
	return !someOther(idx, ps, belowOf) && someOther(idx, ps, aboveOf)
}

// isCenter is true for the sole group, a group with neighbours strictly on
// all four sides, or a group whose area is at least every other area. The
// surround test uses no tolerance.
func isCenter(idx int, ps []GroupPosition) bool {
	if len(ps) == 1 {
		return true
	}

	surrounded := someOther(idx, ps, func(o, t GroupPosition) bool { return o.Right < t.Left }) &&
		someOther(idx, ps, func(o, t GroupPosition) bool { return o.Left > t.Right }) &&
		someOther(idx, ps, func(o, t GroupPosition) bool { return o.Bottom < t.Top }) &&
		someOther(idx, ps, func(o, t GroupPosition) bool { return o.Top > t.Bottom })
	if surrounded {
		return true
	}

	return !someOther(idx, ps, func(o, t GroupPosition) bool { return o.Area() > t.Area() })
}
