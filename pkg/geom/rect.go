// Package geom provides the rectangle type shared by the placement engine,
// the workspace layout and snapshot fixtures.
//
// Coordinates follow screen conventions: x grows to the right and y grows
// downward, so Top <= Bottom for a well-formed rectangle.
package geom

import "fmt"

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	Left   float64 `json:"left" toml:"left" yaml:"left"`
	Top    float64 `json:"top" toml:"top" yaml:"top"`
	Right  float64 `json:"right" toml:"right" yaml:"right"`
	Bottom float64 `json:"bottom" toml:"bottom" yaml:"bottom"`
}

// XYWH builds a rectangle from an origin and a size.
func XYWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Area returns Width*Height.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

// CenterX returns the horizontal center point of the rectangle.
func (r Rect) CenterX() float64 { return r.Left + r.Width()/2 }

// CenterY returns the vertical center point of the rectangle.
func (r Rect) CenterY() float64 { return r.Top + r.Height()/2 }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.Width() <= 0 || r.Height() <= 0 }

// Valid reports whether the edges are ordered (zero-size is allowed).
func (r Rect) Valid() bool { return r.Left <= r.Right && r.Top <= r.Bottom }

// RelativeTo translates r into the frame whose origin is the top-left corner
// of origin.
func (r Rect) RelativeTo(origin Rect) Rect {
	return Rect{
		Left:   r.Left - origin.Left,
		Top:    r.Top - origin.Top,
		Right:  r.Right - origin.Left,
		Bottom: r.Bottom - origin.Top,
	}
}

// SplitX cuts the rectangle at the given horizontal offset from its left edge.
func (r Rect) SplitX(offset float64) (Rect, Rect) {
	x := r.Left + offset
	return Rect{Left: r.Left, Top: r.Top, Right: x, Bottom: r.Bottom},
		Rect{Left: x, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

// SplitY cuts the rectangle at the given vertical offset from its top edge.
func (r Rect) SplitY(offset float64) (Rect, Rect) {
	y := r.Top + offset
	return Rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: y},
		Rect{Left: r.Left, Top: y, Right: r.Right, Bottom: r.Bottom}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.Left, r.Top, r.Right, r.Bottom)
}
