package dock

import (
	"strings"

	errs "github.com/matzehuels/tiledock/pkg/errors"
)

// Direction is the requested relative placement for a new panel.
type Direction string

// Supported directions.
const (
	Left   Direction = "left"
	Right  Direction = "right"
	Above  Direction = "above"
	Below  Direction = "below"
	Within Direction = "within"
)

// Directions lists every supported direction in a stable order.
var Directions = []Direction{Left, Right, Above, Below, Within}

// Valid reports whether d is one of the supported directions.
func (d Direction) Valid() bool {
	switch d {
	case Left, Right, Above, Below, Within:
		return true
	}
	return false
}

func (d Direction) String() string { return string(d) }

// ParseDirection converts user input into a Direction. Matching is
// case-insensitive and accepts the aliases "top", "bottom" and "center".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "above", "top", "up":
		return Above, nil
	case "below", "bottom", "down":
		return Below, nil
	case "within", "center", "centre":
		return Within, nil
	}
	return "", errs.New(errs.ErrCodeInvalidDirection, "unknown direction %q (want left, right, above, below or within)", s)
}
