package model

import (
	"fmt"
	"strings"
)

// Orientation is the stacking axis of a timeline
type Orientation int

const (
	// OrientationVertical stacks children top to bottom with a vertical line
	OrientationVertical Orientation = 0

	// OrientationHorizontal stacks children left to right with a horizontal line
	OrientationHorizontal Orientation = 1
)

// String returns the option value used in preferences and style files
func (o Orientation) String() string {
	switch o {
	case OrientationVertical:
		return "vertical"
	case OrientationHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Valid reports whether o is one of the declared orientations
func (o Orientation) Valid() bool {
	return o == OrientationVertical || o == OrientationHorizontal
}

// IsVertical returns true if children stack along the y axis
func (o Orientation) IsVertical() bool {
	return o == OrientationVertical
}

// ParseOrientation accepts the names returned by String as well as the
// numeric constants 0 and 1
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "0", "":
		return OrientationVertical, nil
	case "horizontal", "1":
		return OrientationHorizontal, nil
	}
	return OrientationVertical, fmt.Errorf("unknown orientation %q", s)
}
