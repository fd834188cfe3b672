package lattice

import (
	"fmt"
	"strings"
)

// Orientation is a rotation about the Z axis restricted to the four cardinal
// directions. East is zero rotation; the remaining values proceed
// counterclockwise. Every orientation satisfies exactly one of IsEastWest
// and IsNorthSouth.
type Orientation uint8

const (
	East  Orientation = iota // 0
	North                    // pi/2
	West                     // pi
	South                    // 3pi/2
)

// ParseOrientation parses an orientation from its cardinal name ("E", "W",
// "N", "S") or its rotation in degrees ("0", "90", "180", "270").
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "E", "0":
		return East, nil
	case "N", "90":
		return North, nil
	case "W", "180":
		return West, nil
	case "S", "270":
		return South, nil
	}
	return East, fmt.Errorf("unknown orientation %q", s)
}

// String returns the cardinal name of the orientation.
func (o Orientation) String() string {
	switch o {
	case East:
		return "E"
	case North:
		return "N"
	case West:
		return "W"
	case South:
		return "S"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// IsEastWest reports whether the orientation is aligned with the X axis.
func (o Orientation) IsEastWest() bool { return o == East || o == West }

// IsNorthSouth reports whether the orientation is aligned with the Y axis.
func (o Orientation) IsNorthSouth() bool { return o == North || o == South }

// Forward returns the unit step in the orientation's forward direction:
// +X for east, -X for west, +Y for north, -Y for south. Multi-cell blocks
// extend from their anchor along this direction.
func (o Orientation) Forward() IntVec3 {
	switch o {
	case East:
		return XPlus
	case West:
		return XMinus
	case North:
		return YPlus
	default:
		return YMinus
	}
}

// ZRotation returns the rotation angle in radians as a string, the form the
// simulator's graph schema uses for the z-rotation node attribute.
func (o Orientation) ZRotation() string {
	switch o {
	case East:
		return "0"
	case North:
		return "1.5708"
	case West:
		return "3.14159"
	default:
		return "4.71239"
	}
}
