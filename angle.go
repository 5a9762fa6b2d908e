package csscolors

import "strconv"

// Angle is a position on the color wheel in whole degrees, always
// normalized into [0, 360). 0 is red, 120 is green, 240 is blue.
type Angle uint16

// NewAngle returns the angle at d degrees, normalized into [0, 360).
func NewAngle(d uint16) Angle {
	return Angle(d % 360)
}

// Degrees returns the normalized degree value.
func (a Angle) Degrees() uint16 {
	return uint16(a)
}

// Add returns the angle rotated clockwise by o. Both operands are below
// 360, so the sum is below 720 and a single modulo normalizes it.
func (a Angle) Add(o Angle) Angle {
	return Angle((uint16(a) + uint16(o)) % 360)
}

// Sub returns the angle rotated counter-clockwise by o, adding a full
// revolution first so the intermediate value never goes negative.
func (a Angle) Sub(o Angle) Angle {
	return Angle((uint16(a) + 360 - uint16(o)) % 360)
}

func (a Angle) String() string {
	return strconv.Itoa(int(a))
}
