package csscolors

import "fmt"

// HSLA describes a color by hue, saturation, and lightness plus an alpha
// channel, where alpha 0 is fully transparent and 1 fully opaque.
type HSLA struct {
	H       Angle
	S, L, A Ratio
}

// NewHSLA builds an HSLA color from a hue in degrees, saturation and
// lightness percentages, and a raw alpha byte.
func NewHSLA(h uint16, s, l, a uint8) HSLA {
	return HSLA{
		H: NewAngle(h),
		S: RatioFromPercent(s),
		L: RatioFromPercent(l),
		A: RatioFromByte(a),
	}
}

// CSS returns the color in the form "hsla(H, S%, L%, A)" with the alpha
// rendered as a two-decimal fraction of [0, 1].
func (c HSLA) CSS() string {
	return fmt.Sprintf("hsla(%d, %s, %s, %.2f)", c.H.Degrees(), c.S, c.L, c.A.Float())
}

func (c HSLA) String() string {
	return c.CSS()
}

// ToRGB converts the color to RGB, discarding the alpha channel.
func (c HSLA) ToRGB() RGB {
	return c.ToHSL().ToRGB()
}

// ToRGBA converts the color to RGBA, carrying the alpha channel over.
func (c HSLA) ToRGBA() RGBA {
	rgb := c.ToRGB()
	return RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: c.A}
}

// ToHSL discards the alpha channel.
func (c HSLA) ToHSL() HSL {
	return HSL{H: c.H, S: c.S, L: c.L}
}

// ToHSLA returns the color unchanged.
func (c HSLA) ToHSLA() HSLA {
	return c
}

// Saturate increases saturation by amount percentage points, preserving
// alpha.
func (c HSLA) Saturate(amount uint8) HSLA {
	return HSLA{H: c.H, S: c.S.Add(RatioFromPercent(amount)), L: c.L, A: c.A}
}

// Desaturate decreases saturation by amount percentage points,
// preserving alpha.
func (c HSLA) Desaturate(amount uint8) HSLA {
	return HSLA{H: c.H, S: c.S.Sub(RatioFromPercent(amount)), L: c.L, A: c.A}
}

// Lighten increases lightness by amount percentage points, preserving
// alpha.
func (c HSLA) Lighten(amount uint8) HSLA {
	return HSLA{H: c.H, S: c.S, L: c.L.Add(RatioFromPercent(amount)), A: c.A}
}

// Darken decreases lightness by amount percentage points, preserving
// alpha.
func (c HSLA) Darken(amount uint8) HSLA {
	return HSLA{H: c.H, S: c.S, L: c.L.Sub(RatioFromPercent(amount)), A: c.A}
}

// FadeIn makes the color more opaque, saturating at fully opaque.
func (c HSLA) FadeIn(amount uint8) HSLA {
	return HSLA{H: c.H, S: c.S, L: c.L, A: c.A.Add(RatioFromByte(amount))}
}

// FadeOut makes the color more transparent, saturating at fully
// transparent.
func (c HSLA) FadeOut(amount uint8) HSLA {
	return HSLA{H: c.H, S: c.S, L: c.L, A: c.A.Sub(RatioFromByte(amount))}
}

// Fade sets an absolute alpha.
func (c HSLA) Fade(alpha uint8) HSLA {
	return HSLA{H: c.H, S: c.S, L: c.L, A: RatioFromByte(alpha)}
}

// Spin rotates the hue by degrees, negative counter-clockwise, and
// returns the RGB representation.
func (c HSLA) Spin(degrees int) RGB {
	return c.ToHSL().Spin(degrees)
}

// Mix blends the color with another at the given percentage weight,
// operating in RGBA space and converting back. See RGBA.Mix.
func (c HSLA) Mix(other Color, weight uint8) HSLA {
	return c.ToRGBA().Mix(other, weight).ToHSLA()
}

// Tint mixes the color with white at the given weight.
func (c HSLA) Tint(weight uint8) RGBA {
	return c.ToRGBA().Tint(weight)
}

// Shade mixes the color with black at the given weight.
func (c HSLA) Shade(weight uint8) RGBA {
	return c.ToRGBA().Shade(weight)
}

// Greyscale removes all saturation, preserving hue, lightness, and
// alpha.
func (c HSLA) Greyscale() HSLA {
	return HSLA{H: c.H, S: 0, L: c.L, A: c.A}
}
