package csscolors

import "fmt"

// HSL describes a color by its hue on the color wheel, its saturation
// (0 fully desaturated, 100% full saturation), and its lightness
// (0 black, 100% white).
type HSL struct {
	H    Angle
	S, L Ratio
}

// NewHSL builds an HSL color from a hue in degrees and saturation and
// lightness percentages.
func NewHSL(h uint16, s, l uint8) HSL {
	return HSL{
		H: NewAngle(h),
		S: RatioFromPercent(s),
		L: RatioFromPercent(l),
	}
}

// CSS returns the color in the form "hsl(H, S%, L%)".
func (c HSL) CSS() string {
	return fmt.Sprintf("hsl(%d, %s, %s)", c.H.Degrees(), c.S, c.L)
}

func (c HSL) String() string {
	return c.CSS()
}

// ToRGB converts the color to its RGB representation.
//
// Zero saturation means the color is a shade of grey; every channel is
// the lightness, and the general formula (which would divide by zero)
// never runs. This mirrors the achromatic shortcut in the opposite
// direction.
func (c HSL) ToRGB() RGB {
	if c.S == 0 {
		return RGB{R: c.L, G: c.L, B: c.L}
	}

	s := c.S.Float()
	l := c.L.Float()

	var temp1 float64
	if l < 0.5 {
		temp1 = l * (1 + s)
	} else {
		temp1 = l + s - l*s
	}
	temp2 := 2*l - temp1

	// Rotating the hue a third of a revolution in each direction gives
	// the offset angle for the red and blue channels.
	rotation := NewAngle(120)

	return RGB{
		R: RatioFromFloat(hueToChannel(c.H.Add(rotation).Degrees(), temp1, temp2)),
		G: RatioFromFloat(hueToChannel(c.H.Degrees(), temp1, temp2)),
		B: RatioFromFloat(hueToChannel(c.H.Sub(rotation).Degrees(), temp1, temp2)),
	}
}

// ToRGBA converts the color to fully opaque RGBA.
func (c HSL) ToRGBA() RGBA {
	rgb := c.ToRGB()
	return RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// ToHSL returns the color unchanged.
func (c HSL) ToHSL() HSL {
	return c
}

// ToHSLA returns the color as fully opaque HSLA.
func (c HSL) ToHSLA() HSLA {
	return NewHSLA(c.H.Degrees(), c.S.Percent(), c.L.Percent(), 255)
}

// Saturate increases saturation by amount percentage points, saturating
// at full saturation.
func (c HSL) Saturate(amount uint8) HSL {
	return HSL{H: c.H, S: c.S.Add(RatioFromPercent(amount)), L: c.L}
}

// Desaturate decreases saturation by amount percentage points,
// saturating at zero.
func (c HSL) Desaturate(amount uint8) HSL {
	return HSL{H: c.H, S: c.S.Sub(RatioFromPercent(amount)), L: c.L}
}

// Lighten increases lightness by amount percentage points, saturating at
// white.
func (c HSL) Lighten(amount uint8) HSL {
	return HSL{H: c.H, S: c.S, L: c.L.Add(RatioFromPercent(amount))}
}

// Darken decreases lightness by amount percentage points, saturating at
// black.
func (c HSL) Darken(amount uint8) HSL {
	return HSL{H: c.H, S: c.S, L: c.L.Sub(RatioFromPercent(amount))}
}

// FadeIn has no effect: an opaque color has no transparency to fade.
func (c HSL) FadeIn(amount uint8) HSL {
	return c
}

// FadeOut has no effect: an opaque color has no transparency to fade.
func (c HSL) FadeOut(amount uint8) HSL {
	return c
}

// Fade sets an absolute alpha, producing the HSLA counterpart.
func (c HSL) Fade(alpha uint8) HSLA {
	return HSLA{H: c.H, S: c.S, L: c.L, A: RatioFromByte(alpha)}
}

// Spin rotates the hue by degrees, negative counter-clockwise, and
// returns the RGB representation. The rotation is a delta, not an
// absolute angle: a magnitude of a full revolution or more is a caller
// error and panics.
func (c HSL) Spin(degrees int) RGB {
	if degrees >= 360 {
		panic("csscolors: invalid spin amount")
	}

	h := c.H
	if degrees < 0 {
		h = h.Sub(NewAngle(uint16(-degrees % 360)))
	} else {
		h = h.Add(NewAngle(uint16(degrees)))
	}

	return HSL{H: h, S: c.S, L: c.L}.ToRGB()
}

// Mix blends the color with another at the given percentage weight,
// treating the receiver as fully opaque. See RGBA.Mix.
func (c HSL) Mix(other Color, weight uint8) HSLA {
	return c.ToHSLA().Mix(other, weight)
}

// Tint mixes the color with white at the given weight.
func (c HSL) Tint(weight uint8) RGBA {
	return c.ToRGBA().Tint(weight)
}

// Shade mixes the color with black at the given weight.
func (c HSL) Shade(weight uint8) RGBA {
	return c.ToRGBA().Shade(weight)
}

// Greyscale removes all saturation, preserving hue and lightness. The
// hue no longer contributes once saturation is zero, but it is kept
// rather than reset, matching Desaturate with a full amount.
func (c HSL) Greyscale() HSL {
	return HSL{H: c.H, S: 0, L: c.L}
}
