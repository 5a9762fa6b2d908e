package csscolors

import "fmt"

// RGBA describes a color by its red, green, and blue channels plus an
// alpha channel, where alpha 0 is fully transparent and 1 fully opaque.
type RGBA struct {
	R, G, B, A Ratio
}

// NewRGBA builds an RGBA color from raw byte channels.
func NewRGBA(r, g, b, a uint8) RGBA {
	return RGBA{
		R: RatioFromByte(r),
		G: RatioFromByte(g),
		B: RatioFromByte(b),
		A: RatioFromByte(a),
	}
}

// CSS returns the color in the form "rgba(R, G, B, A)" with the alpha
// rendered as a two-decimal fraction of [0, 1].
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)",
		c.R.Byte(), c.G.Byte(), c.B.Byte(), c.A.Float())
}

func (c RGBA) String() string {
	return c.CSS()
}

// ToRGB discards the alpha channel.
func (c RGBA) ToRGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// ToRGBA returns the color unchanged.
func (c RGBA) ToRGBA() RGBA {
	return c
}

// ToHSL converts the color to HSL, discarding the alpha channel.
func (c RGBA) ToHSL() HSL {
	return c.ToRGB().ToHSL()
}

// ToHSLA converts the color to HSLA, carrying the alpha channel over.
func (c RGBA) ToHSLA() HSLA {
	hsl := c.ToHSL()
	return NewHSLA(hsl.H.Degrees(), hsl.S.Percent(), hsl.L.Percent(), c.A.Byte())
}

// Saturate increases saturation by amount percentage points, operating
// in HSLA space and preserving alpha.
func (c RGBA) Saturate(amount uint8) RGBA {
	return c.ToHSLA().Saturate(amount).ToRGBA()
}

// Desaturate decreases saturation by amount percentage points, operating
// in HSLA space and preserving alpha.
func (c RGBA) Desaturate(amount uint8) RGBA {
	return c.ToHSLA().Desaturate(amount).ToRGBA()
}

// Lighten increases lightness by amount percentage points, operating in
// HSLA space and preserving alpha.
func (c RGBA) Lighten(amount uint8) RGBA {
	return c.ToHSLA().Lighten(amount).ToRGBA()
}

// Darken decreases lightness by amount percentage points, operating in
// HSLA space and preserving alpha.
func (c RGBA) Darken(amount uint8) RGBA {
	return c.ToHSLA().Darken(amount).ToRGBA()
}

// FadeIn makes the color more opaque, saturating at fully opaque.
func (c RGBA) FadeIn(amount uint8) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A.Add(RatioFromByte(amount))}
}

// FadeOut makes the color more transparent, saturating at fully
// transparent.
func (c RGBA) FadeOut(amount uint8) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A.Sub(RatioFromByte(amount))}
}

// Fade sets an absolute alpha.
func (c RGBA) Fade(alpha uint8) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: RatioFromByte(alpha)}
}

// Spin rotates the hue by degrees, negative counter-clockwise, and
// returns the RGB representation.
func (c RGBA) Spin(degrees int) RGB {
	return c.ToHSL().Spin(degrees)
}

// Mix blends two colors in variable proportion, taking both alpha
// channels into account. The weight is a percentage balance point: 100
// keeps the receiver entirely, 0 yields the other color. An operand
// without an alpha channel is treated as fully opaque.
//
// The blend weight for the color channels combines the caller's weight
// with the difference between the two alphas, the same algorithm Sass
// and Less use for mix().
func (c RGBA) Mix(other Color, weight uint8) RGBA {
	rhs := other.ToRGBA()

	ratioWeight := RatioFromPercent(weight)

	// Scale the weight and the alpha difference into [-1, 1].
	w := ratioWeight.Float()*2 - 1
	a := c.A.Float() - rhs.A.Float()

	// Combine the two into a single channel weight, falling back to the
	// raw weight when the denominator would be zero.
	rgbWeight := w
	if w*a != -1 {
		rgbWeight = (w + a) / (1 + w*a)
	}

	// Back into [0, 1].
	rgbWeight = (rgbWeight + 1) / 2

	rgbLHS := RatioFromFloat(rgbWeight)
	rgbRHS := RatioFromFloat(1).Sub(rgbLHS)

	alphaLHS := ratioWeight
	alphaRHS := RatioFromFloat(1).Sub(alphaLHS)

	return RGBA{
		R: c.R.Mul(rgbLHS).Add(rhs.R.Mul(rgbRHS)),
		G: c.G.Mul(rgbLHS).Add(rhs.G.Mul(rgbRHS)),
		B: c.B.Mul(rgbLHS).Add(rhs.B.Mul(rgbRHS)),
		A: c.A.Mul(alphaLHS).Add(rhs.A.Mul(alphaRHS)),
	}
}

// Tint mixes the color with opaque white at the given weight.
func (c RGBA) Tint(weight uint8) RGBA {
	return c.Mix(NewRGBA(255, 255, 255, 255), weight)
}

// Shade mixes the color with opaque black at the given weight.
func (c RGBA) Shade(weight uint8) RGBA {
	return c.Mix(NewRGBA(0, 0, 0, 255), weight)
}

// Greyscale removes all saturation, preserving hue, lightness, and
// alpha.
func (c RGBA) Greyscale() RGBA {
	return c.ToHSLA().Greyscale().ToRGBA()
}
