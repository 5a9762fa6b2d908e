package csscolors

import (
	"fmt"
	"math"
)

// RGB describes a color by how much red, green, and blue it contains.
// Each channel is a Ratio over the 0-255 byte range.
type RGB struct {
	R, G, B Ratio
}

// NewRGB builds an RGB color from raw byte channels.
func NewRGB(r, g, b uint8) RGB {
	return RGB{
		R: RatioFromByte(r),
		G: RatioFromByte(g),
		B: RatioFromByte(b),
	}
}

// CSS returns the color in the form "rgb(R, G, B)".
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R.Byte(), c.G.Byte(), c.B.Byte())
}

func (c RGB) String() string {
	return c.CSS()
}

// ToRGB returns the color unchanged.
func (c RGB) ToRGB() RGB {
	return c
}

// ToRGBA returns the color as fully opaque RGBA.
func (c RGB) ToRGBA() RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// ToHSL converts the color to its HSL representation.
//
// Equal channels mean the color is achromatic, a shade of grey with no
// hue or saturation, and any channel doubles as the lightness. The
// shortcut also keeps the general formula from dividing by zero.
func (c RGB) ToHSL() HSL {
	if c.R == c.G && c.G == c.B {
		return HSL{H: NewAngle(0), S: 0, L: c.R}
	}

	r := c.R.Float()
	g := c.G.Float()
	b := c.B.Float()

	max := b
	if r > g && r > b {
		max = r
	} else if g > b {
		max = g
	}

	min := b
	if r < g && r < b {
		min = r
	} else if g < b {
		min = g
	}

	lightness := (max + min) / 2

	// The denominator flips at the midpoint so saturation stays in [0, 1]
	// on both sides of it.
	var saturation float64
	if lightness < 0.5 {
		saturation = (max - min) / (max + min)
	} else {
		saturation = (max - min) / (2 - max - min)
	}

	// The channel holding the maximum decides which sixth of the wheel
	// the hue starts from; the other two channels offset within it.
	var hue float64
	switch {
	case max == r:
		hue = (g - b) / (max - min)
	case max == g:
		hue = 2 + (b-r)/(max-min)
	default:
		hue = 4 + (r-g)/(max-min)
	}

	hue *= 60
	if hue <= 0 {
		hue += 360
	}

	return HSL{
		H: NewAngle(uint16(math.Round(hue))),
		S: RatioFromFloat(saturation),
		L: RatioFromFloat(lightness),
	}
}

// ToHSLA converts the color to fully opaque HSLA.
func (c RGB) ToHSLA() HSLA {
	hsl := c.ToHSL()
	return NewHSLA(hsl.H.Degrees(), hsl.S.Percent(), hsl.L.Percent(), 255)
}

// Saturate increases saturation by amount percentage points, operating
// in HSL space.
func (c RGB) Saturate(amount uint8) RGB {
	return c.ToHSL().Saturate(amount).ToRGB()
}

// Desaturate decreases saturation by amount percentage points, operating
// in HSL space.
func (c RGB) Desaturate(amount uint8) RGB {
	return c.ToHSL().Desaturate(amount).ToRGB()
}

// Lighten increases lightness by amount percentage points, operating in
// HSL space.
func (c RGB) Lighten(amount uint8) RGB {
	return c.ToHSL().Lighten(amount).ToRGB()
}

// Darken decreases lightness by amount percentage points, operating in
// HSL space.
func (c RGB) Darken(amount uint8) RGB {
	return c.ToHSL().Darken(amount).ToRGB()
}

// FadeIn has no effect: an opaque color has no transparency to fade.
func (c RGB) FadeIn(amount uint8) RGB {
	return c
}

// FadeOut has no effect: an opaque color has no transparency to fade.
func (c RGB) FadeOut(amount uint8) RGB {
	return c
}

// Fade sets an absolute alpha, producing the RGBA counterpart.
func (c RGB) Fade(alpha uint8) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: RatioFromByte(alpha)}
}

// Spin rotates the hue by degrees, negative counter-clockwise, and
// returns the RGB representation.
func (c RGB) Spin(degrees int) RGB {
	return c.ToHSL().Spin(degrees)
}

// Mix blends the color with another at the given percentage weight,
// treating the receiver as fully opaque. See RGBA.Mix.
func (c RGB) Mix(other Color, weight uint8) RGBA {
	return c.ToRGBA().Mix(other, weight)
}

// Tint mixes the color with white at the given weight.
func (c RGB) Tint(weight uint8) RGBA {
	return c.ToRGBA().Tint(weight)
}

// Shade mixes the color with black at the given weight.
func (c RGB) Shade(weight uint8) RGBA {
	return c.ToRGBA().Shade(weight)
}

// Greyscale removes all saturation, preserving hue and lightness.
func (c RGB) Greyscale() RGB {
	return c.ToHSL().Greyscale().ToRGB()
}
