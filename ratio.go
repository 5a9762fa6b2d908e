package csscolors

import (
	"fmt"
	"math"
)

// Ratio is a bounded fraction in [0, 1], stored as an 8-bit numerator
// over 255. It backs every color channel: red, green, and blue directly,
// and saturation, lightness, and alpha through their percentage or byte
// forms.
//
// Add and Sub saturate at the byte bounds instead of wrapping, so a
// Ratio can never leave its range. Mul is the one lossy operation: it
// runs on the float representations and re-quantizes the product.
type Ratio uint8

// RatioFromByte returns the Ratio n/255.
func RatioFromByte(n uint8) Ratio {
	return Ratio(n)
}

// RatioFromPercent returns the Ratio closest to p percent. Values above
// 100 are accepted and scale past the nominal range, saturating at the
// byte bound; callers wanting strict range checks must validate first.
func RatioFromPercent(p uint8) Ratio {
	return RatioFromFloat(float64(p) / 100)
}

// RatioFromFloat quantizes x into an 8-bit fraction, rounding to the
// nearest numerator. Values outside [0, 1] saturate at the bounds.
func RatioFromFloat(x float64) Ratio {
	scaled := math.Round(x * 255)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return Ratio(scaled)
}

// Byte returns the numerator of the fraction.
func (r Ratio) Byte() uint8 {
	return uint8(r)
}

// Percent returns the fraction rounded to a whole percentage.
func (r Ratio) Percent() uint8 {
	return uint8(math.Round(float64(r) * 100 / 255))
}

// Float returns the fraction as a value in [0, 1].
func (r Ratio) Float() float64 {
	return float64(r) / 255
}

// Add returns r + o, saturating at 1.
func (r Ratio) Add(o Ratio) Ratio {
	if sum := uint16(r) + uint16(o); sum <= 255 {
		return Ratio(sum)
	}
	return 255
}

// Sub returns r - o, saturating at 0.
func (r Ratio) Sub(o Ratio) Ratio {
	if o >= r {
		return 0
	}
	return r - o
}

// Mul returns the product of the two fractions, re-quantized to the
// nearest 8-bit fraction.
func (r Ratio) Mul(o Ratio) Ratio {
	return RatioFromFloat(r.Float() * o.Float())
}

// String renders the ratio as a whole percentage, the form saturation
// and lightness take in CSS output.
func (r Ratio) String() string {
	return fmt.Sprintf("%d%%", r.Percent())
}
