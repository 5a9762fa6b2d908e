// Package csscolors implements the RGB, RGBA, HSL, and HSLA color models
// with the CSS/Less-style color operations: conversion between models,
// saturation and lightness adjustment, hue rotation, alpha fading, and
// alpha-aware mixing.
//
// All four models are small immutable value types built on two bounded
// numeric types: Ratio, an 8-bit fraction over 255, and Angle, a degree
// value on the circular [0, 360) hue domain. Every operation returns a
// new value; nothing is mutated in place, so values are freely shareable
// across goroutines.
package csscolors

// Color is the capability every color model shares: conversion to each
// of the four models and rendering to canonical CSS text.
//
// The transformations (Saturate, Lighten, Spin, Mix, and the rest) are
// defined on the concrete models rather than here, so each keeps its
// precise return type; conversion is all an operation like Mix needs
// from an arbitrary operand.
type Color interface {
	// CSS returns the canonical CSS form of the color, e.g.
	// "rgb(250, 128, 114)" or "hsla(6, 93%, 71%, 0.50)".
	CSS() string

	// ToRGB converts the color to its RGB representation. Any alpha
	// channel is discarded without altering the other channels.
	ToRGB() RGB

	// ToRGBA converts the color to its RGBA representation. A color
	// without an alpha channel converts as fully opaque.
	ToRGBA() RGBA

	// ToHSL converts the color to its HSL representation. Any alpha
	// channel is discarded without altering the other channels.
	ToHSL() HSL

	// ToHSLA converts the color to its HSLA representation. A color
	// without an alpha channel converts as fully opaque.
	ToHSLA() HSLA
}

var (
	_ Color = RGB{}
	_ Color = RGBA{}
	_ Color = HSL{}
	_ Color = HSLA{}
)

// hueToChannel maps one of the three rotated hue angles onto a channel
// value in [0, 1] using the standard trapezoidal hue-to-channel mapping.
// temp1 and temp2 are the intermediate terms of the HSL to RGB
// conversion; the region boundaries at 1/6, 1/2, and 2/3 of the circle
// must be reproduced exactly for compatibility.
func hueToChannel(degrees uint16, temp1, temp2 float64) float64 {
	v := float64(degrees) / 360

	switch {
	case v > 2.0/3.0:
		return temp2
	case v > 1.0/2.0:
		return temp2 + (temp1-temp2)*(2.0/3.0-v)*6
	case v > 1.0/6.0:
		return temp1
	default:
		return temp2 + (temp1-temp2)*v*6
	}
}
