package palette

import (
	"fmt"
	"math"
	"reflect"

	"github.com/jsvensson/csscolors"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// capsule wraps a color so it can travel through HCL evaluation as an
// opaque cty value instead of a string that would need re-parsing.
type capsule struct {
	color csscolors.Color
}

var colorType = cty.Capsule("color", reflect.TypeOf(capsule{}))

func colorVal(c csscolors.Color) cty.Value {
	return cty.CapsuleVal(colorType, &capsule{color: c})
}

func colorFromVal(val cty.Value) (csscolors.Color, error) {
	if !val.Type().Equals(colorType) {
		return nil, fmt.Errorf("expected a color value, got %s", val.Type().FriendlyName())
	}
	return val.EncapsulatedValue().(*capsule).color, nil
}

// colorFunctions returns the function table available in palette files:
// the four model constructors plus the full transformation vocabulary.
func colorFunctions() map[string]function.Function {
	return map[string]function.Function{
		"rgb":  makeRGBFunc(),
		"rgba": makeRGBAFunc(),
		"hsl":  makeHSLFunc(),
		"hsla": makeHSLAFunc(),

		"saturate": makeAdjustFunc("Increases saturation by a percentage amount",
			func(c csscolors.Color, amount uint8) csscolors.Color {
				switch v := c.(type) {
				case csscolors.RGB:
					return v.Saturate(amount)
				case csscolors.RGBA:
					return v.Saturate(amount)
				case csscolors.HSL:
					return v.Saturate(amount)
				case csscolors.HSLA:
					return v.Saturate(amount)
				}
				return c
			}),
		"desaturate": makeAdjustFunc("Decreases saturation by a percentage amount",
			func(c csscolors.Color, amount uint8) csscolors.Color {
				switch v := c.(type) {
				case csscolors.RGB:
					return v.Desaturate(amount)
				case csscolors.RGBA:
					return v.Desaturate(amount)
				case csscolors.HSL:
					return v.Desaturate(amount)
				case csscolors.HSLA:
					return v.Desaturate(amount)
				}
				return c
			}),
		"lighten": makeAdjustFunc("Increases lightness by a percentage amount",
			func(c csscolors.Color, amount uint8) csscolors.Color {
				switch v := c.(type) {
				case csscolors.RGB:
					return v.Lighten(amount)
				case csscolors.RGBA:
					return v.Lighten(amount)
				case csscolors.HSL:
					return v.Lighten(amount)
				case csscolors.HSLA:
					return v.Lighten(amount)
				}
				return c
			}),
		"darken": makeAdjustFunc("Decreases lightness by a percentage amount",
			func(c csscolors.Color, amount uint8) csscolors.Color {
				switch v := c.(type) {
				case csscolors.RGB:
					return v.Darken(amount)
				case csscolors.RGBA:
					return v.Darken(amount)
				case csscolors.HSL:
					return v.Darken(amount)
				case csscolors.HSLA:
					return v.Darken(amount)
				}
				return c
			}),
		"fadein": makeAdjustFunc("Makes a color more opaque by a raw alpha amount",
			func(c csscolors.Color, amount uint8) csscolors.Color {
				switch v := c.(type) {
				case csscolors.RGB:
					return v.FadeIn(amount)
				case csscolors.RGBA:
					return v.FadeIn(amount)
				case csscolors.HSL:
					return v.FadeIn(amount)
				case csscolors.HSLA:
					return v.FadeIn(amount)
				}
				return c
			}),
		"fadeout": makeAdjustFunc("Makes a color more transparent by a raw alpha amount",
			func(c csscolors.Color, amount uint8) csscolors.Color {
				switch v := c.(type) {
				case csscolors.RGB:
					return v.FadeOut(amount)
				case csscolors.RGBA:
					return v.FadeOut(amount)
				case csscolors.HSL:
					return v.FadeOut(amount)
				case csscolors.HSLA:
					return v.FadeOut(amount)
				}
				return c
			}),
		"fade": makeAdjustFunc("Sets an absolute alpha on a color",
			func(c csscolors.Color, alpha uint8) csscolors.Color {
				switch v := c.(type) {
				case csscolors.RGB:
					return v.Fade(alpha)
				case csscolors.RGBA:
					return v.Fade(alpha)
				case csscolors.HSL:
					return v.Fade(alpha)
				case csscolors.HSLA:
					return v.Fade(alpha)
				}
				return c
			}),
		"tint": makeAdjustFunc("Mixes a color with white at a percentage weight",
			func(c csscolors.Color, weight uint8) csscolors.Color {
				switch v := c.(type) {
				case csscolors.RGB:
					return v.Tint(weight)
				case csscolors.RGBA:
					return v.Tint(weight)
				case csscolors.HSL:
					return v.Tint(weight)
				case csscolors.HSLA:
					return v.Tint(weight)
				}
				return c
			}),
		"shade": makeAdjustFunc("Mixes a color with black at a percentage weight",
			func(c csscolors.Color, weight uint8) csscolors.Color {
				switch v := c.(type) {
				case csscolors.RGB:
					return v.Shade(weight)
				case csscolors.RGBA:
					return v.Shade(weight)
				case csscolors.HSL:
					return v.Shade(weight)
				case csscolors.HSLA:
					return v.Shade(weight)
				}
				return c
			}),

		"spin":      makeSpinFunc(),
		"mix":       makeMixFunc(),
		"greyscale": makeGreyscaleFunc(),
	}
}

func makeRGBFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds an RGB color from byte channels",
		Params: []function.Parameter{
			{Name: "r", Type: cty.Number},
			{Name: "g", Type: cty.Number},
			{Name: "b", Type: cty.Number},
		},
		Type: function.StaticReturnType(colorType),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return colorVal(csscolors.NewRGB(argByte(args[0]), argByte(args[1]), argByte(args[2]))), nil
		},
	})
}

func makeRGBAFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds an RGBA color from byte channels",
		Params: []function.Parameter{
			{Name: "r", Type: cty.Number},
			{Name: "g", Type: cty.Number},
			{Name: "b", Type: cty.Number},
			{Name: "a", Type: cty.Number},
		},
		Type: function.StaticReturnType(colorType),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return colorVal(csscolors.NewRGBA(argByte(args[0]), argByte(args[1]), argByte(args[2]), argByte(args[3]))), nil
		},
	})
}

func makeHSLFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds an HSL color from degrees and percentages",
		Params: []function.Parameter{
			{Name: "h", Type: cty.Number},
			{Name: "s", Type: cty.Number},
			{Name: "l", Type: cty.Number},
		},
		Type: function.StaticReturnType(colorType),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return colorVal(csscolors.NewHSL(argDegrees(args[0]), argByte(args[1]), argByte(args[2]))), nil
		},
	})
}

func makeHSLAFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds an HSLA color from degrees, percentages, and an alpha byte",
		Params: []function.Parameter{
			{Name: "h", Type: cty.Number},
			{Name: "s", Type: cty.Number},
			{Name: "l", Type: cty.Number},
			{Name: "a", Type: cty.Number},
		},
		Type: function.StaticReturnType(colorType),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			return colorVal(csscolors.NewHSLA(argDegrees(args[0]), argByte(args[1]), argByte(args[2]), argByte(args[3]))), nil
		},
	})
}

// makeAdjustFunc builds a function of the common (color, amount) shape.
func makeAdjustFunc(desc string, apply func(csscolors.Color, uint8) csscolors.Color) function.Function {
	return function.New(&function.Spec{
		Description: desc,
		Params: []function.Parameter{
			{Name: "color", Type: colorType},
			{Name: "amount", Type: cty.Number},
		},
		Type: function.StaticReturnType(colorType),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := colorFromVal(args[0])
			if err != nil {
				return cty.NilVal, err
			}
			return colorVal(apply(c, argByte(args[1]))), nil
		},
	})
}

func makeSpinFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Rotates the hue by a number of degrees, negative counter-clockwise",
		Params: []function.Parameter{
			{Name: "color", Type: colorType},
			{Name: "degrees", Type: cty.Number},
		},
		Type: function.StaticReturnType(colorType),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := colorFromVal(args[0])
			if err != nil {
				return cty.NilVal, err
			}

			f, _ := args[1].AsBigFloat().Float64()
			degrees := int(math.Round(f))
			if degrees >= 360 {
				return cty.NilVal, fmt.Errorf("spin amount must be below a full revolution, got %d", degrees)
			}

			switch v := c.(type) {
			case csscolors.RGB:
				return colorVal(v.Spin(degrees)), nil
			case csscolors.RGBA:
				return colorVal(v.Spin(degrees)), nil
			case csscolors.HSL:
				return colorVal(v.Spin(degrees)), nil
			case csscolors.HSLA:
				return colorVal(v.Spin(degrees)), nil
			}
			return args[0], nil
		},
	})
}

func makeMixFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Blends two colors at a percentage weight, alpha-aware",
		Params: []function.Parameter{
			{Name: "color", Type: colorType},
			{Name: "other", Type: colorType},
			{Name: "weight", Type: cty.Number},
		},
		Type: function.StaticReturnType(colorType),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := colorFromVal(args[0])
			if err != nil {
				return cty.NilVal, err
			}
			other, err := colorFromVal(args[1])
			if err != nil {
				return cty.NilVal, err
			}
			weight := argByte(args[2])

			switch v := c.(type) {
			case csscolors.RGB:
				return colorVal(v.Mix(other, weight)), nil
			case csscolors.RGBA:
				return colorVal(v.Mix(other, weight)), nil
			case csscolors.HSL:
				return colorVal(v.Mix(other, weight)), nil
			case csscolors.HSLA:
				return colorVal(v.Mix(other, weight)), nil
			}
			return args[0], nil
		},
	})
}

func makeGreyscaleFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Removes all saturation from a color",
		Params: []function.Parameter{
			{Name: "color", Type: colorType},
		},
		Type: function.StaticReturnType(colorType),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := colorFromVal(args[0])
			if err != nil {
				return cty.NilVal, err
			}

			switch v := c.(type) {
			case csscolors.RGB:
				return colorVal(v.Greyscale()), nil
			case csscolors.RGBA:
				return colorVal(v.Greyscale()), nil
			case csscolors.HSL:
				return colorVal(v.Greyscale()), nil
			case csscolors.HSLA:
				return colorVal(v.Greyscale()), nil
			}
			return args[0], nil
		},
	})
}

// argByte converts a numeric argument to a byte, clamping out-of-range
// values instead of failing.
func argByte(val cty.Value) uint8 {
	f, _ := val.AsBigFloat().Float64()
	n := math.Round(f)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

// argDegrees converts a numeric argument to a hue in degrees. The
// constructors normalize onto [0, 360), so only the sign needs
// handling here.
func argDegrees(val cty.Value) uint16 {
	f, _ := val.AsBigFloat().Float64()
	n := int(math.Round(f)) % 360
	if n < 0 {
		n += 360
	}
	return uint16(n)
}
