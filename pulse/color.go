package pulse

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/oliverbestmann/voxelmesh/glm"
)

var ColorWhite = ColorLinearRGBA(1, 1, 1, 1)
var ColorBlack = ColorLinearRGBA(0, 0, 0, 1)

// Color is an a straight rgba color value with alpha in linear rgb color space.
// The default value of a Color value is fully opaque white.
type Color struct {
	r1, g1, b1, a1 float32
}

// ColorLinearRGBA creates a new Color value from the given color values.
func ColorLinearRGBA(r, g, b, a float32) Color {
	return Color{
		r1: r - 1,
		g1: g - 1,
		b1: b - 1,
		a1: a - 1,
	}
}

// ColorSRGBA creates a Color value from non linear srgb encoded values. The color values
// will be transferred into linear rgb space.
func ColorSRGBA(r, g, b, a float32) Color {
	r = degamma(r)
	g = degamma(g)
	b = degamma(b)

	return ColorLinearRGBA(r, g, b, a)
}

// ParseColor parses an srgb color in the form #rrggbb or #rrggbbaa.
func ParseColor(value string) (Color, error) {
	hex := strings.TrimPrefix(value, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q: expected #rrggbb or #rrggbbaa", value)
	}

	if len(hex) == 6 {
		hex += "ff"
	}

	rgba, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", value, err)
	}

	component := func(shift int) float32 {
		return float32((rgba>>shift)&0xff) / 255
	}

	return ColorSRGBA(component(24), component(16), component(8), component(0)), nil
}

// ToVec returns a glm.Vec4f containing the components of this Color instance in
// linear rgb space.
func (c Color) ToVec() glm.Vec4f {
	return glm.Vec4f{
		c.r1 + 1,
		c.g1 + 1,
		c.b1 + 1,
		c.a1 + 1,
	}
}

func (c Color) ToWGPU() [4]float32 {
	return c.ToVec().ToWGPU()
}

// Components returns the color components.
func (c Color) Components() (r, g, b, a float32) {
	return c.ToVec().XYZW()
}

// WithAlpha returns a new color with the alpha component set to the given value.
func (c Color) WithAlpha(alpha float32) Color {
	c.a1 = alpha - 1
	return c
}

func degamma(value float32) float32 {
	x := float64(value)

	// https://www.w3.org/TR/css-color-4/#color-conversion-code
	sign := math.Copysign(1, x)
	abs := math.Abs(x)
	if abs <= 0.04045 {
		return float32(x / 12.92)
	}

	return float32(sign * math.Pow((abs+0.055)/1.055, 2.4))
}
