// Package palette lets colors be animated with package tween.
//
// Colors are blended in perceptual color spaces rather than in RGB, which
// avoids the muddy midpoints of naive RGB interpolation. [Color] blends in
// CIE L*a*b*, [HCL] blends in its polar form (LCh) and takes the short way
// around the hue circle.
package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"honnef.co/go/tween"
)

var (
	_ tween.Measurable[Color] = Color{}
	_ tween.Measurable[HCL]   = HCL{}
)

// Color is a color that is mixed in L*a*b* space. Its distance is the
// CIEDE2000 color difference, so paths through several colors change color
// at a perceptually even rate.
type Color colorful.Color

// Hex parses a color in "#rrggbb" or "#rgb" notation.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("palette: %w", err)
	}
	return Color(c), nil
}

// MustHex is like [Hex] but panics if s can't be parsed.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) Mix(o Color, t float64) Color {
	switch t {
	case 0:
		return c
	case 1:
		return o
	}
	return Color(colorful.Color(c).BlendLab(colorful.Color(o), t))
}

func (c Color) Distance(o Color) float64 {
	return colorful.Color(c).DistanceCIEDE2000(colorful.Color(o))
}

// RGB255 returns the color as 8-bit channels, clamping out of gamut colors.
func (c Color) RGB255() (r, g, b uint8) {
	return colorful.Color(c).Clamped().RGB255()
}

func (c Color) String() string {
	return colorful.Color(c).Clamped().Hex()
}

// HCL is a color that is mixed in the polar form of L*a*b*, along the
// shorter hue arc. Blends are clamped to the RGB gamut. Its distance is the
// euclidean distance in L*a*b*.
type HCL colorful.Color

func (c HCL) Mix(o HCL, t float64) HCL {
	switch t {
	case 0:
		return c
	case 1:
		return o
	}
	return HCL(colorful.Color(c).BlendHcl(colorful.Color(o), t))
}

func (c HCL) Distance(o HCL) float64 {
	return colorful.Color(c).DistanceLab(colorful.Color(o))
}

func (c HCL) String() string {
	return colorful.Color(c).Clamped().Hex()
}

// Gradient returns keyframes that move through colors at a perceptually even
// rate, taking length in total. It panics if colors is empty.
func Gradient[D tween.Duration[D]](colors []Color, length D, easing tween.Easing) tween.Poly[Color, D] {
	return tween.NewPoly(colors, length, easing)
}
