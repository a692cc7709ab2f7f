// Package colour converts between colour encodings and renders colours as text.
//
// A Colour remembers the model it was constructed in (RGB, HSV or HSL).
// Reading a component of that same model returns it verbatim. HSL reads as
// HSV directly; every other read converts on demand through go-colorful.
package colour

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

type model uint8

const (
	modelRGB model = iota
	modelHSV
	modelHSL
)

// Colour is an immutable colour value.
//
// For the RGB model the components are channels in [0,1]. For the HSV and
// HSL models the first component is a hue in degrees [0,360) and the other
// two are percentages in [0,100].
type Colour struct {
	model model
	c     [3]float64
}

// RGB represents a colour as 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as an uppercase hex string (e.g., "#1A2B3C").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R, rgb.G, rgb.B)
}

// HSV is a hue/saturation/value triple. H is in degrees, S and V are percentages.
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// HSL is a hue/saturation/lightness triple. H is in degrees, S and L are percentages.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// FromRGB builds a colour from 8-bit channels.
func FromRGB(r, g, b uint8) Colour {
	return Colour{
		model: modelRGB,
		c:     [3]float64{float64(r) / 255, float64(g) / 255, float64(b) / 255},
	}
}

// FromHSV builds a colour in the HSV model. The hue is wrapped into [0,360),
// saturation and value are clamped into [0,100].
func FromHSV(h, s, v float64) Colour {
	return Colour{model: modelHSV, c: [3]float64{wrapHue(h), clampPercent(s), clampPercent(v)}}
}

// FromHSL builds a colour in the HSL model. The hue is wrapped into [0,360),
// saturation and lightness are clamped into [0,100].
func FromHSL(h, s, l float64) Colour {
	return Colour{model: modelHSL, c: [3]float64{wrapHue(h), clampPercent(s), clampPercent(l)}}
}

// fromColorful converts a go-colorful colour into the RGB model.
func fromColorful(c colorful.Color) Colour {
	c = c.Clamped()
	return Colour{model: modelRGB, c: [3]float64{c.R, c.G, c.B}}
}

// Colorful returns the colour as a go-colorful value.
func (c Colour) Colorful() colorful.Color {
	switch c.model {
	case modelHSV:
		return colorful.Hsv(c.c[0], c.c[1]/100, c.c[2]/100)
	case modelHSL:
		return colorful.Hsl(c.c[0], c.c[1]/100, c.c[2]/100)
	default:
		return colorful.Color{R: c.c[0], G: c.c[1], B: c.c[2]}
	}
}

// RGBA implements image/color.Color.
func (c Colour) RGBA() (r, g, b, a uint32) {
	return c.Colorful().Clamped().RGBA()
}

// HSV returns the colour in the HSV model.
func (c Colour) HSV() HSV {
	switch c.model {
	case modelHSV:
		return HSV{H: c.c[0], S: c.c[1], V: c.c[2]}
	case modelHSL:
		return hslToHSV(c.c[0], c.c[1], c.c[2])
	}
	h, s, v := c.Colorful().Hsv()
	return HSV{H: h, S: s * 100, V: v * 100}
}

// HSL returns the colour in the HSL model.
func (c Colour) HSL() HSL {
	if c.model == modelHSL {
		return HSL{H: c.c[0], S: c.c[1], L: c.c[2]}
	}
	h, s, l := c.Colorful().Hsl()
	return HSL{H: h, S: s * 100, L: l * 100}
}

// RGB returns the colour as rounded 8-bit channels.
func (c Colour) RGB() RGB {
	if c.model == modelRGB {
		return RGB{R: channel(c.c[0]), G: channel(c.c[1]), B: channel(c.c[2])}
	}
	r, g, b := c.Colorful().Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Hue returns the hue in degrees [0,360). Achromatic colours report 0.
func (c Colour) Hue() float64 {
	if c.model != modelRGB {
		return c.c[0]
	}
	return c.HSV().H
}

// SaturationV returns the HSV saturation as a percentage.
func (c Colour) SaturationV() float64 {
	return c.HSV().S
}

// Value returns the HSV value as a percentage.
func (c Colour) Value() float64 {
	return c.HSV().V
}

// Lightness returns the HSL lightness as a percentage.
func (c Colour) Lightness() float64 {
	return c.HSL().L
}

// Equal reports whether two colours render to the same 8-bit channels.
func (c Colour) Equal(other Colour) bool {
	return c.RGB() == other.RGB()
}

// Round rounds half away from zero for non-negative inputs, matching how
// colour components are rounded before being stringified.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

func channel(x float64) uint8 {
	return uint8(Round(math.Max(0, math.Min(1, x)) * 255))
}

// hslToHSV converts between the two cylindrical models without passing
// through RGB, so the hue is carried over exactly. Black keeps a nominal
// saturation derived from a 1% lightness floor.
func hslToHSV(h, s, l float64) HSV {
	s /= 100
	l /= 100
	smin := s
	lmin := math.Max(l, 0.01)

	l *= 2
	if l <= 1 {
		s *= l
	} else {
		s *= 2 - l
	}
	if lmin <= 1 {
		smin *= lmin
	} else {
		smin *= 2 - lmin
	}

	v := (l + s) / 2
	var sv float64
	if l == 0 {
		sv = 2 * smin / (lmin + smin)
	} else {
		sv = 2 * s / (l + s)
	}
	return HSV{H: h, S: sv * 100, V: v * 100}
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clampPercent(x float64) float64 {
	return math.Max(0, math.Min(100, x))
}
