package colour

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat is returned for an unknown output format name.
var ErrInvalidFormat = errors.New("invalid colour format")

// Format selects how a colour is rendered as text.
type Format string

// Output formats. The zero value renders as hex.
const (
	FormatHex Format = "hex"
	FormatRGB Format = "rgb"
	FormatHSL Format = "hsl"
)

// Formats lists all supported output formats.
var Formats = []Format{FormatHex, FormatRGB, FormatHSL}

// ParseFormat parses a format name. The empty string selects hex.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatHex:
		return FormatHex, nil
	case FormatRGB:
		return FormatRGB, nil
	case FormatHSL:
		return FormatHSL, nil
	default:
		return "", fmt.Errorf("%w: %s (supported: hex, rgb, hsl)", ErrInvalidFormat, s)
	}
}

// String implements pflag.Value.
func (f *Format) String() string {
	if f == nil || *f == "" {
		return string(FormatHex)
	}
	return string(*f)
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	parsed, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

// Hex renders the colour as "#RRGGBB".
func (c Colour) Hex() string {
	return c.RGB().Hex()
}

// RGBString renders the colour as "rgb(R, G, B)" with rounded channels.
func (c Colour) RGBString() string {
	return c.RGB().String()
}

// HSLString renders the colour as "hsl(H, S%, L%)" with rounded components.
func (c Colour) HSLString() string {
	hsl := c.HSL()
	h := int(Round(hsl.H)) % 360
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, int(Round(hsl.S)), int(Round(hsl.L)))
}

// RGBTriplet renders the colour as "R,G,B" with no spaces, for use in CSS
// custom properties consumed as rgb(var(--name)).
func (c Colour) RGBTriplet() string {
	rgb := c.RGB()
	return fmt.Sprintf("%d,%d,%d", rgb.R, rgb.G, rgb.B)
}

// String renders the colour as hex.
func (c Colour) String() string {
	return c.Hex()
}

// Format renders the colour in the given format. Unknown formats render as hex.
func (c Colour) Format(f Format) string {
	switch f {
	case FormatRGB:
		return c.RGBString()
	case FormatHSL:
		return c.HSLString()
	default:
		return c.Hex()
	}
}

// RGBStr parses any colour-like value and renders it as "R,G,B".
func RGBStr(v any) (string, error) {
	c, err := From(v)
	if err != nil {
		return "", err
	}
	return c.RGBTriplet(), nil
}
