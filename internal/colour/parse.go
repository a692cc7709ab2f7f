package colour

import (
	"errors"
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var (
	// ErrInvalidColour is returned when an input cannot be interpreted as a colour.
	ErrInvalidColour = errors.New("invalid colour")

	// ErrUnsupportedType is returned by From for values of an unknown Go type.
	ErrUnsupportedType = errors.New("unsupported colour type")
)

var (
	hexPattern = regexp.MustCompile(`^#?([0-9a-f]{3,4}|[0-9a-f]{6}|[0-9a-f]{8})$`)
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*([0-9.]+%?)\s*[,\s]\s*([0-9.]+%?)\s*[,\s]\s*([0-9.]+%?)\s*(?:[,/]\s*[0-9.]+%?\s*)?\)$`)
	// Hue may be negative or carry a deg suffix; hsv() is not CSS but is accepted for symmetry.
	cylPattern = regexp.MustCompile(`^(hsla?|hsv)\(\s*(-?[0-9.]+)(?:deg)?\s*[,\s]\s*([0-9.]+)%?\s*[,\s]\s*([0-9.]+)%?\s*(?:[,/]\s*[0-9.]+%?\s*)?\)$`)
)

// From converts any supported colour-like value into a Colour.
// Supported: string, Colour, RGB, HSV, HSL, colorful.Color and image/color.Color.
func From(v any) (Colour, error) {
	switch c := v.(type) {
	case Colour:
		return c, nil
	case *Colour:
		if c == nil {
			return Colour{}, fmt.Errorf("%w: nil", ErrUnsupportedType)
		}
		return *c, nil
	case string:
		return Parse(c)
	case RGB:
		return FromRGB(c.R, c.G, c.B), nil
	case HSV:
		return FromHSV(c.H, c.S, c.V), nil
	case HSL:
		return FromHSL(c.H, c.S, c.L), nil
	case colorful.Color:
		return fromColorful(c), nil
	case color.Color:
		cf, ok := colorful.MakeColor(c)
		if !ok {
			return Colour{}, fmt.Errorf("%w: fully transparent colour", ErrInvalidColour)
		}
		return fromColorful(cf), nil
	case nil:
		return Colour{}, fmt.Errorf("%w: nil", ErrUnsupportedType)
	default:
		return Colour{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// Parse parses a textual colour. Accepted forms, case-insensitive:
//
//	#rgb  #rgba  #rrggbb  #rrggbbaa   (the # is optional, alpha is ignored)
//	rgb(r, g, b)  rgba(r, g, b, a)    (channels 0-255 or percentages)
//	hsl(h, s%, l%)  hsla(...)  hsv(h, s%, v%)
//	CSS named colours (e.g. "rebeccapurple")
func Parse(s string) (Colour, error) {
	value := strings.ToLower(strings.TrimSpace(s))
	if value == "" {
		return Colour{}, fmt.Errorf("%w: empty string", ErrInvalidColour)
	}

	if named, ok := colornames.Map[value]; ok {
		return FromRGB(named.R, named.G, named.B), nil
	}

	if m := hexPattern.FindStringSubmatch(value); m != nil {
		return parseHex(m[1])
	}

	if m := rgbPattern.FindStringSubmatch(value); m != nil {
		c, err := parseRGBFunc(m[1:4])
		if err != nil {
			return Colour{}, fmt.Errorf("%w: %q: %w", ErrInvalidColour, s, err)
		}
		return c, nil
	}

	if m := cylPattern.FindStringSubmatch(value); m != nil {
		c, err := parseCylindrical(m[1], m[2:5])
		if err != nil {
			return Colour{}, fmt.Errorf("%w: %q: %w", ErrInvalidColour, s, err)
		}
		return c, nil
	}

	return Colour{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
}

// MustParse is like Parse but panics if the colour cannot be parsed.
func MustParse(s string) Colour {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex parses 3, 4, 6 or 8 hex digits without the leading #.
func parseHex(digits string) (Colour, error) {
	// Expand shorthand format (RGB[A] -> RRGGBB[AA]).
	if len(digits) == 3 || len(digits) == 4 {
		expanded := make([]byte, 0, len(digits)*2)
		for i := 0; i < len(digits); i++ {
			expanded = append(expanded, digits[i], digits[i])
		}
		digits = string(expanded)
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return Colour{}, fmt.Errorf("%w: invalid hex component %q", ErrInvalidColour, digits[i*2:i*2+2])
		}
		ch[i] = uint8(v)
	}
	return FromRGB(ch[0], ch[1], ch[2]), nil
}

func parseRGBFunc(parts []string) (Colour, error) {
	var ch [3]uint8
	for i, p := range parts {
		scale := 255.0
		if strings.HasSuffix(p, "%") {
			p = strings.TrimSuffix(p, "%")
			scale = 100.0
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Colour{}, fmt.Errorf("channel %d: %w", i, err)
		}
		ch[i] = channel(v / scale)
	}
	return FromRGB(ch[0], ch[1], ch[2]), nil
}

func parseCylindrical(fn string, parts []string) (Colour, error) {
	var vals [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return Colour{}, fmt.Errorf("component %d: %w", i, err)
		}
		vals[i] = v
	}
	if fn == "hsv" {
		return FromHSV(vals[0], vals[1], vals[2]), nil
	}
	return FromHSL(vals[0], vals[1], vals[2]), nil
}
