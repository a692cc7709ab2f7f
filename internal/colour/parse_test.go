package colour

import (
	"errors"
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "hex lowercase", input: "#1890ff", want: "#1890FF"},
		{name: "hex uppercase", input: "#F53F3F", want: "#F53F3F"},
		{name: "hex without hash", input: "165dff", want: "#165DFF"},
		{name: "hex shorthand", input: "#fff", want: "#FFFFFF"},
		{name: "hex shorthand with alpha", input: "#0f08", want: "#00FF00"},
		{name: "hex with alpha", input: "#3491fa80", want: "#3491FA"},
		{name: "surrounding whitespace", input: "  #3491FA\n", want: "#3491FA"},
		{name: "rgb", input: "rgb(24, 144, 255)", want: "#1890FF"},
		{name: "rgb percentages", input: "rgb(100%, 0%, 50%)", want: "#FF0080"},
		{name: "rgba space separated", input: "rgba(24 144 255 / 0.5)", want: "#1890FF"},
		{name: "rgb out of range channel", input: "rgb(300, 0, 0)", want: "#FF0000"},
		{name: "hsl", input: "hsl(0, 100%, 50%)", want: "#FF0000"},
		{name: "hsl with deg", input: "hsl(120deg 100% 25%)", want: "#008000"},
		{name: "hsla", input: "hsla(0, 100%, 50%, 0.3)", want: "#FF0000"},
		{name: "hsv", input: "hsv(210, 100%, 100%)", want: "#0080FF"},
		{name: "named", input: "rebeccapurple", want: "#663399"},
		{name: "named mixed case", input: "RED", want: "#FF0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got := c.Hex(); got != tt.want {
				t.Errorf("Parse(%q).Hex() = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"notacolour",
		"#12",
		"#ggg",
		"#12345",
		"rgb(1, 2)",
		"hsl(10, 20%)",
		"rgb(a, b, c)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", input)
			}
			if !errors.Is(err, ErrInvalidColour) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidColour", input, err)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic on invalid input")
		}
	}()
	MustParse("definitely not a colour")
}

func TestFrom(t *testing.T) {
	parsed := MustParse("#3491FA")

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "string", input: "#3491FA", want: "#3491FA"},
		{name: "colour", input: parsed, want: "#3491FA"},
		{name: "colour pointer", input: &parsed, want: "#3491FA"},
		{name: "rgb struct", input: RGB{R: 52, G: 145, B: 250}, want: "#3491FA"},
		{name: "hsv struct", input: HSV{H: 0, S: 100, V: 100}, want: "#FF0000"},
		{name: "hsl struct", input: HSL{H: 120, S: 100, L: 25}, want: "#008000"},
		{name: "image colour", input: color.RGBA{R: 22, G: 93, B: 255, A: 255}, want: "#165DFF"},
		{name: "colorful", input: colorful.Color{R: 1, G: 0, B: 0}, want: "#FF0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := From(tt.input)
			if err != nil {
				t.Fatalf("From(%v) error = %v", tt.input, err)
			}
			if got := c.Hex(); got != tt.want {
				t.Errorf("From(%v).Hex() = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromErrors(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  error
	}{
		{name: "nil", input: nil, want: ErrUnsupportedType},
		{name: "nil colour pointer", input: (*Colour)(nil), want: ErrUnsupportedType},
		{name: "int", input: 42, want: ErrUnsupportedType},
		{name: "transparent", input: color.RGBA{}, want: ErrInvalidColour},
		{name: "bad string", input: "nope", want: ErrInvalidColour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := From(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("From(%v) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}
