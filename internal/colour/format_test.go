package colour

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderers(t *testing.T) {
	tests := []struct {
		name    string
		colour  Colour
		hex     string
		rgb     string
		hsl     string
		triplet string
	}{
		{
			name:    "brand blue",
			colour:  MustParse("#1890ff"),
			hex:     "#1890FF",
			rgb:     "rgb(24, 144, 255)",
			hsl:     "hsl(209, 100%, 55%)",
			triplet: "24,144,255",
		},
		{
			name:    "red",
			colour:  MustParse("#FF0000"),
			hex:     "#FF0000",
			rgb:     "rgb(255, 0, 0)",
			hsl:     "hsl(0, 100%, 50%)",
			triplet: "255,0,0",
		},
		{
			name:    "hsl model renders verbatim",
			colour:  FromHSL(120, 100, 25),
			hex:     "#008000",
			rgb:     "rgb(0, 128, 0)",
			hsl:     "hsl(120, 100%, 25%)",
			triplet: "0,128,0",
		},
		{
			name:    "black",
			colour:  FromRGB(0, 0, 0),
			hex:     "#000000",
			rgb:     "rgb(0, 0, 0)",
			hsl:     "hsl(0, 0%, 0%)",
			triplet: "0,0,0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.colour.Hex(); got != tt.hex {
				t.Errorf("Hex() = %s, want %s", got, tt.hex)
			}
			if got := tt.colour.RGBString(); got != tt.rgb {
				t.Errorf("RGBString() = %s, want %s", got, tt.rgb)
			}
			if got := tt.colour.HSLString(); got != tt.hsl {
				t.Errorf("HSLString() = %s, want %s", got, tt.hsl)
			}
			if got := tt.colour.RGBTriplet(); got != tt.triplet {
				t.Errorf("RGBTriplet() = %s, want %s", got, tt.triplet)
			}
			if got := tt.colour.Format(FormatHSL); got != tt.hsl {
				t.Errorf("Format(hsl) = %s, want %s", got, tt.hsl)
			}
			if got := tt.colour.Format(""); got != tt.hex {
				t.Errorf("Format(\"\") = %s, want %s", got, tt.hex)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "", want: FormatHex},
		{input: "hex", want: FormatHex},
		{input: "RGB", want: FormatRGB},
		{input: " hsl ", want: FormatHSL},
		{input: "cmyk", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Fatalf("ParseFormat(%q) error = %v, want ErrInvalidFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatFlagValue(t *testing.T) {
	var f Format
	if f.String() != "hex" {
		t.Errorf("zero Format String() = %q, want hex", f.String())
	}
	if err := f.Set("rgb"); err != nil {
		t.Fatalf("Set(rgb) error = %v", err)
	}
	if f != FormatRGB {
		t.Errorf("after Set(rgb) = %s, want rgb", f)
	}
	if err := f.Set("lab"); err == nil {
		t.Error("Set(lab) expected error")
	}
	if f != FormatRGB {
		t.Errorf("failed Set changed value to %s", f)
	}
	if f.Type() != "format" {
		t.Errorf("Type() = %q, want format", f.Type())
	}
}

func TestRGBStr(t *testing.T) {
	got, err := RGBStr("#F53F3F")
	if err != nil {
		t.Fatalf("RGBStr error = %v", err)
	}
	if got != "245,63,63" {
		t.Errorf("RGBStr = %q, want 245,63,63", got)
	}

	if _, err := RGBStr("bogus"); !errors.Is(err, ErrInvalidColour) {
		t.Errorf("RGBStr(bogus) error = %v, want ErrInvalidColour", err)
	}
}

func TestSwatch(t *testing.T) {
	c := MustParse("#3491FA")

	if got := Swatch(c, 4); !strings.Contains(got, "    ") {
		t.Errorf("Swatch(4) = %q, want at least 4 spaces", got)
	}
	if got := Swatch(c, 0); !strings.Contains(got, strings.Repeat(" ", defaultWidth)) {
		t.Errorf("Swatch(0) = %q, want default width", got)
	}
	if got := SwatchWithText(c, "6", 8); !strings.Contains(got, "6") {
		t.Errorf("SwatchWithText = %q, want label", got)
	}
	if got := SwatchWithText(c, "truncated-label", 4); strings.Contains(got, "truncated-label") {
		t.Errorf("SwatchWithText = %q, want label truncated to width", got)
	}
	if got := FormatWithPreview(c, FormatRGB, 2); !strings.HasSuffix(got, "rgb(52, 145, 250)") {
		t.Errorf("FormatWithPreview = %q, want rgb suffix", got)
	}
}
