package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmylchreest/huestep/internal/colour"
	"github.com/jmylchreest/huestep/internal/palette"
)

const (
	lightSelector = ":root"
	darkSelector  = "[data-theme='dark']"
)

type namedRamp struct {
	name string
	ramp palette.Ramp
}

// triplet renders a ramp entry as "R,G,B" for use inside rgb(var(...)).
func triplet(entry string) (string, error) {
	c, err := colour.Parse(entry)
	if err != nil {
		return "", err
	}
	return c.RGBTriplet(), nil
}

// writeCSSBlock writes one selector block of custom properties named --<name>-<k>.
func writeCSSBlock(w io.Writer, selector string, ramps []namedRamp) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s {\n", selector)
	for _, r := range ramps {
		for i, entry := range r.ramp {
			t, err := triplet(entry)
			if err != nil {
				return fmt.Errorf("ramp %s: %w", r.name, err)
			}
			fmt.Fprintf(&b, "  --%s-%d: %s;\n", r.name, i+1, t)
		}
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writePresetCSS(w io.Writer, presets palette.PresetColors) error {
	light := make([]namedRamp, 0, presets.Len())
	dark := make([]namedRamp, 0, presets.Len())
	for name, p := range presets.All() {
		light = append(light, namedRamp{name: name, ramp: p.Light})
		dark = append(dark, namedRamp{name: name, ramp: p.Dark})
	}

	if err := writeCSSBlock(w, lightSelector, light); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return writeCSSBlock(w, darkSelector, dark)
}

// writeLess writes @<name>-<k> variables holding the ramp entries verbatim.
func writeLess(w io.Writer, ramps []namedRamp) error {
	var b strings.Builder
	for _, r := range ramps {
		for i, entry := range r.ramp {
			fmt.Fprintf(&b, "@%s-%d: %s;\n", r.name, i+1, entry)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writePresetLess(w io.Writer, presets palette.PresetColors) error {
	ramps := make([]namedRamp, 0, presets.Len()*2)
	for name, p := range presets.All() {
		ramps = append(ramps,
			namedRamp{name: name, ramp: p.Light},
			namedRamp{name: name + "-dark", ramp: p.Dark},
		)
	}
	return writeLess(w, ramps)
}
