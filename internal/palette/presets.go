package palette

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jmylchreest/huestep/internal/colour"
)

// GrayName is the reserved preset name for the fixed gray ramp.
const GrayName = "gray"

// ErrUnknownPreset is returned when selecting a preset that does not exist.
var ErrUnknownPreset = errors.New("unknown preset")

// Brand is a named seed colour.
type Brand struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Color string `json:"color" yaml:"color" toml:"color"`
}

// PresetColor holds both gradients of a named colour.
type PresetColor struct {
	Light   Ramp   `json:"light" yaml:"light" toml:"light"`
	Dark    Ramp   `json:"dark" yaml:"dark" toml:"dark"`
	Primary string `json:"primary" yaml:"primary" toml:"primary"`
}

// PresetColors is an immutable, ordered table of presets.
type PresetColors struct {
	names  []string
	colors map[string]PresetColor
}

var brands = []Brand{
	{Name: "red", Color: "#F53F3F"},
	{Name: "orangered", Color: "#F77234"},
	{Name: "orange", Color: "#FF7D00"},
	{Name: "gold", Color: "#F7BA1E"},
	{Name: "yellow", Color: "#FADC19"},
	{Name: "lime", Color: "#9FDB1D"},
	{Name: "green", Color: "#00B42A"},
	{Name: "cyan", Color: "#14C9C9"},
	{Name: "blue", Color: "#3491FA"},
	{Name: "arcoblue", Color: "#165DFF"},
	{Name: "purple", Color: "#722ED1"},
	{Name: "pinkpurple", Color: "#D91AD9"},
	{Name: "magenta", Color: "#F5319D"},
}

// Brands returns a copy of the built-in brand colour table.
func Brands() []Brand {
	out := make([]Brand, len(brands))
	copy(out, brands)
	return out
}

// GrayPreset returns the fixed gray ramps. They are not generated.
func GrayPreset() PresetColor {
	return PresetColor{
		Light: Ramp{
			"#f7f8fa",
			"#f2f3f5",
			"#e5e6eb",
			"#c9cdd4",
			"#a9aeb8",
			"#86909c",
			"#6b7785",
			"#4e5969",
			"#272e3b",
			"#1d2129",
		},
		Dark: Ramp{
			"#17171a",
			"#2e2e30",
			"#484849",
			"#5f5f60",
			"#78787a",
			"#929293",
			"#ababac",
			"#c5c5c5",
			"#dfdfdf",
			"#f6f6f6",
		},
		Primary: "#6b7785",
	}
}

var builtinPresets = sync.OnceValue(func() PresetColors {
	presets, err := BuildPresets(brands)
	if err != nil {
		panic("palette: invalid built-in brand table: " + err.Error())
	}
	return presets
})

// Presets returns the preset table for the built-in brands plus gray.
// The table is built once and shared; it cannot be modified.
func Presets() PresetColors {
	return builtinPresets()
}

// NewPreset generates both gradients for a seed colour.
func NewPreset(seed colour.Colour, primary string) PresetColor {
	return PresetColor{
		Light:   GenerateList(seed, Options{}),
		Dark:    GenerateList(seed, Options{Dark: true}),
		Primary: primary,
	}
}

// BuildPresets generates presets for each brand in order and appends the
// fixed gray entry. A brand named gray is replaced by the fixed entry.
func BuildPresets(list []Brand) (PresetColors, error) {
	p := PresetColors{
		names:  make([]string, 0, len(list)+1),
		colors: make(map[string]PresetColor, len(list)+1),
	}

	for _, b := range list {
		if b.Name == GrayName {
			continue
		}
		seed, err := colour.Parse(b.Color)
		if err != nil {
			return PresetColors{}, err
		}
		if _, exists := p.colors[b.Name]; !exists {
			p.names = append(p.names, b.Name)
		}
		p.colors[b.Name] = NewPreset(seed, b.Color)
	}

	p.names = append(p.names, GrayName)
	p.colors[GrayName] = GrayPreset()

	return p, nil
}

// Names returns preset names in table order, gray last.
func (p PresetColors) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Get returns the preset with the given name.
func (p PresetColors) Get(name string) (PresetColor, bool) {
	c, ok := p.colors[name]
	return c, ok
}

// Len returns the number of presets.
func (p PresetColors) Len() int {
	return len(p.names)
}

// Map returns a copy of the table keyed by name.
func (p PresetColors) Map() map[string]PresetColor {
	out := make(map[string]PresetColor, len(p.colors))
	for k, v := range p.colors {
		out[k] = v
	}
	return out
}

// All iterates presets in table order.
func (p PresetColors) All() func(func(string, PresetColor) bool) {
	return func(yield func(string, PresetColor) bool) {
		for _, name := range p.names {
			if !yield(name, p.colors[name]) {
				return
			}
		}
	}
}

// MarshalJSON encodes the table as an object keyed by preset name.
func (p PresetColors) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.colors)
}

// Select returns a table holding only the named presets, in the order given.
// No names selects the whole table.
func (p PresetColors) Select(names ...string) (PresetColors, error) {
	if len(names) == 0 {
		return p, nil
	}

	out := PresetColors{
		names:  make([]string, 0, len(names)),
		colors: make(map[string]PresetColor, len(names)),
	}
	for _, name := range names {
		c, ok := p.colors[name]
		if !ok {
			return PresetColors{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
		}
		if _, dup := out.colors[name]; dup {
			continue
		}
		out.names = append(out.names, name)
		out.colors[name] = c
	}
	return out, nil
}
