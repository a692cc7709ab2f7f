// Package export writes gradients and preset tables in text and config encodings.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/huestep/internal/palette"
)

// ErrInvalidEncoding is returned for an unknown encoding name.
var ErrInvalidEncoding = errors.New("invalid encoding")

// Encoding selects the output document type.
type Encoding string

// Supported encodings.
const (
	EncodingText Encoding = "text"
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
	EncodingTOML Encoding = "toml"
	EncodingCSS  Encoding = "css"
	EncodingLess Encoding = "less"
)

// Encodings lists all supported encodings.
var Encodings = []Encoding{EncodingText, EncodingJSON, EncodingYAML, EncodingTOML, EncodingCSS, EncodingLess}

// ParseEncoding parses an encoding name. The empty string selects text.
func ParseEncoding(s string) (Encoding, error) {
	name := Encoding(strings.ToLower(strings.TrimSpace(s)))
	if name == "" {
		return EncodingText, nil
	}
	if name == "yml" {
		return EncodingYAML, nil
	}
	for _, e := range Encodings {
		if e == name {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: %s (supported: text, json, yaml, toml, css, less)", ErrInvalidEncoding, s)
}

// String implements pflag.Value.
func (e *Encoding) String() string {
	if e == nil || *e == "" {
		return string(EncodingText)
	}
	return string(*e)
}

// Set implements pflag.Value.
func (e *Encoding) Set(s string) error {
	parsed, err := ParseEncoding(s)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Type implements pflag.Value.
func (e *Encoding) Type() string {
	return "encoding"
}

// RampDocument is the structured form of a single named ramp.
type RampDocument struct {
	Name   string   `json:"name" yaml:"name" toml:"name"`
	Dark   bool     `json:"dark" yaml:"dark" toml:"dark"`
	Colors []string `json:"colors" yaml:"colors" toml:"colors"`
}

// WriteRamp writes one ramp. Name prefixes variable names in CSS and Less output.
func WriteRamp(w io.Writer, name string, ramp palette.Ramp, dark bool, enc Encoding) error {
	doc := RampDocument{Name: name, Dark: dark, Colors: ramp.Slice()}

	switch enc {
	case EncodingText, "":
		for _, c := range doc.Colors {
			if _, err := fmt.Fprintln(w, c); err != nil {
				return err
			}
		}
		return nil
	case EncodingJSON:
		return writeJSON(w, doc)
	case EncodingYAML:
		return writeYAML(w, doc)
	case EncodingTOML:
		return writeTOML(w, doc)
	case EncodingCSS:
		selector := lightSelector
		if dark {
			selector = darkSelector
		}
		return writeCSSBlock(w, selector, []namedRamp{{name: name, ramp: ramp}})
	case EncodingLess:
		prefix := name
		if dark {
			prefix = name + "-dark"
		}
		return writeLess(w, []namedRamp{{name: prefix, ramp: ramp}})
	default:
		return fmt.Errorf("%w: %s", ErrInvalidEncoding, enc)
	}
}

// WritePresets writes a whole preset table in table order.
func WritePresets(w io.Writer, presets palette.PresetColors, enc Encoding) error {
	switch enc {
	case EncodingText, "":
		return writePresetText(w, presets)
	case EncodingJSON:
		return writeJSON(w, presets)
	case EncodingYAML:
		return writePresetYAML(w, presets)
	case EncodingTOML:
		return writeTOML(w, presets.Map())
	case EncodingCSS:
		return writePresetCSS(w, presets)
	case EncodingLess:
		return writePresetLess(w, presets)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidEncoding, enc)
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	return enc.Close()
}

func writeTOML(w io.Writer, v any) error {
	enc := toml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to convert to TOML: %w", err)
	}
	return nil
}

// writePresetYAML keeps table order by building the mapping node by hand.
func writePresetYAML(w io.Writer, presets palette.PresetColors) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for name, preset := range presets.All() {
		var value yaml.Node
		if err := value.Encode(preset); err != nil {
			return fmt.Errorf("failed to encode preset %s: %w", name, err)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: name},
			&value,
		)
	}
	return writeYAML(w, root)
}

func writePresetText(w io.Writer, presets palette.PresetColors) error {
	var b strings.Builder
	for name, preset := range presets.All() {
		fmt.Fprintf(&b, "%s (%s)\n", name, preset.Primary)
		fmt.Fprintf(&b, "  light: %s\n", strings.Join(preset.Light.Slice(), " "))
		fmt.Fprintf(&b, "  dark:  %s\n", strings.Join(preset.Dark.Slice(), " "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
