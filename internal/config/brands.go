package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/huestep/internal/colour"
	"github.com/jmylchreest/huestep/internal/palette"
)

// ErrInvalidBrands is returned for a malformed brand table file.
var ErrInvalidBrands = errors.New("invalid brands file")

// Brand names double as CSS and Less variable prefixes.
var brandNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

type brandsFile struct {
	Brands []palette.Brand `json:"brands" yaml:"brands" toml:"brands"`
}

// LoadBrands reads a brand table from a YAML, TOML or JSON file chosen by
// extension. Every colour must parse.
func LoadBrands(path string) ([]palette.Brand, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read brands file: %w", err)
	}

	var file brandsFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	case ".json":
		err = json.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q (use .yaml, .toml or .json)", ErrInvalidBrands, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidBrands, path, err)
	}

	if err := validateBrands(file.Brands); err != nil {
		return nil, err
	}
	return file.Brands, nil
}

func validateBrands(list []palette.Brand) error {
	if len(list) == 0 {
		return fmt.Errorf("%w: no brands defined", ErrInvalidBrands)
	}

	seen := make(map[string]bool, len(list))
	for i, b := range list {
		switch {
		case b.Name == "":
			return fmt.Errorf("%w: brand %d has no name", ErrInvalidBrands, i+1)
		case b.Name == palette.GrayName:
			return fmt.Errorf("%w: %q is reserved", ErrInvalidBrands, palette.GrayName)
		case !brandNamePattern.MatchString(b.Name):
			return fmt.Errorf("%w: brand name %q must be lowercase letters, digits, '-' or '_'", ErrInvalidBrands, b.Name)
		case seen[b.Name]:
			return fmt.Errorf("%w: duplicate brand %q", ErrInvalidBrands, b.Name)
		}
		seen[b.Name] = true

		if _, err := colour.Parse(b.Color); err != nil {
			return fmt.Errorf("%w: brand %q: %w", ErrInvalidBrands, b.Name, err)
		}
	}
	return nil
}

// LoadPresets returns the preset table for the brands in path, or the
// built-in table when path is empty.
func LoadPresets(path string) (palette.PresetColors, error) {
	if path == "" {
		return palette.Presets(), nil
	}
	list, err := LoadBrands(path)
	if err != nil {
		return palette.PresetColors{}, err
	}
	return palette.BuildPresets(list)
}
