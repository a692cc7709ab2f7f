package palette

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/huestep/internal/colour"
)

func TestPresetsGrayIsFixed(t *testing.T) {
	gray, ok := Presets().Get(GrayName)
	if !ok {
		t.Fatal("gray preset missing")
	}

	wantLight := Ramp{"#f7f8fa", "#f2f3f5", "#e5e6eb", "#c9cdd4", "#a9aeb8", "#86909c", "#6b7785", "#4e5969", "#272e3b", "#1d2129"}
	wantDark := Ramp{"#17171a", "#2e2e30", "#484849", "#5f5f60", "#78787a", "#929293", "#ababac", "#c5c5c5", "#dfdfdf", "#f6f6f6"}

	if diff := cmp.Diff(wantLight, gray.Light); diff != "" {
		t.Errorf("gray light mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantDark, gray.Dark); diff != "" {
		t.Errorf("gray dark mismatch (-want +got):\n%s", diff)
	}
	if gray.Primary != "#6b7785" {
		t.Errorf("gray primary = %s, want #6b7785", gray.Primary)
	}
}

func TestPresetsTable(t *testing.T) {
	presets := Presets()

	wantNames := []string{
		"red", "orangered", "orange", "gold", "yellow", "lime", "green",
		"cyan", "blue", "arcoblue", "purple", "pinkpurple", "magenta", "gray",
	}
	if diff := cmp.Diff(wantNames, presets.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if presets.Len() != 14 {
		t.Errorf("Len() = %d, want 14", presets.Len())
	}

	blue, ok := presets.Get("blue")
	if !ok {
		t.Fatal("blue preset missing")
	}
	if blue.Primary != "#3491FA" {
		t.Errorf("blue primary = %s, want #3491FA", blue.Primary)
	}
	if diff := cmp.Diff(arcoBlueLight, blue.Light); diff != "" {
		t.Errorf("blue light mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(arcoBlueDark, blue.Dark); diff != "" {
		t.Errorf("blue dark mismatch (-want +got):\n%s", diff)
	}

	for _, b := range Brands() {
		p, ok := presets.Get(b.Name)
		if !ok {
			t.Errorf("preset %s missing", b.Name)
			continue
		}
		seed := colour.MustParse(b.Color)
		if diff := cmp.Diff(GenerateList(seed, Options{}), p.Light); diff != "" {
			t.Errorf("%s light differs from GenerateList:\n%s", b.Name, diff)
		}
		if diff := cmp.Diff(GenerateList(seed, Options{Dark: true}), p.Dark); diff != "" {
			t.Errorf("%s dark differs from GenerateList:\n%s", b.Name, diff)
		}
		if p.Light.At(BaseIndex) != seed.Hex() {
			t.Errorf("%s light base = %s, want %s", b.Name, p.Light.At(BaseIndex), seed.Hex())
		}
	}
}

func TestPresetsImmutable(t *testing.T) {
	first := Presets()

	names := first.Names()
	names[0] = "mutated"

	m := first.Map()
	delete(m, "red")
	m["blue"] = PresetColor{Primary: "mutated"}

	b := Brands()
	b[0].Color = "#000000"

	again := Presets()
	if again.Names()[0] != "red" {
		t.Error("mutating Names() changed the shared table")
	}
	if _, ok := again.Get("red"); !ok {
		t.Error("mutating Map() removed a shared entry")
	}
	if blue, _ := again.Get("blue"); blue.Primary != "#3491FA" {
		t.Error("mutating Map() replaced a shared entry")
	}
	if Brands()[0].Color != "#F53F3F" {
		t.Error("mutating Brands() changed the built-in table")
	}
}

func TestBuildPresets(t *testing.T) {
	presets, err := BuildPresets([]Brand{
		{Name: "brand", Color: "#1890ff"},
		{Name: "gray", Color: "#000000"},
		{Name: "accent", Color: "rebeccapurple"},
	})
	if err != nil {
		t.Fatalf("BuildPresets error = %v", err)
	}

	if diff := cmp.Diff([]string{"brand", "accent", "gray"}, presets.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	brand, _ := presets.Get("brand")
	if diff := cmp.Diff(antBlueLight, brand.Light); diff != "" {
		t.Errorf("brand light mismatch (-want +got):\n%s", diff)
	}
	if brand.Primary != "#1890ff" {
		t.Errorf("primary = %s, want the seed string verbatim", brand.Primary)
	}

	gray, _ := presets.Get(GrayName)
	if diff := cmp.Diff(GrayPreset(), gray); diff != "" {
		t.Errorf("gray was regenerated (-want +got):\n%s", diff)
	}

	var order []string
	for name := range presets.All() {
		order = append(order, name)
	}
	if diff := cmp.Diff(presets.Names(), order); diff != "" {
		t.Errorf("All() order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPresetsInvalidColour(t *testing.T) {
	_, err := BuildPresets([]Brand{{Name: "broken", Color: "#nothex"}})
	if !errors.Is(err, colour.ErrInvalidColour) {
		t.Errorf("BuildPresets error = %v, want ErrInvalidColour", err)
	}
}

func TestSelect(t *testing.T) {
	presets := Presets()

	sub, err := presets.Select("gray", "blue", "gray")
	if err != nil {
		t.Fatalf("Select error = %v", err)
	}
	if diff := cmp.Diff([]string{"gray", "blue"}, sub.Names()); diff != "" {
		t.Errorf("Select names mismatch (-want +got):\n%s", diff)
	}

	all, err := presets.Select()
	if err != nil || all.Len() != presets.Len() {
		t.Errorf("Select() = %d presets, %v; want whole table", all.Len(), err)
	}

	if _, err := presets.Select("blue", "chartreuse"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Select unknown error = %v, want ErrUnknownPreset", err)
	}
}

func TestPresetsMarshalJSON(t *testing.T) {
	sub, err := Presets().Select("gray")
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(sub)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	var decoded map[string]PresetColor
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if diff := cmp.Diff(map[string]PresetColor{GrayName: GrayPreset()}, decoded); diff != "" {
		t.Errorf("decoded mismatch (-want +got):\n%s", diff)
	}
}
