package palette

import "github.com/jmylchreest/huestep/internal/colour"

// Light returns the light-mode gradient entry at index for seed.
//
// Index 6 renders the seed directly, so the base entry never drifts through
// an HSV round trip. Indices outside 1..10 are not rejected; the step
// formulas extrapolate.
func Light(seed colour.Colour, index int, format colour.Format) string {
	if index == BaseIndex {
		return seed.Format(format)
	}
	return lightColour(seed, index).Format(format)
}

// lightColour computes the adjusted colour for a non-base index.
func lightColour(seed colour.Colour, index int) colour.Colour {
	base := seed.HSV()

	isLight := index < BaseIndex
	stepIndex := index - BaseIndex
	if isLight {
		stepIndex = BaseIndex - index
	}

	h := ComputeHue(base.H, isLight, stepIndex, HueStep)

	var s, v float64
	if isLight {
		s = ComputeLightSaturation(base.S, stepIndex, MinSaturation)
		v = ComputeLightValue(base.V, stepIndex, MaxValue)
	} else {
		s = ComputeDarkSaturation(base.S, stepIndex, MaxSaturation)
		v = ComputeDarkValue(base.V, stepIndex, MinValue)
	}

	return colour.FromHSV(h, s, v)
}

// ColorPalette parses input and returns its light-mode entry at index.
// Parse failures are returned unchanged.
func ColorPalette(input any, index int, format colour.Format) (string, error) {
	seed, err := colour.From(input)
	if err != nil {
		return "", err
	}
	return Light(seed, index, format), nil
}
