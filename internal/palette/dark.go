package palette

import (
	"math"

	"github.com/jmylchreest/huestep/internal/colour"
)

// Dark returns the dark-mode gradient entry at index for seed.
//
// Hue and value are borrowed from the light-mode entry at the mirrored
// index (11 - index); saturation follows its own linear ramp around a
// mid-saturation baseline derived from the seed. Indices outside 1..10
// extrapolate the saturation ramp.
func Dark(seed colour.Colour, index int, format colour.Format) string {
	return darkColour(seed, index).Format(format)
}

func darkColour(seed colour.Colour, index int) colour.Colour {
	refIndex := int(Clamp(float64(Steps+1-index), 1, Steps))
	// The reference round-trips through hex so it carries 8-bit precision.
	reference := colour.MustParse(Light(seed, refIndex, colour.FormatHex)).HSV()

	origin := seed.HSV()
	midSat := Clamp(midSaturation(origin.H, origin.S), 0, 100)
	baseSat := colour.FromHSV(origin.H, midSat, origin.V).SaturationV()

	s := darkSaturation(baseSat, midSat, index)

	return colour.FromHSV(reference.H, s, reference.V)
}

// midSaturation pulls the seed saturation down for the index-6 tone.
// Hues in [50,191) lose 20 points, all others 15.
func midSaturation(hue, sat float64) float64 {
	if hue >= 50 && hue < 191 {
		return sat - 20
	}
	return sat - 15
}

// darkSaturation returns the saturation at index given the baseline.
// Darker indices step down towards MinSaturation over four steps, lighter
// indices step up towards 100 over five.
func darkSaturation(baseSat, midSat float64, index int) float64 {
	stepDown := math.Ceil((baseSat - MinSaturation) / darkSteps)
	stepUp := math.Ceil((100 - baseSat) / lightSteps)

	switch {
	case index < BaseIndex:
		return Clamp(baseSat+float64(BaseIndex-index)*stepUp, 0, 100)
	case index == BaseIndex:
		return Clamp(midSat, 0, 100)
	default:
		return Clamp(baseSat-stepDown*float64(index-BaseIndex), 0, 100)
	}
}

// ColorPaletteDark parses input and returns its dark-mode entry at index.
// Parse failures are returned unchanged.
func ColorPaletteDark(input any, index int, format colour.Format) (string, error) {
	seed, err := colour.From(input)
	if err != nil {
		return "", err
	}
	return Dark(seed, index, format), nil
}
