// Package palette expands a single seed colour into a 10-step gradient.
//
// Index 6 is the seed itself. Indices 1-5 are progressively lighter tints,
// indices 7-10 progressively darker shades. The light-mode and dark-mode
// gradients are computed by two distinct algorithms.
package palette

import "math"

// Gradient constants.
const (
	// BaseIndex is the step index that renders the seed colour unchanged.
	BaseIndex = 6
	// Steps is the number of entries in a gradient.
	Steps = 10

	// HueStep is the hue rotation in degrees applied per step.
	HueStep = 2
	// MinSaturation is the saturation floor for lighter steps.
	MinSaturation = 9
	// MaxSaturation is the saturation ceiling for darker steps.
	MaxSaturation = 100
	// MaxValue is the value ceiling for lighter steps.
	MaxValue = 100
	// MinValue is the value floor for darker steps.
	MinValue = 30

	lightSteps = BaseIndex - 1
	darkSteps  = Steps - BaseIndex
)

// NormalizeHue rounds deg to the nearest whole degree and wraps it into [0,360).
func NormalizeHue(deg float64) float64 {
	h := math.Mod(math.Floor(deg+0.5), 360)
	if h < 0 {
		h += 360
	}
	// math.Mod keeps the sign of the dividend, so -0 can surface here.
	return h + 0
}

// Clamp restricts n to [lo, hi].
func Clamp(n, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, n))
}

// ComputeHue rotates baseHue by stepDeg*stepIndex degrees.
//
// Hues in [60,240] (yellow-green through blue) rotate down when lightening
// and up when darkening; all other hues rotate the opposite way.
func ComputeHue(baseHue float64, isLight bool, stepIndex int, stepDeg float64) float64 {
	direction := 1.0
	if baseHue >= 60 && baseHue <= 240 {
		if isLight {
			direction = -1
		}
	} else if !isLight {
		direction = -1
	}
	return NormalizeHue(baseHue + direction*stepDeg*float64(stepIndex))
}

// ComputeLightSaturation desaturates s by one fifth of its distance to minSat
// per step. Colours already at or below minSat are returned unchanged.
func ComputeLightSaturation(s float64, stepIndex int, minSat float64) float64 {
	if s <= minSat {
		return s
	}
	perStep := (s - minSat) / lightSteps
	return Clamp(s-perStep*float64(stepIndex), 0, 100)
}

// ComputeDarkSaturation saturates s by one quarter of its distance to maxSat per step.
func ComputeDarkSaturation(s float64, stepIndex int, maxSat float64) float64 {
	perStep := (maxSat - s) / darkSteps
	return Clamp(s+perStep*float64(stepIndex), 0, 100)
}

// ComputeLightValue brightens v by one fifth of its distance to maxValue per step.
func ComputeLightValue(v float64, stepIndex int, maxValue float64) float64 {
	perStep := (maxValue - v) / lightSteps
	return Clamp(v+perStep*float64(stepIndex), 0, 100)
}

// ComputeDarkValue darkens v by one quarter of its distance to minValue per
// step. Values already at or below minValue are returned unchanged.
func ComputeDarkValue(v float64, stepIndex int, minValue float64) float64 {
	if v <= minValue {
		return v
	}
	perStep := (v - minValue) / darkSteps
	return Clamp(v-perStep*float64(stepIndex), 0, 100)
}
