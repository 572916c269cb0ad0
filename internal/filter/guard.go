package filter

import (
	"math"

	"github.com/tphakala/go-retro-voice/internal/mathutil"
)

// NormalizedCutoff maps a lowpass cutoff in Hz to a normalized frequency
// (Nyquist = 1) that is always strictly inside (0, 1):
//
//	min(cutoff, nyquist-100) / nyquist, floored at 50/nyquist
//
// Non-finite or non-positive inputs are clamped rather than rejected.
func NormalizedCutoff(sampleRate, cutoffHz float64) float64 {
	nyq := sampleRate / halfDivisor
	if !(nyq > 0) || math.IsInf(nyq, 0) {
		return clampNorm(math.NaN())
	}
	if math.IsNaN(cutoffHz) {
		cutoffHz = lowpassFloorHz
	}

	norm := math.Min(cutoffHz, nyq-nyquistMarginHz) / nyq
	norm = math.Max(norm, lowpassFloorHz/nyq)
	return clampNorm(norm)
}

// normalizedLowEdge maps a bandpass low edge to (0, 1).
func normalizedLowEdge(sampleRate, loHz float64) float64 {
	nyq := sampleRate / halfDivisor
	if !(nyq > 0) || math.IsInf(nyq, 0) {
		return clampNorm(math.NaN())
	}
	if math.IsNaN(loHz) {
		loHz = bandpassLowFloorHz
	}
	return clampNorm(math.Max(bandpassLowFloorHz, loHz) / nyq)
}

// clampNorm forces a normalized frequency into [ε, 1-ε]. NaN maps to the
// middle of the band.
func clampNorm(v float64) float64 {
	if math.IsNaN(v) {
		return 0.5
	}
	return mathutil.Clamp(v, normEpsilon, 1-normEpsilon)
}

// clampOrder keeps the Butterworth order in [1, 24].
func clampOrder(order int) int {
	return min(max(order, 1), maxOrder)
}

// DesignLowpass designs a Butterworth lowpass. It never fails: the cutoff
// is clamped with NormalizedCutoff and the order bounded to [1, 24].
func DesignLowpass(sampleRate, cutoffHz float64, order int) Spec {
	wn := NormalizedCutoff(sampleRate, cutoffHz)
	order = clampOrder(order)
	return Spec{
		Kind:     Lowpass,
		Order:    order,
		Wn:       []float64{wn},
		Sections: butterLowpass(order, wn),
	}
}

// DesignBandpass designs a Butterworth bandpass of the given order per
// edge. When the clamped band is empty (low >= high) it silently falls
// back to an order-2 lowpass at the clamped high edge and marks the
// result Degraded.
func DesignBandpass(sampleRate, loHz, hiHz float64, order int) Spec {
	lo := normalizedLowEdge(sampleRate, loHz)
	hi := NormalizedCutoff(sampleRate, hiHz)

	if lo >= hi {
		return Spec{
			Kind:     Lowpass,
			Order:    fallbackOrder,
			Wn:       []float64{hi},
			Sections: butterLowpass(fallbackOrder, hi),
			Degraded: true,
		}
	}

	order = clampOrder(order)
	return Spec{
		Kind:     Bandpass,
		Order:    order,
		Wn:       []float64{lo, hi},
		Sections: butterBandpass(order, lo, hi),
	}
}
