package filter

import (
	"math"
	"math/cmplx"
)

// Response holds the single-pass frequency response of a designed filter.
type Response struct {
	// Frequencies in Hz at which the response was evaluated.
	Frequencies []float64

	// Magnitude at each frequency (linear scale).
	Magnitude []float64

	// Phase at each frequency (radians).
	Phase []float64
}

// ComputeResponse evaluates the cascade at the given frequencies (Hz) for
// a filter running at sampleRate. Zero-phase filtering squares the
// magnitude and cancels the phase.
func ComputeResponse(s Spec, frequencies []float64, sampleRate float64) Response {
	resp := Response{
		Frequencies: append([]float64(nil), frequencies...),
		Magnitude:   make([]float64, len(frequencies)),
		Phase:       make([]float64, len(frequencies)),
	}
	for i, f := range frequencies {
		omega := 2 * math.Pi * f / sampleRate
		h := complex(1, 0)
		for _, sec := range s.Sections {
			h *= sec.at(omega)
		}
		resp.Magnitude[i] = cmplx.Abs(h)
		resp.Phase[i] = cmplx.Phase(h)
	}
	return resp
}

// MagnitudeDB converts linear magnitude to decibels.
func MagnitudeDB(magnitude float64) float64 {
	const (
		minMagnitude = 1e-10 // Avoid log(0)
		dbMultiplier = 20.0
	)

	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}
