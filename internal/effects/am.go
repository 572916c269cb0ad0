// Package effects implements the retro effect stages. Every stage is a
// pure function: it returns a new slice and never modifies its input.
package effects

import "math"

// AMModulate multiplies x by the envelope 1 + depth·cos(2π·carrier·t),
// emulating the heterodyne coloration of AM playback.
func AMModulate(x []float64, sampleRate, carrierHz, depth float64) []float64 {
	out := make([]float64, len(x))
	if sampleRate <= 0 {
		copy(out, x)
		return out
	}

	w := 2 * math.Pi * carrierHz / sampleRate
	for i, v := range x {
		out[i] = v * (1 + depth*math.Cos(w*float64(i)))
	}
	return out
}
