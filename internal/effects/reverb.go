package effects

import (
	"math"

	"github.com/tphakala/go-retro-voice/internal/mathutil"
)

// Reverb runs x through a feedback comb, y[n] = x[n] + decay·y[n-D] with
// D = delay·rate samples (at least 1). decay is clamped to [0, 0.999).
// The output has the same length as x; the tail past the end is dropped.
func Reverb(x []float64, sampleRate, delaySeconds, decay float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)

	d := int(math.Round(delaySeconds * sampleRate))
	decay = mathutil.Clamp(decay, 0, MaxReverbDecay)
	if d < 1 || decay == 0 {
		return out
	}

	for i := d; i < len(out); i++ {
		out[i] += decay * out[i-d]
	}
	return out
}
