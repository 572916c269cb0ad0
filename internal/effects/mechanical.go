package effects

import (
	"math"

	"github.com/tphakala/go-retro-voice/internal/filter"
	"github.com/tphakala/go-retro-voice/internal/mathutil"
)

// MechanicalRumble adds low-frequency turntable rumble at rmsDB dBFS plus a
// short thump once per revolution of a 78 rpm disc.
func MechanicalRumble(x []float64, sampleRate, rmsDB float64, seed uint64) []float64 {
	n := len(x)
	out := make([]float64, n)
	copy(out, x)
	if n == 0 || sampleRate <= 0 {
		return out
	}

	level := mathutil.DBToLinear(rmsDB)
	dist := gaussian(1, seed, mechanicalStream)
	raw := make([]float64, n)
	for i := range raw {
		raw[i] = dist.Rand()
	}
	rumble := filter.FiltFilt(filter.DesignLowpass(sampleRate, rumbleCutoffHz, rumbleOrder), raw)

	var sum float64
	for _, v := range rumble {
		sum += v * v
	}
	rms := math.Sqrt(sum / float64(n))
	if rms > 0 {
		g := level / rms
		for i, v := range rumble {
			out[i] += g * v
		}
	}

	period := int(math.Round(sampleRate / rotationHz))
	width := max(int(sampleRate*thumpWidthSeconds), 1)
	for start := period / 2; start < n; start += period {
		for k := 0; k < width && start+k < n; k++ {
			// Half-sine bump.
			out[start+k] += thumpLevel * level * math.Sin(math.Pi*float64(k)/float64(width))
		}
	}
	return out
}
