package effects

import (
	"math"
	"math/rand/v2"
)

// AddCrackle adds density impulses (capped at len(x)) at pseudo-random
// positions. Each impulse has a random sign, a magnitude between 0.3 and 1
// times intensity, and a short exponentially decaying tail.
func AddCrackle(x []float64, density, intensity float64, seed uint64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)

	n := len(x)
	events := int(math.Min(math.Max(density, 0), float64(n)))
	if events == 0 || intensity == 0 {
		return out
	}

	rng := rand.New(rand.NewPCG(seed, crackleStream))
	for range events {
		pos := rng.IntN(n)
		amp := intensity * (crackleMinMagnitude + (1-crackleMinMagnitude)*rng.Float64())
		if rng.IntN(2) == 0 {
			amp = -amp
		}
		for k := 0; k < crackleTailSamples && pos+k < n; k++ {
			out[pos+k] += amp
			amp *= -crackleTailDecay
		}
	}
	return out
}
