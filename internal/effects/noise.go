package effects

import (
	"math/rand/v2"

	"github.com/tphakala/go-retro-voice/internal/mathutil"
	"gonum.org/v1/gonum/stat/distuv"
)

// gaussian returns a seeded zero-mean normal distribution.
func gaussian(sigma float64, seed, stream uint64) distuv.Normal {
	return distuv.Normal{
		Mu:    0,
		Sigma: sigma,
		Src:   rand.NewPCG(seed, stream),
	}
}

// AddNoise adds Gaussian noise whose RMS is rmsDB dBFS. The same seed
// always produces the same noise.
func AddNoise(x []float64, rmsDB float64, seed uint64) []float64 {
	out := make([]float64, len(x))
	dist := gaussian(mathutil.DBToLinear(rmsDB), seed, noiseStream)
	for i, v := range x {
		out[i] = v + dist.Rand()
	}
	return out
}
