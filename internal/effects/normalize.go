package effects

import (
	"math"

	"github.com/tphakala/go-retro-voice/internal/mathutil"
	"github.com/tphakala/simd/f64"
)

// Peak returns the largest absolute sample of x.
func Peak(x []float64) float64 {
	var peak float64
	for _, v := range x {
		peak = math.Max(peak, math.Abs(v))
	}
	return peak
}

// NormalizePeak rescales x so its peak sits at targetDB dBFS. The measured
// peak is offset by 1e-9, so silence stays silent.
func NormalizePeak(x []float64, targetDB float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	gain := mathutil.DBToLinear(targetDB) / (Peak(x) + peakEpsilon)
	f64.Scale(out, x, gain)
	return out
}
