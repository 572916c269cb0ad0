package effects

import (
	"math"

	"github.com/tphakala/go-retro-voice/internal/mathutil"
)

// Compress applies a static soft-knee compressor. threshold is a linear
// amplitude (0.3 ≈ -10.5 dBFS); levels above it are reduced by ratio with a
// 6 dB knee centred on the threshold. Ratios below 1 are treated as 1.
func Compress(x []float64, threshold, ratio float64) []float64 {
	out := make([]float64, len(x))
	if ratio <= 1 || threshold <= 0 {
		copy(out, x)
		return out
	}

	thresholdDB := mathutil.LinearToDB(threshold)
	for i, v := range x {
		levelDB := mathutil.LinearToDB(math.Abs(v))
		gainDB := gainComputer(levelDB, thresholdDB, ratio) - levelDB
		out[i] = v * mathutil.DBToLinear(gainDB)
	}
	return out
}

// gainComputer maps an input level to an output level in dB.
func gainComputer(levelDB, thresholdDB, ratio float64) float64 {
	over := levelDB - thresholdDB
	halfKnee := compressorKneeDB / 2

	switch {
	case over <= -halfKnee:
		return levelDB
	case over >= halfKnee:
		return thresholdDB + over/ratio
	default:
		k := over + halfKnee
		return levelDB + (1/ratio-1)*k*k/(2*compressorKneeDB)
	}
}
