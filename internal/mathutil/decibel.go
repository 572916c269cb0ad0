package mathutil

import "math"

// DBToLinear converts a level in dB to a linear amplitude: 10^(dB/20).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/dbAmplitudeFactor)
}

// LinearToDB converts a linear amplitude to dB. Amplitudes below 1e-10
// (including zero and negative values) report -200 dB.
func LinearToDB(linear float64) float64 {
	if !(linear > minLinearLevel) {
		linear = minLinearLevel
	}
	return dbAmplitudeFactor * math.Log10(linear)
}

// Clamp restricts v to [lo, hi]. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
