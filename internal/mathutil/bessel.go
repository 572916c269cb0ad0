// Package mathutil provides the numeric helpers shared by the filter,
// resampling and effect packages.
package mathutil

import (
	"math"
)

// BesselI0 computes the modified Bessel function of the first kind, order zero: I₀(x).
// It drives the Kaiser window used by the sinc resampler.
//
// The implementation uses Chebyshev polynomial approximations:
//   - For |x| < 3.75: direct polynomial series expansion
//   - Otherwise: asymptotic expansion with exponential scaling
//
// Reference: Abramowitz & Stegun, "Handbook of Mathematical Functions".
func BesselI0(x float64) float64 {
	ax := math.Abs(x)

	if ax < besselSmallArgThreshold {
		// I₀(x) ≈ 1 + P(t) where t = (x/3.75)²
		t := x / besselSmallArgThreshold
		t *= t

		return 1.0 + t*(besselI0Coeff1+t*(besselI0Coeff2+t*(besselI0Coeff3+
			t*(besselI0Coeff4+t*(besselI0Coeff5+t*besselI0Coeff6)))))
	}

	// I₀(x) ≈ (eˣ / √x) * P(t) where t = 3.75/x
	t := besselSmallArgThreshold / ax
	result := besselI0AsympCoeff0 + t*(besselI0AsympCoeff1+t*(besselI0AsympCoeff2+
		t*(besselI0AsympCoeff3+t*(besselI0AsympCoeff4+t*(besselI0AsympCoeff5+
			t*(besselI0AsympCoeff6+t*(besselI0AsympCoeff7+t*besselI0AsympCoeff8)))))))

	return math.Exp(ax) * result / math.Sqrt(ax)
}

// KaiserBeta computes the Kaiser window β parameter from the desired
// stopband attenuation in decibels (Kaiser & Schafer):
//   - att > 50 dB: β = 0.1102 * (att - 8.7)
//   - 21 dB ≤ att ≤ 50 dB: β = 0.5842 * (att - 21)^0.4 + 0.07886 * (att - 21)
//   - att < 21 dB: β = 0
func KaiserBeta(attenuation float64) float64 {
	if attenuation > kaiserAttHigh {
		return kaiserBetaHighCoeff1 * (attenuation - kaiserBetaHighOffset)
	} else if attenuation >= kaiserAttMedium {
		delta := attenuation - kaiserAttMedium
		return kaiserBetaMediumCoeff1*math.Pow(delta, kaiserBetaMediumPower) + kaiserBetaMediumCoeff2*delta
	}
	return 0.0
}

// KaiserWindowAt evaluates a Kaiser window of half-width halfWidth at
// offset x from its centre. Offsets at or beyond the half-width return 0.
func KaiserWindowAt(x, halfWidth, beta float64) float64 {
	if halfWidth <= 0 {
		return 0
	}
	r := x / halfWidth
	if r <= -1 || r >= 1 {
		return 0
	}
	return BesselI0(beta*math.Sqrt(1-r*r)) / BesselI0(beta)
}

// EstimateFilterLength estimates the FIR length needed for the given
// attenuation and normalized transition bandwidth:
//
//	N ≈ (att - 8) / (2.285 * 2π * Δω)
//
// The result is odd and bounded to [3, 8191].
func EstimateFilterLength(attenuation, transitionBW float64) int {
	if transitionBW <= 0 {
		transitionBW = defaultTransitionBW
	}

	numTaps := (attenuation - kaiserFilterLengthOffset) /
		(kaiserFilterLengthMultiplier * kaiserFilterLengthPiFactor * math.Pi * transitionBW)

	taps := int(math.Ceil(numTaps))
	if taps%2 == 0 {
		taps++
	}

	return min(max(taps, minFilterLength), maxFilterLength)
}
