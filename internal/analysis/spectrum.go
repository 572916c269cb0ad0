// Package analysis measures rendered buffers: level, spectrum and the
// share of energy inside a frequency band.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/tphakala/go-retro-voice/internal/mathutil"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/dsp/window"
)

// Spectrum is the one-sided magnitude spectrum of a Hann-windowed buffer.
type Spectrum struct {
	// Frequencies holds the bin centre frequencies in Hz.
	Frequencies []float64

	// Magnitude holds the linear bin magnitudes, scaled so a full-scale
	// sine on a bin centre reads close to 1.
	Magnitude []float64
}

// ComputeSpectrum returns the spectrum of x sampled at sampleRate. Buffers
// shorter than two samples or a non-positive rate give an empty spectrum.
func ComputeSpectrum(x []float64, sampleRate float64) Spectrum {
	n := len(x)
	if n < minSpectrumLength || !(sampleRate > 0) {
		return Spectrum{}
	}

	windowed := make([]float64, n)
	copy(windowed, x)
	window.Hann(windowed)

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, windowed)

	// Hann has a coherent gain of 0.5; one-sided bins carry half the power.
	scale := hannScale / float64(n)
	s := Spectrum{
		Frequencies: make([]float64, len(coeffs)),
		Magnitude:   make([]float64, len(coeffs)),
	}
	for i, c := range coeffs {
		s.Frequencies[i] = fft.Freq(i) * sampleRate
		s.Magnitude[i] = cmplx.Abs(c) * scale
	}
	return s
}

// PeakFrequency returns the frequency of the strongest bin above DC.
func (s Spectrum) PeakFrequency() float64 {
	best := 0
	for i := 1; i < len(s.Magnitude); i++ {
		if best == 0 || s.Magnitude[i] > s.Magnitude[best] {
			best = i
		}
	}
	if best == 0 {
		return 0
	}
	return s.Frequencies[best]
}

// BandEnergyRatio returns the fraction of spectral energy of x between
// loHz and hiHz inclusive. A silent buffer reports 0.
func BandEnergyRatio(x []float64, sampleRate, loHz, hiHz float64) float64 {
	s := ComputeSpectrum(x, sampleRate)
	var band, total float64
	for i, m := range s.Magnitude {
		p := m * m
		total += p
		if f := s.Frequencies[i]; f >= loHz && f <= hiHz {
			band += p
		}
	}
	if total == 0 {
		return 0
	}
	return band / total
}

// RMS returns the root mean square of x.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return math.Sqrt(f64.DotProduct(x, x) / float64(len(x)))
}

// Peak returns the largest absolute sample of x.
func Peak(x []float64) float64 {
	var peak float64
	for _, v := range x {
		peak = math.Max(peak, math.Abs(v))
	}
	return peak
}

// PeakDB returns the peak level of x in dBFS (-200 for silence).
func PeakDB(x []float64) float64 {
	return mathutil.LinearToDB(Peak(x))
}

// RMSDB returns the RMS level of x in dBFS (-200 for silence).
func RMSDB(x []float64) float64 {
	return mathutil.LinearToDB(RMS(x))
}

// CrestFactorDB is the peak to RMS ratio in dB.
func CrestFactorDB(x []float64) float64 {
	return PeakDB(x) - RMSDB(x)
}
