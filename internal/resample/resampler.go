// Package resample converts whole mono buffers between sample rates with a
// Kaiser-windowed sinc kernel.
//
// Each output sample is a dot product of the input samples around its
// position with the kernel evaluated at their fractional offsets. The
// kernel is tabulated at 256 phases per input sample and linearly
// interpolated between phases. When downsampling, the kernel is stretched
// so its cutoff sits below the output Nyquist.
package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/go-retro-voice/internal/filter"
	"github.com/tphakala/go-retro-voice/internal/mathutil"
	"github.com/tphakala/simd/f64"
)

// ErrInvalidRate is returned for non-positive, non-finite or out of range
// sample rates.
var ErrInvalidRate = errors.New("invalid sample rate")

// Quality holds kernel design parameters.
type Quality struct {
	// Attenuation is the stopband attenuation in dB.
	Attenuation float64

	// Passband is the fraction of the lower Nyquist kept flat (0-1).
	Passband float64

	// TransitionBW sizes the kernel via the Kaiser length formula.
	TransitionBW float64

	// Phases is the number of kernel table entries per input sample.
	Phases int
}

// DefaultQuality returns the quality used by Resample.
func DefaultQuality() Quality {
	return Quality{
		Attenuation:  defaultAttenuation,
		Passband:     defaultPassband,
		TransitionBW: defaultTransitionBW,
		Phases:       defaultPhases,
	}
}

// Resampler converts buffers from one fixed rate to another.
type Resampler struct {
	inputRate  float64
	outputRate float64
	ratio      float64
	table      *filter.SincTable
	reach      int
}

// New creates a resampler from inputRate to outputRate.
func New(inputRate, outputRate float64, quality Quality) (*Resampler, error) {
	if !validRate(inputRate) || !validRate(outputRate) {
		return nil, fmt.Errorf("%w: %v Hz -> %v Hz", ErrInvalidRate, inputRate, outputRate)
	}
	ratio := outputRate / inputRate
	if ratio > maxRatio || ratio < 1/maxRatio {
		return nil, fmt.Errorf("%w: ratio %v outside [1/%v, %v]", ErrInvalidRate, ratio, maxRatio, maxRatio)
	}

	r := &Resampler{
		inputRate:  inputRate,
		outputRate: outputRate,
		ratio:      ratio,
	}
	if ratio == 1 {
		return r, nil
	}

	scale := math.Min(1, ratio)
	taps := mathutil.EstimateFilterLength(quality.Attenuation, quality.TransitionBW)
	halfWidth := float64(taps/2) / scale

	table, err := filter.NewSincTable(filter.SincParams{
		Cutoff:      nyquistFraction * scale * quality.Passband,
		HalfWidth:   halfWidth,
		Attenuation: quality.Attenuation,
		Phases:      quality.Phases,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to design resampling kernel: %w", err)
	}

	r.table = table
	r.reach = int(math.Ceil(halfWidth))
	return r, nil
}

// Ratio returns outputRate / inputRate.
func (r *Resampler) Ratio() float64 {
	return r.ratio
}

// OutputLength returns round(n * ratio).
func (r *Resampler) OutputLength(n int) int {
	return int(math.Round(float64(n) * r.ratio))
}

// Process resamples a whole buffer. Samples outside the input are taken
// as zero. The input is not modified.
func (r *Resampler) Process(input []float64) []float64 {
	if r.table == nil {
		out := make([]float64, len(input))
		copy(out, input)
		return out
	}

	n := len(input)
	outLen := r.OutputLength(n)
	output := make([]float64, outLen)

	width := 2 * r.reach
	window := make([]float64, width)
	weights := make([]float64, width)

	for i := range outLen {
		pos := float64(i) / r.ratio
		base := int(math.Floor(pos))
		frac := pos - float64(base)

		for j := range width {
			m := j - r.reach + 1
			idx := base + m
			if idx >= 0 && idx < n {
				window[j] = input[idx]
			} else {
				window[j] = 0
			}
			weights[j] = r.table.At(float64(m) - frac)
		}

		norm := f64.Sum(weights)
		if norm == 0 {
			continue
		}
		output[i] = f64.DotProduct(window, weights) / norm
	}

	return output
}

// Resample converts input from inputRate to outputRate with DefaultQuality.
func Resample(input []float64, inputRate, outputRate float64) ([]float64, error) {
	r, err := New(inputRate, outputRate, DefaultQuality())
	if err != nil {
		return nil, err
	}
	return r.Process(input), nil
}

func validRate(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 0)
}
