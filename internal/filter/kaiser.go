package filter

import (
	"fmt"
	"math"

	"github.com/tphakala/go-retro-voice/internal/mathutil"
)

// SincParams describes a Kaiser-windowed sinc lowpass kernel.
type SincParams struct {
	// Cutoff is the lowpass edge in cycles per input sample (0 to 0.5).
	Cutoff float64

	// HalfWidth is the kernel half-width in input samples.
	HalfWidth float64

	// Attenuation is the desired stopband attenuation in dB.
	Attenuation float64

	// Phases is the number of table entries per input sample.
	Phases int
}

// Validate checks if kernel parameters are valid.
func (p *SincParams) Validate() error {
	if p.Cutoff <= 0 || p.Cutoff > 0.5 {
		return fmt.Errorf("invalid cutoff frequency: %f (must be in (0, 0.5])", p.Cutoff)
	}
	if p.HalfWidth < 1 {
		return fmt.Errorf("kernel too short: half-width %f (minimum 1)", p.HalfWidth)
	}
	if p.Attenuation < 0 {
		return fmt.Errorf("invalid attenuation: %f dB (must be positive)", p.Attenuation)
	}
	if p.Phases < minTablePhases {
		return fmt.Errorf("too few phases: %d (minimum %d)", p.Phases, minTablePhases)
	}
	return nil
}

// SincTable is a one-sided, oversampled windowed-sinc kernel. Values between
// table entries are linearly interpolated, so the kernel can be evaluated at
// any fractional offset.
type SincTable struct {
	values    []float64
	phases    float64
	halfWidth float64
}

// NewSincTable samples the kernel
//
//	h(τ) = 2fc · sinc(2fc·τ) · w(τ)
//
// at τ = k/Phases for τ in [0, HalfWidth], where w is a Kaiser window whose
// β follows from the attenuation.
func NewSincTable(params SincParams) (*SincTable, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	beta := mathutil.KaiserBeta(params.Attenuation)
	size := int(math.Ceil(params.HalfWidth*float64(params.Phases))) + 2
	values := make([]float64, size)
	twoFc := 2 * params.Cutoff

	for k := range size {
		tau := float64(k) / float64(params.Phases)
		var sincValue float64
		if tau < sincZeroThreshold {
			sincValue = twoFc
		} else {
			arg := math.Pi * twoFc * tau
			sincValue = twoFc * math.Sin(arg) / arg
		}
		values[k] = sincValue * mathutil.KaiserWindowAt(tau, params.HalfWidth, beta)
	}

	return &SincTable{
		values:    values,
		phases:    float64(params.Phases),
		halfWidth: params.HalfWidth,
	}, nil
}

// HalfWidth returns the kernel half-width in input samples.
func (t *SincTable) HalfWidth() float64 {
	return t.halfWidth
}

// At returns the kernel value at offset tau (input samples).
func (t *SincTable) At(tau float64) float64 {
	pos := math.Abs(tau) * t.phases
	idx := int(pos)
	if idx >= len(t.values)-1 {
		return 0
	}
	frac := pos - float64(idx)
	return t.values[idx] + frac*(t.values[idx+1]-t.values[idx])
}
