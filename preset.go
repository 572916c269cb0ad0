package retrofx

import (
	"fmt"
	"maps"
	"math"
)

// AMParams configures the amplitude-modulation envelope.
type AMParams struct {
	CarrierFreq float64 // Hz
	Depth       float64 // envelope depth, 0-1
}

// Band is a frequency range in Hz.
type Band struct {
	Low  float64
	High float64
}

// CrackleParams configures impulsive surface noise.
type CrackleParams struct {
	Density   float64 // impulses per buffer
	Intensity float64 // impulse amplitude scale
}

// WarmthParams configures the mid-band boost.
type WarmthParams struct {
	Band
	Gain float64
}

// WowFlutterParams configures transport speed variation.
type WowFlutterParams struct {
	WowFreq          float64 // Hz
	FlutterFreq      float64 // Hz
	WowIntensity     float64 // peak fractional speed deviation
	FlutterIntensity float64 // peak fractional speed deviation
}

// ReverbParams configures the feedback comb.
type ReverbParams struct {
	Delay float64 // seconds
	Decay float64 // feedback gain, clamped below 1 when applied
}

// CompressionParams configures the soft-knee compressor.
type CompressionParams struct {
	Threshold float64 // linear amplitude
	Ratio     float64
}

// StylePreset is a named set of degradation parameters. Optional stages
// are pointers: nil means the stage is disabled and skipped, which is not
// the same as a zero-valued parameter.
type StylePreset struct {
	ID          string
	Description string

	CutoffFreq   float64 // Hz
	FilterOrder  int
	SampleRate   int     // Hz, rate the style renders at
	TargetPeakDB float64 // dBFS

	AM              *AMParams
	NoiseLevel      *float64 // linear RMS
	Bandpass        *Band
	HighPass        *float64 // Hz
	Crackle         *CrackleParams
	Warmth          *WarmthParams
	WowFlutter      *WowFlutterParams
	HissLevel       *float64 // linear RMS
	MechanicalNoise bool
	Distortion      *float64 // 0-1
	Reverb          *ReverbParams
	Compression     *CompressionParams

	// Extensions holds record keys outside the schema, unmodified.
	Extensions map[string]any
}

// Float returns a pointer to v, for optional preset fields.
func Float(v float64) *float64 {
	return &v
}

// Validate checks the preset invariants: sample_rate > 0,
// filter_order >= 1 and 0 < cutoff_freq < sample_rate/2.
func (p *StylePreset) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: empty identifier", ErrInvalidPreset)
	}
	if p.SampleRate <= 0 {
		return fmt.Errorf("%w: %s: sample rate must be positive, got %d", ErrInvalidPreset, p.ID, p.SampleRate)
	}
	if p.FilterOrder < 1 || p.FilterOrder > maxFilterOrder {
		return fmt.Errorf("%w: %s: filter order must be 1-%d, got %d", ErrInvalidPreset, p.ID, maxFilterOrder, p.FilterOrder)
	}
	nyquist := float64(p.SampleRate) / 2
	if !(p.CutoffFreq > 0 && p.CutoffFreq < nyquist) {
		return fmt.Errorf("%w: %s: cutoff %v Hz must be in (0, %v)", ErrInvalidPreset, p.ID, p.CutoffFreq, nyquist)
	}
	if math.IsNaN(p.TargetPeakDB) || p.TargetPeakDB > 0 {
		return fmt.Errorf("%w: %s: target peak must be <= 0 dBFS, got %v", ErrInvalidPreset, p.ID, p.TargetPeakDB)
	}
	if p.Bandpass != nil && !(p.Bandpass.Low < p.Bandpass.High) {
		return fmt.Errorf("%w: %s: bandpass low edge %v must be below high edge %v",
			ErrInvalidPreset, p.ID, p.Bandpass.Low, p.Bandpass.High)
	}
	if p.Warmth != nil && !(p.Warmth.Low < p.Warmth.High) {
		return fmt.Errorf("%w: %s: warmth low edge %v must be below high edge %v",
			ErrInvalidPreset, p.ID, p.Warmth.Low, p.Warmth.High)
	}
	if p.Reverb != nil && p.Reverb.Delay < 0 {
		return fmt.Errorf("%w: %s: reverb delay must not be negative", ErrInvalidPreset, p.ID)
	}
	return nil
}

// Clone returns a deep copy of the preset.
func (p *StylePreset) Clone() StylePreset {
	c := *p
	c.AM = clonePtr(p.AM)
	c.NoiseLevel = clonePtr(p.NoiseLevel)
	c.Bandpass = clonePtr(p.Bandpass)
	c.HighPass = clonePtr(p.HighPass)
	c.Crackle = clonePtr(p.Crackle)
	c.Warmth = clonePtr(p.Warmth)
	c.WowFlutter = clonePtr(p.WowFlutter)
	c.HissLevel = clonePtr(p.HissLevel)
	c.Distortion = clonePtr(p.Distortion)
	c.Reverb = clonePtr(p.Reverb)
	c.Compression = clonePtr(p.Compression)
	if p.Extensions != nil {
		c.Extensions = maps.Clone(p.Extensions)
	}
	return c
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
