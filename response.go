package retrofx

import (
	"github.com/tphakala/go-retro-voice/internal/filter"
)

// BandLimitReport describes the band-limit filter a preset designs at its
// own sample rate.
type BandLimitReport struct {
	StyleID  string
	Kind     string // lowpass or bandpass
	Order    int
	EdgesHz  []float64
	Degraded bool

	// Frequencies and GainDB hold the zero-phase (forward-backward)
	// response, so GainDB is twice the single-pass magnitude in dB.
	Frequencies []float64
	GainDB      []float64
}

// AnalyzeBandLimit designs p's band-limit filter and evaluates its
// response at frequencies (Hz).
func AnalyzeBandLimit(p *StylePreset, frequencies []float64) (BandLimitReport, error) {
	if err := p.Validate(); err != nil {
		return BandLimitReport{}, err
	}

	rate := float64(p.SampleRate)
	spec := designBandLimit(p, rate)
	resp := filter.ComputeResponse(spec, frequencies, rate)

	report := BandLimitReport{
		StyleID:     p.ID,
		Kind:        spec.Kind.String(),
		Order:       spec.Order,
		EdgesHz:     make([]float64, len(spec.Wn)),
		Degraded:    spec.Degraded,
		Frequencies: resp.Frequencies,
		GainDB:      make([]float64, len(resp.Magnitude)),
	}
	for i, wn := range spec.Wn {
		report.EdgesHz[i] = wn * rate / 2
	}
	for i, m := range resp.Magnitude {
		report.GainDB[i] = 2 * filter.MagnitudeDB(m)
	}
	return report, nil
}
