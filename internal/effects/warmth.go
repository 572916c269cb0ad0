package effects

import "github.com/tphakala/go-retro-voice/internal/filter"

// WarmthBoost adds gain times the zero-phase bandpassed signal back onto
// x, lifting the lo–hi band by roughly 20·log10(1+gain) dB.
func WarmthBoost(x []float64, sampleRate, loHz, hiHz, gain float64) []float64 {
	spec := filter.DesignBandpass(sampleRate, loHz, hiHz, warmthOrder)
	band := filter.FiltFilt(spec, x)

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v + gain*band[i]
	}
	return out
}
