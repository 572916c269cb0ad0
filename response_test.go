package retrofx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBandLimit(t *testing.T) {
	reg := DefaultRegistry()
	freqs := []float64{100, 1000, 3900}

	tests := []struct {
		id    string
		kind  string
		edges []float64
	}{
		{StyleTelephone, "bandpass", []float64{300, 3400}},
		{StyleVinylRecord, "lowpass", []float64{3500}},
		{StyleEnhancedBasic, "bandpass", []float64{80, 2500}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			report, err := AnalyzeBandLimit(reg.Resolve(tt.id), freqs)
			require.NoError(t, err)

			assert.Equal(t, tt.id, report.StyleID)
			assert.Equal(t, tt.kind, report.Kind)
			assert.False(t, report.Degraded)
			assert.InDeltaSlice(t, tt.edges, report.EdgesHz, 1e-6)
			require.Len(t, report.GainDB, len(freqs))
			assert.InDelta(t, 0, report.GainDB[1], 1, "1 kHz sits in every passband")
		})
	}
}

func TestAnalyzeBandLimit_TelephoneStopband(t *testing.T) {
	report, err := AnalyzeBandLimit(DefaultRegistry().Resolve(StyleTelephone), []float64{100, 1000})
	require.NoError(t, err)
	assert.Less(t, report.GainDB[0], -40.0)
}

func TestAnalyzeBandLimit_Invalid(t *testing.T) {
	p := validPreset()
	p.SampleRate = 0
	_, err := AnalyzeBandLimit(&p, []float64{1000})
	assert.ErrorIs(t, err, ErrInvalidPreset)
}
