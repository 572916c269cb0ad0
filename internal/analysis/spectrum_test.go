package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-retro-voice/internal/testutil"
)

const (
	testRate = 8000.0
	testLen  = 8000 // 1 Hz bins
)

func TestComputeSpectrum_SineOnBin(t *testing.T) {
	x := testutil.Sine(440, testRate, testLen, 0.5)

	s := ComputeSpectrum(x, testRate)
	require.Len(t, s.Frequencies, testLen/2+1)
	require.Len(t, s.Magnitude, testLen/2+1)

	assert.InDelta(t, 440.0, s.PeakFrequency(), 0)
	assert.InDelta(t, 0.5, s.Magnitude[440], 0.01)
	assert.InDelta(t, 4000.0, s.Frequencies[len(s.Frequencies)-1], 0)
}

func TestComputeSpectrum_Degenerate(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		rate float64
	}{
		{"empty", nil, testRate},
		{"single sample", []float64{1}, testRate},
		{"zero rate", testutil.Sine(440, testRate, 64, 1), 0},
		{"nan rate", testutil.Sine(440, testRate, 64, 1), math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ComputeSpectrum(tt.x, tt.rate)
			assert.Empty(t, s.Magnitude)
			assert.Zero(t, s.PeakFrequency())
		})
	}
}

func TestBandEnergyRatio(t *testing.T) {
	low := testutil.Sine(100, testRate, testLen, 0.5)
	high := testutil.Sine(1000, testRate, testLen, 0.5)
	mix := make([]float64, testLen)
	for i := range mix {
		mix[i] = low[i] + high[i]
	}

	tests := []struct {
		name   string
		x      []float64
		lo, hi float64
		want   float64
		delta  float64
	}{
		{"tone inside band", high, 300, 3400, 1, 0.001},
		{"tone outside band", low, 300, 3400, 0, 0.001},
		{"equal mix", mix, 300, 3400, 0.5, 0.01},
		{"silence", make([]float64, testLen), 300, 3400, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BandEnergyRatio(tt.x, testRate, tt.lo, tt.hi), tt.delta)
		})
	}
}

func TestLevels(t *testing.T) {
	x := testutil.Sine(440, testRate, testLen, 0.5)

	assert.InDelta(t, 0.5/math.Sqrt2, RMS(x), 1e-6)
	assert.InDelta(t, 0.5, Peak(x), 1e-3)
	assert.InDelta(t, 20*math.Log10(0.5), PeakDB(x), 0.01)
	assert.InDelta(t, 20*math.Log10(math.Sqrt2), CrestFactorDB(x), 0.01)

	assert.Zero(t, RMS(nil))
	assert.InDelta(t, -200.0, PeakDB(make([]float64, 10)), 0)
	assert.InDelta(t, -200.0, RMSDB(nil), 0)
}
