package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-retro-voice/internal/testutil"
)

const (
	testSampleRate = 44100.0
	testLength     = 8820
)

func TestFiltFilt_PreservesLengthAndInput(t *testing.T) {
	spec := DesignLowpass(testSampleRate, 3000, 4)

	for _, n := range []int{0, 1, 2, 5, 27, testLength} {
		x := testutil.Sine(440, testSampleRate, n, 0.5)
		orig := make([]float64, n)
		copy(orig, x)

		y := FiltFilt(spec, x)
		assert.Len(t, y, n)
		assert.Equal(t, orig, x, "input must not be modified")
		testutil.AssertNoNaNOrInf(t, y)
	}
}

func TestFiltFilt_ConstantPassesLowpassUnchanged(t *testing.T) {
	spec := DesignLowpass(testSampleRate, 2000, 6)
	x := make([]float64, 4000)
	for i := range x {
		x[i] = 0.5
	}

	y := FiltFilt(spec, x)
	for i, v := range y {
		require.InDelta(t, 0.5, v, 1e-9, "sample %d", i)
	}
}

func TestFiltFilt_BandpassRemovesDC(t *testing.T) {
	spec := DesignBandpass(testSampleRate, 300, 3400, 4)
	x := make([]float64, 4000)
	for i := range x {
		x[i] = 0.5
	}

	y := FiltFilt(spec, x)
	for i, v := range y {
		require.InDelta(t, 0.0, v, 1e-9, "sample %d", i)
	}
}

func TestFiltFilt_ZeroPhaseInPassband(t *testing.T) {
	spec := DesignLowpass(testSampleRate, 4000, 4)
	x := testutil.Sine(200, testSampleRate, testLength, 0.8)

	y := FiltFilt(spec, x)

	// No group delay: the interior lines up sample for sample.
	for i := 1000; i < testLength-1000; i++ {
		require.InDelta(t, x[i], y[i], 1e-3, "sample %d", i)
	}
}

func TestFiltFilt_AttenuatesStopband(t *testing.T) {
	tests := []struct {
		name     string
		spec     Spec
		freq     float64
		maxRatio float64
	}{
		{"lowpass", DesignLowpass(testSampleRate, 2000, 4), 8000, 1e-3},
		{"bandpass below band", DesignBandpass(testSampleRate, 300, 3400, 4), 60, 1e-3},
		{"bandpass above band", DesignBandpass(testSampleRate, 300, 3400, 4), 12000, 1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := testutil.Sine(tt.freq, testSampleRate, testLength, 0.8)
			y := FiltFilt(tt.spec, x)

			// Interior only; the reflected edges carry transients.
			ratio := testutil.RMS(y[2000:testLength-2000]) / testutil.RMS(x[2000:testLength-2000])
			assert.Less(t, ratio, tt.maxRatio)
		})
	}
}

func TestFiltFilt_SquaresSinglePassMagnitude(t *testing.T) {
	const freq = 2500.0
	spec := DesignLowpass(testSampleRate, 2000, 4)
	single := ComputeResponse(spec, []float64{freq}, testSampleRate).Magnitude[0]

	x := testutil.Sine(freq, testSampleRate, testLength, 0.8)
	y := FiltFilt(spec, x)

	ratio := testutil.RMS(y[2000:testLength-2000]) / testutil.RMS(x[2000:testLength-2000])
	testutil.AssertRelativeError(t, single*single, ratio, 0.02)
}

func TestFiltFilt_EmptySpecCopies(t *testing.T) {
	x := []float64{0.1, -0.2, 0.3}
	y := FiltFilt(Spec{}, x)
	assert.Equal(t, x, y)
	y[0] = 9
	assert.InDelta(t, 0.1, x[0], 0)
}

func BenchmarkFiltFilt(b *testing.B) {
	spec := DesignBandpass(testSampleRate, 300, 3400, 8)
	x := testutil.Sine(1000, testSampleRate, testLength, 0.5)
	for b.Loop() {
		_ = FiltFilt(spec, x)
	}
}
