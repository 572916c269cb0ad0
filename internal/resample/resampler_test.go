package resample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-retro-voice/internal/testutil"
)

func TestNew_InvalidRates(t *testing.T) {
	tests := []struct {
		name     string
		in, out  float64
		errorMsg string
	}{
		{"zero input", 0, 8000, "invalid sample rate"},
		{"negative output", 44100, -1, "invalid sample rate"},
		{"ratio too large", 100, 44100, "ratio"},
		{"ratio too small", 192000, 100, "ratio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.in, tt.out, DefaultQuality())
			require.ErrorIs(t, err, ErrInvalidRate)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestNew_InvalidQuality(t *testing.T) {
	_, err := New(44100, 8000, Quality{})
	assert.Error(t, err)
}

func TestResample_OutputLength(t *testing.T) {
	tests := []struct {
		name    string
		in, out float64
		n       int
		wantLen int
	}{
		{"telephone", 44100, 8000, 44100, 8000},
		{"vinyl", 44100, 22050, 1001, 501},
		{"gramophone", 22050, 11025, 777, 389},
		{"upsample", 8000, 16000, 100, 200},
		{"identity", 22050, 22050, 1234, 1234},
		{"empty", 44100, 8000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Resample(make([]float64, tt.n), tt.in, tt.out)
			require.NoError(t, err)
			assert.Len(t, out, tt.wantLen)
		})
	}
}

func TestResample_IdentityCopies(t *testing.T) {
	x := []float64{0.1, 0.2, -0.3}
	y, err := Resample(x, 16000, 16000)
	require.NoError(t, err)
	assert.Equal(t, x, y)

	y[0] = 1
	assert.InDelta(t, 0.1, x[0], 0, "identity must not alias the input")
}

func TestResample_PreservesDC(t *testing.T) {
	x := testutil.Constant(0.5, 22050)

	for _, rate := range []float64{8000, 11025, 16000, 32000} {
		y, err := Resample(x, 22050, rate)
		require.NoError(t, err)

		// Edges see zero padding; the interior must hold the level.
		margin := len(y) / 10
		for i := margin; i < len(y)-margin; i++ {
			require.InDelta(t, 0.5, y[i], 1e-3, "rate %v sample %d", rate, i)
		}
	}
}

func TestResample_PassbandToneKeepsLevel(t *testing.T) {
	const (
		inRate  = 44100.0
		outRate = 8000.0
		freq    = 440.0
	)
	x := testutil.Sine(freq, inRate, int(inRate), 0.8)

	y, err := Resample(x, inRate, outRate)
	require.NoError(t, err)
	require.Len(t, y, int(outRate))
	testutil.AssertNoNaNOrInf(t, y)

	want := testutil.Sine(freq, outRate, len(y), 0.8)
	for i := 500; i < len(y)-500; i++ {
		require.InDelta(t, want[i], y[i], 5e-3, "sample %d", i)
	}
}

func TestResample_RemovesContentAboveNewNyquist(t *testing.T) {
	const (
		inRate  = 44100.0
		outRate = 8000.0
	)
	x := testutil.Sine(5500, inRate, int(inRate), 0.8)

	y, err := Resample(x, inRate, outRate)
	require.NoError(t, err)

	interior := y[500 : len(y)-500]
	assert.Less(t, testutil.RMS(interior), 1e-3, "5.5 kHz must not alias into an 8 kHz output")
}

func BenchmarkResample_44100To8000(b *testing.B) {
	x := testutil.Sine(440, 44100, 44100, 0.5)
	r, err := New(44100, 8000, DefaultQuality())
	require.NoError(b, err)

	for b.Loop() {
		_ = r.Process(x)
	}
}
