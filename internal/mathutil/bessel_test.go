package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-retro-voice/internal/testutil"
)

// TestBesselI0 tests BesselI0 against known values.
func TestBesselI0(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		expected  float64
		tolerance float64
	}{
		{"Zero", 0.0, 1.0, 1e-15},
		{"Small positive", 0.5, 1.063483344, 1e-7},
		{"One", 1.0, 1.266065848, 1e-7},
		{"Two", 2.0, 2.279585307, 1e-7},
		{"Three", 3.0, 4.880792565, 1e-7},
		{"Boundary 3.75", 3.75, 9.118945994, 1e-7},
		{"Four", 4.0, 11.30192217, 1e-7},
		{"Five", 5.0, 27.23987183, 1e-7},
		{"Ten", 10.0, 2815.716628, 1e-6},
		{"Small negative", -0.5, 1.063483344, 1e-7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BesselI0(tt.x)
			testutil.AssertRelativeError(t, tt.expected, result, tt.tolerance)
		})
	}
}

// TestBesselI0_Monotonic tests I₀(x) is monotonically increasing for x > 0.
func TestBesselI0_Monotonic(t *testing.T) {
	prev := BesselI0(0)
	for x := 0.1; x < 10.0; x += 0.1 {
		curr := BesselI0(x)
		assert.Greater(t, curr, prev, "BesselI0 not increasing at x=%v", x)
		prev = curr
	}
}

func TestKaiserBeta(t *testing.T) {
	tests := []struct {
		name        string
		attenuation float64
		expectedMin float64
		expectedMax float64
	}{
		{"20dB", 20.0, 0.0, 0.1},
		{"50dB", 50.0, 4.5, 4.6},
		{"60dB", 60.0, 5.6, 5.7},
		{"80dB", 80.0, 7.8, 7.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertInRange(t, KaiserBeta(tt.attenuation), tt.expectedMin, tt.expectedMax)
		})
	}
}

func TestKaiserWindowAt(t *testing.T) {
	const (
		halfWidth = 8.0
		beta      = 7.857
	)

	assert.InDelta(t, 1.0, KaiserWindowAt(0, halfWidth, beta), 1e-12, "centre of window")
	assert.InDelta(t, KaiserWindowAt(3, halfWidth, beta), KaiserWindowAt(-3, halfWidth, beta), 1e-12)
	assert.Greater(t, KaiserWindowAt(2, halfWidth, beta), KaiserWindowAt(5, halfWidth, beta))
	assert.Zero(t, KaiserWindowAt(halfWidth, halfWidth, beta))
	assert.Zero(t, KaiserWindowAt(20, halfWidth, beta))
	assert.Zero(t, KaiserWindowAt(0, 0, beta), "degenerate half-width")
}

func TestEstimateFilterLength(t *testing.T) {
	tests := []struct {
		name         string
		attenuation  float64
		transitionBW float64
		minTaps      int
		maxTaps      int
	}{
		{"CD quality", 96.0, 0.1, 60, 80},
		{"Resampler default", 80.0, 0.05, 95, 105},
		{"Wide transition", 80.0, 0.2, 20, 35},
		{"Zero transition", 100.0, 0.0, 3, 8191},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taps := EstimateFilterLength(tt.attenuation, tt.transitionBW)
			assert.Equal(t, 1, taps%2, "filter length should be odd: %d", taps)
			assert.GreaterOrEqual(t, taps, tt.minTaps)
			assert.LessOrEqual(t, taps, tt.maxTaps)
		})
	}
}

func BenchmarkBesselI0(b *testing.B) {
	x := 5.5
	for b.Loop() {
		_ = BesselI0(x)
	}
}
