package retrofx

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-retro-voice/internal/analysis"
	"github.com/tphakala/go-retro-voice/internal/pipeline"
	"github.com/tphakala/go-retro-voice/internal/testutil"
)

// peakTolerance covers the 1e-9 offset in peak normalization.
const peakTolerance = 0.01

func sineBuffer(freq float64, rate, n int, amp float64) *SampleBuffer {
	return &SampleBuffer{Samples: testutil.Sine(freq, float64(rate), n, amp), SampleRate: rate}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"full", ModeFull, false},
		{"Baseline", ModeBaseline, false},
		{" full ", ModeFull, false},
		{"enhanced", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, must(ParseMode(got.String())))
		})
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func TestChain_TelephoneScenario(t *testing.T) {
	r := NewRenderer(DefaultRegistry())

	// 1 s of a 100 Hz + 440 Hz mix; 100 Hz lies below the telephone band.
	src := &SampleBuffer{Samples: make([]float64, RateCD), SampleRate: RateCD}
	for i := range src.Samples {
		ti := float64(i) / RateCD
		src.Samples[i] = 0.4*math.Sin(2*math.Pi*100*ti) + 0.4*math.Sin(2*math.Pi*440*ti)
	}

	out, err := r.Render(context.Background(), src, StyleTelephone, ModeFull)
	require.NoError(t, err)

	assert.Equal(t, RateTelephony, out.SampleRate)
	assert.Len(t, out.Samples, RateTelephony)
	testutil.AssertNoNaNOrInf(t, out.Samples)
	testutil.AssertPeakDB(t, out.Samples, -4, peakTolerance)

	below := analysis.BandEnergyRatio(out.Samples, RateTelephony, 50, 150)
	assert.Less(t, below, 0.001, "energy below the telephone band")
	assert.Greater(t, analysis.BandEnergyRatio(out.Samples, RateTelephony, 300, 3400), 0.95)
}

func TestChain_VinylOnSilence(t *testing.T) {
	c := NewChain()
	p := DefaultRegistry().Resolve(StyleVinylRecord)
	src := &SampleBuffer{Samples: make([]float64, RateSpeech), SampleRate: RateSpeech}

	out, err := c.Apply(src, p)
	require.NoError(t, err)

	assert.Positive(t, testutil.Peak(out.Samples), "crackle should make silence audible")
	assert.LessOrEqual(t, analysis.PeakDB(out.Samples), p.TargetPeakDB+1e-6)
	assert.Equal(t, make([]float64, RateSpeech), src.Samples, "input must not change")
}

func TestChain_EveryBuiltinHitsTargetPeak(t *testing.T) {
	reg := DefaultRegistry()
	c := NewChain()

	for _, id := range reg.Identifiers() {
		t.Run(id, func(t *testing.T) {
			p := reg.Resolve(id)
			src := sineBuffer(440, p.SampleRate, p.SampleRate/2, 0.8)

			out, err := c.Apply(src, p)
			require.NoError(t, err)
			require.Len(t, out.Samples, len(src.Samples))
			testutil.AssertNoNaNOrInf(t, out.Samples)
			testutil.AssertPeakDB(t, out.Samples, p.TargetPeakDB, peakTolerance)
		})
	}
}

func TestChain_Deterministic(t *testing.T) {
	p := DefaultRegistry().Resolve(StyleGramophone)
	src := sineBuffer(300, RateGramophone, RateGramophone/2, 0.5)

	a, err := NewChain(WithSeed(7)).Apply(src, p)
	require.NoError(t, err)
	b, err := NewChain(WithSeed(7)).Apply(src, p)
	require.NoError(t, err)
	assert.Equal(t, a.Samples, b.Samples)

	c, err := NewChain(WithSeed(8)).Apply(src, p)
	require.NoError(t, err)
	assert.NotEqual(t, a.Samples, c.Samples)
}

func TestChain_SkipsUndeclaredStages(t *testing.T) {
	p := validPreset()
	src := sineBuffer(440, p.SampleRate, 4096, 0.5)

	out, err := NewChain().Apply(src, &p)
	require.NoError(t, err)

	// Only band-limit and normalize run: a passband tone keeps its shape.
	ratio := analysis.BandEnergyRatio(out.Samples, float64(p.SampleRate), 430, 450)
	assert.Greater(t, ratio, 0.99)
	testutil.AssertPeakDB(t, out.Samples, p.TargetPeakDB, peakTolerance)
}

func TestChain_HighPassMakesBandpass(t *testing.T) {
	p := validPreset()
	p.HighPass = Float(300)

	samples := testutil.Sine(1000, float64(p.SampleRate), 8192, 0.2)
	for i := range samples {
		samples[i] += 0.5
	}
	src := &SampleBuffer{Samples: samples, SampleRate: p.SampleRate}

	withHighPass, err := NewChain().Apply(src, &p)
	require.NoError(t, err)
	assert.Less(t, analysis.BandEnergyRatio(withHighPass.Samples, float64(p.SampleRate), 0, 20), 0.001)

	p.HighPass = nil
	lowpassOnly, err := NewChain().Apply(src, &p)
	require.NoError(t, err)
	assert.Greater(t, analysis.BandEnergyRatio(lowpassOnly.Samples, float64(p.SampleRate), 0, 20), 0.5)
}

func TestChain_Baseline(t *testing.T) {
	c := NewChain()
	tests := []struct {
		id       string
		rate     int
		targetDB float64
	}{
		{StyleVintageRadio, RateBroadcast, -3},
		{StyleVinylRecord, RateSpeech, -3},
		{StyleCassetteTape, RateSpeech, -3.5},
		{StyleTelephone, RateTelephony, -4},
		{StyleGramophone, RateGramophone, -4},
		{StyleEnhancedBasic, RateSpeech, -3},
		{"unknown_style", RateSpeech, -3},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			src := sineBuffer(1000, tt.rate, tt.rate/2, 0.5)
			out, err := c.ApplyBaseline(src, tt.id)
			require.NoError(t, err)
			require.Len(t, out.Samples, len(src.Samples))
			testutil.AssertPeakDB(t, out.Samples, tt.targetDB, peakTolerance)
		})
	}
}

func TestChain_StageFailure(t *testing.T) {
	p := validPreset()
	p.Warmth = &WarmthParams{Band: Band{Low: 800, High: 2000}, Gain: math.Inf(1)}
	src := sineBuffer(1000, p.SampleRate, 2048, 0.5)

	_, err := NewChain().Apply(src, &p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStageFailure)
	assert.ErrorIs(t, err, pipeline.ErrNonFinite)

	var se *StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "test", se.Style)
	assert.Equal(t, "warmth", se.Stage)
}

func TestChain_InvalidInput(t *testing.T) {
	c := NewChain()
	p := validPreset()

	_, err := c.Apply(nil, &p)
	assert.ErrorIs(t, err, ErrInvalidBuffer)

	_, err = c.Apply(&SampleBuffer{Samples: []float64{0}, SampleRate: 0}, &p)
	assert.ErrorIs(t, err, ErrInvalidBuffer)

	bad := validPreset()
	bad.FilterOrder = 0
	_, err = c.Apply(sineBuffer(440, 22050, 64, 0.5), &bad)
	assert.ErrorIs(t, err, ErrInvalidPreset)
}

func TestChain_EmptyBuffer(t *testing.T) {
	p := DefaultRegistry().Resolve(StyleVinylRecord)
	out, err := NewChain().Apply(&SampleBuffer{SampleRate: RateSpeech}, p)
	require.NoError(t, err)
	assert.Empty(t, out.Samples)
}

func TestChain_LogsDegradedDesign(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	// The band edges collapse once both sit above the 8 kHz Nyquist guard.
	p := validPreset()
	p.SampleRate = RateTelephony
	p.CutoffFreq = 3000
	p.Bandpass = &Band{Low: 3950, High: 3990}

	_, err := NewChain(WithChainLogger(logger)).Apply(sineBuffer(440, RateTelephony, 1024, 0.5), &p)
	require.NoError(t, err)

	var degraded bool
	for _, e := range hook.AllEntries() {
		if e.Message == "band edges collapsed, using order-2 lowpass" {
			degraded = true
			assert.Equal(t, "test", e.Data["style"])
		}
	}
	assert.True(t, degraded)
}

func TestCombinedNoiseDB(t *testing.T) {
	_, ok := combinedNoiseDB(nil, nil)
	assert.False(t, ok)

	db, ok := combinedNoiseDB(Float(0.1), nil)
	require.True(t, ok)
	assert.InDelta(t, -20.0, db, 1e-9)

	db, ok = combinedNoiseDB(Float(0.03), Float(0.04))
	require.True(t, ok)
	assert.InDelta(t, 20*math.Log10(0.05), db, 1e-9)
}
