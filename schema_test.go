package retrofx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRecord_Telephone(t *testing.T) {
	rec := map[string]any{
		"description":           "Old telephone",
		"cutoff_freq":           1500,
		"filter_order":          8,
		"sample_rate":           8000,
		"bandpass":              true,
		"bandpass_range":        []any{300, 3400},
		"noise_level":           0.025,
		"compression_threshold": 0.25,
		"compression_ratio":     2.0,
	}

	p, err := FromRecord("telephone", rec)
	require.NoError(t, err)

	assert.Equal(t, "telephone", p.ID)
	assert.Equal(t, "Old telephone", p.Description)
	assert.InDelta(t, 1500.0, p.CutoffFreq, 0)
	assert.Equal(t, 8, p.FilterOrder)
	assert.Equal(t, 8000, p.SampleRate)
	assert.InDelta(t, DefaultTargetPeakDB, p.TargetPeakDB, 0)
	require.NotNil(t, p.Bandpass)
	assert.Equal(t, Band{Low: 300, High: 3400}, *p.Bandpass)
	require.NotNil(t, p.NoiseLevel)
	assert.InDelta(t, 0.025, *p.NoiseLevel, 0)
	require.NotNil(t, p.Compression)
	assert.Equal(t, CompressionParams{Threshold: 0.25, Ratio: 2.0}, *p.Compression)

	assert.Nil(t, p.AM)
	assert.Nil(t, p.Crackle)
	assert.Nil(t, p.Warmth)
	assert.Nil(t, p.WowFlutter)
	assert.Nil(t, p.Reverb)
	assert.Nil(t, p.Extensions)
}

func TestFromRecord_FlagsGateStages(t *testing.T) {
	tests := []struct {
		name  string
		rec   map[string]any
		check func(t *testing.T, p StylePreset)
	}{
		{
			name: "am flag with defaults",
			rec:  map[string]any{"am_modulation": true},
			check: func(t *testing.T, p StylePreset) {
				require.NotNil(t, p.AM)
				assert.InDelta(t, defaultCarrierFreq, p.AM.CarrierFreq, 0)
				assert.InDelta(t, defaultAMDepth, p.AM.Depth, 0)
			},
		},
		{
			name: "am params without flag become extensions",
			rec:  map[string]any{"carrier_freq": 1200},
			check: func(t *testing.T, p StylePreset) {
				assert.Nil(t, p.AM)
				assert.Equal(t, 1200, p.Extensions["carrier_freq"])
			},
		},
		{
			name: "false crackle flag keeps params out of the chain",
			rec:  map[string]any{"crackle_enabled": false, "crackle_density": 500},
			check: func(t *testing.T, p StylePreset) {
				assert.Nil(t, p.Crackle)
				assert.Equal(t, 500, p.Extensions["crackle_density"])
				assert.NotContains(t, p.Extensions, "crackle_enabled")
			},
		},
		{
			name: "warmth with range",
			rec:  map[string]any{"warmth_boost": true, "warmth_freq_range": []float64{700, 1900}},
			check: func(t *testing.T, p StylePreset) {
				require.NotNil(t, p.Warmth)
				assert.Equal(t, Band{Low: 700, High: 1900}, p.Warmth.Band)
				assert.InDelta(t, defaultWarmthGain, p.Warmth.Gain, 0)
			},
		},
		{
			name: "any wow key enables wow and flutter",
			rec:  map[string]any{"flutter_freq": 5.0},
			check: func(t *testing.T, p StylePreset) {
				require.NotNil(t, p.WowFlutter)
				assert.InDelta(t, 5.0, p.WowFlutter.FlutterFreq, 0)
				assert.Zero(t, p.WowFlutter.WowIntensity)
			},
		},
		{
			name: "reverb defaults",
			rec:  map[string]any{"reverb_enabled": true},
			check: func(t *testing.T, p StylePreset) {
				require.NotNil(t, p.Reverb)
				assert.Equal(t, ReverbParams{Delay: defaultReverbDelay, Decay: defaultReverbDecay}, *p.Reverb)
			},
		},
		{
			name: "compression ratio alone",
			rec:  map[string]any{"compression_ratio": 4},
			check: func(t *testing.T, p StylePreset) {
				require.NotNil(t, p.Compression)
				assert.InDelta(t, defaultCompressionThreshold, p.Compression.Threshold, 0)
				assert.InDelta(t, 4.0, p.Compression.Ratio, 0)
			},
		},
		{
			name: "mechanical noise flag",
			rec:  map[string]any{"mechanical_noise": true},
			check: func(t *testing.T, p StylePreset) {
				assert.True(t, p.MechanicalNoise)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := FromRecord("x", tt.rec)
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestFromRecord_TypeErrors(t *testing.T) {
	tests := []struct {
		name string
		rec  map[string]any
	}{
		{"string cutoff", map[string]any{"cutoff_freq": "2500"}},
		{"fractional order", map[string]any{"filter_order": 4.5}},
		{"string flag", map[string]any{"bandpass": "yes"}},
		{"short range", map[string]any{"bandpass": true, "bandpass_range": []any{300}}},
		{"non-numeric range", map[string]any{"bandpass": true, "bandpass_range": []any{"low", "high"}}},
		{"numeric description", map[string]any{"description": 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRecord("bad", tt.rec)
			assert.ErrorIs(t, err, ErrInvalidPreset)
		})
	}
}

func TestRecord_RoundTripsBuiltins(t *testing.T) {
	for _, p := range builtinStyles() {
		t.Run(p.ID, func(t *testing.T) {
			back, err := FromRecord(p.ID, p.Record())
			require.NoError(t, err)
			assert.Equal(t, p, back)
		})
	}
}

func TestRecord_RoundTripsExtensions(t *testing.T) {
	p := validPreset()
	p.Extensions = map[string]any{
		"vendor_tag": "studio-a",
		"mic_gain":   1.5,
	}

	rec := p.Record()
	assert.Equal(t, "studio-a", rec["vendor_tag"])

	back, err := FromRecord(p.ID, rec)
	require.NoError(t, err)
	assert.Equal(t, p.Extensions, back.Extensions)
}

func TestSchemaKeys_Sorted(t *testing.T) {
	keys := SchemaKeys()
	assert.IsNonDecreasing(t, keys)
	assert.Contains(t, keys, KeyBandpassRange)
	assert.Len(t, keys, 30)
}
