package retrofx

// builtinStyles returns the built-in presets in registration order.
func builtinStyles() []StylePreset {
	return []StylePreset{
		{
			ID:           StyleVintageRadio,
			Description:  "Old radio, 1930s-40s",
			CutoffFreq:   2000,
			FilterOrder:  6,
			SampleRate:   RateBroadcast,
			TargetPeakDB: -3,
			AM:           &AMParams{CarrierFreq: 1000, Depth: defaultAMDepth},
			NoiseLevel:   Float(0.02),
			Compression:  &CompressionParams{Threshold: 0.3, Ratio: 2.5},
		},
		{
			ID:           StyleVinylRecord,
			Description:  "Vinyl record, 1950s-60s",
			CutoffFreq:   3500,
			FilterOrder:  4,
			SampleRate:   RateSpeech,
			TargetPeakDB: -3,
			Crackle:      &CrackleParams{Density: 1000, Intensity: 0.1},
			Warmth:       &WarmthParams{Band: Band{Low: 800, High: 2000}, Gain: 0.3},
			Compression:  &CompressionParams{Threshold: 0.4, Ratio: 3.0},
		},
		{
			ID:           StyleCassetteTape,
			Description:  "Cassette deck, 1970s-80s",
			CutoffFreq:   3000,
			FilterOrder:  4,
			SampleRate:   RateSpeech,
			TargetPeakDB: -3.5,
			WowFlutter: &WowFlutterParams{
				WowFreq:          0.5,
				FlutterFreq:      5.0,
				WowIntensity:     0.001,
				FlutterIntensity: 0.0005,
			},
			HissLevel:   Float(0.015),
			Compression: &CompressionParams{Threshold: 0.35, Ratio: 2.8},
		},
		{
			ID:           StyleTelephone,
			Description:  "Old telephone, 1920s-30s",
			CutoffFreq:   1500,
			FilterOrder:  8,
			SampleRate:   RateTelephony,
			TargetPeakDB: -4,
			Bandpass:     &Band{Low: 300, High: 3400},
			NoiseLevel:   Float(0.025),
			Compression:  &CompressionParams{Threshold: 0.25, Ratio: 2.0},
		},
		{
			ID:              StyleGramophone,
			Description:     "Gramophone, 1900s-1920s",
			CutoffFreq:      1800,
			FilterOrder:     6,
			SampleRate:      RateGramophone,
			TargetPeakDB:    -4,
			MechanicalNoise: true,
			NoiseLevel:      Float(0.03),
			Distortion:      Float(0.15),
			Compression:     &CompressionParams{Threshold: 0.2, Ratio: 1.8},
		},
		{
			ID:           StyleEnhancedBasic,
			Description:  "Enhanced basic retro style",
			CutoffFreq:   2500,
			FilterOrder:  4,
			SampleRate:   RateSpeech,
			TargetPeakDB: -3,
			HighPass:     Float(80),
			Reverb:       &ReverbParams{Delay: 0.1, Decay: 0.3},
			Distortion:   Float(0.1),
			Compression:  &CompressionParams{Threshold: 0.3, Ratio: 2.0},
		},
	}
}

// baselineProfile is the conservative per-style setting of the safe
// baseline: one order-2 filter, fixed hiss and the style's peak target.
type baselineProfile struct {
	band     *Band   // bandpass edges, nil for a lowpass
	cutoff   float64 // lowpass cutoff when band is nil
	hissDB   float64
	targetDB float64
}

var baselineProfiles = map[string]baselineProfile{
	StyleVintageRadio:  {band: &Band{Low: 200, High: 3800}, hissDB: -35, targetDB: -3},
	StyleVinylRecord:   {cutoff: 5000, hissDB: -34, targetDB: -3},
	StyleCassetteTape:  {cutoff: 6000, hissDB: -32, targetDB: -3.5},
	StyleTelephone:     {band: &Band{Low: 300, High: 3400}, hissDB: -30, targetDB: -4},
	StyleGramophone:    {band: &Band{Low: 400, High: 3000}, hissDB: -28, targetDB: -4},
	StyleEnhancedBasic: {cutoff: 4500, hissDB: -35, targetDB: -3},
}

// baselineFor returns the baseline profile for id, or the fallback's.
func baselineFor(id string) baselineProfile {
	if b, ok := baselineProfiles[id]; ok {
		return b
	}
	return baselineProfiles[FallbackStyle]
}
