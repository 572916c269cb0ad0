package retrofx

import "github.com/tphakala/go-retro-voice/internal/effects"

// Built-in style identifiers.
const (
	StyleVintageRadio  = "vintage_radio"
	StyleVinylRecord   = "vinyl_record"
	StyleCassetteTape  = "cassette_tape"
	StyleTelephone     = "telephone"
	StyleGramophone    = "gramophone"
	StyleEnhancedBasic = "enhanced_basic"

	// FallbackStyle is returned for unknown identifiers.
	FallbackStyle = StyleEnhancedBasic
)

// Custom preset defaults.
const (
	defaultCutoffFreq           = 2500.0
	defaultFilterOrder          = 4
	defaultSampleRate           = 22050
	defaultCompressionThreshold = 0.3
	defaultCompressionRatio     = 2.0
	defaultNoiseLevel           = 0.01
	defaultDistortionLevel      = 0.05

	// DefaultTargetPeakDB is the normalization target when a preset names none.
	DefaultTargetPeakDB = -3.0
)

// Stage parameter defaults used when a record enables a stage without
// giving its parameters.
const (
	defaultCarrierFreq      = 1000.0
	defaultAMDepth          = effects.DefaultAMDepth
	defaultBandpassLow      = 300.0
	defaultBandpassHigh     = 3400.0
	defaultCrackleDensity   = 1000.0
	defaultCrackleIntensity = 0.1
	defaultWarmthLow        = 800.0
	defaultWarmthHigh       = 2000.0
	defaultWarmthGain       = 0.3
	defaultReverbDelay      = 0.1
	defaultReverbDecay      = 0.3
)

// Chain constants
const (
	// mechanicalRumbleDB is the RMS level of gramophone rumble.
	mechanicalRumbleDB = -36.0

	// baselineOrder is the filter order of the safe baseline.
	baselineOrder = 2

	// Seed offsets give each noise stage its own deterministic stream.
	noiseSeedOffset      = 0
	crackleSeedOffset    = 1
	mechanicalSeedOffset = 2
)

// Buffer constants
const (
	defaultBitDepth = 16
	maxBitDepth     = 32
)

// Render constants
const (
	// maxFilterOrder bounds filter_order in presets.
	maxFilterOrder = 24
)

// Common sample rates.
const (
	// RateTelephony is the narrowband telephone rate.
	RateTelephony = 8000

	// RateGramophone is the rate of the gramophone style.
	RateGramophone = 11025

	// RateBroadcast is the rate of the vintage radio style.
	RateBroadcast = 16000

	// RateSpeech is the rate of the tape, vinyl and enhanced styles.
	RateSpeech = 22050

	// RateCD is the CD quality sample rate, a typical source rate.
	RateCD = 44100
)
