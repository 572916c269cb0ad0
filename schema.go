package retrofx

import (
	"fmt"
	"math"
	"slices"
)

// Preset record keys.
const (
	KeyDescription          = "description"
	KeyCutoffFreq           = "cutoff_freq"
	KeyFilterOrder          = "filter_order"
	KeySampleRate           = "sample_rate"
	KeyTargetPeakDB         = "target_peak_db"
	KeyAMModulation         = "am_modulation"
	KeyCarrierFreq          = "carrier_freq"
	KeyAMDepth              = "am_depth"
	KeyNoiseLevel           = "noise_level"
	KeyBandpass             = "bandpass"
	KeyBandpassRange        = "bandpass_range"
	KeyHighPassCutoff       = "high_pass_cutoff"
	KeyCrackleEnabled       = "crackle_enabled"
	KeyCrackleDensity       = "crackle_density"
	KeyCrackleIntensity     = "crackle_intensity"
	KeyWarmthBoost          = "warmth_boost"
	KeyWarmthFreqRange      = "warmth_freq_range"
	KeyWarmthGain           = "warmth_gain"
	KeyWowFreq              = "wow_freq"
	KeyFlutterFreq          = "flutter_freq"
	KeyWowIntensity         = "wow_intensity"
	KeyFlutterIntensity     = "flutter_intensity"
	KeyHissLevel            = "hiss_level"
	KeyMechanicalNoise      = "mechanical_noise"
	KeyDistortionLevel      = "distortion_level"
	KeyReverbEnabled        = "reverb_enabled"
	KeyReverbDelay          = "reverb_delay"
	KeyReverbDecay          = "reverb_decay"
	KeyCompressionThreshold = "compression_threshold"
	KeyCompressionRatio     = "compression_ratio"
)

// recordReader pulls typed values out of a flat record and remembers
// which keys it consumed.
type recordReader struct {
	id   string
	rec  map[string]any
	used map[string]bool
	err  error
}

func (r *recordReader) has(key string) bool {
	_, ok := r.rec[key]
	return ok
}

func (r *recordReader) fail(key string, v any, want string) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: %s: %s must be %s, got %T", ErrInvalidPreset, r.id, key, want, v)
	}
}

// number returns the value at key, or def when absent.
func (r *recordReader) number(key string, def float64) float64 {
	v, ok := r.rec[key]
	if !ok {
		return def
	}
	r.used[key] = true
	f, ok := toFloat(v)
	if !ok {
		r.fail(key, v, "a number")
		return def
	}
	return f
}

func (r *recordReader) optNumber(key string) *float64 {
	if !r.has(key) {
		return nil
	}
	return Float(r.number(key, 0))
}

// integer returns the value at key as an int. Floats must be whole.
func (r *recordReader) integer(key string, def int) int {
	v, ok := r.rec[key]
	if !ok {
		return def
	}
	r.used[key] = true
	f, ok := toFloat(v)
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		r.fail(key, v, "an integer")
		return def
	}
	return int(f)
}

func (r *recordReader) text(key, def string) string {
	v, ok := r.rec[key]
	if !ok {
		return def
	}
	r.used[key] = true
	s, ok := v.(string)
	if !ok {
		r.fail(key, v, "a string")
		return def
	}
	return s
}

// flag reports whether a boolean key is present and true. A false flag is
// consumed too.
func (r *recordReader) flag(key string) bool {
	v, ok := r.rec[key]
	if !ok {
		return false
	}
	r.used[key] = true
	b, ok := v.(bool)
	if !ok {
		r.fail(key, v, "a boolean")
		return false
	}
	return b
}

// band reads a two-element [low, high] range.
func (r *recordReader) band(key string, def Band) Band {
	v, ok := r.rec[key]
	if !ok {
		return def
	}
	r.used[key] = true
	edges, ok := toFloatSlice(v)
	if !ok || len(edges) != 2 {
		r.fail(key, v, "a [low, high] pair")
		return def
	}
	return Band{Low: edges[0], High: edges[1]}
}

// FromRecord builds a typed preset from a flat record. Flagged stages
// (am_modulation, bandpass, crackle_enabled, warmth_boost,
// reverb_enabled) are enabled only when their flag is true; their
// parameters default when absent. Wow/flutter, noise, hiss, distortion,
// high-pass and compression are enabled by the presence of their keys.
// Keys the schema does not consume are kept verbatim in Extensions.
func FromRecord(id string, rec map[string]any) (StylePreset, error) {
	r := &recordReader{id: id, rec: rec, used: make(map[string]bool, len(rec))}

	p := StylePreset{
		ID:           id,
		Description:  r.text(KeyDescription, ""),
		CutoffFreq:   r.number(KeyCutoffFreq, 0),
		FilterOrder:  r.integer(KeyFilterOrder, 0),
		SampleRate:   r.integer(KeySampleRate, 0),
		TargetPeakDB: r.number(KeyTargetPeakDB, DefaultTargetPeakDB),
		NoiseLevel:   r.optNumber(KeyNoiseLevel),
		HighPass:     r.optNumber(KeyHighPassCutoff),
		HissLevel:    r.optNumber(KeyHissLevel),
		Distortion:   r.optNumber(KeyDistortionLevel),
	}

	if r.flag(KeyAMModulation) {
		p.AM = &AMParams{
			CarrierFreq: r.number(KeyCarrierFreq, defaultCarrierFreq),
			Depth:       r.number(KeyAMDepth, defaultAMDepth),
		}
	}
	if r.flag(KeyBandpass) {
		b := r.band(KeyBandpassRange, Band{Low: defaultBandpassLow, High: defaultBandpassHigh})
		p.Bandpass = &b
	}
	if r.flag(KeyCrackleEnabled) {
		p.Crackle = &CrackleParams{
			Density:   r.number(KeyCrackleDensity, defaultCrackleDensity),
			Intensity: r.number(KeyCrackleIntensity, defaultCrackleIntensity),
		}
	}
	if r.flag(KeyWarmthBoost) {
		p.Warmth = &WarmthParams{
			Band: r.band(KeyWarmthFreqRange, Band{Low: defaultWarmthLow, High: defaultWarmthHigh}),
			Gain: r.number(KeyWarmthGain, defaultWarmthGain),
		}
	}
	if r.has(KeyWowFreq) || r.has(KeyFlutterFreq) || r.has(KeyWowIntensity) || r.has(KeyFlutterIntensity) {
		p.WowFlutter = &WowFlutterParams{
			WowFreq:          r.number(KeyWowFreq, 0),
			FlutterFreq:      r.number(KeyFlutterFreq, 0),
			WowIntensity:     r.number(KeyWowIntensity, 0),
			FlutterIntensity: r.number(KeyFlutterIntensity, 0),
		}
	}
	p.MechanicalNoise = r.flag(KeyMechanicalNoise)
	if r.flag(KeyReverbEnabled) {
		p.Reverb = &ReverbParams{
			Delay: r.number(KeyReverbDelay, defaultReverbDelay),
			Decay: r.number(KeyReverbDecay, defaultReverbDecay),
		}
	}
	if r.has(KeyCompressionThreshold) || r.has(KeyCompressionRatio) {
		p.Compression = &CompressionParams{
			Threshold: r.number(KeyCompressionThreshold, defaultCompressionThreshold),
			Ratio:     r.number(KeyCompressionRatio, defaultCompressionRatio),
		}
	}

	if r.err != nil {
		return StylePreset{}, r.err
	}

	for key, v := range rec {
		if r.used[key] {
			continue
		}
		if p.Extensions == nil {
			p.Extensions = make(map[string]any)
		}
		p.Extensions[key] = v
	}

	return p, nil
}

// Record flattens the preset into a schema record. Extensions are merged
// in unchanged; FromRecord(p.ID, p.Record()) reproduces p.
func (p *StylePreset) Record() map[string]any {
	rec := make(map[string]any, len(p.Extensions)+16)
	for k, v := range p.Extensions {
		rec[k] = v
	}

	rec[KeyDescription] = p.Description
	rec[KeyCutoffFreq] = p.CutoffFreq
	rec[KeyFilterOrder] = p.FilterOrder
	rec[KeySampleRate] = p.SampleRate
	rec[KeyTargetPeakDB] = p.TargetPeakDB

	if p.AM != nil {
		rec[KeyAMModulation] = true
		rec[KeyCarrierFreq] = p.AM.CarrierFreq
		rec[KeyAMDepth] = p.AM.Depth
	}
	if p.NoiseLevel != nil {
		rec[KeyNoiseLevel] = *p.NoiseLevel
	}
	if p.Bandpass != nil {
		rec[KeyBandpass] = true
		rec[KeyBandpassRange] = []float64{p.Bandpass.Low, p.Bandpass.High}
	}
	if p.HighPass != nil {
		rec[KeyHighPassCutoff] = *p.HighPass
	}
	if p.Crackle != nil {
		rec[KeyCrackleEnabled] = true
		rec[KeyCrackleDensity] = p.Crackle.Density
		rec[KeyCrackleIntensity] = p.Crackle.Intensity
	}
	if p.Warmth != nil {
		rec[KeyWarmthBoost] = true
		rec[KeyWarmthFreqRange] = []float64{p.Warmth.Low, p.Warmth.High}
		rec[KeyWarmthGain] = p.Warmth.Gain
	}
	if p.WowFlutter != nil {
		rec[KeyWowFreq] = p.WowFlutter.WowFreq
		rec[KeyFlutterFreq] = p.WowFlutter.FlutterFreq
		rec[KeyWowIntensity] = p.WowFlutter.WowIntensity
		rec[KeyFlutterIntensity] = p.WowFlutter.FlutterIntensity
	}
	if p.HissLevel != nil {
		rec[KeyHissLevel] = *p.HissLevel
	}
	if p.MechanicalNoise {
		rec[KeyMechanicalNoise] = true
	}
	if p.Distortion != nil {
		rec[KeyDistortionLevel] = *p.Distortion
	}
	if p.Reverb != nil {
		rec[KeyReverbEnabled] = true
		rec[KeyReverbDelay] = p.Reverb.Delay
		rec[KeyReverbDecay] = p.Reverb.Decay
	}
	if p.Compression != nil {
		rec[KeyCompressionThreshold] = p.Compression.Threshold
		rec[KeyCompressionRatio] = p.Compression.Ratio
	}
	return rec
}

// SchemaKeys returns every key the schema recognizes, sorted.
func SchemaKeys() []string {
	keys := []string{
		KeyDescription, KeyCutoffFreq, KeyFilterOrder, KeySampleRate, KeyTargetPeakDB,
		KeyAMModulation, KeyCarrierFreq, KeyAMDepth, KeyNoiseLevel, KeyBandpass,
		KeyBandpassRange, KeyHighPassCutoff, KeyCrackleEnabled, KeyCrackleDensity,
		KeyCrackleIntensity, KeyWarmthBoost, KeyWarmthFreqRange, KeyWarmthGain,
		KeyWowFreq, KeyFlutterFreq, KeyWowIntensity, KeyFlutterIntensity, KeyHissLevel,
		KeyMechanicalNoise, KeyDistortionLevel, KeyReverbEnabled, KeyReverbDelay,
		KeyReverbDecay, KeyCompressionThreshold, KeyCompressionRatio,
	}
	slices.Sort(keys)
	return keys
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toFloatSlice(v any) ([]float64, bool) {
	switch s := v.(type) {
	case []float64:
		return slices.Clone(s), true
	case [2]float64:
		return s[:], true
	case []int:
		out := make([]float64, len(s))
		for i, n := range s {
			out[i] = float64(n)
		}
		return out, true
	case []any:
		out := make([]float64, len(s))
		for i, e := range s {
			f, ok := toFloat(e)
			if !ok {
				return nil, false
			}
			out[i] = f
		}
		return out, true
	default:
		return nil, false
	}
}
