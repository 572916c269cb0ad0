package retrofx

import (
	"math"

	"github.com/tphakala/go-retro-voice/internal/effects"
	"github.com/tphakala/go-retro-voice/internal/filter"
	"github.com/tphakala/go-retro-voice/internal/mathutil"
	"github.com/tphakala/go-retro-voice/internal/pipeline"
)

// designBandLimit picks the band-limit filter for p: the declared
// bandpass, else a bandpass from the high-pass cutoff up to cutoff_freq,
// else a lowpass at cutoff_freq.
func designBandLimit(p *StylePreset, rate float64) filter.Spec {
	switch {
	case p.Bandpass != nil:
		return filter.DesignBandpass(rate, p.Bandpass.Low, p.Bandpass.High, p.FilterOrder)
	case p.HighPass != nil:
		return filter.DesignBandpass(rate, *p.HighPass, p.CutoffFreq, p.FilterOrder)
	default:
		return filter.DesignLowpass(rate, p.CutoffFreq, p.FilterOrder)
	}
}

func newBandLimitStage(spec filter.Spec) pipeline.Stage {
	return pipeline.Func{
		Kind: pipeline.StageBandLimit,
		Fn:   func(x []float64) []float64 { return filter.FiltFilt(spec, x) },
	}
}

func newAMStage(rate float64, am AMParams) pipeline.Stage {
	return pipeline.Func{
		Kind: pipeline.StageAM,
		Fn:   func(x []float64) []float64 { return effects.AMModulate(x, rate, am.CarrierFreq, am.Depth) },
	}
}

func newWowFlutterStage(rate float64, wf WowFlutterParams) pipeline.Stage {
	params := effects.WowFlutterParams{
		WowFreq:          wf.WowFreq,
		FlutterFreq:      wf.FlutterFreq,
		WowIntensity:     wf.WowIntensity,
		FlutterIntensity: wf.FlutterIntensity,
	}
	return pipeline.Func{
		Kind: pipeline.StageWowFlutter,
		Fn:   func(x []float64) []float64 { return effects.WowFlutter(x, rate, params) },
	}
}

func newWarmthStage(rate float64, w WarmthParams) pipeline.Stage {
	return pipeline.Func{
		Kind: pipeline.StageWarmth,
		Fn:   func(x []float64) []float64 { return effects.WarmthBoost(x, rate, w.Low, w.High, w.Gain) },
	}
}

func newDistortionStage(level float64) pipeline.Stage {
	return pipeline.Func{
		Kind: pipeline.StageColoration,
		Fn:   func(x []float64) []float64 { return effects.SoftClip(x, level) },
	}
}

func newMechanicalStage(rate float64, seed uint64) pipeline.Stage {
	return pipeline.Func{
		Kind: pipeline.StageColoration,
		Fn:   func(x []float64) []float64 { return effects.MechanicalRumble(x, rate, mechanicalRumbleDB, seed) },
	}
}

func newCrackleStage(c CrackleParams, seed uint64) pipeline.Stage {
	return pipeline.Func{
		Kind: pipeline.StageCrackle,
		Fn:   func(x []float64) []float64 { return effects.AddCrackle(x, c.Density, c.Intensity, seed) },
	}
}

func newNoiseStage(rmsDB float64, seed uint64) pipeline.Stage {
	return pipeline.Func{
		Kind: pipeline.StageNoise,
		Fn:   func(x []float64) []float64 { return effects.AddNoise(x, rmsDB, seed) },
	}
}

func newReverbStage(rate float64, r ReverbParams) pipeline.Stage {
	return pipeline.Func{
		Kind: pipeline.StageReverb,
		Fn:   func(x []float64) []float64 { return effects.Reverb(x, rate, r.Delay, r.Decay) },
	}
}

func newCompressionStage(c CompressionParams) pipeline.Stage {
	return pipeline.Func{
		Kind: pipeline.StageCompression,
		Fn:   func(x []float64) []float64 { return effects.Compress(x, c.Threshold, c.Ratio) },
	}
}

func newNormalizeStage(targetDB float64) pipeline.Stage {
	return pipeline.Func{
		Kind: pipeline.StageNormalize,
		Fn:   func(x []float64) []float64 { return effects.NormalizePeak(x, targetDB) },
	}
}

// combinedNoiseDB sums the noise and hiss levels by power and returns the
// RMS in dB. ok is false when neither is declared.
func combinedNoiseDB(noise, hiss *float64) (db float64, ok bool) {
	var power float64
	for _, v := range []*float64{noise, hiss} {
		if v != nil {
			power += *v * *v
			ok = true
		}
	}
	if !ok {
		return 0, false
	}
	return mathutil.LinearToDB(math.Sqrt(power)), true
}
