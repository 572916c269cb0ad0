package retrofx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tphakala/go-retro-voice/internal/filter"
	"github.com/tphakala/go-retro-voice/internal/pipeline"
)

// Mode selects which processing profile a render uses.
type Mode int

const (
	// ModeFull runs every stage the preset declares.
	ModeFull Mode = iota

	// ModeBaseline runs the reduced safe profile: band-limit, hiss and
	// normalization with conservative per-style settings.
	ModeBaseline
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeBaseline:
		return "baseline"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode parses "full" or "baseline".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full":
		return ModeFull, nil
	case "baseline":
		return ModeBaseline, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Chain builds and runs the effect pipeline for a preset. A Chain holds no
// mutable state and may be shared between goroutines.
type Chain struct {
	seed   uint64
	logger *logrus.Logger
}

// ChainOption configures a Chain.
type ChainOption func(*Chain)

// WithSeed sets the base seed of the noise stages. Each stage derives its
// own seed from it, so equal seeds give byte-identical renders.
func WithSeed(seed uint64) ChainOption {
	return func(c *Chain) { c.seed = seed }
}

// WithChainLogger sets the chain's logger.
func WithChainLogger(l *logrus.Logger) ChainOption {
	return func(c *Chain) { c.logger = l }
}

// NewChain creates a chain with seed 0 and the standard logger.
func NewChain(opts ...ChainOption) *Chain {
	c := &Chain{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Seed returns the chain's base seed.
func (c *Chain) Seed() uint64 {
	return c.seed
}

// Apply runs the full effect chain of p over buf at buf's sample rate.
// The input buffer is not modified.
func (c *Chain) Apply(buf *SampleBuffer, p *StylePreset) (*SampleBuffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	rate := float64(buf.SampleRate)
	band := designBandLimit(p, rate)
	c.logDesign(p.ID, band)

	stages := []pipeline.Stage{newBandLimitStage(band)}
	if p.AM != nil {
		stages = append(stages, newAMStage(rate, *p.AM))
	}
	if p.WowFlutter != nil {
		stages = append(stages, newWowFlutterStage(rate, *p.WowFlutter))
	}
	if p.Warmth != nil {
		stages = append(stages, newWarmthStage(rate, *p.Warmth))
	}
	if p.Distortion != nil {
		stages = append(stages, newDistortionStage(*p.Distortion))
	}
	if p.MechanicalNoise {
		stages = append(stages, newMechanicalStage(rate, c.seed+mechanicalSeedOffset))
	}
	if p.Crackle != nil {
		stages = append(stages, newCrackleStage(*p.Crackle, c.seed+crackleSeedOffset))
	}
	if db, ok := combinedNoiseDB(p.NoiseLevel, p.HissLevel); ok {
		stages = append(stages, newNoiseStage(db, c.seed+noiseSeedOffset))
	}
	if p.Reverb != nil {
		stages = append(stages, newReverbStage(rate, *p.Reverb))
	}
	if p.Compression != nil {
		stages = append(stages, newCompressionStage(*p.Compression))
	}
	stages = append(stages, newNormalizeStage(p.TargetPeakDB))

	return c.run(p.ID, buf, stages)
}

// ApplyBaseline runs the safe baseline profile for id over buf. Unknown
// identifiers use the fallback style's baseline.
func (c *Chain) ApplyBaseline(buf *SampleBuffer, id string) (*SampleBuffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	rate := float64(buf.SampleRate)
	b := baselineFor(id)

	var band filter.Spec
	if b.band != nil {
		band = filter.DesignBandpass(rate, b.band.Low, b.band.High, baselineOrder)
	} else {
		band = filter.DesignLowpass(rate, b.cutoff, baselineOrder)
	}
	c.logDesign(id, band)

	return c.run(id, buf, []pipeline.Stage{
		newBandLimitStage(band),
		newNoiseStage(b.hissDB, c.seed+noiseSeedOffset),
		newNormalizeStage(b.targetDB),
	})
}

// run executes stages and maps pipeline failures to *StageError.
func (c *Chain) run(id string, buf *SampleBuffer, stages []pipeline.Stage) (*SampleBuffer, error) {
	pl, err := pipeline.New(stages...)
	if err != nil {
		return nil, &StageError{Style: id, Stage: "build", Err: err}
	}

	out, err := pl.Run(buf.Samples)
	if err != nil {
		stage := "unknown"
		var se *pipeline.StageError
		if errors.As(err, &se) {
			stage = se.Stage.String()
		}
		return nil, &StageError{Style: id, Stage: stage, Err: err}
	}

	c.logger.WithFields(logrus.Fields{
		"style":   id,
		"stages":  len(stages),
		"samples": len(out),
	}).Debug("effect chain complete")

	return &SampleBuffer{Samples: out, SampleRate: buf.SampleRate}, nil
}

func (c *Chain) logDesign(id string, spec filter.Spec) {
	if !spec.Degraded {
		return
	}
	c.logger.WithFields(logrus.Fields{
		"style": id,
		"kind":  spec.Kind.String(),
		"wn":    spec.Wn,
	}).Debug("band edges collapsed, using order-2 lowpass")
}
