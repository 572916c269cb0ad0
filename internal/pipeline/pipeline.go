// Package pipeline runs an ordered list of effect stages over a mono
// buffer. Stages must appear in canonical order, must keep the buffer
// length, and must produce finite samples; any violation stops the run
// with a *StageError naming the stage.
package pipeline

import (
	"errors"
	"fmt"
	"math"
)

// Pipeline errors.
var (
	ErrStageOrder    = errors.New("stage out of canonical order")
	ErrNonFinite     = errors.New("stage produced non-finite samples")
	ErrLengthChanged = errors.New("stage changed buffer length")
	ErrStagePanic    = errors.New("stage panicked")
)

// Stage is a single buffer transform.
type Stage interface {
	// Process returns the transformed buffer. It must not modify input.
	Process(input []float64) ([]float64, error)

	// Type returns the stage's slot in the canonical order.
	Type() StageType
}

// StageType identifies an effect stage. Values are declared in canonical
// execution order.
type StageType int

const (
	// StageBandLimit is the zero-phase lowpass or bandpass filter.
	StageBandLimit StageType = iota

	// StageAM is the amplitude-modulation envelope.
	StageAM

	// StageWowFlutter is the time-base modulation.
	StageWowFlutter

	// StageWarmth is the mid-band boost.
	StageWarmth

	// StageColoration is distortion and mechanical noise.
	StageColoration

	// StageCrackle is impulsive surface noise.
	StageCrackle

	// StageNoise is hiss and broadband noise.
	StageNoise

	// StageReverb is the feedback comb.
	StageReverb

	// StageCompression is the soft-knee compressor.
	StageCompression

	// StageNormalize is the final peak normalization.
	StageNormalize
)

var stageNames = [...]string{
	StageBandLimit:   "band-limit",
	StageAM:          "am-modulation",
	StageWowFlutter:  "wow-flutter",
	StageWarmth:      "warmth",
	StageColoration:  "coloration",
	StageCrackle:     "crackle",
	StageNoise:       "noise",
	StageReverb:      "reverb",
	StageCompression: "compression",
	StageNormalize:   "normalize",
}

// String returns the stage name.
func (s StageType) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// StageError reports which stage failed.
type StageError struct {
	Stage StageType
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Func adapts a pure buffer transform to the Stage interface.
type Func struct {
	Kind StageType
	Fn   func(input []float64) []float64
}

// Process implements Stage.
func (f Func) Process(input []float64) ([]float64, error) {
	return f.Fn(input), nil
}

// Type implements Stage.
func (f Func) Type() StageType {
	return f.Kind
}

// Pipeline is an ordered, validated list of stages.
type Pipeline struct {
	stages []Stage
}

// New builds a pipeline. Stage types must be non-decreasing in canonical
// order; a stage type may repeat (coloration carries both distortion and
// mechanical noise).
func New(stages ...Stage) (*Pipeline, error) {
	for i := 1; i < len(stages); i++ {
		if stages[i].Type() < stages[i-1].Type() {
			return nil, fmt.Errorf("%w: %s after %s", ErrStageOrder, stages[i].Type(), stages[i-1].Type())
		}
	}
	return &Pipeline{stages: stages}, nil
}

// Stages returns the stage types in execution order.
func (p *Pipeline) Stages() []StageType {
	types := make([]StageType, len(p.stages))
	for i, s := range p.stages {
		types[i] = s.Type()
	}
	return types
}

// Run executes every stage in order. The input is not modified.
func (p *Pipeline) Run(input []float64) ([]float64, error) {
	buf := input
	for _, stage := range p.stages {
		out, err := runStage(stage, buf)
		if err != nil {
			return nil, &StageError{Stage: stage.Type(), Err: err}
		}
		if len(out) != len(buf) {
			return nil, &StageError{
				Stage: stage.Type(),
				Err:   fmt.Errorf("%w: %d -> %d", ErrLengthChanged, len(buf), len(out)),
			}
		}
		if i := firstNonFinite(out); i >= 0 {
			return nil, &StageError{
				Stage: stage.Type(),
				Err:   fmt.Errorf("%w at sample %d", ErrNonFinite, i),
			}
		}
		buf = out
	}

	if len(p.stages) == 0 {
		out := make([]float64, len(input))
		copy(out, input)
		return out, nil
	}
	return buf, nil
}

// runStage converts a panic inside a stage into an error.
func runStage(stage Stage, input []float64) (out []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrStagePanic, r)
		}
	}()
	return stage.Process(input)
}

func firstNonFinite(x []float64) int {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}
