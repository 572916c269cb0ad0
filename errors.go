package retrofx

import (
	"errors"
	"fmt"
)

// Common errors returned by the package.
var (
	// ErrInvalidPreset indicates a preset that violates the schema or its invariants.
	ErrInvalidPreset = errors.New("invalid style preset")

	// ErrInvalidBuffer indicates a malformed sample buffer.
	ErrInvalidBuffer = errors.New("invalid sample buffer")

	// ErrStageFailure indicates an effect stage failed while rendering a style.
	ErrStageFailure = errors.New("effect stage failed")

	// ErrInvalidMode indicates an unknown render mode name.
	ErrInvalidMode = errors.New("invalid render mode")
)

// StageError reports a failure while rendering one style. It matches
// ErrStageFailure with errors.Is and also unwraps to the underlying cause.
type StageError struct {
	Style string
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("style %s: stage %s: %v", e.Style, e.Stage, e.Err)
}

// Unwrap returns ErrStageFailure and the cause.
func (e *StageError) Unwrap() []error {
	return []error{ErrStageFailure, e.Err}
}
