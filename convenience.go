package retrofx

import (
	"context"
	"fmt"
	"sync"
)

var (
	defaultRendererOnce sync.Once
	defaultRenderer     *Renderer
)

// sharedRenderer returns a process-wide renderer over the built-in styles.
func sharedRenderer() *Renderer {
	defaultRendererOnce.Do(func() {
		defaultRenderer = NewRenderer(DefaultRegistry())
	})
	return defaultRenderer
}

// ApplyStyle is a one-shot helper: it renders mono samples recorded at
// sampleRate in a built-in style with the full chain and returns the
// output samples and their rate.
func ApplyStyle(samples []float64, sampleRate int, styleID string) ([]float64, int, error) {
	return applyMode(samples, sampleRate, styleID, ModeFull)
}

// ApplyBaselineStyle is ApplyStyle for the safe baseline profile.
func ApplyBaselineStyle(samples []float64, sampleRate int, styleID string) ([]float64, int, error) {
	return applyMode(samples, sampleRate, styleID, ModeBaseline)
}

func applyMode(samples []float64, sampleRate int, styleID string, mode Mode) ([]float64, int, error) {
	out, err := sharedRenderer().Render(context.Background(),
		&SampleBuffer{Samples: samples, SampleRate: sampleRate}, styleID, mode)
	if err != nil {
		return nil, 0, err
	}
	return out.Samples, out.SampleRate, nil
}

// DownmixInterleaved averages interleaved frames into a mono slice.
// Trailing samples that do not fill a frame are dropped.
func DownmixInterleaved(interleaved []float64, channels int) ([]float64, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: channel count must be positive, got %d", ErrInvalidBuffer, channels)
	}
	frames := len(interleaved) / channels
	out := make([]float64, frames)
	for i := range frames {
		var sum float64
		for _, v := range interleaved[i*channels : (i+1)*channels] {
			sum += v
		}
		out[i] = sum / float64(channels)
	}
	return out, nil
}

// =============================================================================
// Float32 API
// =============================================================================

// ApplyStyleFloat32 is ApplyStyle for float32 samples. Processing runs in
// float64 and the result is converted back.
func ApplyStyleFloat32(samples []float32, sampleRate int, styleID string) ([]float32, int, error) {
	out, rate, err := ApplyStyle(toFloat64(samples), sampleRate, styleID)
	if err != nil {
		return nil, 0, err
	}
	return toFloat32(out), rate, nil
}

func toFloat64(s []float32) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}

func toFloat32(s []float64) []float32 {
	out := make([]float32, len(s))
	for i, v := range s {
		out[i] = float32(v)
	}
	return out
}
