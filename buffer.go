package retrofx

import (
	"fmt"
	"math"
	"time"

	"github.com/go-audio/audio"
	"github.com/tphakala/go-retro-voice/internal/mathutil"
	"github.com/tphakala/go-retro-voice/internal/resample"
)

// SampleBuffer is a mono float buffer with nominal range [-1, 1].
type SampleBuffer struct {
	Samples    []float64
	SampleRate int
}

// Validate reports ErrInvalidBuffer for a nil buffer or a non-positive rate.
func (b *SampleBuffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	}
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidBuffer, b.SampleRate)
	}
	return nil
}

// Duration returns the playback length of the buffer.
func (b *SampleBuffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(b.Samples)) / float64(b.SampleRate) * float64(time.Second))
}

// Clone returns a deep copy.
func (b *SampleBuffer) Clone() *SampleBuffer {
	s := make([]float64, len(b.Samples))
	copy(s, b.Samples)
	return &SampleBuffer{Samples: s, SampleRate: b.SampleRate}
}

// validBitDepth reports whether bits is a supported PCM depth.
func validBitDepth(bits int) bool {
	switch bits {
	case 8, 16, 24, 32:
		return true
	}
	return false
}

// ToFloat converts an interleaved integer PCM buffer to mono float. Channels
// are averaged; samples are scaled by 2^(bits-1). 8-bit data is unsigned
// with a 128 midpoint, as stored in WAV. A zero SourceBitDepth means 16.
func ToFloat(pcm *audio.IntBuffer) (*SampleBuffer, error) {
	if pcm == nil || pcm.Format == nil {
		return nil, fmt.Errorf("%w: missing PCM format", ErrInvalidBuffer)
	}
	channels := pcm.Format.NumChannels
	if channels <= 0 {
		return nil, fmt.Errorf("%w: channel count must be positive, got %d", ErrInvalidBuffer, channels)
	}
	if pcm.Format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidBuffer, pcm.Format.SampleRate)
	}
	bits := pcm.SourceBitDepth
	if bits == 0 {
		bits = defaultBitDepth
	}
	if !validBitDepth(bits) {
		return nil, fmt.Errorf("%w: unsupported bit depth %d", ErrInvalidBuffer, bits)
	}

	scale := math.Ldexp(1, bits-1)
	var offset float64
	if bits == 8 {
		offset = scale
	}

	frames := len(pcm.Data) / channels
	out := make([]float64, frames)
	for i := range frames {
		var sum float64
		for ch := range channels {
			sum += float64(pcm.Data[i*channels+ch]) - offset
		}
		out[i] = sum / float64(channels) / scale
	}
	return &SampleBuffer{Samples: out, SampleRate: pcm.Format.SampleRate}, nil
}

// ToPCM clips buf to [-1, 1] and quantizes it to mono integer PCM at the
// given bit depth (0 means 16). Samples are scaled by 2^(bits-1)-1.
func ToPCM(buf *SampleBuffer, bitDepth int) (*audio.IntBuffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if bitDepth == 0 {
		bitDepth = defaultBitDepth
	}
	if !validBitDepth(bitDepth) || bitDepth > maxBitDepth {
		return nil, fmt.Errorf("%w: unsupported bit depth %d", ErrInvalidBuffer, bitDepth)
	}

	full := math.Ldexp(1, bitDepth-1)
	peak := full - 1
	var offset int
	if bitDepth == 8 {
		offset = int(full)
	}

	data := make([]int, len(buf.Samples))
	for i, v := range buf.Samples {
		data[i] = int(math.Round(mathutil.Clamp(v, -1, 1)*peak)) + offset
	}
	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: buf.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}, nil
}

// Resample converts buf to targetRate with a Kaiser-windowed sinc kernel.
// The output has round(n*target/source) samples; equal rates copy.
func Resample(buf *SampleBuffer, targetRate int) (*SampleBuffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if targetRate == buf.SampleRate {
		return buf.Clone(), nil
	}
	out, err := resample.Resample(buf.Samples, float64(buf.SampleRate), float64(targetRate))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBuffer, err)
	}
	return &SampleBuffer{Samples: out, SampleRate: targetRate}, nil
}
