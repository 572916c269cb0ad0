package codec

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV writes buf as a PCM WAV file at path, creating parent
// directories as needed. A zero SourceBitDepth is written as 16-bit.
func WriteWAV(path string, buf *audio.IntBuffer) (err error) {
	if buf == nil || buf.Format == nil {
		return fmt.Errorf("%w: missing PCM format", ErrInvalidFile)
	}
	bits := buf.SourceBitDepth
	if bits == 0 {
		bits = pcm16Bits
	}

	if err := os.MkdirAll(filepath.Dir(path), outputDirPerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	// Close errors matter: the encoder patches the header sizes on Close.
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	enc := wav.NewEncoder(f, buf.Format.SampleRate, bits, buf.Format.NumChannels, wavFormatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV header: %w", err)
	}
	return nil
}

// OutputPath returns <dir>/optimized_retro_<id>.wav, or
// <dir>/optimized_retro_<id>_enhanced.wav for a baseline render.
func OutputPath(dir, styleID string, baseline bool) string {
	name := outputPrefix + styleID
	if baseline {
		name += baselineSuffix
	}
	return filepath.Join(dir, name+".wav")
}
