// Package codec loads source recordings into integer PCM buffers and
// writes rendered buffers as WAV files. Decoders are selected by file
// extension.
package codec

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/go-audio/audio"
)

// Codec errors.
var (
	// ErrSourceLoad indicates the source file could not be read or decoded.
	ErrSourceLoad = errors.New("failed to load source audio")

	// ErrUnsupportedFormat indicates no decoder is registered for the extension.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrInvalidFile indicates the data is not a valid file of the claimed format.
	ErrInvalidFile = errors.New("invalid audio file")
)

// Decoder decodes a whole file into interleaved integer PCM.
type Decoder interface {
	Decode(r io.ReadSeeker) (*audio.IntBuffer, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(r io.ReadSeeker) (*audio.IntBuffer, error)

// Decode implements Decoder.
func (f DecoderFunc) Decode(r io.ReadSeeker) (*audio.IntBuffer, error) {
	return f(r)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Decoder{
		".wav":  DecoderFunc(decodeWAV),
		".aiff": DecoderFunc(decodeAIFF),
		".aif":  DecoderFunc(decodeAIFF),
		".mp3":  DecoderFunc(decodeMP3),
		".ogg":  DecoderFunc(decodeOgg),
	}
)

// Register adds or replaces the decoder for ext (with or without the
// leading dot, case-insensitive).
func Register(ext string, d Decoder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[normalizeExt(ext)] = d
}

// Extensions returns the registered extensions, sorted.
func Extensions() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	exts := make([]string, 0, len(registry))
	for ext := range registry {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

func lookup(ext string) (Decoder, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[normalizeExt(ext)]
	return d, ok
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Load decodes the file at path with the decoder registered for its
// extension.
func Load(path string) (*audio.IntBuffer, error) {
	d, ok := lookup(filepath.Ext(path))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceLoad, err)
	}
	defer func() { _ = f.Close() }()

	buf, err := d.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceLoad, path, err)
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels <= 0 || buf.Format.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceLoad, path, ErrInvalidFile)
	}
	return buf, nil
}
