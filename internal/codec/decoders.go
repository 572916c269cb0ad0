package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

func decodeWAV(r io.ReadSeeker) (*audio.IntBuffer, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not a WAV file", ErrInvalidFile)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read WAV data: %w", err)
	}
	buf.SourceBitDepth = int(dec.BitDepth)
	return buf, nil
}

func decodeAIFF(r io.ReadSeeker) (*audio.IntBuffer, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not an AIFF file", ErrInvalidFile)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read AIFF data: %w", err)
	}
	buf.SourceBitDepth = int(dec.BitDepth)
	return buf, nil
}

// decodeMP3 decodes to 16-bit stereo, the only layout go-mp3 emits.
func decodeMP3(r io.ReadSeeker) (*audio.IntBuffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to read MP3 data: %w", err)
	}
	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: mp3Channels, SampleRate: dec.SampleRate()},
		Data:           int16LEToInts(raw),
		SourceBitDepth: pcm16Bits,
	}, nil
}

// decodeOgg decodes Vorbis float samples and quantizes them to 16 bits.
func decodeOgg(r io.ReadSeeker) (*audio.IntBuffer, error) {
	samples, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	return &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: format.Channels, SampleRate: format.SampleRate},
		Data:           floatsToInt16(samples),
		SourceBitDepth: pcm16Bits,
	}, nil
}

// int16LEToInts converts little-endian 16-bit PCM bytes to ints. A trailing
// odd byte is ignored.
func int16LEToInts(raw []byte) []int {
	out := make([]int, len(raw)/bytesPerSample16)
	for i := range out {
		out[i] = int(int16(binary.LittleEndian.Uint16(raw[i*bytesPerSample16:])))
	}
	return out
}

// floatsToInt16 clips float samples to [-1, 1] and scales them by 32767.
func floatsToInt16(samples []float32) []int {
	out := make([]int, len(samples))
	for i, v := range samples {
		f := math.Max(-1, math.Min(1, float64(v)))
		out[i] = int(math.Round(f * pcm16Max))
	}
	return out
}
