package audio

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Decoder defines the interface for all audio format decoders. Decoders
// emit interleaved multi-channel samples; downmixing is left to the
// renderer so the mix policy lives in one place.
type Decoder interface {
	// ReadChunk reads the next chunk of interleaved float64 samples in
	// [-1, 1], sized around frames frames (codec frame boundaries may
	// overshoot slightly). Returns io.EOF when the stream is finished.
	ReadChunk(frames int) ([]float64, error)

	// SampleRate returns the audio sample rate in Hz.
	SampleRate() int

	// NumChannels returns the number of audio channels (1=mono, 2=stereo).
	NumChannels() int

	// Close closes the decoder and releases resources.
	Close() error
}

// ErrUnsupportedFormat is returned by Open for file extensions no
// decoder claims.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Open picks a decoder based on the file extension.
func Open(filename string) (Decoder, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav", ".wave":
		return NewWAVDecoder(filename)
	case ".mp3":
		return NewMP3Decoder(filename)
	case ".flac":
		return NewFLACDecoder(filename)
	case ".ogg", ".oga":
		return NewVorbisDecoder(filename)
	case ".aif", ".aiff":
		return NewAIFFDecoder(filename)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
}

// readChunkFrames is the chunk size ReadAll requests per iteration.
const readChunkFrames = 8192

// ReadAll drains a decoder into a single interleaved sample buffer.
// An empty stream yields an empty buffer, not an error.
func ReadAll(d Decoder) ([]float64, error) {
	var samples []float64
	for {
		chunk, err := d.ReadChunk(readChunkFrames)
		samples = append(samples, chunk...)
		if err != nil {
			if err == io.EOF {
				return samples, nil
			}
			return nil, err
		}
		if len(chunk) == 0 {
			return samples, nil
		}
	}
}
