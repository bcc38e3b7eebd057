package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
)

// AIFFDecoder implements Decoder for AIFF files
type AIFFDecoder struct {
	decoder    *aiff.Decoder
	file       *os.File
	sampleRate int
	bitDepth   int
	numChans   int
}

// NewAIFFDecoder creates a new AIFF decoder
func NewAIFFDecoder(filename string) (*AIFFDecoder, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	decoder := aiff.NewDecoder(f)
	if !decoder.IsValidFile() {
		f.Close()
		return nil, fmt.Errorf("invalid AIFF file")
	}
	decoder.ReadInfo()

	return &AIFFDecoder{
		decoder:    decoder,
		file:       f,
		sampleRate: int(decoder.SampleRate),
		bitDepth:   int(decoder.BitDepth),
		numChans:   int(decoder.NumChans),
	}, nil
}

// ReadChunk reads the next chunk of interleaved samples
func (d *AIFFDecoder) ReadChunk(frames int) ([]float64, error) {
	bufSize := frames * d.numChans
	intBuf := &audio.IntBuffer{
		Data: make([]int, bufSize),
		Format: &audio.Format{
			NumChannels: d.numChans,
			SampleRate:  d.sampleRate,
		},
	}

	n, err := d.decoder.PCMBuffer(intBuf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read PCM buffer: %w", err)
	}

	if n == 0 {
		return nil, io.EOF
	}

	maxVal := float64(audio.IntMaxSignedValue(d.bitDepth))
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		samples[i] = float64(intBuf.Data[i]) / maxVal
	}

	return samples, nil
}

// SampleRate returns the sample rate
func (d *AIFFDecoder) SampleRate() int {
	return d.sampleRate
}

// NumChannels returns the number of audio channels
func (d *AIFFDecoder) NumChannels() int {
	return d.numChans
}

// Close closes the decoder and releases resources
func (d *AIFFDecoder) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}
