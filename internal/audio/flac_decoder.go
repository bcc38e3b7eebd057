package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/mewkiz/flac"
)

// FLACDecoder implements Decoder for FLAC files
type FLACDecoder struct {
	stream      *flac.Stream
	file        *os.File
	sampleRate  int
	numChannels int
}

// NewFLACDecoder creates a new FLAC decoder. Format information comes
// from the mandatory StreamInfo metadata block.
func NewFLACDecoder(filename string) (*FLACDecoder, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	stream, err := flac.New(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create FLAC decoder: %w", err)
	}

	return &FLACDecoder{
		stream:      stream,
		file:        f,
		sampleRate:  int(stream.Info.SampleRate),
		numChannels: int(stream.Info.NChannels),
	}, nil
}

// ReadChunk reads the next chunk of interleaved samples. FLAC frames are
// consumed whole, so the returned chunk may run slightly past the
// requested frame count.
func (d *FLACDecoder) ReadChunk(frames int) ([]float64, error) {
	want := frames * d.numChannels
	samples := make([]float64, 0, want)

	for len(samples) < want {
		frame, err := d.stream.ParseNext()
		if err != nil {
			if err == io.EOF {
				if len(samples) == 0 {
					return nil, io.EOF
				}
				return samples, nil
			}
			return nil, fmt.Errorf("failed to parse FLAC frame: %w", err)
		}

		// One subframe per channel; interleave them.
		frameSamples := len(frame.Subframes[0].Samples)
		maxVal := float64(int64(1) << (frame.BitsPerSample - 1))
		for i := 0; i < frameSamples; i++ {
			for _, subframe := range frame.Subframes {
				samples = append(samples, float64(subframe.Samples[i])/maxVal)
			}
		}
	}

	return samples, nil
}

// SampleRate returns the sample rate
func (d *FLACDecoder) SampleRate() int {
	return d.sampleRate
}

// NumChannels returns the number of audio channels
func (d *FLACDecoder) NumChannels() int {
	return d.numChannels
}

// Close closes the decoder and releases resources
func (d *FLACDecoder) Close() error {
	if d.stream != nil {
		d.stream.Close()
	}
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}
