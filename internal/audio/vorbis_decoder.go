package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/jfreymuth/oggvorbis"
)

// VorbisDecoder implements Decoder for Ogg Vorbis files
type VorbisDecoder struct {
	reader      *oggvorbis.Reader
	file        *os.File
	sampleRate  int
	numChannels int
}

// NewVorbisDecoder creates a new Ogg Vorbis decoder
func NewVorbisDecoder(filename string) (*VorbisDecoder, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	reader, err := oggvorbis.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create Vorbis decoder: %w", err)
	}

	return &VorbisDecoder{
		reader:      reader,
		file:        f,
		sampleRate:  reader.SampleRate(),
		numChannels: reader.Channels(),
	}, nil
}

// ReadChunk reads the next chunk of interleaved samples
func (d *VorbisDecoder) ReadChunk(frames int) ([]float64, error) {
	// oggvorbis reads interleaved float32 values directly
	buf := make([]float32, frames*d.numChannels)

	n, err := d.reader.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read Vorbis data: %w", err)
	}

	if n == 0 {
		return nil, io.EOF
	}

	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		samples[i] = float64(buf[i])
	}

	return samples, nil
}

// SampleRate returns the sample rate
func (d *VorbisDecoder) SampleRate() int {
	return d.sampleRate
}

// NumChannels returns the number of audio channels
func (d *VorbisDecoder) NumChannels() int {
	return d.numChannels
}

// Close closes the decoder and releases resources
func (d *VorbisDecoder) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}
