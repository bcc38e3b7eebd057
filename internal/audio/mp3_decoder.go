package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/go-mp3"
)

// MP3Decoder implements Decoder for MP3 files
type MP3Decoder struct {
	decoder     *mp3.Decoder
	file        *os.File
	sampleRate  int
	numChannels int
}

// NewMP3Decoder creates a new MP3 decoder
func NewMP3Decoder(filename string) (*MP3Decoder, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create MP3 decoder: %w", err)
	}

	return &MP3Decoder{
		decoder:     decoder,
		file:        f,
		sampleRate:  decoder.SampleRate(),
		numChannels: 2, // go-mp3 always outputs stereo
	}, nil
}

// ReadChunk reads the next chunk of interleaved stereo samples
func (d *MP3Decoder) ReadChunk(frames int) ([]float64, error) {
	// go-mp3 outputs interleaved 16-bit stereo: L0 R0 L1 R1 ...
	// so one frame is 4 bytes (2 bytes × 2 channels)
	buf := make([]byte, frames*4)

	n, err := d.decoder.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read MP3 data: %w", err)
	}

	if n == 0 {
		return nil, io.EOF
	}

	// n bytes = n/2 16-bit channel samples, kept interleaved
	count := n / 2
	samples := make([]float64, count)
	for i := 0; i < count; i++ {
		v := int16(buf[i*2]) | int16(buf[i*2+1])<<8
		samples[i] = float64(v) / 32768.0
	}

	return samples, nil
}

// SampleRate returns the sample rate
func (d *MP3Decoder) SampleRate() int {
	return d.sampleRate
}

// NumChannels returns the number of audio channels
func (d *MP3Decoder) NumChannels() int {
	return d.numChannels
}

// Close closes the decoder and releases resources
func (d *MP3Decoder) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}
