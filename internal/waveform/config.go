package waveform

import (
	"fmt"
	"image/color"
)

// Default rendering profile, matching the CLI's stock flags.
const (
	DefaultWidth      = 1920
	DefaultHeight     = 120
	DefaultOversample = 32
)

// Config describes a single rendering run. It is passed by value into
// Render, so repeated or concurrent conversions cannot interfere with
// each other through shared state.
type Config struct {
	// Width and Height of the output image in pixels.
	Width  int
	Height int

	// Oversample is the number of envelope bins computed per output
	// column before downsampling. Higher values catch shorter
	// transient peaks.
	Oversample int

	// Foreground is the waveform colour, Background fills the rest of
	// the canvas. Both carry their own alpha.
	Foreground color.NRGBA
	Background color.NRGBA

	// Normalize rescales the envelope so the loudest column reaches
	// full height.
	Normalize bool
}

// DefaultConfig returns the stock profile: a wide, short strip of opaque
// black bars on a transparent background, without normalization.
func DefaultConfig() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Oversample: DefaultOversample,
		Foreground: color.NRGBA{A: 255},
		Background: color.NRGBA{},
	}
}

// Validate rejects impossible dimensions. Render calls it before any
// buffer is allocated or any sample is touched.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidHeight, c.Height)
	}
	if c.Oversample < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidOversample, c.Oversample)
	}
	return nil
}
