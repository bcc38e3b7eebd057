package waveform

import "errors"

var (
	ErrInvalidWidth      = errors.New("width must be positive")
	ErrInvalidHeight     = errors.New("height must be positive")
	ErrInvalidOversample = errors.New("oversample must be at least 1")
	ErrInvalidChannels   = errors.New("channel count must be at least 1")
	ErrRaggedStream      = errors.New("sample count must be a multiple of the channel count")
	ErrBadColor          = errors.New("unknown color")
)
