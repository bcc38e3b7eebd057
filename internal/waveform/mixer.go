package waveform

import "fmt"

// MixMono folds interleaved multi-channel samples into a single mono
// stream, one value per frame. Channels are mixed with a signed average
// before any rectification happens, so phase-cancelling content still
// cancels. Mono input passes through as-is; an empty stream is valid
// silence, not an error.
func MixMono(samples []float64, channels int) ([]float64, error) {
	if channels < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChannels, channels)
	}
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples across %d channels", ErrRaggedStream, len(samples), channels)
	}
	if channels == 1 {
		return samples, nil
	}

	frames := len(samples) / channels
	mono := make([]float64, frames)

	switch channels {
	case 2: // stereo, by far the most common
		for f := 0; f < frames; f++ {
			mono[f] = (samples[f*2] + samples[f*2+1]) * 0.5
		}
	default:
		inv := 1.0 / float64(channels)
		for f := 0; f < frames; f++ {
			var sum float64
			base := f * channels
			for c := 0; c < channels; c++ {
				sum += samples[base+c]
			}
			mono[f] = sum * inv
		}
	}

	return mono, nil
}
