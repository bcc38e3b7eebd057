// Package waveform turns decoded audio samples into a rectified waveform
// image: a fixed-size canvas whose columns trace the signal's amplitude
// envelope, drawn symmetrically around the vertical centre.
//
// The pipeline is MixMono → Reduce → Downsample → (Normalize) → Composite,
// tied together by Render. Each run owns its own buffers, so concurrent
// conversions do not interfere.
package waveform
