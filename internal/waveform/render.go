package waveform

import (
	"image"
	"image/color"
	"math"
	"runtime"
	"sync"
)

// Palette holds the two colours of a rendering: the waveform bars and
// the backdrop behind them. Immutable once configured.
type Palette struct {
	Foreground color.NRGBA
	Background color.NRGBA
}

// Render is the pipeline entry point: interleaved samples in, finished
// canvas out. The configuration is validated before any reduction work
// starts. A zero-sample stream is valid silence and renders a plain
// background-coloured image.
func Render(samples []float64, channels int, cfg Config) (*image.NRGBA, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mono, err := MixMono(samples, channels)
	if err != nil {
		return nil, err
	}

	env := Reduce(mono, cfg.Width*cfg.Oversample)
	env = Downsample(env, cfg.Oversample)
	if cfg.Normalize {
		Normalize(env)
	}

	return Composite(env, cfg.Height, Palette{
		Foreground: cfg.Foreground,
		Background: cfg.Background,
	}), nil
}

// Composite draws one symmetric vertical bar per envelope column onto a
// background-filled canvas. For a column with amplitude a, the bar spans
// [center-a*height/2, center+a*height/2], giving the rectified look of
// magnitude drawn both above and below the centre line. The foreground
// is alpha-blended over the background; the canvas is NRGBA so a
// transparent background stays transparent in the encoded file.
//
// Columns cover disjoint pixel regions, so they are painted by a pool
// of workers when the canvas is big enough to bother.
func Composite(env []float64, height int, palette Palette) *image.NRGBA {
	width := len(env)
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	fillBackground(img, palette.Background)

	workers := runtime.NumCPU()
	if workers > width {
		workers = width
	}
	if width*height < parallelThreshold || workers <= 1 {
		compositeColumns(img, env, height, palette.Foreground, 0, width)
		return img
	}

	var wg sync.WaitGroup
	step := (width + workers - 1) / workers
	for lo := 0; lo < width; lo += step {
		hi := lo + step
		if hi > width {
			hi = width
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			compositeColumns(img, env, height, palette.Foreground, lo, hi)
		}(lo, hi)
	}
	wg.Wait()

	return img
}

// fillBackground paints the whole canvas with the background colour by
// filling the first row and replicating it downwards.
func fillBackground(img *image.NRGBA, bg color.NRGBA) {
	width, height := img.Rect.Dx(), img.Rect.Dy()
	if width == 0 || height == 0 {
		return
	}

	row := img.Pix[:width*4]
	for x := 0; x < width; x++ {
		o := x * 4
		row[o] = bg.R
		row[o+1] = bg.G
		row[o+2] = bg.B
		row[o+3] = bg.A
	}
	for y := 1; y < height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+width*4], row)
	}
}

// compositeColumns paints columns [lo, hi). Each affected pixel blends
// the foreground over whatever is already there:
// out = fg*alpha + existing*(1-alpha), per channel. A zero-amplitude
// column draws nothing, leaving the bare background.
func compositeColumns(img *image.NRGBA, env []float64, height int, fg color.NRGBA, lo, hi int) {
	center := float64(height) / 2
	alpha := float64(fg.A) / 255.0
	inv := 1.0 - alpha

	for x := lo; x < hi; x++ {
		a := env[x]
		if a <= 0 {
			continue
		}
		if a > 1 {
			a = 1
		}

		half := a * center
		top := int(math.Round(center - half))
		bottom := int(math.Round(center + half))
		if top < 0 {
			top = 0
		}
		if bottom > height-1 {
			bottom = height - 1
		}

		for y := top; y <= bottom; y++ {
			o := y*img.Stride + x*4
			img.Pix[o] = uint8(float64(fg.R)*alpha + float64(img.Pix[o])*inv)
			img.Pix[o+1] = uint8(float64(fg.G)*alpha + float64(img.Pix[o+1])*inv)
			img.Pix[o+2] = uint8(float64(fg.B)*alpha + float64(img.Pix[o+2])*inv)
			// source-over for the alpha channel as well
			img.Pix[o+3] = uint8(float64(fg.A) + float64(img.Pix[o+3])*inv)
		}
	}
}
