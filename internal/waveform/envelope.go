package waveform

import (
	"math"
	"runtime"
	"sync"
)

// Streams shorter than this are reduced on the calling goroutine; the
// fan-out overhead is not worth it below that.
const parallelThreshold = 1 << 14

// Reduce partitions a mono sample stream into bins and computes the
// rectified peak of each: the maximum absolute amplitude over the bin's
// sample range. Bin boundaries use fractional division of the stream,
// so bin i covers [floor(i*N/bins), floor((i+1)*N/bins)) and long
// streams never drift against the bin grid.
//
// Bins are independent reads of the shared stream into disjoint output
// slots, so the bin range is split across a fixed pool of workers. The
// result is deterministic regardless of worker count.
func Reduce(samples []float64, bins int) []float64 {
	env := make([]float64, bins)
	if bins == 0 {
		return env
	}

	workers := runtime.NumCPU()
	if workers > bins {
		workers = bins
	}
	if len(samples) < parallelThreshold || workers <= 1 {
		reduceRange(samples, env, 0, bins)
		return env
	}

	var wg sync.WaitGroup
	step := (bins + workers - 1) / workers
	for lo := 0; lo < bins; lo += step {
		hi := lo + step
		if hi > bins {
			hi = bins
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			reduceRange(samples, env, lo, hi)
		}(lo, hi)
	}
	wg.Wait()

	return env
}

func reduceRange(samples, env []float64, lo, hi int) {
	n := len(samples)
	bins := len(env)
	for i := lo; i < hi; i++ {
		start := int(math.Floor(float64(i) * float64(n) / float64(bins)))
		end := int(math.Floor(float64(i+1) * float64(n) / float64(bins)))
		env[i] = binPeak(samples, start, end)
	}
}

// binPeak is the rectified peak over samples[start:end). An empty range
// (more bins than samples) falls back to the nearest in-range sample, so
// very short audio yields a gap-free envelope instead of holes.
func binPeak(samples []float64, start, end int) float64 {
	n := len(samples)
	if n == 0 {
		return 0
	}
	if start >= end {
		idx := start
		if idx > n-1 {
			idx = n - 1
		}
		if idx < 0 {
			idx = 0
		}
		return math.Abs(samples[idx])
	}
	if end > n {
		end = n
	}

	var peak float64
	for _, s := range samples[start:end] {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	return peak
}

// Downsample collapses factor adjacent bins into one output column,
// keeping the maximum so a transient captured by any sub-bin survives
// instead of being diluted by its silent neighbours. A factor of 1 is an
// identity pass.
func Downsample(env []float64, factor int) []float64 {
	if factor <= 1 {
		return env
	}

	width := len(env) / factor
	out := make([]float64, width)
	for x := 0; x < width; x++ {
		peak := env[x*factor]
		for k := 1; k < factor; k++ {
			if v := env[x*factor+k]; v > peak {
				peak = v
			}
		}
		out[x] = peak
	}
	return out
}

// Normalize rescales env in place so its global maximum becomes 1.0.
// A silent (all-zero) envelope is left untouched rather than divided by
// zero, and an already-normalized envelope comes out unchanged.
func Normalize(env []float64) {
	var peak float64
	for _, v := range env {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		return
	}

	scale := 1.0 / peak
	for i := range env {
		env[i] *= scale
	}
}
