package waveform

import (
	"math"
	"testing"
)

func TestReduceLength(t *testing.T) {
	for _, n := range []int{0, 1, 7, 99, 100, 10000, 44100} {
		for _, bins := range []int{1, 10, 100, 1920} {
			samples := make([]float64, n)
			env := Reduce(samples, bins)
			if len(env) != bins {
				t.Errorf("n=%d bins=%d: expected %d bins, got %d", n, bins, bins, len(env))
			}
		}
	}
}

func TestReduceRectification(t *testing.T) {
	// All-negative input must still yield a non-negative envelope.
	samples := make([]float64, 500)
	for i := range samples {
		samples[i] = -0.3 - 0.4*math.Abs(math.Sin(float64(i)))
	}

	env := Reduce(samples, 50)
	for i, v := range env {
		if v < 0 {
			t.Fatalf("bin %d: negative envelope value %v", i, v)
		}
		if v < 0.3 {
			t.Errorf("bin %d: expected at least 0.3 magnitude, got %v", i, v)
		}
	}
}

func TestReduceBinBoundaries(t *testing.T) {
	// 10 samples across 4 bins: boundaries are 0,2,5,7,10. A marker in
	// sample 4 must land in bin 1, not bin 2.
	samples := make([]float64, 10)
	samples[4] = 0.9

	env := Reduce(samples, 4)
	if env[1] != 0.9 {
		t.Errorf("expected marker in bin 1, got %v", env)
	}
	if env[2] != 0 {
		t.Errorf("expected bin 2 empty, got %v", env)
	}
}

func TestReduceSpikePreserved(t *testing.T) {
	// A single 0.9 spike at sample 50 of 10,000 must appear at full
	// magnitude in bin 0 at any oversampling factor, because bins take
	// the rectified peak rather than an average.
	samples := make([]float64, 10000)
	samples[50] = -0.9

	for _, factor := range []int{1, 4} {
		env := Reduce(samples, 100*factor)
		env = Downsample(env, factor)
		if env[0] != 0.9 {
			t.Errorf("factor %d: expected 0.9 in column 0, got %v", factor, env[0])
		}
	}
}

func TestReduceDegenerateBins(t *testing.T) {
	// Fewer samples than bins: every bin falls back to the nearest
	// sample, leaving no gaps.
	samples := []float64{-0.2, 0.6, -0.4}
	env := Reduce(samples, 10)

	if len(env) != 10 {
		t.Fatalf("expected 10 bins, got %d", len(env))
	}
	seen := map[float64]bool{}
	for i, v := range env {
		if v != 0.2 && v != 0.6 && v != 0.4 {
			t.Errorf("bin %d: value %v does not match any source magnitude", i, v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected all three magnitudes represented, got %v", env)
	}
}

func TestReduceEmptyStream(t *testing.T) {
	env := Reduce(nil, 100)
	for i, v := range env {
		if v != 0 {
			t.Fatalf("bin %d: expected silence, got %v", i, v)
		}
	}
}

func TestReduceParallelDeterministic(t *testing.T) {
	// Large enough to take the worker-pool path; the result must match
	// a single-threaded reduction exactly.
	samples := make([]float64, 200000)
	for i := range samples {
		samples[i] = math.Sin(float64(i)*0.37) * math.Cos(float64(i)*0.011)
	}

	const bins = 1920
	env := Reduce(samples, bins)
	serial := make([]float64, bins)
	reduceRange(samples, serial, 0, bins)

	for i := range serial {
		if env[i] != serial[i] {
			t.Fatalf("bin %d: parallel %v != serial %v", i, env[i], serial[i])
		}
	}
}

func TestOversamplingNeverLowersPeak(t *testing.T) {
	samples := make([]float64, 44100)
	for i := range samples {
		samples[i] = 0.1 * math.Sin(2*math.Pi*220*float64(i)/44100)
	}
	samples[12345] = 0.95 // isolated transient

	const width = 100
	var prev float64
	for _, factor := range []int{1, 2, 4, 8, 32} {
		env := Downsample(Reduce(samples, width*factor), factor)
		var peak float64
		for _, v := range env {
			if v > peak {
				peak = v
			}
		}
		if peak < prev {
			t.Errorf("factor %d: global max %v dropped below %v", factor, peak, prev)
		}
		prev = peak
	}
	if prev != 0.95 {
		t.Errorf("expected transient to survive at high factors, final peak %v", prev)
	}
}

func TestDownsampleTakesMax(t *testing.T) {
	env := []float64{0.1, 0.9, 0.5, 0.2, 0, 0.3}
	out := Downsample(env, 2)

	want := []float64{0.9, 0.5, 0.3}
	if len(out) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(out))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("column %d: expected %v, got %v", i, want[i], out[i])
		}
	}
}

func TestDownsampleIdentity(t *testing.T) {
	env := []float64{0.1, 0.2, 0.3}
	out := Downsample(env, 1)
	if len(out) != len(env) {
		t.Fatalf("expected identity pass, got %d columns", len(out))
	}
	for i := range env {
		if out[i] != env[i] {
			t.Errorf("column %d changed: %v != %v", i, out[i], env[i])
		}
	}
}

func TestNormalize(t *testing.T) {
	env := []float64{0.1, 0.25, 0.5}
	Normalize(env)

	want := []float64{0.2, 0.5, 1.0}
	for i := range want {
		if math.Abs(env[i]-want[i]) > 1e-12 {
			t.Errorf("column %d: expected %v, got %v", i, want[i], env[i])
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	env := []float64{0.2, 0.5, 1.0}
	before := append([]float64(nil), env...)
	Normalize(env)

	for i := range before {
		if math.Abs(env[i]-before[i]) > 1e-12 {
			t.Errorf("column %d changed on re-normalization: %v != %v", i, env[i], before[i])
		}
	}
}

func TestNormalizeSilence(t *testing.T) {
	env := make([]float64, 10)
	Normalize(env)
	for i, v := range env {
		if v != 0 {
			t.Fatalf("column %d: silence must stay zero, got %v", i, v)
		}
	}
}
