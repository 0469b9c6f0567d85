package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// ComplexNoise generates complex white noise with both parts in [-1, 1).
func ComplexNoise(seed int64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Delay returns x shifted right by d samples, zero-filled, with length len(x)+d.
func Delay(x []float64, d int) []float64 {
	out := make([]float64, len(x)+d)
	copy(out[d:], x)
	return out
}

// DirectCorrelate computes r[k] = sum_n x[n+k]*y[n] for lags -(len(y)-1)..len(x)-1.
// Index i of the result holds lag i-(len(y)-1).
func DirectCorrelate(x, y []float64) []float64 {
	out := make([]float64, len(x)+len(y)-1)
	for i := range out {
		lag := i - (len(y) - 1)
		var sum float64
		for n := range y {
			j := n + lag
			if j >= 0 && j < len(x) {
				sum += x[j] * y[n]
			}
		}
		out[i] = sum
	}
	return out
}
