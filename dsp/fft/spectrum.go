package fft

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

// Magnitude returns |X[k]| for each bin.
func Magnitude(seq Sequence) []float64 {
	return MagnitudeTo(nil, seq)
}

// MagnitudeTo writes |X[k]| into dst, growing it if needed, and returns it.
func MagnitudeTo(dst []float64, seq Sequence) []float64 {
	re, im := seq.split()
	dst = core.EnsureLen(dst, len(seq))
	vecmath.Magnitude(dst, re, im)
	return dst
}

// Power returns |X[k]|^2 for each bin.
func Power(seq Sequence) []float64 {
	return PowerTo(nil, seq)
}

// PowerTo writes |X[k]|^2 into dst, growing it if needed, and returns it.
func PowerTo(dst []float64, seq Sequence) []float64 {
	re, im := seq.split()
	dst = core.EnsureLen(dst, len(seq))
	vecmath.Power(dst, re, im)
	return dst
}

// Energy returns the sum of |x[n]|^2 over the sequence.
func Energy(seq Sequence) float64 {
	var sum float64
	for _, p := range Power(seq) {
		sum += p
	}
	return sum
}
