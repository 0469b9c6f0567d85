package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/fft"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// Mode specifies the output mode for [Trim].
type Mode int

const (
	// ModeFull returns the full convolution result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeSame returns output with the same length as the first input.
	ModeSame

	// ModeValid returns only the portion where signals fully overlap,
	// with length max(len(a), len(b)) - min(len(a), len(b)) + 1.
	ModeValid
)

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
//
// This is an O(N*M) algorithm; it serves as the reference the spectral
// routines are checked against.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	clear(dst)

	for i := range a {
		for j := range b {
			dst[i+j] += a[i] * b[j]
		}
	}
}

// Linear returns the first lenX+lenY-1 samples of a spectral convolution
// result, the part that equals linear convolution. The trailing samples are
// circular wraparound and are dropped.
func Linear(result fft.Sequence, lenX, lenY int) (fft.Sequence, error) {
	if lenX <= 0 || lenY <= 0 {
		return nil, ErrEmptyInput
	}

	n := lenX + lenY - 1
	if n > len(result) {
		return nil, fmt.Errorf("%w: result has %d samples, linear part needs %d", ErrLengthMismatch, len(result), n)
	}
	return result[:n].Clone(), nil
}

// Trim extracts the portion of a full linear convolution selected by mode.
func Trim(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeFull:
		return full
	case ModeSame:
		// Center the result to match length of first input
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}
		return full[lenA-1 : lenB]
	default:
		return full
	}
}
