// Package signal measures and adjusts the level of processed sequences.
package signal

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/dsp/fft"
)

var (
	// ErrEmpty is returned for empty input.
	ErrEmpty = errors.New("signal: empty input")
	// ErrNegativePeak is returned for a negative normalisation target.
	ErrNegativePeak = errors.New("signal: target peak must be >= 0")
)

// Peak returns the largest absolute real part in seq, the level a WAV
// encoder will see.
func Peak(seq fft.Sequence) float64 {
	peak := 0.0
	for _, v := range seq {
		peak = math.Max(peak, math.Abs(real(v)))
	}
	return peak
}

// Normalize returns seq scaled so that Peak equals targetPeak.
// A silent input is returned as a zero sequence of the same length.
func Normalize(seq fft.Sequence, targetPeak float64) (fft.Sequence, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("%w: %f", ErrNegativePeak, targetPeak)
	}
	if len(seq) == 0 {
		return nil, ErrEmpty
	}

	peak := Peak(seq)
	if peak == 0 || targetPeak == 0 {
		return make(fft.Sequence, len(seq)), nil
	}

	return fft.Scale(seq, targetPeak/peak), nil
}
