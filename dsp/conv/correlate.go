package conv

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/dsp/fft"
)

// CorrelateNormalized computes [CrossCorrelation] divided by the product of
// the L2 norms of x and y, so real-valued results lie in [-1, 1].
// If either signal has zero energy the raw correlation is returned.
func CorrelateNormalized(x, y fft.Sequence, opts ...Option) (fft.Sequence, error) {
	result, err := CrossCorrelation(x, y, opts...)
	if err != nil {
		return nil, err
	}

	normProduct := math.Sqrt(fft.Energy(x)) * math.Sqrt(fft.Energy(y))
	if normProduct == 0 {
		return result, nil
	}

	return fft.Scale(result, 1/normProduct), nil
}

// Lags rearranges the circular output of [CrossCorrelation] into linear lag
// order. The result has length lenX+lenY-1 and index i holds the real part at
// lag i-(lenY-1), matching the layout of a direct full correlation.
func Lags(corr fft.Sequence, lenX, lenY int) ([]float64, error) {
	if lenX <= 0 || lenY <= 0 {
		return nil, ErrEmptyInput
	}

	size := len(corr)
	if lenX+lenY-1 > size {
		return nil, fmt.Errorf("%w: correlation has %d samples, lags need %d", ErrLengthMismatch, size, lenX+lenY-1)
	}

	result := make([]float64, lenX+lenY-1)

	// Positive lags (0 to lenX-1) are at the beginning,
	// negative lags (-(lenY-1) to -1) at the end.
	for i := 0; i < lenX; i++ {
		result[lenY-1+i] = real(corr[i])
	}
	for i := 0; i < lenY-1; i++ {
		result[i] = real(corr[size-lenY+1+i])
	}

	return result, nil
}

// SampleOffset estimates how many samples x trails y by locating the peak of
// their cross-correlation. A negative result means x leads y.
func SampleOffset(x, y fft.Sequence, opts ...Option) (int, error) {
	corr, err := CrossCorrelation(x, y, opts...)
	if err != nil {
		return 0, err
	}

	index, _ := FindPeak(corr.Real())
	return LagFromIndex(index, len(corr)), nil
}

// FindPeak finds the index and value of the maximum in a correlation result.
// Useful for finding the best alignment between two signals.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index = 0
	value = corr[0]

	for i, v := range corr {
		if v > value {
			index = i
			value = v
		}
	}

	return index, value
}

// LagFromIndex converts an index into a circular correlation of the given
// size to a signed lag. Indices in the upper half map to negative lags.
func LagFromIndex(index, size int) int {
	if index < (size+1)/2 {
		return index
	}
	return index - size
}

// IndexFromLag is the inverse of [LagFromIndex].
func IndexFromLag(lag, size int) int {
	if lag < 0 {
		return lag + size
	}
	return lag
}
