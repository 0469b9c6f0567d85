// Package window provides the tapering windows applied before a spectrum is
// estimated, and the gain needed to read amplitudes back from it.
package window

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrUnknownType is returned by ParseType for unrecognised names.
	ErrUnknownType = errors.New("window: unknown type")
	// ErrLengthMismatch is returned when samples and coefficients differ in length.
	ErrLengthMismatch = errors.New("window: samples and coefficients differ in length")
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris
	TypeFlatTop
)

// Generalised cosine coefficients a_k of w(x) = sum a_k cos(2*pi*k*x).
var cosineCoeffs = map[Type][]float64{
	TypeRectangular:    {1},
	TypeHann:           {0.5, -0.5},
	TypeHamming:        {0.54, -0.46},
	TypeBlackman:       {0.42, -0.5, 0.08},
	TypeBlackmanHarris: {0.35875, -0.48829, 0.14128, -0.01168},
	TypeFlatTop:        {0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368},
}

var typeNames = map[Type]string{
	TypeRectangular:    "rectangular",
	TypeHann:           "hann",
	TypeHamming:        "hamming",
	TypeBlackman:       "blackman",
	TypeBlackmanHarris: "blackman-harris",
	TypeFlatTop:        "flattop",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType maps a case-insensitive name such as "hann" to its Type.
// The empty string selects TypeRectangular.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return TypeRectangular, nil
	}
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Generate returns length symmetric window coefficients. Unknown types and
// non-positive lengths yield nil.
func Generate(t Type, length int) []float64 {
	coeffs, ok := cosineCoeffs[t]
	if !ok || length <= 0 {
		return nil
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	den := float64(length - 1)
	for n := range out {
		phase := 2 * math.Pi * float64(n) / den
		sum := 0.0
		for k, c := range coeffs {
			sum += c * math.Cos(float64(k)*phase)
		}
		out[n] = sum
	}

	return out
}

// Apply returns samples multiplied by coeffs.
func Apply(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(samples), len(coeffs))
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)
	return out, nil
}

// CoherentGain returns sum(w)/N, the factor by which a windowed sinusoid's
// spectral peak is attenuated. It is 0 for an empty window.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}
	return sum / float64(len(coeffs))
}
