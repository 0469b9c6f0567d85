package conv

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/fft"
)

// Convolve computes Inverse(Forward(Pad(x, 0)) * Forward(Pad(y, 0))).
//
// Each operand is padded from its own length, so the spectra only line up
// when both lengths pad to the same power of two (always true for equal
// lengths). Otherwise the length policy applies: the default strict policy
// fails with fft.ErrLengthMismatch. Use [ConvolveWithIR] for unequal lengths.
func Convolve(x, y fft.Sequence, opts ...Option) (fft.Sequence, error) {
	px, err := fft.Pad(x, 0)
	if err != nil {
		return nil, fmt.Errorf("conv: pad first operand: %w", err)
	}
	py, err := fft.Pad(y, 0)
	if err != nil {
		return nil, fmt.Errorf("conv: pad second operand: %w", err)
	}

	return spectralProduct(ApplyOptions(opts...), px, py, false)
}

// ConvolveWithIR convolves operands of dissimilar length, typically a signal
// and an impulse response. Both are padded from M = max(len(x), len(y)), which
// yields one shared size P >= 2M.
//
// The first len(x)+len(y)-1 samples of the result are the linear convolution;
// see [Linear].
func ConvolveWithIR(x, y fft.Sequence, opts ...Option) (fft.Sequence, error) {
	px, py, err := padShared(x, y)
	if err != nil {
		return nil, err
	}
	return spectralProduct(ApplyOptions(opts...), px, py, false)
}

// CrossCorrelation computes Inverse(Forward(x) * conj(Forward(y))) with both
// operands padded to a shared size P.
//
// Index k of the result holds sum_n x[n+k]*conj(y[n]), the similarity when x
// trails y by k samples. Negative lags wrap around to index P+k; see
// [LagFromIndex] and [Lags].
func CrossCorrelation(x, y fft.Sequence, opts ...Option) (fft.Sequence, error) {
	px, py, err := padShared(x, y)
	if err != nil {
		return nil, err
	}
	return spectralProduct(ApplyOptions(opts...), px, py, true)
}

func padShared(x, y fft.Sequence) (px, py fft.Sequence, err error) {
	target := max(len(x), len(y))

	px, err = fft.Pad(x, target)
	if err != nil {
		return nil, nil, fmt.Errorf("conv: pad first operand: %w", err)
	}
	py, err = fft.Pad(y, target)
	if err != nil {
		return nil, nil, fmt.Errorf("conv: pad second operand: %w", err)
	}
	return px, py, nil
}

// spectralProduct transforms both padded operands, multiplies the spectra
// (conjugating the second when correlate is set) and transforms back.
func spectralProduct(cfg Config, px, py fft.Sequence, correlate bool) (fft.Sequence, error) {
	tr, err := fft.NewTransformer(cfg.Backend)
	if err != nil {
		return nil, fmt.Errorf("conv: %w", err)
	}

	fx, err := tr.Forward(px)
	if err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	fy, err := tr.Forward(py)
	if err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if correlate {
		fy = fft.Conjugate(fy)
	}

	product, mismatch, err := fft.Multiply(fx, fy, cfg.Policy)
	if err != nil {
		return nil, fmt.Errorf("conv: spectral multiply failed: %w", err)
	}
	if mismatch != nil {
		cfg.Logger.Warn("conv: spectra differ in length, product truncated",
			"lenA", mismatch.LenA,
			"lenB", mismatch.LenB,
			"truncatedTo", mismatch.Len(),
		)
	}

	result, err := tr.Inverse(product)
	if err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}
	return result, nil
}
