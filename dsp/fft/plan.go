package fft

import (
	"fmt"
	"math/bits"
)

// Plan holds the bit-reversal permutation and twiddle table for one transform
// size. It computes the same result as [Forward] and [Inverse] with iterative
// in-place butterflies, so stack depth does not grow with the size.
//
// A Plan is immutable after construction and safe for concurrent use.
type Plan struct {
	n       int
	rev     []int
	twiddle []complex128
}

// NewPlan creates a plan for transforms of length n, which must be a power of two.
func NewPlan(n int) (*Plan, error) {
	if err := checkTransformLen(n); err != nil {
		return nil, err
	}

	logN := bits.TrailingZeros(uint(n))
	rev := make([]int, n)
	for i := range rev {
		rev[i] = int(bits.Reverse(uint(i)) >> (bits.UintSize - logN))
	}

	tw := make([]complex128, n/2)
	for k := range tw {
		tw[k] = twiddle(k, n)
	}

	return &Plan{n: n, rev: rev, twiddle: tw}, nil
}

// Len returns the transform size.
func (p *Plan) Len() int { return p.n }

// Forward transforms src (time to frequency) into a new sequence.
func (p *Plan) Forward(src Sequence) (Sequence, error) {
	if err := p.check(src); err != nil {
		return nil, err
	}
	return p.forward(src), nil
}

// Inverse transforms src (frequency to time) into a new sequence, scaled by 1/N.
func (p *Plan) Inverse(src Sequence) (Sequence, error) {
	if err := p.check(src); err != nil {
		return nil, err
	}
	out := p.forward(Conjugate(src))
	conjugateInPlace(out)
	scaleInPlace(out, 1/float64(p.n))
	return out, nil
}

func (p *Plan) check(src Sequence) error {
	if err := checkTransformLen(len(src)); err != nil {
		return err
	}
	if len(src) != p.n {
		return fmt.Errorf("%w: plan size %d, input %d", ErrLengthMismatch, p.n, len(src))
	}
	return nil
}

func (p *Plan) forward(src Sequence) Sequence {
	n := p.n
	out := make(Sequence, n)
	for i, r := range p.rev {
		out[r] = src[i]
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		stride := n / size
		for start := 0; start < n; start += size {
			for k := range half {
				w := p.twiddle[k*stride]
				a := out[start+k]
				b := w * out[start+k+half]
				out[start+k] = a + b
				out[start+k+half] = a - b
			}
		}
	}
	return out
}
