package fft

import "math"

// Forward computes the discrete Fourier transform of seq using recursive
// radix-2 Cooley-Tukey decomposition. The length must be a power of two.
// Bins are returned in natural order.
func Forward(seq Sequence) (Sequence, error) {
	if err := checkTransformLen(len(seq)); err != nil {
		return nil, err
	}
	return recursiveForward(seq), nil
}

// Inverse computes the inverse transform as conj(Forward(conj(seq))) / N.
// Real-valued signals come back with small imaginary residues; use
// [Sequence.Real] to drop them.
func Inverse(seq Sequence) (Sequence, error) {
	out, err := Forward(Conjugate(seq))
	if err != nil {
		return nil, err
	}
	conjugateInPlace(out)
	scaleInPlace(out, 1/float64(len(out)))
	return out, nil
}

func recursiveForward(x Sequence) Sequence {
	n := len(x)
	if n == 1 {
		return Sequence{x[0]}
	}

	half := n / 2
	even := make(Sequence, half)
	odd := make(Sequence, half)
	for i := range half {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	even = recursiveForward(even)
	odd = recursiveForward(odd)

	out := make(Sequence, n)
	for k := range half {
		t := twiddle(k, n) * odd[k]
		out[k] = even[k] + t
		out[k+half] = even[k] - t
	}
	return out
}

// twiddle returns W_n^k = exp(-2*pi*i*k/n).
func twiddle(k, n int) complex128 {
	angle := -2 * math.Pi * float64(k) / float64(n)
	return complex(math.Cos(angle), math.Sin(angle))
}
