package fft

// Sequence is an ordered, fixed-length run of complex samples. For time-domain
// data index n is a time step; for frequency-domain data index k is a bin in
// natural order.
type Sequence []complex128

// FromReal builds a sequence from real samples with zero imaginary parts.
func FromReal(samples []float64) Sequence {
	out := make(Sequence, len(samples))
	for i, v := range samples {
		out[i] = complex(v, 0)
	}
	return out
}

// Len returns the number of samples.
func (s Sequence) Len() int { return len(s) }

// Clone returns a copy of s.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Real returns the real components. Imaginary parts are discarded, not rounded.
func (s Sequence) Real() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = real(v)
	}
	return out
}

// Imag returns the imaginary components.
func (s Sequence) Imag() []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = imag(v)
	}
	return out
}

// split unpacks s into separate real and imaginary slices.
func (s Sequence) split() (re, im []float64) {
	re = make([]float64, len(s))
	im = make([]float64, len(s))
	for i, v := range s {
		re[i] = real(v)
		im[i] = imag(v)
	}
	return re, im
}
