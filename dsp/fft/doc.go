// Package fft provides the radix-2 Fourier transform and the spectral algebra
// used by the convolution routines.
//
// Signals are carried as [Sequence] values, a slice of complex128 samples.
// Every function returns a freshly allocated sequence and never writes to its
// arguments, so sequences can be shared freely between calls.
//
// # Usage
//
//	padded, err := fft.Pad(fft.FromReal(samples), 0)  // power of two, >= 2*len
//	freq, err := fft.Forward(padded)                   // time -> frequency
//	back, err := fft.Inverse(freq)                     // frequency -> time
//	out := back.Real()                                 // discard imaginary residue
//
// # Sizing
//
// [Pad] returns the smallest power of two P with P >= 2*max(len(seq), minTarget).
// Padding two operands with the same minTarget (the longer of the two lengths)
// guarantees identical padded lengths, which [Multiply] requires.
//
// # Backends
//
// [Forward] and [Inverse] use the recursive Cooley-Tukey decomposition. A [Plan]
// computes the same transform iteratively with a precomputed bit-reversal table
// and bounded stack depth. [NewTransformer] selects between these and the
// algo-fft and go-dsp implementations; all backends share the same
// preconditions and error values.
package fft
