// Package conv provides FFT-based convolution and cross-correlation of
// complex sample sequences, plus a direct time-domain reference convolution
// and helpers for aligning two signals.
//
// # Usage
//
// For two signals of equal length:
//
//	y, err := conv.Convolve(x, h)
//
// For a long signal and a short impulse response (or any unequal lengths):
//
//	y, err := conv.ConvolveWithIR(signal, ir)
//	lin, err := conv.Linear(y, len(signal), len(ir))  // drop wraparound tail
//
// Cross-correlation conjugates the second spectrum before the product, so it
// is a distinct operation from convolution:
//
//	r, err := conv.CrossCorrelation(captured, emitted)
//	offset, err := conv.SampleOffset(captured, emitted)  // samples captured trails emitted
//
// # Sizing
//
// [Convolve] pads each operand independently. When the operands pad to
// different power-of-two sizes the configured [fft.LengthPolicy] decides
// whether the call fails (the default) or truncates. [ConvolveWithIR] and
// [CrossCorrelation] pad both operands to a shared size derived from the longer
// one, so any pair of non-empty lengths is accepted.
//
// # Options
//
//	y, err := conv.ConvolveWithIR(x, h,
//		conv.WithBackend(fft.BackendIterative),
//		conv.WithLengthPolicy(fft.PolicyTruncate),
//		conv.WithLogger(slog.Default()),
//	)
//
// The logger only receives the truncation diagnostic; by default it discards.
package conv
