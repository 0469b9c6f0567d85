package fft

import (
	"errors"
	"fmt"
)

// Errors returned by transform and algebra functions.
var (
	ErrInvalidInput   = errors.New("fft: invalid input")
	ErrLengthMismatch = errors.New("fft: length mismatch")
	ErrUnsupported    = errors.New("fft: unsupported")
	ErrUnknownBackend = errors.New("fft: unknown backend")
)

// checkTransformLen validates the length precondition shared by all transforms.
func checkTransformLen(n int) error {
	if n == 0 {
		return fmt.Errorf("%w: zero-length sequence", ErrUnsupported)
	}
	if !IsPowerOf2(n) {
		return fmt.Errorf("%w: length %d not power of two", ErrInvalidInput, n)
	}
	return nil
}
