package fft

import (
	"fmt"
	"math/cmplx"
	"strings"
)

// LengthPolicy decides how [Multiply] treats operands of unequal length.
type LengthPolicy int

const (
	// PolicyStrict rejects unequal lengths with ErrLengthMismatch.
	PolicyStrict LengthPolicy = iota

	// PolicyTruncate multiplies over the shorter length and reports a [Mismatch].
	PolicyTruncate
)

// String returns the policy name as accepted by [ParseLengthPolicy].
func (p LengthPolicy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicyTruncate:
		return "truncate"
	default:
		return fmt.Sprintf("LengthPolicy(%d)", int(p))
	}
}

// ParseLengthPolicy parses "strict" or "truncate" (case-insensitive).
func ParseLengthPolicy(s string) (LengthPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return PolicyStrict, nil
	case "truncate":
		return PolicyTruncate, nil
	default:
		return PolicyStrict, fmt.Errorf("%w: unknown length policy %q", ErrInvalidInput, s)
	}
}

// Mismatch describes a truncated multiply under PolicyTruncate.
type Mismatch struct {
	LenA int
	LenB int
}

// Len returns the length the product was truncated to.
func (m Mismatch) Len() int { return min(m.LenA, m.LenB) }

func (m Mismatch) String() string {
	return fmt.Sprintf("operand lengths differ (%d vs %d), product truncated to %d", m.LenA, m.LenB, m.Len())
}

// Multiply returns the pointwise product a[i]*b[i].
//
// With PolicyStrict, unequal lengths fail with ErrLengthMismatch. With
// PolicyTruncate the product covers min(len(a), len(b)) samples and the
// returned *Mismatch is non-nil; it is nil whenever the lengths agree.
func Multiply(a, b Sequence, policy LengthPolicy) (Sequence, *Mismatch, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, nil, fmt.Errorf("%w: zero-length operand", ErrUnsupported)
	}

	var mismatch *Mismatch
	if len(a) != len(b) {
		switch policy {
		case PolicyStrict:
			return nil, nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
		case PolicyTruncate:
			mismatch = &Mismatch{LenA: len(a), LenB: len(b)}
		default:
			return nil, nil, fmt.Errorf("%w: unknown length policy %d", ErrInvalidInput, int(policy))
		}
	}

	n := min(len(a), len(b))
	out := make(Sequence, n)
	for i := range out {
		out[i] = a[i] * b[i]
	}
	return out, mismatch, nil
}

// Conjugate returns the pointwise complex conjugate of a.
func Conjugate(a Sequence) Sequence {
	out := a.Clone()
	conjugateInPlace(out)
	return out
}

// Scale returns a copy of a with every sample multiplied by factor.
func Scale(a Sequence, factor float64) Sequence {
	out := a.Clone()
	scaleInPlace(out, factor)
	return out
}

func conjugateInPlace(x Sequence) {
	for i, v := range x {
		x[i] = cmplx.Conj(v)
	}
}

func scaleInPlace(x Sequence, factor float64) {
	f := complex(factor, 0)
	for i := range x {
		x[i] *= f
	}
}
