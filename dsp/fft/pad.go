package fft

import (
	"fmt"
	"math/bits"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

// maxRequired keeps 2*required and the following power of two inside int range.
const maxRequired = 1 << (bits.UintSize - 3)

// PaddedLen returns the smallest power of two P with P >= 2*max(n, minTargetLength).
// A minTargetLength of 0 derives the size from n alone.
func PaddedLen(n, minTargetLength int) (int, error) {
	if n == 0 {
		return 0, fmt.Errorf("%w: cannot pad a zero-length sequence", ErrUnsupported)
	}
	if n < 0 || minTargetLength < 0 {
		return 0, fmt.Errorf("%w: negative length (n=%d, minTarget=%d)", ErrInvalidInput, n, minTargetLength)
	}

	required := max(n, minTargetLength)
	if required > maxRequired {
		return 0, fmt.Errorf("%w: length %d too large to pad", ErrInvalidInput, required)
	}

	return NextPowerOf2(2 * required), nil
}

// Pad returns a copy of seq zero-extended to [PaddedLen]. The doubling leaves
// room for the linear convolution of two operands of the required length
// without circular wraparound.
func Pad(seq Sequence, minTargetLength int) (Sequence, error) {
	p, err := PaddedLen(len(seq), minTargetLength)
	if err != nil {
		return nil, err
	}

	out := make(Sequence, p)
	core.CopyInto(out, seq)
	return out, nil
}

// NextPowerOf2 returns the next power of 2 >= n.
func NextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// IsPowerOf2 returns true if n is a power of 2.
func IsPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
