package fft

import (
	"fmt"
	"strings"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	godsp "github.com/mjibson/go-dsp/fft"
)

// RecursiveLimit is the largest size BackendAuto transforms recursively.
// Larger inputs go through a cached [Plan].
const RecursiveLimit = 1 << 14

// Backend selects a transform implementation.
type Backend int

const (
	// BackendAuto uses the recursive transform up to RecursiveLimit and an
	// iterative plan above it.
	BackendAuto Backend = iota

	// BackendRecursive always uses [Forward] and [Inverse].
	BackendRecursive

	// BackendIterative always uses a cached [Plan].
	BackendIterative

	// BackendAlgoFFT delegates to github.com/MeKo-Christian/algo-fft plans.
	BackendAlgoFFT

	// BackendGoDSP delegates to github.com/mjibson/go-dsp/fft.
	BackendGoDSP
)

var backendNames = map[Backend]string{
	BackendAuto:      "auto",
	BackendRecursive: "recursive",
	BackendIterative: "iterative",
	BackendAlgoFFT:   "algofft",
	BackendGoDSP:     "godsp",
}

// String returns the backend name as accepted by [ParseBackend].
func (b Backend) String() string {
	if name, ok := backendNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend parses a backend name (case-insensitive). The empty string
// selects BackendAuto.
func ParseBackend(s string) (Backend, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return BackendAuto, nil
	}
	for b, n := range backendNames {
		if n == name {
			return b, nil
		}
	}
	return BackendAuto, fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}

// Transformer computes forward and inverse transforms. Every implementation
// requires power-of-two lengths, fails with ErrUnsupported on empty input and
// ErrInvalidInput on other lengths, and leaves its argument untouched.
type Transformer interface {
	Forward(seq Sequence) (Sequence, error)
	Inverse(seq Sequence) (Sequence, error)
}

// NewTransformer returns the Transformer for b.
func NewTransformer(b Backend) (Transformer, error) {
	switch b {
	case BackendAuto:
		return autoTransformer{}, nil
	case BackendRecursive:
		return recursiveTransformer{}, nil
	case BackendIterative:
		return iterativeTransformer{}, nil
	case BackendAlgoFFT:
		return algoFFTTransformer{}, nil
	case BackendGoDSP:
		return goDSPTransformer{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, int(b))
	}
}

type recursiveTransformer struct{}

func (recursiveTransformer) Forward(seq Sequence) (Sequence, error) { return Forward(seq) }
func (recursiveTransformer) Inverse(seq Sequence) (Sequence, error) { return Inverse(seq) }

type iterativeTransformer struct{}

func (iterativeTransformer) Forward(seq Sequence) (Sequence, error) {
	p, err := cachedPlan(len(seq))
	if err != nil {
		return nil, err
	}
	return p.Forward(seq)
}

func (iterativeTransformer) Inverse(seq Sequence) (Sequence, error) {
	p, err := cachedPlan(len(seq))
	if err != nil {
		return nil, err
	}
	return p.Inverse(seq)
}

type autoTransformer struct{}

func (autoTransformer) pick(n int) Transformer {
	if n > RecursiveLimit {
		return iterativeTransformer{}
	}
	return recursiveTransformer{}
}

func (a autoTransformer) Forward(seq Sequence) (Sequence, error) {
	return a.pick(len(seq)).Forward(seq)
}

func (a autoTransformer) Inverse(seq Sequence) (Sequence, error) {
	return a.pick(len(seq)).Inverse(seq)
}

var (
	planMu    sync.Mutex
	planCache = map[int]*Plan{}
)

func cachedPlan(n int) (*Plan, error) {
	if err := checkTransformLen(n); err != nil {
		return nil, err
	}

	planMu.Lock()
	defer planMu.Unlock()

	if p, ok := planCache[n]; ok {
		return p, nil
	}
	p, err := NewPlan(n)
	if err != nil {
		return nil, err
	}
	planCache[n] = p
	return p, nil
}

type algoFFTTransformer struct{}

func (algoFFTTransformer) Forward(seq Sequence) (Sequence, error) {
	return algoFFTTransform(seq, false)
}

func (algoFFTTransformer) Inverse(seq Sequence) (Sequence, error) {
	return algoFFTTransform(seq, true)
}

func algoFFTTransform(seq Sequence, inverse bool) (Sequence, error) {
	if err := checkTransformLen(len(seq)); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(len(seq))
	if err != nil {
		return nil, fmt.Errorf("fft: failed to create FFT plan: %w", err)
	}

	src := []complex128(seq.Clone())
	dst := make([]complex128, len(seq))
	if inverse {
		err = plan.Inverse(dst, src)
	} else {
		err = plan.Forward(dst, src)
	}
	if err != nil {
		return nil, fmt.Errorf("fft: algo-fft transform failed: %w", err)
	}
	return Sequence(dst), nil
}

type goDSPTransformer struct{}

func (goDSPTransformer) Forward(seq Sequence) (Sequence, error) {
	if err := checkTransformLen(len(seq)); err != nil {
		return nil, err
	}
	return Sequence(godsp.FFT([]complex128(seq.Clone()))), nil
}

func (goDSPTransformer) Inverse(seq Sequence) (Sequence, error) {
	if err := checkTransformLen(len(seq)); err != nil {
		return nil, err
	}
	return Sequence(godsp.IFFT([]complex128(seq.Clone()))), nil
}
