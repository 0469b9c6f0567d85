package fft

import (
	"errors"
	"testing"
)

func TestMultiply(t *testing.T) {
	a := Sequence{1 + 1i, 2, -1i}
	b := Sequence{1 - 1i, 0.5i, 3}

	got, mismatch, err := Multiply(a, b, PolicyStrict)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mismatch != nil {
		t.Fatalf("unexpected mismatch: %v", mismatch)
	}

	want := Sequence{2, 1i, -3i}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMultiplyZeroAbsorbs(t *testing.T) {
	for _, n := range []int{1, 4, 32} {
		got, _, err := Multiply(make(Sequence, n), make(Sequence, n), PolicyStrict)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if len(got) != n {
			t.Fatalf("n=%d: len = %d", n, len(got))
		}
		for i, v := range got {
			if v != 0 {
				t.Fatalf("n=%d: got[%d] = %v, want 0", n, i, v)
			}
		}
	}
}

func TestMultiplyLengthPolicy(t *testing.T) {
	a := Sequence{1, 2, 3, 4}
	b := Sequence{2, 2}

	_, _, err := Multiply(a, b, PolicyStrict)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("strict: expected ErrLengthMismatch, got %v", err)
	}

	got, mismatch, err := Multiply(a, b, PolicyTruncate)
	if err != nil {
		t.Fatalf("truncate: unexpected error: %v", err)
	}
	if mismatch == nil {
		t.Fatal("truncate: expected a mismatch report")
	}
	if *mismatch != (Mismatch{LenA: 4, LenB: 2}) || mismatch.Len() != 2 {
		t.Fatalf("truncate: mismatch = %+v", *mismatch)
	}
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Fatalf("truncate: got %v, want [2 4]", got)
	}

	if _, _, err := Multiply(a, b, LengthPolicy(7)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown policy: expected ErrInvalidInput, got %v", err)
	}
}

func TestMultiplyEmpty(t *testing.T) {
	_, _, err := Multiply(nil, Sequence{1}, PolicyTruncate)
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestConjugate(t *testing.T) {
	in := Sequence{1 + 2i, -3 - 4i, 5}
	got := Conjugate(in)

	want := Sequence{1 - 2i, -3 + 4i, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if in[0] != 1+2i {
		t.Fatal("Conjugate mutated its input")
	}
}

func TestScale(t *testing.T) {
	got := Scale(Sequence{2 + 4i, -8}, 0.25)
	if got[0] != 0.5+1i || got[1] != -2 {
		t.Fatalf("Scale = %v", got)
	}
}

func TestParseLengthPolicy(t *testing.T) {
	for _, p := range []LengthPolicy{PolicyStrict, PolicyTruncate} {
		got, err := ParseLengthPolicy(p.String())
		if err != nil || got != p {
			t.Errorf("ParseLengthPolicy(%q) = %v, %v", p.String(), got, err)
		}
	}
	if got, err := ParseLengthPolicy(""); err != nil || got != PolicyStrict {
		t.Errorf("empty policy = %v, %v; want strict", got, err)
	}
	if _, err := ParseLengthPolicy("lenient"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
