package main

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cwbudde/algo-spectral/audio/wavio"
	"github.com/cwbudde/algo-spectral/dsp/fft"
	"github.com/cwbudde/algo-spectral/dsp/window"
	"github.com/cwbudde/algo-spectral/internal/testutil"
)

var testFormat = wavio.Format{SampleRate: 16000, BitDepth: 16, Channels: 1}

func writeTestWAV(t *testing.T, dir, name string, samples []float64, format wavio.Format) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := wavio.Write(path, fft.FromReal(samples), format); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	// Run from an empty directory so no stray .env file is picked up.
	t.Chdir(t.TempDir())

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestConvolveWithDelayedImpulse(t *testing.T) {
	dir := t.TempDir()
	x := testutil.DeterministicNoise(1, 0.5, 200)
	input := writeTestWAV(t, dir, "input.wav", x, testFormat)
	ir := writeTestWAV(t, dir, "ir.wav", testutil.Impulse(8, 3), testFormat)
	output := filepath.Join(dir, "out.wav")

	stdout, _, err := runCLI(t, "convolve", input, ir, output)
	if err != nil {
		t.Fatalf("convolve: %v", err)
	}
	if !strings.Contains(stdout, "wrote 207 samples") {
		t.Fatalf("unexpected output %q", stdout)
	}

	got, format, err := wavio.Read(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if format != testFormat {
		t.Fatalf("format = %+v, want %+v", format, testFormat)
	}

	want := make([]float64, 207)
	copy(want, testutil.Delay(x, 3))
	testutil.RequireSliceNearlyEqual(t, got.Real(), want, 1e-3)
}

func TestConvolveNormalizeAndBitDepth(t *testing.T) {
	dir := t.TempDir()
	input := writeTestWAV(t, dir, "input.wav", testutil.DeterministicNoise(2, 0.1, 100), testFormat)
	ir := writeTestWAV(t, dir, "ir.wav", testutil.Impulse(4, 0), testFormat)
	output := filepath.Join(dir, "out.wav")

	_, _, err := runCLI(t, "--bit-depth", "24", "convolve", "--normalize", "--peak-db", "-6", input, ir, output)
	if err != nil {
		t.Fatalf("convolve: %v", err)
	}

	got, format, err := wavio.Read(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if format.BitDepth != 24 {
		t.Fatalf("bit depth = %d, want 24", format.BitDepth)
	}

	peak := 0.0
	for _, v := range got.Real() {
		peak = max(peak, v, -v)
	}
	if want := 0.501187; peak < want-1e-4 || peak > want+1e-4 {
		t.Fatalf("peak = %f, want %f", peak, want)
	}
}

func TestOffsetAndCorrelate(t *testing.T) {
	dir := t.TempDir()
	emitted := testutil.DeterministicNoise(3, 0.5, 512)
	captured := testutil.Delay(emitted, 25)
	a := writeTestWAV(t, dir, "captured.wav", captured, testFormat)
	b := writeTestWAV(t, dir, "emitted.wav", emitted, testFormat)

	for _, backend := range []string{"auto", "recursive", "iterative", "algofft", "godsp"} {
		stdout, _, err := runCLI(t, "--backend", backend, "offset", a, b)
		if err != nil {
			t.Fatalf("%s: offset: %v", backend, err)
		}
		if !strings.Contains(stdout, "offset: 25 samples") {
			t.Fatalf("%s: unexpected output %q", backend, stdout)
		}
	}

	stdout, _, err := runCLI(t, "offset", b, a)
	if err != nil {
		t.Fatalf("reverse offset: %v", err)
	}
	if !strings.Contains(stdout, "offset: -25 samples") {
		t.Fatalf("unexpected reverse output %q", stdout)
	}

	output := filepath.Join(dir, "xcorr.wav")
	stdout, _, err = runCLI(t, "correlate", a, b, output)
	if err != nil {
		t.Fatalf("correlate: %v", err)
	}
	if !strings.Contains(stdout, "at lag 25") {
		t.Fatalf("unexpected correlate output %q", stdout)
	}

	corr, _, err := wavio.Read(output)
	if err != nil {
		t.Fatalf("read correlation: %v", err)
	}
	if want := len(captured) + len(emitted) - 1; corr.Len() != want {
		t.Fatalf("correlation length = %d, want %d", corr.Len(), want)
	}
}

func TestSpectrumFindsTone(t *testing.T) {
	dir := t.TempDir()
	input := writeTestWAV(t, dir, "tone.wav", testutil.DeterministicSine(1000, 16000, 0.5, 1024), testFormat)

	for _, win := range []string{"rectangular", "hann", "blackman"} {
		stdout, _, err := runCLI(t, "spectrum", "--bins", "3", "--window", win, input)
		if err != nil {
			t.Fatalf("%s: spectrum: %v", win, err)
		}

		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		if len(lines) != 5 {
			t.Fatalf("%s: got %d lines, want header, rule and 3 rows:\n%s", win, len(lines), stdout)
		}
		fields := strings.Fields(lines[2])
		if fields[0] != "128/2048" || fields[1] != "1000.00" {
			t.Fatalf("%s: strongest bin = %v, want 128/2048 at 1000.00 Hz", win, fields)
		}
		db, err := strconv.ParseFloat(fields[2], 64)
		if err != nil || math.Abs(db+6.02) > 0.05 {
			t.Fatalf("%s: magnitude = %s dB, want about -6.02", win, fields[2])
		}
	}
}

func TestSpectrumRejectsBadFlags(t *testing.T) {
	dir := t.TempDir()
	input := writeTestWAV(t, dir, "tone.wav", testutil.DeterministicSine(1000, 16000, 0.5, 64), testFormat)

	if _, _, err := runCLI(t, "spectrum", "--bins", "0", input); err == nil {
		t.Fatal("expected error for --bins 0")
	}
	if _, _, err := runCLI(t, "spectrum", "--window", "kaiser", input); !errors.Is(err, window.ErrUnknownType) {
		t.Fatalf("unknown window: got %v, want ErrUnknownType", err)
	}
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeTestWAV(t, dir, "input.wav", []float64{0.1, 0.2}, testFormat)

	tests := []struct {
		name string
		args []string
	}{
		{"missing args", []string{"convolve", input}},
		{"missing file", []string{"offset", input, filepath.Join(dir, "nope.wav")}},
		{"unknown backend", []string{"--backend", "fftw", "offset", input, input}},
		{"unknown policy", []string{"--policy", "lenient", "offset", input, input}},
		{"bad bit depth", []string{"--bit-depth", "8", "offset", input, input}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := runCLI(t, tt.args...); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestResolveSettingsPrecedence(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "fftconv.env")
	content := "FFTCONV_BACKEND=iterative\nFFTCONV_POLICY=truncate\nFFTCONV_BIT_DEPTH=24\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FFTCONV_BIT_DEPTH", "32")

	defaults := flagValues{backend: "auto", policy: "strict", envFile: envFile}
	none := func(string) bool { return false }

	s, err := resolveSettings(defaults, none)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if s.Backend != fft.BackendIterative {
		t.Errorf("backend = %v, want iterative from env file", s.Backend)
	}
	if s.Policy != fft.PolicyTruncate {
		t.Errorf("policy = %v, want truncate from env file", s.Policy)
	}
	if s.BitDepth != 32 {
		t.Errorf("bit depth = %d, want 32 from process environment", s.BitDepth)
	}

	withFlags := defaults
	withFlags.backend = "godsp"
	withFlags.bitDepth = 16
	s, err = resolveSettings(withFlags, func(name string) bool {
		return name == "backend" || name == "bit-depth"
	})
	if err != nil {
		t.Fatalf("resolve with flags: %v", err)
	}
	if s.Backend != fft.BackendGoDSP || s.BitDepth != 16 {
		t.Errorf("flags did not win: %+v", s)
	}
}

func TestResolveSettingsEnvFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")
	fv := flagValues{backend: "auto", policy: "strict", envFile: missing}

	if _, err := resolveSettings(fv, func(string) bool { return false }); err != nil {
		t.Fatalf("implicit missing env file should be ignored: %v", err)
	}

	_, err := resolveSettings(fv, func(name string) bool { return name == "env" })
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("explicit missing env file: got %v, want ErrNotExist", err)
	}
}

func TestOutputFormat(t *testing.T) {
	in := wavio.Format{SampleRate: 44100, BitDepth: 24, Channels: 2}

	if got := (settings{}).outputFormat(in); got != (wavio.Format{SampleRate: 44100, BitDepth: 24, Channels: 1}) {
		t.Fatalf("inherited format = %+v", got)
	}
	if got := (settings{BitDepth: 16}).outputFormat(in); got.BitDepth != 16 {
		t.Fatalf("configured bit depth = %d, want 16", got.BitDepth)
	}
}
