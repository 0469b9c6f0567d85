package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/cwbudde/algo-spectral/audio/wavio"
	"github.com/cwbudde/algo-spectral/dsp/conv"
	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/fft"
)

const envPrefix = "FFTCONV_"

// flagValues mirrors the persistent flags of the root command.
type flagValues struct {
	backend  string
	policy   string
	bitDepth int
	envFile  string
	verbose  bool
}

// settings is the resolved configuration shared by all subcommands.
// A zero BitDepth keeps the depth of the input file.
type settings struct {
	Backend  fft.Backend
	Policy   fft.LengthPolicy
	BitDepth int
	Verbose  bool
}

// resolveSettings layers defaults, the env file, the process environment and
// explicitly set flags, in increasing priority. A missing env file is only an
// error when --env was given explicitly.
func resolveSettings(fv flagValues, changed func(name string) bool) (settings, error) {
	fileVals := map[string]string{}
	if fv.envFile != "" {
		m, err := godotenv.Read(fv.envFile)
		switch {
		case err == nil:
			fileVals = m
		case errors.Is(err, fs.ErrNotExist) && !changed("env"):
		default:
			return settings{}, fmt.Errorf("load env file %s: %w", fv.envFile, err)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(envPrefix + key); ok {
			return v, true
		}
		v, ok := fileVals[envPrefix+key]
		return v, ok
	}

	pick := func(flagName, key, flagValue string) string {
		if changed(flagName) {
			return flagValue
		}
		if v, ok := lookup(key); ok {
			return v
		}
		return flagValue
	}

	backend, err := fft.ParseBackend(pick("backend", "BACKEND", fv.backend))
	if err != nil {
		return settings{}, err
	}
	policy, err := fft.ParseLengthPolicy(pick("policy", "POLICY", fv.policy))
	if err != nil {
		return settings{}, err
	}

	bitDepth := fv.bitDepth
	if v, ok := lookup("BIT_DEPTH"); ok && !changed("bit-depth") {
		bitDepth, err = strconv.Atoi(v)
		if err != nil {
			return settings{}, fmt.Errorf("%sBIT_DEPTH: %w", envPrefix, err)
		}
	}
	if bitDepth != 0 && core.ApplyProcessorOptions(core.WithBitDepth(bitDepth)).BitDepth != bitDepth {
		return settings{}, fmt.Errorf("unsupported bit depth %d (want 16, 24 or 32)", bitDepth)
	}

	verbose := fv.verbose
	if v, ok := lookup("VERBOSE"); ok && !changed("verbose") {
		verbose, err = strconv.ParseBool(v)
		if err != nil {
			return settings{}, fmt.Errorf("%sVERBOSE: %w", envPrefix, err)
		}
	}

	return settings{
		Backend:  backend,
		Policy:   policy,
		BitDepth: bitDepth,
		Verbose:  verbose,
	}, nil
}

// convOptions translates the settings into conv options.
func (s settings) convOptions(logger *slog.Logger) []conv.Option {
	return []conv.Option{
		conv.WithBackend(s.Backend),
		conv.WithLengthPolicy(s.Policy),
		conv.WithLogger(logger),
	}
}

// outputFormat returns the mono format results are written in: the input's
// rate, and its bit depth unless one was configured.
func (s settings) outputFormat(in wavio.Format) wavio.Format {
	return wavio.FormatFromConfig(core.ApplyProcessorOptions(
		core.WithSampleRate(in.SampleRate),
		core.WithBitDepth(in.BitDepth),
		core.WithBitDepth(s.BitDepth),
	))
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
