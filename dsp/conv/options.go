package conv

import (
	"log/slog"

	"github.com/cwbudde/algo-spectral/dsp/fft"
)

// Config holds the settings shared by the spectral routines.
type Config struct {
	Backend fft.Backend
	Policy  fft.LengthPolicy
	Logger  *slog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the automatic backend, the strict length policy and a
// logger that discards everything.
func DefaultConfig() Config {
	return Config{
		Backend: fft.BackendAuto,
		Policy:  fft.PolicyStrict,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// WithBackend selects the transform implementation.
func WithBackend(b fft.Backend) Option {
	return func(cfg *Config) {
		cfg.Backend = b
	}
}

// WithLengthPolicy sets how mismatched spectra are multiplied.
func WithLengthPolicy(p fft.LengthPolicy) Option {
	return func(cfg *Config) {
		cfg.Policy = p
	}
}

// WithLogger sets the logger that receives truncation diagnostics.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *Config) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
