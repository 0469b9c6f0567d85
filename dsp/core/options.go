package core

// ProcessorConfig describes the sample container a signal is read from or written to.
type ProcessorConfig struct {
	SampleRate int
	BitDepth   int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns 16 kHz, 16-bit PCM settings.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 16000,
		BitDepth:   16,
	}
}

// WithSampleRate sets the sample rate in Hz. Non-positive values are ignored.
func WithSampleRate(sampleRate int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBitDepth sets the PCM bit depth. Only 16, 24 and 32 are accepted;
// anything else leaves the current value untouched.
func WithBitDepth(bitDepth int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		switch bitDepth {
		case 16, 24, 32:
			cfg.BitDepth = bitDepth
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
