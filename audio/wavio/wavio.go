package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/fft"
)

// Errors returned by the WAV reader and writer.
var (
	ErrInvalidFile         = errors.New("wavio: not a valid WAV file")
	ErrUnsupportedBitDepth = errors.New("wavio: unsupported bit depth")
	ErrInvalidFormat       = errors.New("wavio: invalid format")
	ErrEmptySignal         = errors.New("wavio: empty signal")
)

// wavFormatPCM is the WAVE_FORMAT_PCM tag.
const wavFormatPCM = 1

// Format is the container metadata of a WAV file.
type Format struct {
	SampleRate int
	BitDepth   int
	Channels   int
}

// FormatFromConfig returns a mono format with the config's rate and depth.
func FormatFromConfig(cfg core.ProcessorConfig) Format {
	return Format{SampleRate: cfg.SampleRate, BitDepth: cfg.BitDepth, Channels: 1}
}

// Config returns the rate and depth of f as processor settings.
func (f Format) Config() core.ProcessorConfig {
	return core.ProcessorConfig{SampleRate: f.SampleRate, BitDepth: f.BitDepth}
}

// Duration returns the length of n samples in seconds.
func (f Format) Duration(n int) float64 {
	if f.SampleRate <= 0 {
		return 0
	}
	return float64(n) / float64(f.SampleRate)
}

func supportedBitDepth(bits int) bool {
	switch bits {
	case 16, 24, 32:
		return true
	default:
		return false
	}
}

// fullScale returns 2^(bits-1), the magnitude of the most negative sample.
func fullScale(bits int) float64 {
	return float64(int64(1) << (bits - 1))
}

// Read decodes the WAV file at path.
func Read(path string) (fft.Sequence, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Format{}, fmt.Errorf("wavio: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a PCM WAV stream and returns the first channel.
func Decode(r io.ReadSeeker) (fft.Sequence, Format, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, Format{}, ErrInvalidFile
	}

	format := Format{
		SampleRate: int(d.SampleRate),
		BitDepth:   int(d.BitDepth),
		Channels:   int(d.NumChans),
	}
	if d.WavAudioFormat != wavFormatPCM {
		return nil, format, fmt.Errorf("%w: audio format tag %d", ErrInvalidFile, d.WavAudioFormat)
	}
	if !supportedBitDepth(format.BitDepth) {
		return nil, format, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, format.BitDepth)
	}
	if format.Channels < 1 {
		return nil, format, fmt.Errorf("%w: %d channels", ErrInvalidFile, format.Channels)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, format, fmt.Errorf("wavio: read PCM data: %w", err)
	}

	scale := 1 / fullScale(format.BitDepth)
	frames := len(buf.Data) / format.Channels
	seq := make(fft.Sequence, frames)
	for i := range seq {
		seq[i] = complex(float64(buf.Data[i*format.Channels])*scale, 0)
	}

	return seq, format, nil
}

// Write encodes seq as a mono PCM WAV file at path. The file is removed again
// if encoding fails.
func Write(path string, seq fft.Sequence, format Format) (err error) {
	if err := validate(seq, format); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wavio: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("wavio: %w", cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return Encode(f, seq, format)
}

// Encode writes seq as mono PCM. Only the real part of each sample is used;
// values are clamped to [-1, 1] before quantisation.
func Encode(w io.WriteSeeker, seq fft.Sequence, format Format) error {
	if err := validate(seq, format); err != nil {
		return err
	}

	full := fullScale(format.BitDepth)
	data := make([]int, len(seq))
	for i, v := range seq.Real() {
		q := math.Round(core.Clamp(v, -1, 1) * full)
		data[i] = int(math.Min(q, full-1))
	}

	enc := wav.NewEncoder(w, format.SampleRate, format.BitDepth, 1, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: format.SampleRate},
		Data:           data,
		SourceBitDepth: format.BitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wavio: write PCM data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finalize header: %w", err)
	}
	return nil
}

func validate(seq fft.Sequence, format Format) error {
	if len(seq) == 0 {
		return ErrEmptySignal
	}
	if !supportedBitDepth(format.BitDepth) {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, format.BitDepth)
	}
	if format.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidFormat, format.SampleRate)
	}
	return nil
}
