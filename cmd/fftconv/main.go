// Command fftconv convolves and cross-correlates WAV files in the frequency domain.
//
// Usage:
//
//	fftconv [flags] <command> [args]
//
// Commands:
//
//	convolve   INPUT IR OUTPUT   convolve a recording with an impulse response
//	correlate  A B OUTPUT        write the normalised cross-correlation of A and B
//	offset     A B               print how many samples A trails B
//	spectrum   INPUT             list the strongest frequency bins
//
// Examples:
//
//	fftconv convolve speech.wav room_ir.wav speech_in_room.wav
//	fftconv --backend iterative offset captured.wav emitted.wav
//	fftconv spectrum --bins 8 tone.wav
//
// Settings are read from flags, then FFTCONV_* environment variables, then an
// optional .env file (see --env).
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mdobak/go-xerrors"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		logger := newLogger(os.Stderr, false)
		logger.ErrorContext(context.Background(), "fftconv failed", slog.Any("error", xerrors.New(err)))
		os.Exit(1)
	}
}
