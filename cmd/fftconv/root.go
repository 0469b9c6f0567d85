package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries what every subcommand needs once the root has resolved its
// configuration.
type app struct {
	out    io.Writer
	errOut io.Writer
	flags  flagValues

	settings settings
	logger   *slog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	cmd := &cobra.Command{
		Use:   "fftconv",
		Short: "Frequency-domain convolution and cross-correlation of WAV files",
		Long: `fftconv - convolve, correlate and align mono WAV recordings using FFTs.

Every input is read from its first channel. Results are written as mono PCM
at the sample rate of the first input.

Configuration (lowest to highest priority):
  .env file (see --env)
  FFTCONV_BACKEND, FFTCONV_POLICY, FFTCONV_BIT_DEPTH, FFTCONV_VERBOSE
  command line flags

Examples:
  fftconv convolve speech.wav room_ir.wav speech_in_room.wav
  fftconv correlate captured.wav emitted.wav xcorr.wav
  fftconv --backend iterative offset captured.wav emitted.wav
  fftconv spectrum --bins 8 tone.wav`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			s, err := resolveSettings(a.flags, func(name string) bool {
				return cmd.Flags().Changed(name)
			})
			if err != nil {
				return err
			}
			a.settings = s
			a.logger = newLogger(a.errOut, s.Verbose)
			a.logger.Debug("configuration resolved",
				"backend", s.Backend.String(),
				"policy", s.Policy.String(),
				"bitDepth", s.BitDepth)
			return nil
		},
	}

	cmd.SetOut(out)
	cmd.SetErr(errOut)

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.flags.backend, "backend", "auto", "FFT backend: auto, recursive, iterative, algofft, godsp")
	pf.StringVar(&a.flags.policy, "policy", "strict", "spectrum length policy: strict or truncate")
	pf.IntVar(&a.flags.bitDepth, "bit-depth", 0, "output bit depth (16, 24 or 32; 0 keeps the input's)")
	pf.StringVar(&a.flags.envFile, "env", ".env", "dotenv file with FFTCONV_* settings")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(
		newConvolveCmd(a),
		newCorrelateCmd(a),
		newOffsetCmd(a),
		newSpectrumCmd(a),
	)

	return cmd
}
