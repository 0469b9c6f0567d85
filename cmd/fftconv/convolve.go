package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectral/audio/wavio"
	"github.com/cwbudde/algo-spectral/dsp/conv"
	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/signal"
)

func newConvolveCmd(a *app) *cobra.Command {
	var (
		linear    bool
		normalize bool
		peakDB    float64
	)

	cmd := &cobra.Command{
		Use:   "convolve INPUT IR OUTPUT",
		Short: "Convolve a recording with an impulse response",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			x, inFormat, err := wavio.Read(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			ir, irFormat, err := wavio.Read(args[1])
			if err != nil {
				return fmt.Errorf("read impulse response: %w", err)
			}
			if irFormat.SampleRate != inFormat.SampleRate {
				a.logger.Warn("sample rates differ, impulse response is not resampled",
					"input", inFormat.SampleRate, "ir", irFormat.SampleRate)
			}

			result, err := conv.ConvolveWithIR(x, ir, a.settings.convOptions(a.logger)...)
			if err != nil {
				return err
			}
			a.logger.Debug("convolved", "input", x.Len(), "ir", ir.Len(), "padded", result.Len())

			if linear {
				result, err = conv.Linear(result, x.Len(), ir.Len())
				if err != nil {
					return err
				}
			}

			if normalize {
				result, err = signal.Normalize(result, core.DBToLinear(peakDB))
				if err != nil {
					return err
				}
			}

			outFormat := a.settings.outputFormat(inFormat)
			if err := wavio.Write(args[2], result, outFormat); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			_, err = fmt.Fprintf(a.out, "wrote %d samples (%.3f s) to %s\n",
				result.Len(), outFormat.Duration(result.Len()), args[2])
			return err
		},
	}

	cmd.Flags().BoolVar(&linear, "linear", true, "trim the result to the linear convolution length")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "scale the result so its peak reaches --peak-db")
	cmd.Flags().Float64Var(&peakDB, "peak-db", -1, "peak level in dBFS used by --normalize")

	return cmd
}
