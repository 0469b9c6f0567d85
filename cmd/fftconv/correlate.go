package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectral/audio/wavio"
	"github.com/cwbudde/algo-spectral/dsp/conv"
	"github.com/cwbudde/algo-spectral/dsp/fft"
)

func newCorrelateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "correlate A B OUTPUT",
		Short: "Write the normalised cross-correlation of two recordings",
		Long: `Write the normalised cross-correlation of A and B in linear lag order.

Sample i of OUTPUT holds lag i-(len(B)-1); the peak marks how far A trails B.`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			x, xFormat, err := wavio.Read(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			y, _, err := wavio.Read(args[1])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[1], err)
			}

			corr, err := conv.CorrelateNormalized(x, y, a.settings.convOptions(a.logger)...)
			if err != nil {
				return err
			}
			lags, err := conv.Lags(corr, x.Len(), y.Len())
			if err != nil {
				return err
			}

			if err := wavio.Write(args[2], fft.FromReal(lags), a.settings.outputFormat(xFormat)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			index, value := conv.FindPeak(lags)
			_, err = fmt.Fprintf(a.out, "peak %.4f at lag %d\n", value, index-(y.Len()-1))
			return err
		},
	}
}
