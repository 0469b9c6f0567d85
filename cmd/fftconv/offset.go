package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectral/audio/wavio"
	"github.com/cwbudde/algo-spectral/dsp/conv"
)

func newOffsetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "offset A B",
		Short: "Print how many samples A trails B",
		Long: `Print how many samples A trails B, estimated from the peak of their
cross-correlation. A negative offset means A leads B.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			x, xFormat, err := wavio.Read(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			y, yFormat, err := wavio.Read(args[1])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[1], err)
			}
			if xFormat.SampleRate != yFormat.SampleRate {
				a.logger.Warn("sample rates differ, offset is in samples of A",
					"a", xFormat.SampleRate, "b", yFormat.SampleRate)
			}

			offset, err := conv.SampleOffset(x, y, a.settings.convOptions(a.logger)...)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(a.out, "offset: %d samples (%.6f s)\n", offset, xFormat.Duration(offset))
			return err
		},
	}
}
