package main

import (
	"cmp"
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectral/audio/wavio"
	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/fft"
	"github.com/cwbudde/algo-spectral/dsp/window"
)

// spectralBin is one row of the spectrum table.
type spectralBin struct {
	Index     int
	Frequency float64
	Magnitude float64
}

func newSpectrumCmd(a *app) *cobra.Command {
	var (
		bins       int
		windowName string
	)

	cmd := &cobra.Command{
		Use:   "spectrum INPUT",
		Short: "List the strongest frequency bins of a recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if bins <= 0 {
				return fmt.Errorf("--bins must be positive, got %d", bins)
			}

			wt, err := window.ParseType(windowName)
			if err != nil {
				return err
			}

			x, format, err := wavio.Read(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			top, size, err := strongestBins(x, format, window.Generate(wt, x.Len()), a.settings.Backend, bins)
			if err != nil {
				return err
			}
			a.logger.Debug("spectrum computed", "samples", x.Len(), "padded", size, "window", wt.String())

			return printSpectrum(a, top, size)
		},
	}

	cmd.Flags().IntVar(&bins, "bins", 10, "number of bins to list")
	cmd.Flags().StringVar(&windowName, "window", "hann",
		"analysis window: rectangular, hann, hamming, blackman, blackman-harris, flattop")

	return cmd
}

// strongestBins windows and transforms x and returns the n bins of the
// non-negative frequency half with the largest magnitude, strongest first,
// along with the transform size. Magnitudes are corrected for the window's
// coherent gain so an on-bin sine of amplitude A reads A.
func strongestBins(x fft.Sequence, format wavio.Format, coeffs []float64, backend fft.Backend, n int) ([]spectralBin, int, error) {
	windowed, err := window.Apply(x.Real(), coeffs)
	if err != nil {
		return nil, 0, err
	}
	gain := window.CoherentGain(coeffs)
	if gain == 0 {
		return nil, 0, fmt.Errorf("window has zero gain over %d samples", len(coeffs))
	}

	padded, err := fft.Pad(fft.FromReal(windowed), 0)
	if err != nil {
		return nil, 0, err
	}
	t, err := fft.NewTransformer(backend)
	if err != nil {
		return nil, 0, err
	}
	spectrum, err := t.Forward(padded)
	if err != nil {
		return nil, 0, err
	}

	size := spectrum.Len()
	mags := fft.Magnitude(spectrum[:size/2+1])
	scale := 2 / (gain * float64(x.Len()))

	all := make([]spectralBin, len(mags))
	for k, m := range mags {
		all[k] = spectralBin{
			Index:     k,
			Frequency: float64(k) * float64(format.SampleRate) / float64(size),
			Magnitude: m * scale,
		}
	}
	slices.SortStableFunc(all, func(p, q spectralBin) int {
		return cmp.Compare(q.Magnitude, p.Magnitude)
	})

	return all[:min(n, len(all))], size, nil
}

func printSpectrum(a *app, top []spectralBin, size int) error {
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Bin\tFrequency [Hz]\tMagnitude [dB]\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "---\t--------------\t--------------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, b := range top {
		if _, err := fmt.Fprintf(tw, "%d/%d\t%.2f\t%.2f\n",
			b.Index, size, b.Frequency, core.LinearToDB(b.Magnitude)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	return tw.Flush()
}
