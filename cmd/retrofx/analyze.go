package main

import (
	"fmt"

	"github.com/spf13/cobra"
	retrofx "github.com/tphakala/go-retro-voice"
)

var analyzeStyle string

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Show a style's band-limit filter design and response",
	Long: `Design the band-limit filter of a style at the style's sample rate
and print its zero-phase gain at octave-spaced frequencies.

Example:
  retrofx analyze --style telephone`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeStyle, "style", "s", retrofx.FallbackStyle, "Style to analyze")
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	reg, err := cfg.Registry(logger)
	if err != nil {
		return err
	}

	p, found := reg.Lookup(analyzeStyle)
	if found == retrofx.NotFound {
		return fmt.Errorf("unknown style %q", analyzeStyle)
	}

	report, err := retrofx.AnalyzeBandLimit(&p, analysisFrequencies(p.SampleRate))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "=== %s ===\n", report.StyleID)
	fmt.Fprintf(out, "Filter: %s, order %d, edges %s Hz\n", report.Kind, report.Order, formatEdges(report.EdgesHz))
	fmt.Fprintf(out, "Sample rate: %d Hz\n", p.SampleRate)
	if report.Degraded {
		fmt.Fprintln(out, "Band edges collapsed: order-2 lowpass in use")
	}
	fmt.Fprintln(out, "\nZero-phase response:")
	for i, f := range report.Frequencies {
		fmt.Fprintf(out, "  %8.0f Hz  %8.2f dB\n", f, report.GainDB[i])
	}
	return nil
}
