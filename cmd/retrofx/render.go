package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	retrofx "github.com/tphakala/go-retro-voice"
	"github.com/tphakala/go-retro-voice/internal/analysis"
	"github.com/tphakala/go-retro-voice/internal/codec"
)

var (
	inputPath  string
	outputDir  string
	modeName   string
	styleIDs   []string
	bitDepth   int
	workers    int
	seed       uint64
	cpuprofile string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a recording in one or more styles",
	Long: `Load a recording (WAV, AIFF, MP3 or Ogg Vorbis), downmix it to mono and
render it in every requested style. Each style is written to
<out>/optimized_retro_<style>.wav, or optimized_retro_<style>_enhanced.wav
in baseline mode.

Examples:
  retrofx render --input voice.wav
  retrofx render -i voice.mp3 -o out --styles telephone,gramophone
  retrofx render -i voice.wav --mode baseline --bits 24`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input audio file")
	renderCmd.Flags().StringVarP(&outputDir, "out", "o", "", "Output directory (default from config)")
	renderCmd.Flags().StringVarP(&modeName, "mode", "m", "", "Render mode: full or baseline")
	renderCmd.Flags().StringSliceVarP(&styleIDs, "styles", "s", nil, "Styles to render (default: all)")
	renderCmd.Flags().IntVar(&bitDepth, "bits", 0, "Output bit depth: 8, 16, 24 or 32")
	renderCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Styles rendered concurrently (default: CPU count)")
	renderCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for noise, crackle and mechanical rumble")
	renderCmd.Flags().StringVar(&cpuprofile, "cpuprofile", "", "Write CPU profile to file")
	_ = renderCmd.MarkFlagRequired("input")
}

func runRender(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd, cfg)
	if err != nil {
		return err
	}

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	pcm, err := codec.Load(inputPath)
	if err != nil {
		return err
	}
	src, err := retrofx.ToFloat(pcm)
	if err != nil {
		return fmt.Errorf("%w: %w", codec.ErrSourceLoad, err)
	}
	logger.WithFields(logrus.Fields{
		"input":    inputPath,
		"rate":     src.SampleRate,
		"channels": pcm.Format.NumChannels,
		"duration": src.Duration(),
	}).Info("source loaded")

	reg, err := cfg.Registry(logger)
	if err != nil {
		return err
	}
	ids := settings.styles
	if len(ids) == 0 {
		ids = reg.Identifiers()
	}

	renderer := retrofx.NewRenderer(reg,
		retrofx.WithWorkers(settings.workers),
		retrofx.WithRenderLogger(logger),
		retrofx.WithChain(retrofx.NewChain(
			retrofx.WithSeed(settings.seed),
			retrofx.WithChainLogger(logger),
		)),
	)

	start := time.Now()
	results := renderer.RenderAll(cmd.Context(), src, ids, settings.mode)
	paths := writeResults(results, settings.outputDir, settings.bitDepth, settings.mode)
	summary := retrofx.Summarize(results)

	out := cmd.OutOrStdout()
	for i, res := range results {
		if res.Err != nil {
			fmt.Fprintf(out, "  FAIL %-*s %v\n", styleColumnWidth, res.StyleID, res.Err)
			continue
		}
		fmt.Fprintf(out, "  ok   %-*s %s  (peak %.1f dBFS, rms %.1f dBFS)\n", styleColumnWidth, res.StyleID, paths[i],
			analysis.PeakDB(res.Buffer.Samples), analysis.RMSDB(res.Buffer.Samples))
	}
	fmt.Fprintf(out, "Rendered %d/%d styles (%s mode) in %.2fs\n",
		summary.Succeeded, summary.Total, settings.mode, time.Since(start).Seconds())

	if summary.Succeeded == 0 && summary.Total > 0 {
		return fmt.Errorf("no style rendered: %v", summary.FailedStyles)
	}
	return nil
}
