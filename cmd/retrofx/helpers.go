package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	retrofx "github.com/tphakala/go-retro-voice"
	"github.com/tphakala/go-retro-voice/internal/codec"
	"github.com/tphakala/go-retro-voice/internal/config"
)

// renderSettings is the config file's render section with flag overrides
// applied.
type renderSettings struct {
	mode      retrofx.Mode
	outputDir string
	styles    []string
	bitDepth  int
	workers   int
	seed      uint64
}

// resolveSettings merges explicitly set render flags over c.
func resolveSettings(cmd *cobra.Command, c *config.Config) (renderSettings, error) {
	merged := c.Render
	flags := cmd.Flags()
	if flags.Changed("mode") {
		merged.Mode = modeName
	}
	if flags.Changed("out") {
		merged.OutputDir = outputDir
	}
	if flags.Changed("styles") {
		merged.Styles = styleIDs
	}
	if flags.Changed("bits") {
		merged.BitDepth = bitDepth
	}
	if flags.Changed("workers") {
		merged.Workers = workers
	}
	if flags.Changed("seed") {
		merged.Seed = seed
	}

	check := *c
	check.Render = merged
	if err := check.Validate(); err != nil {
		return renderSettings{}, err
	}

	return renderSettings{
		mode:      check.Mode(),
		outputDir: merged.OutputDir,
		styles:    cleanStyles(merged.Styles),
		bitDepth:  merged.BitDepth,
		workers:   merged.Workers,
		seed:      merged.Seed,
	}, nil
}

// cleanStyles trims identifiers and drops empties and repeats.
func cleanStyles(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// writeResults writes every successful result as a WAV file and returns
// the paths by result index. A write failure is stored in the result.
func writeResults(results []retrofx.Result, dir string, bits int, mode retrofx.Mode) []string {
	paths := make([]string, len(results))
	for i := range results {
		res := &results[i]
		if res.Err != nil {
			continue
		}
		path := codec.OutputPath(dir, res.StyleID, mode == retrofx.ModeBaseline)
		if err := writeResult(path, res.Buffer, bits); err != nil {
			res.Err = err
			logger.WithError(err).WithField("style", res.StyleID).Error("failed to write output")
			continue
		}
		paths[i] = path
		logger.WithFields(logrus.Fields{
			"style": res.StyleID,
			"path":  path,
		}).Debug("output written")
	}
	return paths
}

func writeResult(path string, buf *retrofx.SampleBuffer, bits int) error {
	pcm, err := retrofx.ToPCM(buf, bits)
	if err != nil {
		return err
	}
	return codec.WriteWAV(path, pcm)
}

// analysisFrequencies returns octave-spaced probe frequencies from
// analysisStartHz to just below Nyquist.
func analysisFrequencies(sampleRate int) []float64 {
	nyquist := float64(sampleRate) / 2
	limit := nyquist * nyquistProbeFraction

	var freqs []float64
	for f := analysisStartHz; f < limit; f *= octave {
		freqs = append(freqs, f)
	}
	if len(freqs) == 0 || freqs[len(freqs)-1] < limit {
		freqs = append(freqs, math.Floor(limit))
	}
	return freqs
}

func formatEdges(edges []float64) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = fmt.Sprintf("%.0f", e)
	}
	return strings.Join(parts, "-")
}
