package retrofx

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
)

// BenchmarkRenderAllSequential benchmarks rendering every style one at a time.
func BenchmarkRenderAllSequential(b *testing.B) {
	benchmarkRenderAll(b, 1)
}

// BenchmarkRenderAllParallel benchmarks rendering every style concurrently.
func BenchmarkRenderAllParallel(b *testing.B) {
	benchmarkRenderAll(b, 0)
}

func benchmarkRenderAll(b *testing.B, workers int) {
	b.Helper()

	const numSamples = 44100 // 1 second of audio

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	reg := DefaultRegistry(WithLogger(logger))
	r := NewRenderer(reg, WithWorkers(workers), WithRenderLogger(logger))
	src := voiceLikeSource(RateCD, numSamples)
	ids := reg.Identifiers()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		for _, res := range r.RenderAll(context.Background(), src, ids, ModeFull) {
			if res.Err != nil {
				b.Fatalf("style %s failed: %v", res.StyleID, res.Err)
			}
		}
	}
}

// BenchmarkChainApply benchmarks the full chain of a single style at its
// own rate.
func BenchmarkChainApply(b *testing.B) {
	p := DefaultRegistry().Resolve(StyleVinylRecord)
	src := voiceLikeSource(p.SampleRate, p.SampleRate)
	c := NewChain()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := c.Apply(src, p); err != nil {
			b.Fatalf("Apply failed: %v", err)
		}
	}
}
