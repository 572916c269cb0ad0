package retrofx

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Renderer renders a source buffer in one or more styles. It is safe for
// concurrent use.
type Renderer struct {
	registry *Registry
	chain    *Chain
	workers  int
	logger   *logrus.Logger
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithChain sets the effect chain. The default is NewChain().
func WithChain(c *Chain) RendererOption {
	return func(r *Renderer) { r.chain = c }
}

// WithWorkers bounds how many styles RenderAll renders at once. Values
// below 1 select runtime.NumCPU().
func WithWorkers(n int) RendererOption {
	return func(r *Renderer) { r.workers = n }
}

// WithRenderLogger sets the renderer's logger.
func WithRenderLogger(l *logrus.Logger) RendererOption {
	return func(r *Renderer) { r.logger = l }
}

// NewRenderer creates a renderer over reg.
func NewRenderer(reg *Registry, opts ...RendererOption) *Renderer {
	r := &Renderer{
		registry: reg,
		logger:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.chain == nil {
		r.chain = NewChain(WithChainLogger(r.logger))
	}
	if r.workers < 1 {
		r.workers = runtime.NumCPU()
	}
	return r
}

// Workers returns the concurrency bound of RenderAll.
func (r *Renderer) Workers() int {
	return r.workers
}

// Render resamples src to the style's declared rate and runs the chain
// selected by mode. Unknown styles render with the fallback preset.
func (r *Renderer) Render(ctx context.Context, src *SampleBuffer, styleID string, mode Mode) (*SampleBuffer, error) {
	return r.render(ctx, src, styleID, mode, nil)
}

func (r *Renderer) render(ctx context.Context, src *SampleBuffer, styleID string, mode Mode, rates *rateCache) (*SampleBuffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}

	preset := r.registry.Resolve(styleID)

	var (
		work *SampleBuffer
		err  error
	)
	if rates != nil {
		work, err = rates.get(src, preset.SampleRate)
	} else {
		work, err = Resample(src, preset.SampleRate)
	}
	if err != nil {
		return nil, fmt.Errorf("style %s: %w", styleID, err)
	}

	switch mode {
	case ModeFull:
		return r.chain.Apply(work, preset)
	case ModeBaseline:
		return r.chain.ApplyBaseline(work, styleID)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}
}

// Result is the outcome of rendering one style.
type Result struct {
	StyleID string
	Mode    Mode
	Buffer  *SampleBuffer
	Err     error
	Elapsed time.Duration
}

// RenderAll renders src in every style of ids, at most Workers at a time.
// Results are returned in the order of ids. A failing style is reported in
// its Result and does not affect the others. Once ctx is done, styles not
// yet started report ctx.Err().
func (r *Renderer) RenderAll(ctx context.Context, src *SampleBuffer, ids []string, mode Mode) []Result {
	results := make([]Result, len(ids))
	rates := newRateCache()
	sem := make(chan struct{}, r.workers)
	var wg sync.WaitGroup

	for i, id := range ids {
		results[i] = Result{StyleID: id, Mode: mode}

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			continue
		}

		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			res := &results[idx]
			start := time.Now()
			res.Buffer, res.Err = r.render(ctx, src, res.StyleID, mode, rates)
			res.Elapsed = time.Since(start)

			fields := logrus.Fields{
				"style":   res.StyleID,
				"mode":    mode.String(),
				"elapsed": res.Elapsed,
			}
			if res.Err != nil {
				r.logger.WithFields(fields).WithError(res.Err).Error("style render failed")
				return
			}
			fields["samples"] = len(res.Buffer.Samples)
			fields["sample_rate"] = res.Buffer.SampleRate
			r.logger.WithFields(fields).Info("style rendered")
		}(i)
	}
	wg.Wait()

	return results
}

// Summary counts the outcomes of a batch.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int

	// FailedStyles lists failing style identifiers in batch order.
	FailedStyles []string
}

// Summarize counts successes and failures in results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, res := range results {
		if res.Err != nil {
			s.Failed++
			s.FailedStyles = append(s.FailedStyles, res.StyleID)
			continue
		}
		s.Succeeded++
	}
	return s
}

// rateCache resamples the batch source once per target rate.
type rateCache struct {
	mu      sync.Mutex
	entries map[int]*rateEntry
}

type rateEntry struct {
	once sync.Once
	buf  *SampleBuffer
	err  error
}

func newRateCache() *rateCache {
	return &rateCache{entries: make(map[int]*rateEntry)}
}

// get returns src at rate. The returned buffer is shared and must not be
// modified; the chain only reads its input.
func (c *rateCache) get(src *SampleBuffer, rate int) (*SampleBuffer, error) {
	c.mu.Lock()
	e, ok := c.entries[rate]
	if !ok {
		e = &rateEntry{}
		c.entries[rate] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		e.buf, e.err = Resample(src, rate)
	})
	return e.buf, e.err
}
