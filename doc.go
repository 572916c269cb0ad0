// Package retrofx renders a dry mono voice recording as if it were played
// back through a historical device: an old telephone line, a 1930s radio,
// a gramophone, a vinyl record or a cassette deck.
//
// A style is a [StylePreset]: a named set of degradation parameters. The
// [Chain] turns a preset into an ordered list of effect stages and runs
// them over a [SampleBuffer]:
//
//  1. Band-limit (zero-phase Butterworth lowpass or bandpass)
//  2. AM modulation
//  3. Wow & flutter
//  4. Warmth boost
//  5. Distortion and mechanical noise
//  6. Crackle
//  7. Noise and hiss
//  8. Reverb
//  9. Compression
//  10. Peak normalization
//
// Stages a preset does not declare are skipped. A reduced "safe baseline"
// profile (band-limit, hiss, normalize with conservative per-style
// settings) is available as a separate mode; callers pick the mode
// explicitly.
//
// # Basic Usage
//
//	reg := retrofx.DefaultRegistry()
//	r := retrofx.NewRenderer(reg)
//
//	src, err := retrofx.ToFloat(pcm) // *audio.IntBuffer from go-audio
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out, err := r.Render(ctx, src, retrofx.StyleTelephone, retrofx.ModeFull)
//
// # Batch Rendering
//
// [Renderer.RenderAll] renders several styles concurrently. A failing style
// is reported in its [Result] and never stops the others.
//
//	results := r.RenderAll(ctx, src, reg.Identifiers(), retrofx.ModeFull)
//	summary := retrofx.Summarize(results)
//
// # Presets
//
// Presets convert to and from flat key/value records (the format used by
// YAML preset files) with [FromRecord] and [StylePreset.Record]. Unknown
// keys are kept in [StylePreset.Extensions]. [BuildCustom] seeds a
// preset with documented defaults and merges caller overrides.
package retrofx
