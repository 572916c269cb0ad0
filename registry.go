package retrofx

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// LookupResult reports whether Lookup found the requested identifier.
type LookupResult int

const (
	// Found means the identifier names a registered preset.
	Found LookupResult = iota

	// NotFound means the fallback preset was returned instead.
	NotFound
)

func (r LookupResult) String() string {
	if r == Found {
		return "found"
	}
	return "not-found"
}

// Registry is an ordered, read-only set of style presets with a fallback
// for unknown identifiers. It is safe for concurrent use.
type Registry struct {
	order    []string
	presets  map[string]StylePreset
	fallback string
	cache    PresetCache
	logger   *logrus.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithCache replaces the default in-memory preset cache.
func WithCache(c PresetCache) RegistryOption {
	return func(r *Registry) { r.cache = c }
}

// WithLogger sets the logger used for lookup warnings.
func WithLogger(l *logrus.Logger) RegistryOption {
	return func(r *Registry) { r.logger = l }
}

// NewRegistry creates a registry from presets in the given order.
// fallbackID must name one of them. Every preset is validated.
func NewRegistry(presets []StylePreset, fallbackID string, opts ...RegistryOption) (*Registry, error) {
	r := &Registry{
		order:    make([]string, 0, len(presets)),
		presets:  make(map[string]StylePreset, len(presets)),
		fallback: fallbackID,
		cache:    NewMemoryCache(),
		logger:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	for i := range presets {
		if err := r.add(&presets[i]); err != nil {
			return nil, err
		}
	}
	if _, ok := r.presets[fallbackID]; !ok {
		return nil, fmt.Errorf("%w: fallback %q is not registered", ErrInvalidPreset, fallbackID)
	}
	return r, nil
}

// DefaultRegistry returns the registry of built-in styles with
// enhanced_basic as the fallback.
func DefaultRegistry(opts ...RegistryOption) *Registry {
	r, err := NewRegistry(builtinStyles(), FallbackStyle, opts...)
	if err != nil {
		panic(fmt.Sprintf("retrofx: built-in styles: %v", err))
	}
	return r
}

// add validates p and stores a copy. A repeated identifier replaces the
// earlier preset in place.
func (r *Registry) add(p *StylePreset) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, ok := r.presets[p.ID]; !ok {
		r.order = append(r.order, p.ID)
	}
	r.presets[p.ID] = p.Clone()
	return nil
}

// With returns a new registry holding r's presets followed by presets.
// A preset whose identifier is already registered replaces it. The new
// registry has its own cache; r is unchanged.
func (r *Registry) With(presets ...StylePreset) (*Registry, error) {
	all := make([]StylePreset, 0, len(r.order)+len(presets))
	for _, id := range r.order {
		all = append(all, r.presets[id])
	}
	all = append(all, presets...)
	return NewRegistry(all, r.fallback, WithLogger(r.logger))
}

// Lookup returns a copy of the preset for id. Unknown identifiers return
// the fallback preset with NotFound.
func (r *Registry) Lookup(id string) (StylePreset, LookupResult) {
	if p, ok := r.presets[id]; ok {
		return p.Clone(), Found
	}
	p := r.presets[r.fallback]
	return p.Clone(), NotFound
}

// Resolve returns the memoized preset for id, falling back for unknown
// identifiers. The first resolution of an unknown id logs a warning.
// Callers must treat the returned preset as read-only.
func (r *Registry) Resolve(id string) *StylePreset {
	return r.cache.GetOrLoad(id, func() *StylePreset {
		p, res := r.Lookup(id)
		if res == NotFound {
			r.logger.WithFields(logrus.Fields{
				"style":    id,
				"fallback": r.fallback,
			}).Warn("unknown style, using fallback")
		}
		return &p
	})
}

// Warm resolves every registered style so later lookups hit the cache.
func (r *Registry) Warm() {
	for _, id := range r.order {
		r.Resolve(id)
	}
}

// Identifiers returns the registered identifiers in registration order.
func (r *Registry) Identifiers() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Descriptions maps each identifier to its description.
func (r *Registry) Descriptions() map[string]string {
	d := make(map[string]string, len(r.presets))
	for id, p := range r.presets {
		d[id] = p.Description
	}
	return d
}

// Fallback returns the fallback identifier.
func (r *Registry) Fallback() string {
	return r.fallback
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	_, ok := r.presets[id]
	return ok
}

// BuildCustom creates a preset seeded with the custom defaults (cutoff
// 2500 Hz, order 4, 22050 Hz, compression 0.3/2.0, noise 0.01,
// distortion 0.05) and overrides merged on top. Recognized schema keys
// become typed stages; other keys are kept in Extensions. The custom
// preset is not registered; use With for that.
func BuildCustom(id, description string, overrides map[string]any) (StylePreset, error) {
	rec := map[string]any{
		KeyDescription:          description,
		KeyCutoffFreq:           defaultCutoffFreq,
		KeyFilterOrder:          defaultFilterOrder,
		KeySampleRate:           defaultSampleRate,
		KeyCompressionThreshold: defaultCompressionThreshold,
		KeyCompressionRatio:     defaultCompressionRatio,
		KeyNoiseLevel:           defaultNoiseLevel,
		KeyDistortionLevel:      defaultDistortionLevel,
	}
	for k, v := range overrides {
		rec[k] = v
	}

	p, err := FromRecord(id, rec)
	if err != nil {
		return StylePreset{}, err
	}
	if err := p.Validate(); err != nil {
		return StylePreset{}, err
	}
	return p, nil
}
