package retrofx

import "sync"

// PresetCache memoizes resolved presets by identifier.
type PresetCache interface {
	// GetOrLoad returns the cached preset for id, calling load on the
	// first request. Later calls return the identical pointer.
	GetOrLoad(id string, load func() *StylePreset) *StylePreset
}

// MemoryCache is a process-lifetime PresetCache safe for concurrent use.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*StylePreset
}

// NewMemoryCache creates an empty cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]*StylePreset)}
}

// GetOrLoad implements PresetCache.
func (c *MemoryCache) GetOrLoad(id string, load func() *StylePreset) *StylePreset {
	c.mu.RLock()
	p, ok := c.entries[id]
	c.mu.RUnlock()
	if ok {
		return p
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.entries[id]; ok {
		return p
	}
	p = load()
	c.entries[id] = p
	return p
}

// Len returns the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
