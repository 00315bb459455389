// Package assets provides a read-through cache over a resource opener, so
// material libraries and textures shared by several meshes are read once.
package assets

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Opener opens a named resource for reading.
type Opener interface {
	Open(name string) (io.ReadCloser, error)
}

// Manager serves resources from a base opener, caching their contents.
// It satisfies formats.Opener and texture.Opener.
type Manager struct {
	base  Opener
	cache *Cache
}

// NewManager creates a new asset manager reading through base.
func NewManager(base Opener) *Manager {
	return &Manager{
		base:  base,
		cache: NewCache(),
	}
}

// Open returns a reader over the cached contents of name.
func (m *Manager) Open(name string) (io.ReadCloser, error) {
	data, err := m.Load(name)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Load returns the contents of name, reading it from the base opener on
// the first request. Failed opens are not cached.
func (m *Manager) Load(name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	rc, err := m.base.Open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	m.cache.Set(name, data)
	return data, nil
}

// Stats returns cache statistics.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Close drops all cached contents.
func (m *Manager) Close() {
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
