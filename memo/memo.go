/*
Package memo provides result caches for pure functions.

Caches are a performance layer only: a function memoized with a Cache returns
exactly what it would return without one. A nil *Cache is valid and disables
caching.

Keys for structured inputs are built by Hash, which encodes a canonical form
of all its arguments (map keys sorted) with MessagePack and digests the
encoding with SHA-256. Two inputs share a key only if they are structurally
equal.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package memo

import (
	"sync"
	"sync/atomic"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'respstyle.memo'.
func tracer() tracing.Trace {
	return tracing.Select("respstyle.memo")
}

// Cache maps keys of type K to results of type V. It is safe for concurrent
// use. Insertion is atomic per key; concurrent misses on the same key may
// compute the value twice, the last writer wins.
type Cache[K comparable, V any] struct {
	name    string
	mu      sync.RWMutex
	entries map[K]V
	hits    atomic.Int64
	misses  atomic.Int64
}

// New creates an empty cache. name is used for tracing only.
func New[K comparable, V any](name string) *Cache[K, V] {
	return &Cache[K, V]{name: name, entries: make(map[K]V)}
}

// Get returns the cached value for key, if present.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var v V
	if c == nil {
		return v, false
	}
	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()
	return v, ok
}

// Put stores v for key.
func (c *Cache[K, V]) Put(key K, v V) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.entries[key] = v
	c.mu.Unlock()
}

// Do returns the cached value for key, or computes it with f and caches it.
func (c *Cache[K, V]) Do(key K, f func() V) V {
	if c == nil {
		return f()
	}
	if v, ok := c.Get(key); ok {
		c.hits.Add(1)
		return v
	}
	c.misses.Add(1)
	v := f()
	c.Put(key, v)
	tracer().Debugf("memo %s: cached new entry, %d entries", c.name, c.Len())
	return v
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the number of hits and misses so far.
func (c *Cache[K, V]) Stats() (hits, misses int64) {
	if c == nil {
		return 0, 0
	}
	return c.hits.Load(), c.misses.Load()
}

// Reset drops all entries and statistics.
func (c *Cache[K, V]) Reset() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.entries = make(map[K]V)
	c.mu.Unlock()
	c.hits.Store(0)
	c.misses.Store(0)
}
