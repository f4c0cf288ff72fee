// Package query is a keyed in-process cache for views of backend data.
// Entries are written synchronously and read back immediately; invalidation
// marks entries stale rather than dropping them, so a stale value stays
// readable while the next Get refetches it.
package query

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type Entry struct {
	Value     any
	FetchedAt time.Time
	Stale     bool
}

type FetchFunc func(ctx context.Context) (any, error)

type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	sfg     singleflight.Group // Dedupes concurrent fetches per key
}

func New() *Cache {
	return &Cache{entries: make(map[string]Entry)}
}

func (c *Cache) Read(key string) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	return e, ok
}

// Write stores a fresh value under key. The entry is immediately visible to
// subsequent reads and is no longer stale.
func (c *Cache) Write(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = Entry{Value: value, FetchedAt: time.Now()}
}

// Update rewrites the value under key with fn while holding the lock, so a
// concurrent Write cannot land between the read and the rewrite. Absent keys
// stay absent and fn is not called; the entry's staleness is preserved.
func (c *Cache) Update(key string, fn func(value any) any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return
	}
	e.Value = fn(e.Value)
	c.entries[key] = e
}

// Restore puts a previously read entry back verbatim, or deletes the key when
// the snapshot says it did not exist. Used for optimistic-update rollback.
func (c *Cache) Restore(key string, e Entry, existed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !existed {
		delete(c.entries, key)
		return
	}
	c.entries[key] = e
}

// Invalidate marks the given keys stale. Missing keys are ignored.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		if e, ok := c.entries[key]; ok {
			e.Stale = true
			c.entries[key] = e
		}
	}
}

// InvalidatePrefix marks every key with the given prefix stale.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		if strings.HasPrefix(key, prefix) {
			e.Stale = true
			c.entries[key] = e
		}
	}
}

// Keys returns all cached keys with the given prefix.
func (c *Cache) Keys(prefix string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var keys []string
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Get returns the cached value for key, fetching it when the entry is absent
// or stale. Concurrent Gets for the same key share a single fetch. A failed
// fetch leaves any existing entry in place and returns the error.
func (c *Cache) Get(ctx context.Context, key string, fetch FetchFunc) (any, error) {
	if e, ok := c.Read(key); ok && !e.Stale {
		return e.Value, nil
	}

	v, err, _ := c.sfg.Do(key, func() (interface{}, error) {
		// Re-check under singleflight: a concurrent caller may have
		// refreshed the entry while this one was queued.
		if e, ok := c.Read(key); ok && !e.Stale {
			return e.Value, nil
		}

		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.Write(key, value)
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ReadAs reads a cached value of a concrete type. It returns false when the
// key is absent or holds a different type.
func ReadAs[T any](c *Cache, key string) (T, bool) {
	var zero T
	e, ok := c.Read(key)
	if !ok {
		return zero, false
	}
	v, ok := e.Value.(T)
	if !ok {
		return zero, false
	}
	return v, true
}
