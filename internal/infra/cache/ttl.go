// Package cache provides in-memory TTL maps for read caches and idle-expiring sessions.
package cache

import (
	"context"
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTL is a concurrency-safe map whose entries expire after a fixed duration.
// With sliding expiration every successful Get extends the entry's lifetime.
type TTL[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]entry[V]
	ttl     time.Duration
	sliding bool
	now     func() time.Time
}

// New returns a cache whose entries live for ttl after being written.
func New[K comparable, V any](ttl time.Duration) *TTL[K, V] {
	return &TTL[K, V]{
		entries: make(map[K]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// NewSliding returns a cache whose entries live for ttl after their last access.
func NewSliding[K comparable, V any](ttl time.Duration) *TTL[K, V] {
	c := New[K, V](ttl)
	c.sliding = true

	return c
}

// Get returns the value stored under key if it has not expired.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	var zero V
	now := c.now()

	if !c.sliding {
		c.mu.RLock()
		defer c.mu.RUnlock()

		e, ok := c.entries[key]
		if !ok || now.After(e.expiresAt) {
			return zero, false
		}

		return e.value, true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if now.After(e.expiresAt) {
		delete(c.entries, key)

		return zero, false
	}
	e.expiresAt = now.Add(c.ttl)
	c.entries[key] = e

	return e.value, true
}

// Set stores value under key.
func (c *TTL[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{value: value, expiresAt: c.now().Add(c.ttl)}
}

// Delete removes key.
func (c *TTL[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Clear removes every entry.
func (c *TTL[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
}

// Len returns the number of stored entries, expired ones included until swept.
func (c *TTL[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Sweep drops expired entries and returns how many were removed.
func (c *TTL[K, V]) Sweep() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}

	return removed
}

// Run sweeps every interval until ctx is cancelled.
func (c *TTL[K, V]) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}
