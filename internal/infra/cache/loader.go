package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const freshSuffix = "\x00fresh"

// LoadFunc reads the value of a key from its source.
type LoadFunc[V any] func(ctx context.Context) (V, error)

// Loader is a read-through cache in front of a slow source. Concurrent loads of a
// key share one read, and a load that started before the key was invalidated or
// overwritten never stores its result. A zero ttl disables caching and keeps only
// the sharing of concurrent reads.
type Loader[K ~string, V any] struct {
	values  *TTL[K, V]
	enabled bool
	group   singleflight.Group

	mu          sync.Mutex
	generations map[K]uint64
}

func NewLoader[K ~string, V any](ttl time.Duration) *Loader[K, V] {
	return &Loader[K, V]{
		values:      New[K, V](ttl),
		enabled:     ttl > 0,
		generations: make(map[K]uint64),
	}
}

// Get returns the cached value of key, loading it when absent or expired.
func (l *Loader[K, V]) Get(ctx context.Context, key K, load LoadFunc[V]) (V, error) {
	if l.enabled {
		if value, ok := l.values.Get(key); ok {
			return value, nil
		}
	}

	return l.do(ctx, key, string(key), load)
}

// Fresh loads key from the source. It only shares a read started after the last
// invalidation of key.
func (l *Loader[K, V]) Fresh(ctx context.Context, key K, load LoadFunc[V]) (V, error) {
	l.values.Delete(key)

	return l.do(ctx, key, string(key)+freshSuffix, load)
}

// Set stores a value the caller just wrote to the source.
func (l *Loader[K, V]) Set(key K, value V) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.bump(key)
	if l.enabled {
		l.values.Set(key, value)
	}
}

// Invalidate drops the cached value of key. Reads in flight are detached and
// will not store what they return.
func (l *Loader[K, V]) Invalidate(key K) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.bump(key)
	l.values.Delete(key)
}

// bump must be called with mu held.
func (l *Loader[K, V]) bump(key K) {
	l.generations[key]++
	l.group.Forget(string(key))
	l.group.Forget(string(key) + freshSuffix)
}

// do runs one shared load per flight. The load outlives the caller that started
// it; every caller still returns as soon as its own ctx is done.
func (l *Loader[K, V]) do(ctx context.Context, key K, flight string, load LoadFunc[V]) (V, error) {
	var zero V

	results := l.group.DoChan(flight, func() (any, error) {
		l.mu.Lock()
		generation := l.generations[key]
		l.mu.Unlock()

		value, err := load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		if l.enabled && l.generations[key] == generation {
			l.values.Set(key, value)
		}
		l.mu.Unlock()

		return value, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-results:
		if res.Err != nil {
			return zero, res.Err
		}

		return res.Val.(V), nil
	}
}
