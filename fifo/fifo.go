// Package fifo is a bounded cache that evicts in insertion order.
//
// When a Put of a new key would grow the cache past its capacity, the key
// that has been resident the longest is discarded. Get never changes the
// order. Putting a key that is already resident moves it to the newest end,
// so updating a value also resets its place in line.
package fifo

import (
	"sync"

	"github.com/kolobok-kelbek/cachestore"
	"github.com/kolobok-kelbek/cachestore/internal/absent"
	"github.com/kolobok-kelbek/cachestore/internal/ordered"
)

type Cache[K comparable, V any] struct {
	entries  *ordered.Map[K, V]
	lock     sync.RWMutex
	capacity int
	opts     cachestore.Options[K, V]
}

var _ cachestore.Cache[string, any] = (*Cache[string, any])(nil)

func NewCache[K comparable, V any](capacity int, opts ...cachestore.Option[K, V]) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, cachestore.ErrInvalidCapacity
	}

	return &Cache[K, V]{
		entries:  ordered.New[K, V](capacity),
		capacity: capacity,
		opts:     cachestore.Apply(opts...),
	}, nil
}

// Put stores value under key, evicting the oldest entry first when the
// cache is full and key is not already resident.
func (c *Cache[K, V]) Put(key K, value V) {
	if absent.Is(key) || absent.Is(value) {
		return
	}

	evictedKey, evictedValue, evicted := c.put(key, value)
	if evicted {
		c.opts.Evicted(evictedKey, evictedValue)
	}
}

func (c *Cache[K, V]) put(key K, value V) (K, V, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.entries.Remove(key)

	var (
		evictedKey   K
		evictedValue V
		evicted      bool
	)
	if c.entries.Len() >= c.capacity {
		evictedKey, evictedValue, evicted = c.entries.PopOldest()
	}

	c.entries.PushNewest(key, value)
	return evictedKey, evictedValue, evicted
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	if absent.Is(key) {
		var zero V
		return zero, false
	}

	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.entries.Get(key)
}

func (c *Cache[K, V]) GetAll() map[K]V {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.entries.Snapshot()
}

func (c *Cache[K, V]) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.entries.Clear()
}

func (c *Cache[K, V]) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.entries.Len()
}

// Keys returns resident keys, next eviction candidate first.
func (c *Cache[K, V]) Keys() []K {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.entries.Keys()
}

// Next returns the entry the next eviction would discard, without removing it.
func (c *Cache[K, V]) Next() (K, V, bool) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.entries.Oldest()
}
