// Package lru is a bounded cache that discards the least recently used entry.
package lru

import (
	"sync"

	"github.com/kolobok-kelbek/cachestore"
	"github.com/kolobok-kelbek/cachestore/internal/absent"
	"github.com/kolobok-kelbek/cachestore/internal/ordered"
)

type Cache[K comparable, V any] struct {
	// head of the recency list is the most recently used key
	data     *ordered.Map[K, V]
	lock     sync.Mutex
	capacity int
	opts     cachestore.Options[K, V]
}

var _ cachestore.Cache[string, any] = (*Cache[string, any])(nil)

func NewCache[K comparable, V any](capacity int, opts ...cachestore.Option[K, V]) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, cachestore.ErrInvalidCapacity
	}

	return &Cache[K, V]{
		data:     ordered.New[K, V](capacity),
		capacity: capacity,
		opts:     cachestore.Apply(opts...),
	}, nil
}

func (c *Cache[K, V]) Put(key K, value V) {
	if absent.Is(key) || absent.Is(value) {
		return
	}

	evictedKey, evictedValue, evicted := c.add(key, value)
	if evicted {
		c.opts.Evicted(evictedKey, evictedValue)
	}
}

func (c *Cache[K, V]) add(key K, value V) (evictedKey K, evictedValue V, evicted bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.data.Contains(key) {
		c.data.PushNewest(key, value)
		return evictedKey, evictedValue, false
	}

	if c.data.Len() >= c.capacity {
		evictedKey, evictedValue, evicted = c.data.PopOldest()
	}
	c.data.PushNewest(key, value)
	return evictedKey, evictedValue, evicted
}

// Get returns the value for key and marks it as most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if absent.Is(key) {
		var zero V
		return zero, false
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	value, has := c.data.Get(key)
	if has {
		c.data.Touch(key)
	}
	return value, has
}

func (c *Cache[K, V]) GetAll() map[K]V {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.data.Snapshot()
}

func (c *Cache[K, V]) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.data.Clear()
}

func (c *Cache[K, V]) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.data.Len()
}

// Keys returns resident keys from least to most recently used.
func (c *Cache[K, V]) Keys() []K {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.data.Keys()
}
