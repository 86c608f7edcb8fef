// Package lfu is a bounded cache that discards the least frequently used
// entry. Among entries with the same frequency the least recently used one
// goes first.
package lfu

import (
	"sync"

	"github.com/kolobok-kelbek/cachestore"
	"github.com/kolobok-kelbek/cachestore/internal/absent"
	"github.com/kolobok-kelbek/cachestore/internal/ordered"
)

type entry[V any] struct {
	value     V
	frequency uint
}

type Cache[K comparable, V any] struct {
	data map[K]*entry[V]
	// keys per frequency, most recently used at the head
	frequencies  map[uint]*ordered.Map[K, struct{}]
	lock         sync.Mutex
	capacity     int
	minFrequency uint
	opts         cachestore.Options[K, V]
}

var _ cachestore.Cache[string, any] = (*Cache[string, any])(nil)

func NewCache[K comparable, V any](capacity int, opts ...cachestore.Option[K, V]) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, cachestore.ErrInvalidCapacity
	}

	return &Cache[K, V]{
		data:        make(map[K]*entry[V], capacity),
		frequencies: make(map[uint]*ordered.Map[K, struct{}]),
		capacity:    capacity,
		opts:        cachestore.Apply(opts...),
	}, nil
}

// Put stores value under key. Rewriting a resident key counts as a use.
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

	if node, exists := c.data[key]; exists {
		node.value = value
		c.incrementFrequency(key, node)
		return evictedKey, evictedValue, false
	}

	if len(c.data) >= c.capacity {
		evictedKey, evictedValue, evicted = c.evictLeastFrequent()
	}

	c.data[key] = &entry[V]{
		value:     value,
		frequency: 1,
	}
	c.addToFrequency(key, 1)
	c.minFrequency = 1

	return evictedKey, evictedValue, evicted
}

// Get returns the value for key and bumps its frequency.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if absent.Is(key) {
		var zero V
		return zero, false
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	if node, exists := c.data[key]; exists {
		c.incrementFrequency(key, node)
		return node.value, true
	}

	var zero V
	return zero, false
}

func (c *Cache[K, V]) GetAll() map[K]V {
	c.lock.Lock()
	defer c.lock.Unlock()

	out := make(map[K]V, len(c.data))
	for key, node := range c.data {
		out[key] = node.value
	}
	return out
}

func (c *Cache[K, V]) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()

	clear(c.data)
	clear(c.frequencies)
	c.minFrequency = 0
}

func (c *Cache[K, V]) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()

	return len(c.data)
}

// Frequency returns how many times key has been used since it was inserted.
func (c *Cache[K, V]) Frequency(key K) (uint, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if node, exists := c.data[key]; exists {
		return node.frequency, true
	}
	return 0, false
}

func (c *Cache[K, V]) incrementFrequency(key K, node *entry[V]) {
	oldFreq := node.frequency
	newFreq := oldFreq + 1

	c.removeFromFrequency(key, oldFreq)
	node.frequency = newFreq
	c.addToFrequency(key, newFreq)

	if oldFreq == c.minFrequency && c.frequencies[oldFreq] == nil {
		c.minFrequency = newFreq
	}
}

func (c *Cache[K, V]) addToFrequency(key K, freq uint) {
	bucket, exists := c.frequencies[freq]
	if !exists {
		bucket = ordered.New[K, struct{}](1)
		c.frequencies[freq] = bucket
	}
	bucket.PushNewest(key, struct{}{})
}

func (c *Cache[K, V]) removeFromFrequency(key K, freq uint) {
	bucket := c.frequencies[freq]
	if bucket == nil {
		return
	}

	bucket.Remove(key)
	if bucket.Len() == 0 {
		delete(c.frequencies, freq)
	}
}

func (c *Cache[K, V]) evictLeastFrequent() (K, V, bool) {
	var (
		key   K
		value V
	)

	bucket := c.frequencies[c.minFrequency]
	if bucket == nil {
		return key, value, false
	}

	key, _, ok := bucket.PopOldest()
	if !ok {
		return key, value, false
	}
	if bucket.Len() == 0 {
		delete(c.frequencies, c.minFrequency)
	}

	value = c.data[key].value
	delete(c.data, key)
	return key, value, true
}
