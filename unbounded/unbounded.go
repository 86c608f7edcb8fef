// Package unbounded is a cache without a size limit. Nothing is ever evicted.
package unbounded

import (
	"maps"
	"sync"

	"github.com/kolobok-kelbek/cachestore"
	"github.com/kolobok-kelbek/cachestore/internal/absent"
)

type Cache[K comparable, V any] struct {
	data map[K]V
	lock sync.RWMutex
}

var _ cachestore.Cache[string, any] = (*Cache[string, any])(nil)

func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		data: make(map[K]V),
	}
}

func (c *Cache[K, V]) Put(key K, value V) {
	if absent.Is(key) || absent.Is(value) {
		return
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	c.data[key] = value
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	if absent.Is(key) {
		var zero V
		return zero, false
	}

	c.lock.RLock()
	defer c.lock.RUnlock()

	value, has := c.data[key]
	return value, has
}

func (c *Cache[K, V]) GetAll() map[K]V {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return maps.Clone(c.data)
}

func (c *Cache[K, V]) Clear() {
	c.lock.Lock()
	defer c.lock.Unlock()

	clear(c.data)
}

func (c *Cache[K, V]) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return len(c.data)
}
