// Package cachestore defines the contract shared by every cache policy in
// this module and the knobs they have in common.
//
// Policies live in their own packages (unbounded, fifo, lifo, lru, lfu) and
// are picked at construction time. A nil key or a nil value is treated as
// absent: Put ignores it and Get reports a miss.
package cachestore

import "errors"

// DefaultCapacity is the number of items a bounded cache holds when the
// caller has no better number.
const DefaultCapacity = 4

// ErrInvalidCapacity is returned by bounded constructors for capacity <= 0.
var ErrInvalidCapacity = errors.New("must provide a positive size")

// Cache defines the basic operations that all cache implementations should support
type Cache[K comparable, V any] interface {
	// Put stores value under key. Absent keys or values are ignored.
	Put(key K, value V)
	// Get returns the value stored under key.
	Get(key K) (V, bool)
	// GetAll returns a copy of every resident entry.
	GetAll() map[K]V
	// Clear drops all entries without notifying the eviction callback.
	Clear()
	// Len returns the number of resident entries.
	Len() int
}
