package cachestore

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// EvictFunc is called with the key and value of an entry a policy discarded
// to make room for a new one. It runs after the cache lock is released, once
// the new entry is resident.
type EvictFunc[K comparable, V any] func(key K, value V)

// ChainEvictions returns an EvictFunc that calls every non-nil fn in order.
func ChainEvictions[K comparable, V any](fns ...EvictFunc[K, V]) EvictFunc[K, V] {
	var chain []EvictFunc[K, V]
	for _, fn := range fns {
		if fn != nil {
			chain = append(chain, fn)
		}
	}

	switch len(chain) {
	case 0:
		return nil
	case 1:
		return chain[0]
	}

	return func(key K, value V) {
		for _, fn := range chain {
			fn(key, value)
		}
	}
}

// PrintEvictions writes one "DISCARD: <key>" line to w per eviction.
func PrintEvictions[K comparable, V any](w io.Writer) EvictFunc[K, V] {
	return func(key K, _ V) {
		_, _ = fmt.Fprintf(w, "DISCARD: %v\n", key)
	}
}

// LogEvictions emits an info event per eviction on logger.
func LogEvictions[K comparable, V any](logger zerolog.Logger) EvictFunc[K, V] {
	return func(key K, _ V) {
		logger.Info().
			Interface("key", key).
			Msgf("DISCARD: %v", key)
	}
}
