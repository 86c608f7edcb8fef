package cachestore

// Options holds settings shared by the bounded policies.
type Options[K comparable, V any] struct {
	OnEvict EvictFunc[K, V]
}

// Option configures Options.
type Option[K comparable, V any] func(*Options[K, V])

// WithOnEvict registers fn to be called once per evicted entry.
//
// fn runs after the cache lock is released and after the entry that caused
// the eviction has been stored, so a GetAll from inside fn already sees the
// new key and no longer sees the evicted one.
func WithOnEvict[K comparable, V any](fn EvictFunc[K, V]) Option[K, V] {
	return func(o *Options[K, V]) {
		o.OnEvict = ChainEvictions(o.OnEvict, fn)
	}
}

// Apply folds opts into a fresh Options value.
func Apply[K comparable, V any](opts ...Option[K, V]) Options[K, V] {
	var o Options[K, V]
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Evicted reports an eviction to OnEvict if one is set.
func (o Options[K, V]) Evicted(key K, value V) {
	if o.OnEvict != nil {
		o.OnEvict(key, value)
	}
}
