// Package metrics provides Prometheus instrumentation for caches.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/kolobok-kelbek/cachestore"
	"github.com/kolobok-kelbek/cachestore/internal/absent"
)

// Metrics holds the Prometheus collectors for one cache.
type Metrics struct {
	Puts      prometheus.Counter
	Hits      prometheus.Counter
	Misses    prometheus.Counter
	Evictions prometheus.Counter
	Entries   prometheus.Gauge
}

// NewMetrics creates and registers cache metrics under namespace.
// A nil registerer leaves the collectors unregistered.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Puts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "puts_total",
			Help:      "Total number of accepted puts",
		}),
		Hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total number of lookups that found a resident key",
		}),
		Misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total number of lookups that found nothing",
		}),
		Evictions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Total number of entries discarded by the eviction policy",
		}),
		Entries: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "entries",
			Help:      "Current number of resident entries",
		}),
	}
}

// ObserveEvictions returns an eviction callback that counts evictions.
func ObserveEvictions[K comparable, V any](m *Metrics) cachestore.EvictFunc[K, V] {
	return func(K, V) {
		m.Evictions.Inc()
	}
}

// Instrumented wraps a cache and records every call on Metrics.
type Instrumented[K comparable, V any] struct {
	cache   cachestore.Cache[K, V]
	metrics *Metrics
}

var _ cachestore.Cache[string, any] = (*Instrumented[string, any])(nil)

func Instrument[K comparable, V any](cache cachestore.Cache[K, V], m *Metrics) *Instrumented[K, V] {
	return &Instrumented[K, V]{
		cache:   cache,
		metrics: m,
	}
}

func (i *Instrumented[K, V]) Put(key K, value V) {
	i.cache.Put(key, value)
	if !absent.Is(key) && !absent.Is(value) {
		i.metrics.Puts.Inc()
	}
	i.metrics.Entries.Set(float64(i.cache.Len()))
}

func (i *Instrumented[K, V]) Get(key K) (V, bool) {
	value, found := i.cache.Get(key)
	if found {
		i.metrics.Hits.Inc()
	} else {
		i.metrics.Misses.Inc()
	}
	return value, found
}

func (i *Instrumented[K, V]) GetAll() map[K]V {
	return i.cache.GetAll()
}

func (i *Instrumented[K, V]) Clear() {
	i.cache.Clear()
	i.metrics.Entries.Set(0)
}

func (i *Instrumented[K, V]) Len() int {
	return i.cache.Len()
}

// Unwrap returns the underlying cache.
func (i *Instrumented[K, V]) Unwrap() cachestore.Cache[K, V] {
	return i.cache
}
