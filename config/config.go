// Package config picks a cache policy and capacity from viper settings and
// builds the matching cache.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/kolobok-kelbek/cachestore"
	"github.com/kolobok-kelbek/cachestore/fifo"
	"github.com/kolobok-kelbek/cachestore/lfu"
	"github.com/kolobok-kelbek/cachestore/lifo"
	"github.com/kolobok-kelbek/cachestore/lru"
	"github.com/kolobok-kelbek/cachestore/unbounded"
)

// Policy names an eviction policy.
type Policy string

const (
	Unbounded Policy = "unbounded"
	FIFO      Policy = "fifo"
	LIFO      Policy = "lifo"
	LRU       Policy = "lru"
	LFU       Policy = "lfu"
)

// Normalize lowercases p and trims surrounding space, so "FIFO " and "fifo"
// name the same policy.
func (p Policy) Normalize() Policy {
	return Policy(strings.ToLower(strings.TrimSpace(string(p))))
}

// EnvPrefix is the prefix for environment overrides, e.g. CACHESTORE_POLICY.
const EnvPrefix = "CACHESTORE"

var ErrUnknownPolicy = errors.New("unknown cache policy")

// Config selects a policy and, for bounded policies, its capacity.
type Config struct {
	Policy   Policy `mapstructure:"policy"`
	Capacity int    `mapstructure:"capacity"`
}

func Default() Config {
	return Config{
		Policy:   FIFO,
		Capacity: cachestore.DefaultCapacity,
	}
}

// Load reads policy and capacity from v, falling back to Default for
// anything unset. Environment variables with EnvPrefix override values read
// from a config file but not values set with v.Set.
//
// v is configured in place: Load registers defaults for "policy" and
// "capacity", sets the env prefix and key replacer, and enables
// AutomaticEnv on it. Pass nil to have Load use a fresh instance.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	def := Default()
	v.SetDefault("policy", string(def.Policy))
	v.SetDefault("capacity", def.Capacity)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode cache config: %w", err)
	}
	cfg.Policy = cfg.Policy.Normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the policy name and, for bounded policies, the capacity.
// Policy names are compared after Normalize.
func (c Config) Validate() error {
	c.Policy = c.Policy.Normalize()
	switch c.Policy {
	case Unbounded:
		return nil
	case FIFO, LIFO, LRU, LFU:
		if c.Capacity <= 0 {
			return fmt.Errorf("%s capacity %d: %w", c.Policy, c.Capacity, cachestore.ErrInvalidCapacity)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPolicy, c.Policy)
	}
}

// Build constructs the cache described by cfg. Options are ignored by the
// unbounded policy since it never evicts.
func Build[K comparable, V any](cfg Config, opts ...cachestore.Option[K, V]) (cachestore.Cache[K, V], error) {
	cfg.Policy = cfg.Policy.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		cache cachestore.Cache[K, V]
		err   error
	)
	switch cfg.Policy {
	case Unbounded:
		return unbounded.New[K, V](), nil
	case FIFO:
		cache, err = fifo.NewCache(cfg.Capacity, opts...)
	case LIFO:
		cache, err = lifo.NewCache(cfg.Capacity, opts...)
	case LRU:
		cache, err = lru.NewCache(cfg.Capacity, opts...)
	case LFU:
		cache, err = lfu.NewCache(cfg.Capacity, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build %s cache: %w", cfg.Policy, err)
	}
	return cache, nil
}
