package lru

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolobok-kelbek/cachestore"
)

func TestNewCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		wantErr  bool
	}{
		{
			name:     "valid capacity",
			capacity: 5,
			wantErr:  false,
		},
		{
			name:     "zero capacity",
			capacity: 0,
			wantErr:  true,
		},
		{
			name:     "negative capacity",
			capacity: -1,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache, err := NewCache[string, int](tt.capacity)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewCache() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && cache == nil {
				t.Error("NewCache() returned nil cache without error")
			}
		})
	}
}

func TestCache_Put(t *testing.T) {
	var evicted []string
	cache, _ := NewCache(2, cachestore.WithOnEvict(func(k string, _ int) {
		evicted = append(evicted, k)
	}))

	tests := []struct {
		name        string
		key         string
		value       int
		wantEvicted []string
	}{
		{
			name:        "add first item",
			key:         "key1",
			value:       1,
			wantEvicted: nil,
		},
		{
			name:        "add second item",
			key:         "key2",
			value:       2,
			wantEvicted: nil,
		},
		{
			name:        "add third item (causes eviction)",
			key:         "key3",
			value:       3,
			wantEvicted: []string{"key1"},
		},
		{
			name:        "rewrite existing item",
			key:         "key2",
			value:       22,
			wantEvicted: []string{"key1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache.Put(tt.key, tt.value)
			assert.Equal(t, tt.wantEvicted, evicted)

			value, found := cache.Get(tt.key)
			assert.True(t, found)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestCache_Get(t *testing.T) {
	cache, _ := NewCache[string, int](2)
	cache.Put("key1", 1)
	cache.Put("key2", 2)

	tests := []struct {
		name      string
		key       string
		wantValue int
		wantFound bool
	}{
		{
			name:      "get existing item",
			key:       "key1",
			wantValue: 1,
			wantFound: true,
		},
		{
			name:      "get non-existing item",
			key:       "key3",
			wantValue: 0,
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, found := cache.Get(tt.key)
			if found != tt.wantFound {
				t.Errorf("Get() found = %v, want %v", found, tt.wantFound)
			}
			if value != tt.wantValue {
				t.Errorf("Get() value = %v, want %v", value, tt.wantValue)
			}
		})
	}
}

func TestCache_LRUBehavior(t *testing.T) {
	cache, _ := NewCache[string, int](2)

	cache.Put("key1", 1)
	cache.Put("key2", 2)

	// key1 becomes most recently used
	cache.Get("key1")

	cache.Put("key3", 3)

	if _, found := cache.Get("key2"); found {
		t.Error("key2 should have been evicted")
	}
	if _, found := cache.Get("key1"); !found {
		t.Error("key1 should still be present")
	}
	if _, found := cache.Get("key3"); !found {
		t.Error("key3 should be present")
	}
}

func TestCache_Keys(t *testing.T) {
	cache, _ := NewCache[string, int](3)
	cache.Put("a", 1)
	cache.Put("b", 2)
	cache.Put("c", 3)
	cache.Get("a")
	cache.Put("b", 20)

	assert.Equal(t, []string{"c", "a", "b"}, cache.Keys())
}

func TestCache_AbsentAndClear(t *testing.T) {
	cache, err := NewCache[string, map[string]int](2)
	require.NoError(t, err)

	cache.Put("a", nil)
	assert.Equal(t, 0, cache.Len())

	cache.Put("a", map[string]int{"x": 1})
	cache.Clear()
	assert.Equal(t, 0, cache.Len())
	assert.Empty(t, cache.GetAll())
}

func TestCache_Concurrent(t *testing.T) {
	cache, _ := NewCache[int, int](100)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			cache.Put(i, i)
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			cache.Get(i)
		}
	}()

	wg.Wait()
	assert.Equal(t, 100, cache.Len())
}
