// Package cache holds small in-memory caches shared by the native layers.
package cache

import (
	"sync"
)

// Cache is a concurrency-safe string-keyed store.
type Cache[V any] interface {
	// Get retrieves a value from the cache.
	Get(key string) (V, bool)
	// Put stores a value in the cache.
	Put(key string, v V)
	// Delete drops key if present.
	Delete(key string)
	// Size returns the number of items in the cache.
	Size() int
}

// MapCache is a map-backed Cache. Values are stored as given; callers
// must not mutate a value after Put or after Get.
type MapCache[V any] struct {
	data map[string]V
	mu   sync.RWMutex
}

func NewMapCache[V any]() *MapCache[V] {
	return &MapCache[V]{
		data: make(map[string]V),
	}
}

func (c *MapCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *MapCache[V]) Put(key string, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = v
}

func (c *MapCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

func (c *MapCache[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
