// Package cmap provides a thread-safe concurrent map with sharding for
// improved performance in high-concurrency scenarios. Keys are series names;
// shard selection hashes the key with xxhash.
package cmap

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

// ShardCount is the number of shards.
const ShardCount = 32

// ConcurrentMap is a "thread" safe map of type string:V. To avoid lock
// bottlenecks the map is divided into ShardCount shards.
type ConcurrentMap[V any] struct {
	shards []*Shard[V]
}

// Shard is a "thread" safe string to V map.
type Shard[V any] struct {
	sync.RWMutex // guards access to the internal map

	items map[string]V
}

// New creates a new concurrent map.
func New[V any]() *ConcurrentMap[V] {
	cm := &ConcurrentMap[V]{
		shards: make([]*Shard[V], ShardCount),
	}
	for i := range ShardCount {
		cm.shards[i] = &Shard[V]{items: make(map[string]V)}
	}

	return cm
}

func (m *ConcurrentMap[V]) getShard(key string) *Shard[V] {
	return m.shards[xxhash.Sum64String(key)%ShardCount]
}

// Set stores the given value under the specified key.
func (m *ConcurrentMap[V]) Set(key string, value V) {
	shard := m.getShard(key)
	shard.Lock()
	shard.items[key] = value
	shard.Unlock()
}

// Get retrieves the value stored under the given key.
func (m *ConcurrentMap[V]) Get(key string) (V, bool) {
	shard := m.getShard(key)
	shard.RLock()
	value, ok := shard.items[key]
	shard.RUnlock()

	return value, ok
}

// Upsert updates the value under the given key through fn, which receives
// the current value (or the zero value) and whether the key existed. The
// callback runs under the shard's write lock.
func (m *ConcurrentMap[V]) Upsert(key string, fn func(current V, ok bool) V) {
	shard := m.getShard(key)
	shard.Lock()
	current, ok := shard.items[key]
	shard.items[key] = fn(current, ok)
	shard.Unlock()
}

// Remove deletes the value stored under the given key.
func (m *ConcurrentMap[V]) Remove(key string) {
	shard := m.getShard(key)
	shard.Lock()
	delete(shard.items, key)
	shard.Unlock()
}

// Clear removes every entry from the map.
func (m *ConcurrentMap[V]) Clear() {
	for _, shard := range m.shards {
		shard.Lock()
		shard.items = make(map[string]V)
		shard.Unlock()
	}
}

// Count returns the number of entries across all shards.
func (m *ConcurrentMap[V]) Count() int {
	count := 0
	for _, shard := range m.shards {
		shard.RLock()
		count += len(shard.items)
		shard.RUnlock()
	}

	return count
}

// Items returns a snapshot copy of the whole map.
func (m *ConcurrentMap[V]) Items() map[string]V {
	items := make(map[string]V, m.Count())
	for _, shard := range m.shards {
		shard.RLock()
		for key, value := range shard.items {
			items[key] = value
		}
		shard.RUnlock()
	}

	return items
}
