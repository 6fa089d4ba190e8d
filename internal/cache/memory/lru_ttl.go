// Package memory provides a process-local LRU cache with per-entry TTL.
// Entries are transient: nothing here survives a restart.
package memory

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache is a threadsafe LRU cache with a fixed TTL for all entries.
type Cache[K comparable, V any] struct {
	lru *expirable.LRU[K, V]
}

// New creates a cache holding at most maxEntries values for at most ttl.
// A non-positive size disables caching: Get always misses and Set drops.
func New[K comparable, V any](maxEntries int, ttl time.Duration) *Cache[K, V] {
	if maxEntries <= 0 {
		return &Cache[K, V]{}
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Cache[K, V]{lru: expirable.NewLRU[K, V](maxEntries, nil, ttl)}
}

// Get returns the cached value for key, if present and unexpired.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V
	if c == nil || c.lru == nil {
		return zero, false
	}
	return c.lru.Get(key)
}

// Set stores value under key, evicting the least recently used entry if full.
func (c *Cache[K, V]) Set(key K, value V) {
	if c == nil || c.lru == nil {
		return
	}
	c.lru.Add(key, value)
}

// Clear drops all entries.
func (c *Cache[K, V]) Clear() {
	if c == nil || c.lru == nil {
		return
	}
	c.lru.Purge()
}
