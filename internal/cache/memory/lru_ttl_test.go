package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := New[string, int](4, time.Minute)

	c.Set("a", 1)
	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, got)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestCacheEvictsLRU(t *testing.T) {
	c := New[string, int](2, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	_, ok := c.Get("a")
	assert.False(t, ok, "oldest entry should be evicted")
	_, ok = c.Get("c")
	assert.True(t, ok)
}

func TestCacheExpires(t *testing.T) {
	c := New[string, int](4, 50*time.Millisecond)

	c.Set("a", 1)
	time.Sleep(120 * time.Millisecond)

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestCacheDisabled(t *testing.T) {
	c := New[string, int](0, time.Minute)

	c.Set("a", 1)
	_, ok := c.Get("a")
	assert.False(t, ok)

	// Disabled and nil caches are safe to use.
	c.Clear()
	var nilCache *Cache[string, int]
	nilCache.Set("a", 1)
	_, ok = nilCache.Get("a")
	assert.False(t, ok)
	nilCache.Clear()
}

func TestCacheClear(t *testing.T) {
	c := New[string, int](4, time.Minute)
	c.Set("a", 1)
	c.Clear()

	_, ok := c.Get("a")
	assert.False(t, ok)
}
