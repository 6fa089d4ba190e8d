// Package ratelimit provides per-client token bucket rate limiting for the
// generation endpoint, where every request is an expensive upstream call.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket allows a burst of requests, refilling at a steady rate.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow consumes a token if one is available.
func (tb *tokenBucket) allow() (ok bool, retryAfter time.Duration) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens = min(float64(tb.capacity), tb.tokens+elapsed.Seconds()*tb.refillRate)
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true, 0
	}

	needed := 1.0 - tb.tokens
	return false, time.Duration(needed / tb.refillRate * float64(time.Second))
}

// Config holds rate limiting configuration.
type Config struct {
	// RequestsPerMinute is the sustained rate per client. Zero disables
	// limiting entirely.
	RequestsPerMinute int
	// Burst is the bucket capacity; defaults to RequestsPerMinute when zero.
	Burst int
	// CleanupInterval controls how often idle client buckets are dropped.
	CleanupInterval time.Duration
}

// Limiter manages one token bucket per client.
type Limiter struct {
	mu         sync.Mutex
	buckets    map[string]*tokenBucket
	lastAccess map[string]time.Time
	config     Config
	stop       chan struct{}
	stopOnce   sync.Once
}

// NewLimiter creates a rate limiter and starts its idle-bucket cleanup.
func NewLimiter(config Config) *Limiter {
	if config.Burst <= 0 {
		config.Burst = config.RequestsPerMinute
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = 5 * time.Minute
	}

	l := &Limiter{
		buckets:    make(map[string]*tokenBucket),
		lastAccess: make(map[string]time.Time),
		config:     config,
		stop:       make(chan struct{}),
	}

	if config.RequestsPerMinute > 0 {
		go l.cleanupLoop()
	}
	return l
}

// Allow checks whether a request from clientID may proceed.
func (l *Limiter) Allow(clientID string) (ok bool, retryAfter time.Duration) {
	if l.config.RequestsPerMinute <= 0 {
		return true, 0
	}

	l.mu.Lock()
	bucket, exists := l.buckets[clientID]
	if !exists {
		bucket = newTokenBucket(l.config.Burst, float64(l.config.RequestsPerMinute)/60.0)
		l.buckets[clientID] = bucket
	}
	l.lastAccess[clientID] = time.Now()
	l.mu.Unlock()

	return bucket.allow()
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-2 * l.config.CleanupInterval)
			l.mu.Lock()
			for id, last := range l.lastAccess {
				if last.Before(cutoff) {
					delete(l.buckets, id)
					delete(l.lastAccess, id)
				}
			}
			l.mu.Unlock()
		}
	}
}
