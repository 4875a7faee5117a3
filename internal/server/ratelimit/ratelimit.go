// Package ratelimit provides per-client request rate limiting using token
// buckets.
package ratelimit

import (
	"sync"
	"time"
)

// tokenBucket is a token bucket limiter for one client/endpoint pair.
// Tokens refill at a steady rate up to the burst capacity.
type tokenBucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	lastUsed   time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	now := time.Now()
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: now,
		lastUsed:   now,
	}
}

// refill adds tokens for the elapsed time. Caller must hold the mutex.
func (b *tokenBucket) refill(now time.Time) {
	elapsed := now.Sub(b.lastRefill)
	b.tokens = min(float64(b.capacity), b.tokens+elapsed.Seconds()*b.refillRate)
	b.lastRefill = now
}

// take consumes one token if available.
func (b *tokenBucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refill(now)
	b.lastUsed = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		return true
	}
	return false
}

// status reports remaining tokens and when the bucket refills completely.
func (b *tokenBucket) status() (remaining int, resetTime time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refill(now)

	remaining = int(b.tokens)
	if b.tokens < float64(b.capacity) {
		secondsUntilFull := (float64(b.capacity) - b.tokens) / b.refillRate
		resetTime = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	} else {
		resetTime = now
	}
	return remaining, resetTime
}

func (b *tokenBucket) idleSince(cutoff time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastUsed.Before(cutoff)
}

// Info contains information about rate limit status for response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages rate limiting for multiple clients.
type Limiter struct {
	buckets map[string]*tokenBucket
	mu      sync.RWMutex
	config  *Config
	stop    chan struct{}
	done    chan struct{}
}

// NewLimiter creates a limiter and starts its background cleanup of idle
// buckets.
func NewLimiter(config *Config) *Limiter {
	l := &Limiter{
		buckets: make(map[string]*tokenBucket),
		config:  config,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

// Allow checks whether a request from clientID to path/method may proceed.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	for _, ip := range l.config.Whitelist {
		if ip == clientID {
			return true, Info{Allowed: true}
		}
	}
	for _, ip := range l.config.Blacklist {
		if ip == clientID {
			return false, Info{Allowed: false, RetryAfter: l.config.DefaultWindow}
		}
	}

	limit, window, burst := l.config.DefaultLimit, l.config.DefaultWindow, l.config.DefaultLimit
	key := clientID
	if endpoint := MatchEndpoint(path, method, l.config.EndpointConfigs); endpoint != nil {
		if endpoint.Limit == 0 {
			// Unlimited endpoint (health check).
			return true, Info{Allowed: true}
		}
		limit, window, burst = endpoint.Limit, endpoint.Window, endpoint.Burst
		if burst == 0 {
			burst = endpoint.Limit
		}
		key = clientID + "|" + method + "|" + endpoint.Path
	}

	bucket := l.bucket(key, burst, float64(limit)/window.Seconds())
	allowed := bucket.take()
	remaining, resetTime := bucket.status()

	info := Info{
		Allowed:   allowed,
		Limit:     limit,
		Remaining: remaining,
		ResetTime: resetTime,
	}
	if !allowed {
		info.RetryAfter = time.Until(resetTime)
		if info.RetryAfter < 0 {
			info.RetryAfter = 0
		}
	}
	return allowed, info
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	close(l.stop)
	<-l.done
}

func (l *Limiter) bucket(key string, capacity int, refillRate float64) *tokenBucket {
	l.mu.RLock()
	bucket, ok := l.buckets[key]
	l.mu.RUnlock()
	if ok {
		return bucket
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if bucket, ok := l.buckets[key]; ok {
		return bucket
	}
	bucket = newTokenBucket(capacity, refillRate)
	l.buckets[key] = bucket
	return bucket
}

// cleanupLoop drops buckets idle for longer than the cleanup interval so
// the bucket map does not grow without bound.
func (l *Limiter) cleanupLoop() {
	defer close(l.done)

	interval := l.config.CleanupInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-interval)
			l.mu.Lock()
			for key, bucket := range l.buckets {
				if bucket.idleSince(cutoff) {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		}
	}
}
