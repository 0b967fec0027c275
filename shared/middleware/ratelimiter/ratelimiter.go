package ratelimiter

import (
	"sync"
	"time"
)

// bucket is a token bucket for a single identity.
type bucket struct {
	tokens     float64
	capacity   float64
	rate       float64
	lastRefill time.Time
	mu         sync.Mutex
	identity   string
	timer      *time.Timer
	parent     *Limiter
}

// Limiter manages per-identity token buckets. Idle buckets expire after
// expiration to keep the map bounded.
type Limiter struct {
	buckets    map[string]*bucket
	mu         sync.RWMutex
	rate       float64
	capacity   float64
	expiration time.Duration
}

// New creates a limiter refilling at rate tokens/sec with the given burst
// capacity.
func New(rate, capacity float64, expiration time.Duration) *Limiter {
	return &Limiter{
		buckets:    make(map[string]*bucket),
		rate:       rate,
		capacity:   capacity,
		expiration: expiration,
	}
}

func (l *Limiter) cleanup(identity string) {
	l.mu.Lock()
	delete(l.buckets, identity)
	l.mu.Unlock()
}

// resetTimer takes b.mu: concurrent requests for the same identity reach
// here under the limiter's read lock only.
func (b *bucket) resetTimer() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.parent.expiration, func() {
		b.parent.cleanup(b.identity)
	})
}

func (l *Limiter) getBucket(identity string) *bucket {
	l.mu.RLock()
	b, exists := l.buckets[identity]
	l.mu.RUnlock()

	if exists {
		b.resetTimer()
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	b, exists = l.buckets[identity]
	if exists {
		b.resetTimer()
		return b
	}

	b = &bucket{
		tokens:     l.capacity,
		capacity:   l.capacity,
		rate:       l.rate,
		lastRefill: time.Now(),
		identity:   identity,
		parent:     l,
	}
	l.buckets[identity] = b
	b.resetTimer()

	return b
}

func (b *bucket) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()

	b.tokens += elapsed * b.rate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Allow reports whether a request for identity fits in its bucket.
func (l *Limiter) Allow(identity string) bool {
	return l.getBucket(identity).allow()
}

// Stop cancels all expiry timers.
func (l *Limiter) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, b := range l.buckets {
		b.mu.Lock()
		if b.timer != nil {
			b.timer.Stop()
		}
		b.mu.Unlock()
	}
}
