package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config holds per-client request limits.
type Config struct {
	// Rate is the sustained number of requests per second per client.
	// Zero or less disables limiting.
	Rate  float64 `mapstructure:"rate"`
	Burst int     `mapstructure:"burst"`
	// IdleTTL is how long an unused client bucket is kept.
	IdleTTL time.Duration `mapstructure:"idle_ttl"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		Rate:    10,
		Burst:   20,
		IdleTTL: 10 * time.Minute,
	}
}

// Limiter keeps one token bucket per key.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*entry
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewLimiter creates a new rate limiter and starts its cleanup loop.
// Stop must be called to release it.
func NewLimiter(c Config) *Limiter {
	if c.Burst <= 0 {
		c.Burst = 1
	}
	if c.IdleTTL <= 0 {
		c.IdleTTL = 10 * time.Minute
	}
	limit := rate.Limit(c.Rate)
	if c.Rate <= 0 {
		limit = rate.Inf
	}
	l := &Limiter{
		limiters: make(map[string]*entry),
		limit:    limit,
		burst:    c.Burst,
		ttl:      c.IdleTTL,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go l.cleanup()
	return l
}

// Allow reports whether a request for the given key may proceed now.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	now := l.now()
	e, ok := l.limiters[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[key] = e
	}
	e.lastSeen = now
	l.mu.Unlock()

	return e.limiter.AllowN(now, 1)
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// Stop ends the cleanup loop.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// cleanup periodically removes idle buckets
func (l *Limiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.evict()
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) evict() {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	for key, e := range l.limiters {
		if now.Sub(e.lastSeen) > l.ttl {
			delete(l.limiters, key)
		}
	}
}
