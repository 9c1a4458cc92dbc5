// Package ratelimit enforces a minimum interval between requests to the
// same origin. Sources on different origins never wait on each other.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter gates request starts per origin key. Safe for concurrent use;
// acquisitions under the same key are serialized, so true request
// concurrency per origin is 1 no matter how many goroutines fetch.
type Limiter struct {
	interval time.Duration

	mu      sync.Mutex
	origins map[string]*originGate
}

type originGate struct {
	mu   sync.Mutex
	last time.Time
}

func New(interval time.Duration) *Limiter {
	return &Limiter{
		interval: interval,
		origins:  make(map[string]*originGate),
	}
}

// Acquire blocks until at least the configured interval has elapsed since
// the last granted acquisition for originKey, or until ctx is done. A
// cancelled wait does not consume the slot.
func (l *Limiter) Acquire(ctx context.Context, originKey string) error {
	g := l.gate(originKey)

	g.mu.Lock()
	defer g.mu.Unlock()

	if wait := l.interval - time.Since(g.last); wait > 0 {
		t := time.NewTimer(wait)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}

	g.last = time.Now()
	return nil
}

func (l *Limiter) gate(key string) *originGate {
	l.mu.Lock()
	defer l.mu.Unlock()
	g, ok := l.origins[key]
	if !ok {
		g = &originGate{}
		l.origins[key] = g
	}
	return g
}
