package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter spaces external calls at least interval apart. The first call
// after construction, or after an idle period of interval or more, is not delayed.
type Limiter struct {
	interval time.Duration
	limiter  *rate.Limiter

	mu   sync.RWMutex
	last time.Time
}

// New returns a Limiter enforcing interval between turn starts. A zero or
// negative interval disables waiting.
func New(interval time.Duration) *Limiter {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Limiter{
		interval: interval,
		limiter:  rate.NewLimiter(limit, 1),
	}
}

// Wait blocks until the next turn may start and records its start time.
// It only fails when ctx is done first.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	l.mu.Lock()
	l.last = time.Now()
	l.mu.Unlock()
	return nil
}

// LastCall returns the start of the most recent turn. ok is false before the first one.
func (l *Limiter) LastCall() (t time.Time, ok bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.last, !l.last.IsZero()
}

// Interval is the configured minimum spacing.
func (l *Limiter) Interval() time.Duration {
	return l.interval
}
