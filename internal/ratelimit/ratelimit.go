// Package ratelimit implements a fixed-window, in-memory request counter keyed
// by an arbitrary string (the client IP for the contact form).
//
// State lives only in process memory and is lost on restart.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Rule is the number of calls allowed per key within one window.
type Rule struct {
	Limit  int
	Window time.Duration
}

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed    bool
	Count      int
	Remaining  int
	RetryAfter time.Duration
}

type window struct {
	start time.Time
	count int
}

// Limiter is safe for concurrent use.
type Limiter struct {
	rule Rule
	now  func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

// Option customizes a Limiter.
type Option func(*Limiter)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// New creates a Limiter. Non-positive limits or windows panic.
func New(rule Rule, opts ...Option) *Limiter {
	if rule.Limit <= 0 || rule.Window <= 0 {
		panic("ratelimit: limit and window must be positive")
	}
	l := &Limiter{
		rule:    rule,
		now:     time.Now,
		windows: make(map[string]*window),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Rule returns the configured rule.
func (l *Limiter) Rule() Rule { return l.rule }

// Allow counts one call for key. Rejected calls are not counted.
func (l *Limiter) Allow(key string) Decision {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || !now.Before(w.start.Add(l.rule.Window)) {
		w = &window{start: now}
		l.windows[key] = w
	}

	if w.count >= l.rule.Limit {
		return Decision{
			Allowed:    false,
			Count:      w.count,
			Remaining:  0,
			RetryAfter: w.start.Add(l.rule.Window).Sub(now),
		}
	}

	w.count++
	return Decision{
		Allowed:   true,
		Count:     w.count,
		Remaining: l.rule.Limit - w.count,
	}
}

// Reset forgets key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	delete(l.windows, key)
	l.mu.Unlock()
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// Sweep drops windows that have expired and returns how many were removed.
func (l *Limiter) Sweep() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for k, w := range l.windows {
		if !now.Before(w.start.Add(l.rule.Window)) {
			delete(l.windows, k)
			removed++
		}
	}
	return removed
}

// Run sweeps expired windows every interval until ctx is done.
func (l *Limiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Sweep()
		}
	}
}
