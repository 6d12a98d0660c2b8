package ratelimit

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter throttles upstream API calls and keeps usage counters.
type Limiter struct {
	lim *rate.Limiter

	mu      sync.Mutex
	granted int
	denied  int
}

// New creates a limiter allowing perSecond calls with the given burst.
// perSecond <= 0 means unlimited.
func New(perSecond float64, burst int) *Limiter {
	if perSecond <= 0 {
		return &Limiter{lim: rate.NewLimiter(rate.Inf, 0)}
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{lim: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Wait blocks until a call is allowed or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := l.lim.Wait(ctx); err != nil {
		l.mu.Lock()
		l.denied++
		l.mu.Unlock()
		return fmt.Errorf("rate limit wait: %w", err)
	}

	l.mu.Lock()
	l.granted++
	l.mu.Unlock()
	return nil
}

// Unlimited reports whether the limiter never blocks.
func (l *Limiter) Unlimited() bool {
	return l.lim.Limit() == rate.Inf
}

// Stats returns granted and denied counts.
func (l *Limiter) Stats() map[string]int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return map[string]int{
		"granted": l.granted,
		"denied":  l.denied,
	}
}
