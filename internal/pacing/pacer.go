package pacing

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Pacer is called once after every registry lookup, successful or not, and
// blocks until the next lookup may start.
type Pacer interface {
	Pace(ctx context.Context) error
}

// Sleep waits a fixed interval after every lookup. It never waits less than
// Interval no matter how long the lookup took.
type Sleep struct {
	Interval time.Duration
}

// Pace blocks for the configured interval.
func (s Sleep) Pace(ctx context.Context) error {
	return SleepWithContext(ctx, s.Interval)
}

// Limiter spaces lookups with a single-token bucket so consecutive Pace calls
// return at least one interval apart. Time spent inside the lookup counts
// toward the interval: after a lookup slower than the interval, Pace returns
// at once. Use Sleep when every lookup must be followed by a wait.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter returns a token-bucket pacer allowing one lookup per interval.
func NewLimiter(interval time.Duration) *Limiter {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	limiter := rate.NewLimiter(limit, 1)
	// Spend the initial token so the first Pace after the first lookup waits.
	limiter.Allow()
	return &Limiter{limiter: limiter}
}

// Pace blocks until the bucket yields the next token.
func (l *Limiter) Pace(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// None never waits. Useful for tests and local mirrors without a rate limit.
type None struct{}

// Pace returns immediately unless the context is already done.
func (None) Pace(ctx context.Context) error {
	return ctx.Err()
}

// New builds the pacer for mode ("sleep" or "token").
func New(mode string, interval time.Duration) (Pacer, error) {
	switch mode {
	case "sleep", "":
		return Sleep{Interval: interval}, nil
	case "token":
		return NewLimiter(interval), nil
	default:
		return nil, fmt.Errorf("pacing: unsupported mode %q", mode)
	}
}

// SleepWithContext blocks for the given duration, returning early if the
// context is cancelled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
