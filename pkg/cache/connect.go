package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Errors returned when opening a remote backend.
var (
	// ErrUnreachable is returned when a backend did not answer its ping.
	ErrUnreachable = errors.New("cache backend unreachable")

	// ErrInvalidURL is returned when a backend connection string cannot be parsed.
	ErrInvalidURL = errors.New("invalid cache url")
)

// Backoff controls how often a remote backend is pinged before giving up.
// The delay doubles after every failed attempt.
type Backoff struct {
	Attempts int
	Delay    time.Duration
}

// DefaultBackoff pings three times, waiting one and then two seconds.
var DefaultBackoff = Backoff{Attempts: 3, Delay: time.Second}

// Connect calls ping until it succeeds. Failures are wrapped in
// [ErrUnreachable] naming the backend; the last one is returned once the
// attempts are used up.
func (b Backoff) Connect(ctx context.Context, backend string, ping func(context.Context) error) error {
	delay := b.Delay
	for attempt := 1; ; attempt++ {
		err := ping(ctx)
		if err == nil {
			return nil
		}
		if attempt >= b.Attempts {
			return fmt.Errorf("%w: %s after %d attempts: %v", ErrUnreachable, backend, attempt, err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
}
