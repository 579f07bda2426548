// Package ratelimit spaces outbound request starts. One Pacer is shared by
// every call made through a client instance.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Pacer admits at most one request start per interval. Grants are handed out
// in the order Wait is entered; the limiter reserves the next grant time
// under its own lock, so no two callers can compute the same slot.
type Pacer struct {
	limiter *rate.Limiter
}

// New creates a pacer with the given minimum spacing between request starts.
// A non-positive interval disables pacing.
func New(interval time.Duration) *Pacer {
	if interval <= 0 {
		return &Pacer{limiter: rate.NewLimiter(rate.Inf, 1)}
	}

	return &Pacer{limiter: rate.NewLimiter(rate.Every(interval), 1)}
}

// Wait blocks until the caller's slot arrives. It only fails when the
// context is canceled or its deadline would pass before the slot.
func (p *Pacer) Wait(ctx context.Context) error {
	err := p.limiter.Wait(ctx)
	if err != nil {
		return fmt.Errorf("waiting for request slot: %w", err)
	}

	return nil
}
