package provider

import (
	"context"
	"time"
)

// RetryPolicy re-runs rate-limited calls with exponential backoff.
// The attempt counter is local to each Do call, so concurrent requests
// never share a retry budget.
type RetryPolicy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int
	// Base is the first delay; each retry doubles it (Base, 2*Base, ...).
	Base time.Duration
}

// DefaultRetryPolicy retries rate-limited calls 3 times with delays of
// 2s, 4s and 8s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 3, Base: 2 * time.Second}
}

// Do runs fn, retrying while it fails with KindRateLimited and the
// budget allows. Any other failure is returned immediately. The wait
// honors ctx cancellation.
func (rp RetryPolicy) Do(ctx context.Context, fn func() error) error {
	for attempt := 0; ; attempt++ {
		err := fn()
		if err == nil || KindOf(err) != KindRateLimited || attempt >= rp.MaxRetries {
			return err
		}

		delay := rp.Base << attempt
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
