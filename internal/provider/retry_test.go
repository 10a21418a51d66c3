package provider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vocamate/vocamate/internal/provider"
)

func TestRetryPolicy_ExhaustsBudgetOnRateLimit(t *testing.T) {
	rp := provider.RetryPolicy{MaxRetries: 3, Base: time.Millisecond}

	attempts := 0
	err := rp.Do(context.Background(), func() error {
		attempts++
		return provider.Errorf(provider.KindRateLimited, "quota exceeded")
	})

	if attempts != 4 {
		t.Errorf("expected 4 attempts (1 + 3 retries), got %d", attempts)
	}
	if provider.KindOf(err) != provider.KindRateLimited {
		t.Errorf("expected rate-limited error, got %v", err)
	}
}

func TestRetryPolicy_NoRetryOnOtherKinds(t *testing.T) {
	rp := provider.RetryPolicy{MaxRetries: 3, Base: time.Millisecond}

	attempts := 0
	err := rp.Do(context.Background(), func() error {
		attempts++
		return provider.Errorf(provider.KindUpstream, "bad gateway")
	})

	if attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", attempts)
	}
	if provider.KindOf(err) != provider.KindUpstream {
		t.Errorf("expected upstream error, got %v", err)
	}
}

func TestRetryPolicy_StopsRetryingOnSuccess(t *testing.T) {
	rp := provider.RetryPolicy{MaxRetries: 3, Base: time.Millisecond}

	attempts := 0
	err := rp.Do(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return provider.Errorf(provider.KindRateLimited, "quota exceeded")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("expected 3 attempts, got %d", attempts)
	}
}

func TestRetryPolicy_BackoffDoubles(t *testing.T) {
	rp := provider.RetryPolicy{MaxRetries: 2, Base: 20 * time.Millisecond}

	start := time.Now()
	rp.Do(context.Background(), func() error {
		return provider.Errorf(provider.KindRateLimited, "quota exceeded")
	})
	elapsed := time.Since(start)

	// Delays are Base and 2*Base: 60ms total.
	if elapsed < 60*time.Millisecond {
		t.Errorf("expected at least 60ms of backoff, got %v", elapsed)
	}
	if elapsed > 300*time.Millisecond {
		t.Errorf("backoff took too long: %v", elapsed)
	}
}

func TestRetryPolicy_ContextCancelDuringBackoff(t *testing.T) {
	rp := provider.RetryPolicy{MaxRetries: 3, Base: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := rp.Do(ctx, func() error {
		return provider.Errorf(provider.KindRateLimited, "quota exceeded")
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
