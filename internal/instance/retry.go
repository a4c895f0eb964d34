package instance

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	retryInitialInterval = 5 * time.Millisecond
	retryMaxInterval     = 200 * time.Millisecond
)

// NewRetryBackOff paces the attempts of an optimistic update. Intervals are
// jittered so writers that lost the same race do not collide again.
func NewRetryBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryInitialInterval
	b.MaxInterval = retryMaxInterval
	b.RandomizationFactor = 0.5
	b.Multiplier = 2
	b.Reset()
	return b
}

// WaitRetry blocks for the next interval of b or until ctx is done.
func WaitRetry(ctx context.Context, b backoff.BackOff) error {
	t := time.NewTimer(b.NextBackOff())
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
