// Package retry runs an operation under an explicit exponential backoff policy.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy describes how an operation is retried.
type Policy struct {
	// MaxAttempts is the total number of tries, including the first one.
	MaxAttempts int
	// BaseDelay is the wait before the second attempt. Each further wait
	// doubles, capped at MaxDelay when it is positive.
	BaseDelay time.Duration
	MaxDelay  time.Duration
	// Jitter randomises each wait by ±Jitter (0 <= Jitter < 1).
	Jitter float64
	// Retryable reports whether err is worth another attempt. A nil
	// Retryable retries every error.
	Retryable func(err error) bool
	// OnRetry, when set, is called before each wait.
	OnRetry func(err error, attempt int, wait time.Duration)
}

func (p Policy) backOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BaseDelay
	b.Multiplier = 2
	b.RandomizationFactor = p.Jitter
	b.MaxInterval = p.MaxDelay
	if b.MaxInterval <= 0 {
		b.MaxInterval = time.Duration(1<<62 - 1)
	}
	b.MaxElapsedTime = 0
	b.Reset()

	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return backoff.WithMaxRetries(b, uint64(attempts-1))
}

// Do calls op until it succeeds, returns a non-retryable error, the policy
// runs out of attempts, or ctx ends. The last error is returned unwrapped.
func Do[T any](ctx context.Context, p Policy, op func(ctx context.Context) (T, error)) (T, error) {
	attempt := 0
	operation := func() (T, error) {
		attempt++
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		if p.Retryable != nil && !p.Retryable(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}

	var notify backoff.Notify
	if p.OnRetry != nil {
		notify = func(err error, wait time.Duration) { p.OnRetry(err, attempt, wait) }
	}

	v, err := backoff.RetryNotifyWithData(operation, backoff.WithContext(p.backOff(), ctx), notify)
	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		return v, perm.Err
	}
	return v, err
}
