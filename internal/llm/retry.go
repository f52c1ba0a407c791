package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryProvider retries transient failures with capped exponential backoff.
type retryProvider struct {
	Provider
	cfg RetryConfig
}

// WithRetry wraps p with retries. Rate limits and outages are retried up to
// cfg.MaxAttempts; a schema violation is retried once; truncation,
// rejections and context errors are returned immediately.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts <= 1 {
		return p
	}
	return &retryProvider{Provider: p, cfg: cfg}
}

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var err error
	retriedInvalid := false

	for attempt := range r.cfg.MaxAttempts {
		if attempt > 0 {
			if werr := sleep(ctx, r.delay(attempt-1, err)); werr != nil {
				return nil, werr
			}
		}

		var resp *Response
		resp, err = r.Provider.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !retryable(err, &retriedInvalid) {
			return nil, err
		}
	}
	return nil, err
}

func retryable(err error, retriedInvalid *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var e *Error
	if !errors.As(err, &e) {
		// Unclassified errors are transport failures.
		return true
	}
	switch e.Kind {
	case KindUnavailable, KindRateLimited:
		return true
	case KindInvalidResponse:
		if *retriedInvalid {
			return false
		}
		*retriedInvalid = true
		return true
	default:
		return false
	}
}

// delay is the wait before retry number n (zero based).
func (r *retryProvider) delay(n int, err error) time.Duration {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindRateLimited && e.RetryAfter > 0 {
		return e.RetryAfter
	}

	wait := min(float64(r.cfg.InitialWait)*math.Pow(r.cfg.Multiplier, float64(n)), float64(r.cfg.MaxWait))
	// ±20% jitter
	wait *= 0.8 + 0.4*rand.Float64()
	return time.Duration(wait)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
