// Package retry wraps a single fetch attempt with bounded retry and
// exponential backoff. Only errors classified as retryable by
// internal/errors get another attempt; everything else returns at once.
package retry

import (
	"context"
	stderrors "errors"
	"math/rand"
	"time"

	"internhunt/internal/errors"
)

type Config struct {
	// MaxAttempts is the total attempt budget, first try included.
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		BaseDelay:   time.Second,
		MaxDelay:    15 * time.Second,
	}
}

// retryAfterHinter lets an error (e.g. a 429 response) override the
// computed backoff with the delay the server asked for.
type retryAfterHinter interface {
	RetryAfterHint() time.Duration
}

// Do runs attempt until it succeeds, returns a non-retryable error, or the
// attempt budget is spent. After exhaustion the last error is surfaced.
func Do[T any](ctx context.Context, cfg Config, attempt func(context.Context) (T, error)) (T, error) {
	var zero T
	if cfg.MaxAttempts <= 0 {
		cfg = DefaultConfig()
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = time.Second
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = 15 * time.Second
	}

	var lastErr error
	for n := 1; n <= cfg.MaxAttempts; n++ {
		out, err := attempt(ctx)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !errors.Retryable(err) || n == cfg.MaxAttempts {
			break
		}
		if err := sleep(ctx, backoff(cfg, n, err)); err != nil {
			return zero, err
		}
	}
	return zero, lastErr
}

func backoff(cfg Config, attempt int, err error) time.Duration {
	var h retryAfterHinter
	if stderrors.As(err, &h) {
		if d := h.RetryAfterHint(); d > 0 {
			return d
		}
	}

	d := cfg.BaseDelay * time.Duration(1<<(attempt-1))
	if d > cfg.MaxDelay {
		d = cfg.MaxDelay
	}
	// jitter 0..400ms
	return d + time.Duration(rand.Intn(400))*time.Millisecond
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
