package remote

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/iho/txdash/internal/domain"
)

// retrier re-runs idempotent calls that failed in transport with
// exponential backoff.
type retrier struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
	logger          zerolog.Logger
	onRetry         func(op string)
}

func newRetrier(maxRetries int, logger zerolog.Logger) *retrier {
	return &retrier{
		maxRetries:      maxRetries,
		initialInterval: 100 * time.Millisecond,
		maxInterval:     1 * time.Second,
		maxElapsedTime:  5 * time.Second,
		logger:          logger,
		onRetry:         func(string) {},
	}
}

// Retry executes operation until it succeeds, fails permanently or the
// retry budget is spent.
func (r *retrier) Retry(ctx context.Context, op string, operation func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.initialInterval
	b.MaxInterval = r.maxInterval
	b.MaxElapsedTime = r.maxElapsedTime

	retryCount := 0

	return backoff.Retry(func() error {
		err := operation()
		if err == nil {
			return nil
		}

		if !isRetryableError(ctx, err) {
			return backoff.Permanent(err)
		}

		retryCount++
		if retryCount > r.maxRetries {
			return backoff.Permanent(err)
		}

		r.logger.Warn().Err(err).
			Str("operation", op).
			Int("retry", retryCount).
			Msg("transaction service unavailable, retrying")
		r.onRetry(op)

		return err
	}, backoff.WithContext(b, ctx))
}

// isRetryableError reports whether err is a transport failure worth another
// attempt. Rejections and cancelled contexts are final.
func isRetryableError(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return errors.Is(err, domain.ErrTransport)
}
