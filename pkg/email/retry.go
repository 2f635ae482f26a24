package email

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"newsletter/pkg/logger"
	"newsletter/pkg/serrors"
)

// RetryOptions configure the retry policy applied by WithRetry.
type RetryOptions struct {
	// MaxRetries is the number of additional attempts after the first failed
	// send. Zero disables retrying.
	MaxRetries uint64
	// InitialInterval is the first backoff delay; subsequent delays grow
	// exponentially with jitter.
	InitialInterval time.Duration
	// MaxInterval caps the backoff delay between attempts.
	MaxInterval time.Duration
}

// retryClient decorates a Client with bounded retries using exponential
// backoff and jitter. Permanent provider rejections are never retried.
type retryClient struct {
	inner Client
	opts  RetryOptions
}

// Send attempts the inner send, retrying transient failures up to MaxRetries
// times. A rejection (serrors.ErrRejected) short-circuits immediately.
// Exhausting the budget surfaces the last transient error.
func (c *retryClient) Send(ctx context.Context, req SendRequest) error {
	bo := backoff.NewExponentialBackOff()
	if c.opts.InitialInterval > 0 {
		bo.InitialInterval = c.opts.InitialInterval
	}
	if c.opts.MaxInterval > 0 {
		bo.MaxInterval = c.opts.MaxInterval
	}

	attempt := 0
	operation := func() error {
		attempt++
		err := c.inner.Send(ctx, req)
		if err == nil {
			return nil
		}
		if errors.Is(err, serrors.ErrRejected) {
			return backoff.Permanent(err)
		}

		logger.Warn(ctx, "transient email send failure, will retry",
			zap.Int("attempt", attempt),
			zap.String("to", req.To.String()),
			zap.Error(err))

		return err
	}

	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(bo, c.opts.MaxRetries), ctx))
	if err != nil {
		return err //nolint: wrapcheck
	}

	return nil
}

// WithRetry wraps a Client with the given retry policy.
func WithRetry(inner Client, opts RetryOptions) Client {
	return &retryClient{inner: inner, opts: opts}
}
