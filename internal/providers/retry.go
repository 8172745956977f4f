package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/roto-auction-service/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingNewsProvider wraps a NewsProvider with retry/backoff behavior.
type retryingNewsProvider struct {
	inner       NewsProvider
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingNewsProvider wraps the given provider with retries. If
// maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingNewsProvider(inner NewsProvider, logger *slog.Logger, maxAttempts int, backoff time.Duration) NewsProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingNewsProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingNewsProvider) PlayerNews(ctx context.Context, name string) (PlayerNews, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		news, err := r.inner.PlayerNews(ctx, name)
		if err == nil {
			return news, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "news lookup retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return PlayerNews{}, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "news lookup failed", "attempts", r.maxAttempts, "err", lastErr)
	return PlayerNews{}, lastErr
}

func (r *retryingNewsProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
