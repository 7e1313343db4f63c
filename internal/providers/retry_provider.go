package providers

import (
	"context"
	"log/slog"
	"time"

	"quiet-scores-service/internal/domain"
	"quiet-scores-service/internal/logging"
	"quiet-scores-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a ScoreProvider with retry/backoff behavior
// and per-attempt metrics.
type retryingProvider struct {
	inner       ScoreProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. Each
// attempt is recorded against the given provider name. If
// maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner ScoreProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) ScoreProvider {
	if name == "" {
		name = "provider"
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchScores(ctx context.Context, date string) ([]domain.GameRecord, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		records, err := r.inner.FetchScores(ctx, date)
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			return records, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "provider fetch retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "provider fetch failed", "attempts", r.maxAttempts, "err", lastErr)
	return nil, lastErr
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logging.Warn(logging.FromContext(ctx, r.logger), msg, args...)
}
