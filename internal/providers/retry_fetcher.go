package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"gamerstore-service/internal/domain/games"
	"gamerstore-service/internal/metrics"
)

const (
	defaultMaxAttempts = 3
	defaultBackoff     = 1 * time.Second
)

type backoffFunc func(attempt int) time.Duration

// retryingFetcher wraps a Fetcher with a bounded retry loop. Only failures
// IsRetryable accepts are retried; everything else propagates unchanged on
// the first attempt.
type retryingFetcher struct {
	inner       Fetcher
	logger      *slog.Logger
	metrics     *metrics.Recorder
	source      string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingFetcher wraps the given fetcher with retries. If maxAttempts or
// backoff are <= 0, defaults are used (3 total attempts, fixed 1s spacing).
func NewRetryingFetcher(inner Fetcher, logger *slog.Logger, recorder *metrics.Recorder, source string, maxAttempts int, backoff time.Duration) RawFetcher {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingFetcher{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		source:      source,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return backoff
		},
	}
}

func (r *retryingFetcher) FetchGames(ctx context.Context, q Query) ([]games.Game, error) {
	var records []games.Game
	err := r.withRetries(ctx, func(c context.Context) error {
		var fetchErr error
		records, fetchErr = r.inner.FetchGames(c, q)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// FetchRawGames retries the inner raw fetch under the same policy. An inner
// fetcher without a raw path falls back to marshaling the mapped records.
func (r *retryingFetcher) FetchRawGames(ctx context.Context, q Query) ([]byte, error) {
	raw, ok := r.inner.(RawFetcher)
	if !ok {
		records, err := r.FetchGames(ctx, q)
		if err != nil {
			return nil, err
		}
		return json.Marshal(records)
	}

	var body []byte
	err := r.withRetries(ctx, func(c context.Context) error {
		var fetchErr error
		body, fetchErr = raw.FetchRawGames(c, q)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (r *retryingFetcher) withRetries(ctx context.Context, fetch func(context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		err := fetch(ctx)
		if r.metrics != nil {
			r.metrics.RecordFetchAttempt(r.source, time.Since(start), err)
		}
		if err == nil {
			return nil
		}
		lastErr = err

		if !IsRetryable(err) {
			logWithSource(ctx, r.logger, slog.LevelWarn, r.source, "fetch failed, not retryable", "err", err)
			return err
		}
		if attempt == r.maxAttempts {
			break
		}

		logWithSource(ctx, r.logger, slog.LevelWarn, r.source, "fetch retry",
			"attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}

	logWithSource(ctx, r.logger, slog.LevelWarn, r.source, "fetch failed", "attempts", r.maxAttempts, "err", lastErr)
	return lastErr
}
