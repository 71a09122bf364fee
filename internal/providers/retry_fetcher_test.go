package providers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"gamerstore-service/internal/domain/games"
	"gamerstore-service/internal/metrics"
)

type flakeyFetcher struct {
	failures int
	calls    int
	err      error
}

func (f *flakeyFetcher) FetchGames(ctx context.Context, q Query) ([]games.Game, error) {
	_ = ctx
	_ = q
	f.calls++
	if f.calls <= f.failures {
		return nil, f.err
	}
	return []games.Game{{Title: "ok"}}, nil
}

func TestRetryingFetcherRetriesAndSucceeds(t *testing.T) {
	ff := &flakeyFetcher{failures: 2, err: &StatusError{Source: "test", StatusCode: 502}}
	rf := NewRetryingFetcher(ff, slog.Default(), metrics.NewRecorder(), "test", 3, 1*time.Millisecond)

	records, err := rf.FetchGames(context.Background(), Query{})
	if err != nil {
		t.Fatalf("expected success, got error %v", err)
	}
	if len(records) != 1 || records[0].Title != "ok" {
		t.Fatalf("unexpected records %+v", records)
	}
	if ff.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", ff.calls)
	}
}

func TestRetryingFetcherExhaustsAfterMaxAttempts(t *testing.T) {
	ff := &flakeyFetcher{failures: 10, err: context.DeadlineExceeded}
	rf := NewRetryingFetcher(ff, nil, metrics.NewRecorder(), "test", 3, 1*time.Millisecond)

	_, err := rf.FetchGames(context.Background(), Query{})
	if err == nil {
		t.Fatal("expected error after retries")
	}
	if ff.calls != 3 {
		t.Fatalf("expected exactly 3 attempts (2 retries), got %d", ff.calls)
	}
}

func TestRetryingFetcherSpacesAttempts(t *testing.T) {
	ff := &flakeyFetcher{failures: 10, err: &StatusError{Source: "test", StatusCode: 500}}
	rf := NewRetryingFetcher(ff, nil, nil, "test", 3, 30*time.Millisecond)

	start := time.Now()
	_, _ = rf.FetchGames(context.Background(), Query{})
	elapsed := time.Since(start)

	// Two backoff waits between three attempts.
	if elapsed < 60*time.Millisecond {
		t.Fatalf("expected >= 60ms of backoff, got %v", elapsed)
	}
}

func TestRetryingFetcherDoesNotRetryDecodeFailures(t *testing.T) {
	ff := &flakeyFetcher{failures: 10, err: &DecodeError{Source: "test", Err: errors.New("bad json")}}
	rf := NewRetryingFetcher(ff, nil, metrics.NewRecorder(), "test", 3, 1*time.Millisecond)

	_, err := rf.FetchGames(context.Background(), Query{})
	if err == nil {
		t.Fatal("expected decode error to propagate")
	}
	if ff.calls != 1 {
		t.Fatalf("expected 1 attempt for decode failure, got %d", ff.calls)
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected error to propagate unchanged, got %T", err)
	}
}

func TestRetryingFetcherRespectsContextCancel(t *testing.T) {
	ff := &flakeyFetcher{failures: 10, err: &StatusError{Source: "test", StatusCode: 503}}
	rf := NewRetryingFetcher(ff, nil, metrics.NewRecorder(), "test", 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := rf.FetchGames(ctx, Query{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
	if ff.calls != 1 {
		t.Fatalf("expected backoff wait to be interrupted after 1 attempt, got %d", ff.calls)
	}
}

func TestRetryingFetcherRecordsMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	ff := &flakeyFetcher{failures: 1, err: &StatusError{Source: "test", StatusCode: 500}}
	rf := NewRetryingFetcher(ff, nil, rec, "test", 3, 1*time.Millisecond)

	if _, err := rf.FetchGames(context.Background(), Query{}); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got := rec.FetchAttempts("test"); got != 2 {
		t.Fatalf("expected 2 recorded attempts, got %d", got)
	}
	if got := rec.FetchErrors("test"); got != 1 {
		t.Fatalf("expected 1 recorded error, got %d", got)
	}
}

func TestRetryingFetcherDefaults(t *testing.T) {
	ff := &flakeyFetcher{failures: 10, err: &StatusError{Source: "test", StatusCode: 500}}
	rf := NewRetryingFetcher(ff, nil, nil, "test", 0, 0).(*retryingFetcher)
	if rf.maxAttempts != defaultMaxAttempts {
		t.Fatalf("expected default attempts, got %d", rf.maxAttempts)
	}
	if got := rf.backoffFn(1); got != defaultBackoff {
		t.Fatalf("expected fixed default backoff, got %v", got)
	}
}

type rawStubFetcher struct {
	flakeyFetcher
	body     []byte
	rawCalls int
}

func (f *rawStubFetcher) FetchRawGames(ctx context.Context, q Query) ([]byte, error) {
	_ = ctx
	_ = q
	f.rawCalls++
	if f.rawCalls <= f.failures {
		return nil, f.err
	}
	return f.body, nil
}

func TestRetryingFetcherRawPassesBodyThroughWithRetries(t *testing.T) {
	body := []byte(`[{"id":540,"title":"Overwatch 2","short_description":"Hero shooter"}]`)
	ff := &rawStubFetcher{
		flakeyFetcher: flakeyFetcher{failures: 1, err: &StatusError{Source: "test", StatusCode: 502}},
		body:          body,
	}
	rf := NewRetryingFetcher(ff, nil, nil, "test", 3, 1*time.Millisecond)

	got, err := rf.FetchRawGames(context.Background(), Query{})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if string(got) != string(body) {
		t.Fatalf("expected payload forwarded verbatim, got %s", got)
	}
	if ff.rawCalls != 2 {
		t.Fatalf("expected 2 raw attempts, got %d", ff.rawCalls)
	}
}

func TestRetryingFetcherRawFallsBackToMappedRecords(t *testing.T) {
	ff := &flakeyFetcher{}
	rf := NewRetryingFetcher(ff, nil, nil, "test", 3, 1*time.Millisecond)

	got, err := rf.FetchRawGames(context.Background(), Query{})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	var records []games.Game
	if err := json.Unmarshal(got, &records); err != nil {
		t.Fatalf("fallback body not valid JSON: %v", err)
	}
	if len(records) != 1 || records[0].Title != "ok" {
		t.Fatalf("unexpected fallback records %+v", records)
	}
}
