package loader

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"gamerstore-service/internal/catalog"
	"gamerstore-service/internal/domain/games"
	"gamerstore-service/internal/metrics"
	"gamerstore-service/internal/providers"
)

type stubFetcher struct {
	calls   atomic.Int32
	records []games.Game
	err     error
}

func (s *stubFetcher) FetchGames(ctx context.Context, q providers.Query) ([]games.Game, error) {
	_ = ctx
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

func TestLoadFillsStoreWithPopularityOrder(t *testing.T) {
	fetcher := &stubFetcher{records: []games.Game{{Title: "a", Genre: "Shooter", Platform: "PC (Windows)"}}}
	store := catalog.NewStore()
	l := New(fetcher, store, nil, metrics.NewRecorder(), 0)

	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.State() != catalog.StateLoaded {
		t.Fatalf("expected loaded state, got %v", store.State())
	}
	if !l.Status().IsReady() {
		t.Fatal("expected loader ready after success")
	}
}

func TestLoadFailureLeavesStoreNotLoaded(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("upstream down")}
	store := catalog.NewStore()
	l := New(fetcher, store, nil, metrics.NewRecorder(), 0)

	if err := l.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}
	if store.State() != catalog.StateNotLoaded {
		t.Fatalf("expected not-loaded state after failure, got %v", store.State())
	}

	status := l.Status()
	if status.IsReady() {
		t.Fatal("expected not ready after failure")
	}
	if status.ConsecutiveFailures != 1 || status.LastError == "" {
		t.Fatalf("unexpected status %+v", status)
	}
}

func TestLoadEmptyCatalogIsLoadedEmpty(t *testing.T) {
	fetcher := &stubFetcher{records: nil}
	store := catalog.NewStore()
	l := New(fetcher, store, nil, nil, 0)

	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.State() != catalog.StateLoadedEmpty {
		t.Fatalf("expected loaded-empty state, got %v", store.State())
	}
	if !l.Status().IsReady() {
		t.Fatal("empty load still counts as a successful load")
	}
}

func TestRequestRefreshCoalesces(t *testing.T) {
	fetcher := &stubFetcher{records: []games.Game{{Title: "a"}}}
	store := catalog.NewStore()
	l := New(fetcher, store, nil, nil, 30*time.Millisecond)
	defer l.Stop()

	for i := 0; i < 5; i++ {
		l.RequestRefresh()
	}

	time.Sleep(120 * time.Millisecond)
	if got := fetcher.calls.Load(); got != 1 {
		t.Fatalf("expected refresh burst to collapse to 1 load, got %d", got)
	}
}

func TestStatusFailureCountResetsOnSuccess(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("down")}
	store := catalog.NewStore()
	l := New(fetcher, store, nil, nil, 0)

	_ = l.Load(context.Background())
	_ = l.Load(context.Background())
	if got := l.Status().ConsecutiveFailures; got != 2 {
		t.Fatalf("expected 2 consecutive failures, got %d", got)
	}

	fetcher.err = nil
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	status := l.Status()
	if status.ConsecutiveFailures != 0 || status.LastError != "" {
		t.Fatalf("expected failure state cleared, got %+v", status)
	}
}
