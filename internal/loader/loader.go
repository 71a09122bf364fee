// Package loader owns the catalog load lifecycle: one warm-up load per
// process session, plus explicitly requested refreshes. There is no periodic
// re-fetch; the catalog is treated as read-only between loads.
package loader

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gamerstore-service/internal/catalog"
	"gamerstore-service/internal/debounce"
	"gamerstore-service/internal/domain/games"
	"gamerstore-service/internal/logging"
	"gamerstore-service/internal/metrics"
	"gamerstore-service/internal/providers"
)

const (
	defaultRefreshWindow = 300 * time.Millisecond
	refreshTimeout       = 45 * time.Second
)

// Loader fetches the catalog and installs it into the store.
type Loader struct {
	fetcher providers.Fetcher
	store   *catalog.Store
	logger  *slog.Logger
	metrics *metrics.Recorder
	deb     *debounce.Debouncer
	now     func() time.Time

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of catalog loading.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether at least one load has succeeded.
func (s Status) IsReady() bool {
	return !s.LastSuccess.IsZero()
}

// New constructs a Loader. refreshWindow bounds how tightly repeated refresh
// requests may fire; non-positive uses the default.
func New(fetcher providers.Fetcher, store *catalog.Store, logger *slog.Logger, recorder *metrics.Recorder, refreshWindow time.Duration) *Loader {
	if refreshWindow <= 0 {
		refreshWindow = defaultRefreshWindow
	}
	return &Loader{
		fetcher: fetcher,
		store:   store,
		logger:  logger,
		metrics: recorder,
		deb:     debounce.New(refreshWindow),
		now:     time.Now,
	}
}

// Load fetches the full catalog sorted by popularity (the upstream default
// order) and replaces the store snapshot. On failure the store is left
// untouched, so a catalog that never loaded stays in the not-loaded state.
func (l *Loader) Load(ctx context.Context) error {
	start := l.now()
	l.recordAttempt(start)

	records, err := l.fetcher.FetchGames(ctx, providers.Query{SortBy: games.SortPopularity})
	if l.metrics != nil {
		l.metrics.RecordLoaderCycle(time.Since(start), err)
	}
	if err != nil {
		l.recordFailure(err, start)
		logging.Error(l.logger, "catalog load failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		return err
	}

	l.store.Replace(records)
	l.recordSuccess(start)
	logging.Info(l.logger, "catalog loaded",
		slog.Int(logging.FieldCount, len(records)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
	return nil
}

// RequestRefresh schedules a background reload. Requests landing within the
// refresh window collapse into one load.
func (l *Loader) RequestRefresh() {
	l.deb.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		_ = l.Load(ctx)
	})
}

// Stop cancels a pending refresh.
func (l *Loader) Stop() {
	l.deb.Stop()
}

// Status returns a snapshot of the loader's recent health.
func (l *Loader) Status() Status {
	l.statusMu.RLock()
	defer l.statusMu.RUnlock()
	return l.status
}

func (l *Loader) recordAttempt(at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.LastAttempt = at
}

func (l *Loader) recordSuccess(at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.ConsecutiveFailures = 0
	l.status.LastError = ""
	l.status.LastSuccess = at
}

func (l *Loader) recordFailure(err error, at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.ConsecutiveFailures++
	if err != nil {
		l.status.LastError = err.Error()
	}
	l.status.LastAttempt = at
}
