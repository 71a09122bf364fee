package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	attempts        int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream fetches,
// the proxy cache, and HTTP traffic. It is intentionally simple so it can be
// swapped for a real backend later.
type Recorder struct {
	mu          sync.Mutex
	stats       map[string]*sourceStats
	cacheHits   int
	cacheMisses int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*sourceStats),
		otel:  otel,
	}
}

// RecordFetchAttempt increments counters for an upstream fetch attempt and
// stores the last observed latency.
func (r *Recorder) RecordFetchAttempt(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(source)
	stats.attempts++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordFetchAttempt(source, duration, err)
	}
}

// RecordCacheEvent tracks a proxy cache lookup outcome.
func (r *Recorder) RecordCacheEvent(hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	if hit {
		r.cacheHits++
	} else {
		r.cacheMisses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheEvent(hit)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordLoaderCycle tracks catalog load cycles and failures.
func (r *Recorder) RecordLoaderCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordLoader(duration, err)
}

// FetchAttempts returns the total attempts recorded for a source.
func (r *Recorder) FetchAttempts(source string) int {
	return r.Snapshot(source).Attempts
}

// FetchErrors returns the total failed attempts recorded for a source.
func (r *Recorder) FetchErrors(source string) int {
	return r.Snapshot(source).Errors
}

// LastFetchLatency returns the last recorded latency for a source.
func (r *Recorder) LastFetchLatency(source string) time.Duration {
	return r.Snapshot(source).LastCallLatency
}

// CacheHits returns the number of proxy cache hits recorded.
func (r *Recorder) CacheHits() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cacheHits
}

// CacheMisses returns the number of proxy cache misses recorded.
func (r *Recorder) CacheMisses() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cacheMisses
}

// Snapshot is a copy of the current stats for one fetch source.
type Snapshot struct {
	Attempts        int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(source)
	return Snapshot{
		Attempts:        stats.attempts,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

func (r *Recorder) ensureStats(source string) *sourceStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[source]
	if !ok {
		stats = &sourceStats{}
		r.stats[source] = stats
	}
	return stats
}

func (r *Recorder) snapshot(source string) sourceStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[source]; ok && stats != nil {
		return *stats
	}
	return sourceStats{}
}
