package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"gamerstore-service/internal/domain/games"
	"gamerstore-service/internal/httpcache"
	"gamerstore-service/internal/logging"
	"gamerstore-service/internal/metrics"
	"gamerstore-service/internal/providers"
)

// cacheControl mirrors the edge-cache policy: five minutes fresh, ten
// more serving stale while revalidating.
const cacheControl = "public, s-maxage=300, stale-while-revalidate=600"

// ProxyHandler forwards catalog queries to the upstream API, caching
// bodies so browsers hitting the proxy never fan out to the upstream. The
// upstream payload is served byte-for-byte; nothing is reshaped here.
type ProxyHandler struct {
	fetcher providers.RawFetcher
	cache   *httpcache.Cache
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// NewProxyHandler constructs a ProxyHandler.
func NewProxyHandler(fetcher providers.RawFetcher, cache *httpcache.Cache, recorder *metrics.Recorder, logger *slog.Logger) *ProxyHandler {
	return &ProxyHandler{
		fetcher: fetcher,
		cache:   cache,
		metrics: recorder,
		logger:  logger,
	}
}

// Games handles GET /api/games.
func (h *ProxyHandler) Games(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	logger := loggerFromContext(r, h.logger)
	key := cacheKey(r.URL.Query())

	if h.cache != nil {
		if body, ok := h.cache.Get(key); ok {
			h.metrics.RecordCacheEvent(true)
			writeProxyBody(w, body)
			return
		}
		h.metrics.RecordCacheEvent(false)
	}

	query := providers.Query{
		Platform: r.URL.Query().Get("platform"),
		Category: r.URL.Query().Get("category"),
		SortBy:   games.ParseSortKey(r.URL.Query().Get("sort-by")),
	}

	start := time.Now()
	body, err := h.fetcher.FetchRawGames(r.Context(), query)
	if err != nil {
		h.writeUpstreamError(w, logger, err)
		return
	}

	if h.cache != nil {
		h.cache.Set(key, body)
	}
	logging.Info(logger, "proxied catalog fetch",
		slog.Int("bytes", len(body)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	writeProxyBody(w, body)
}

// writeUpstreamError mirrors an upstream rejection: the response carries the
// upstream's own status code along with the {error, status} body. Anything
// that is not a status error is an internal proxy failure.
func (h *ProxyHandler) writeUpstreamError(w http.ResponseWriter, logger *slog.Logger, err error) {
	if statusErr, ok := providers.AsStatusError(err); ok {
		logging.Warn(logger, "upstream rejected proxy fetch", err,
			slog.Int(logging.FieldStatusCode, statusErr.StatusCode))
		writeProxyError(w, statusErr.StatusCode, map[string]any{
			"error":  "Error en la API externa",
			"status": statusErr.StatusCode,
		}, logger)
		return
	}
	logging.Error(logger, "proxy fetch failed", err)
	writeProxyError(w, http.StatusInternalServerError, map[string]any{
		"error":   "Error interno en el proxy",
		"message": err.Error(),
	}, logger)
}

func writeProxyBody(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", cacheControl)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func writeProxyError(w http.ResponseWriter, status int, payload map[string]any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode proxy error", err)
	}
}

// cacheKey normalizes the forwarded query params so equivalent requests
// share one cache entry.
func cacheKey(q url.Values) string {
	kept := url.Values{}
	for _, key := range []string{"platform", "category", "sort-by"} {
		if val := q.Get(key); val != "" {
			kept.Set(key, val)
		}
	}
	return fmt.Sprintf("/api/games?%s", kept.Encode())
}
