package handlers

import (
	"log/slog"
	"net/http"

	"gamerstore-service/internal/http/requestutil"
	"gamerstore-service/internal/httpcache"
	"gamerstore-service/internal/logging"
)

// AdminHandler exposes admin-only endpoints. Refresh requests are
// debounced by the loader so a burst of calls produces one fetch.
type AdminHandler struct {
	refresh func()
	cache   *httpcache.Cache
	token   string
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(refresh func(), cache *httpcache.Cache, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresh: refresh,
		cache:   cache,
		token:   token,
		logger:  logger,
	}
}

// RefreshCatalog handles POST /admin/refresh. Guarded by ADMIN_TOKEN;
// returns 401 when missing or invalid.
func (h *AdminHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized", nil,
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String(logging.FieldRemoteAddr, requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.refresh == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresh not configured", h.logger)
		return
	}

	if h.cache != nil {
		h.cache.Invalidate()
	}
	h.refresh()

	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "catalog refresh requested")
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"}, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
