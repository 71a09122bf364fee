package handlers

import (
	"log/slog"
	"net/http"

	"gamerstore-service/internal/catalog"
	"gamerstore-service/internal/domain/games"
)

// SearchHandler serves catalog results as JSON for the filter form. Each
// request is answered synchronously from the store; the shared LiveFilter
// additionally collapses the burst a user typing produces into one settled
// filter pass, so "search settled" is observed once per burst with the
// final criteria instead of once per keystroke.
type SearchHandler struct {
	store  *catalog.Store
	live   *catalog.LiveFilter
	logger *slog.Logger
}

// NewSearchHandler constructs a SearchHandler. live may be nil, in which
// case only the synchronous path is served.
func NewSearchHandler(store *catalog.Store, live *catalog.LiveFilter, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		store:  store,
		live:   live,
		logger: logger,
	}
}

// Results handles GET /api/catalog.
func (h *SearchHandler) Results(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	criteria := criteriaFromQuery(r.URL.Query())
	matches := catalog.Apply(h.store.Records(), criteria)

	if h.live != nil {
		h.live.Update(criteria)
	}

	writeJSON(w, http.StatusOK, games.NewCatalogResponse(matches), h.logger)
}
