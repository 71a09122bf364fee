package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"gamerstore-service/internal/carousel"
	"gamerstore-service/internal/catalog"
	"gamerstore-service/internal/domain/games"
	"gamerstore-service/internal/loader"
	"gamerstore-service/internal/logging"
	"gamerstore-service/internal/view"
)

// defaultViewportWidth drives carousel sizing when the request carries no
// width hint.
const defaultViewportWidth = 1200

// Handler serves the storefront pages and health probes.
type Handler struct {
	store    *catalog.Store
	renderer *view.Renderer
	logger   *slog.Logger
	statusFn func() loader.Status
}

// NewHandler constructs a Handler.
func NewHandler(store *catalog.Store, renderer *view.Renderer, logger *slog.Logger, statusFn func() loader.Status) *Handler {
	return &Handler{
		store:    store,
		renderer: renderer,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. The service is ready once one
// catalog load has succeeded.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Home renders the landing page with its two carousels. Paging state
// travels in query params so the controls work without client scripting.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if r.URL.Path != "/" {
		writeError(w, r, http.StatusNotFound, "not found", h.logger)
		return
	}

	width := intParam(r, "w", defaultViewportWidth)
	records := h.store.Records()

	data := view.HomeData{
		Status: view.StatusMessage(h.store.State(), h.loadFailed(), len(records)),
		Carousels: []view.Carousel{
			h.buildCarousel(r, "recientes", "Más recientes", catalog.SortedByReleaseDate(records), "/games?sort=release-date", width),
			h.buildCarousel(r, "populares", "Populares", records, "/games?sort=popularity", width),
		},
	}
	h.render(w, r, func() error { return h.renderer.Home(w, data) })
}

// CatalogPage renders the filterable catalog grid.
func (h *Handler) CatalogPage(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}

	criteria := criteriaFromQuery(r.URL.Query())
	matches := catalog.Apply(h.store.Records(), criteria)

	data := view.CatalogData{
		Status:   view.StatusMessage(h.store.State(), h.loadFailed(), len(matches)),
		Count:    view.CountLabel(len(matches)),
		Games:    matches,
		Facets:   h.store.Facets(),
		Criteria: criteria,
	}
	h.render(w, r, func() error { return h.renderer.Catalog(w, data) })
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, fn func() error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := fn(); err != nil {
		logging.Error(loggerFromContext(r, h.logger), "render failed", err,
			slog.String(logging.FieldPath, r.URL.Path))
	}
}

// buildCarousel assembles one strip. The see-more card links to the catalog
// pre-sorted the way the strip is sorted.
func (h *Handler) buildCarousel(r *http.Request, id, title string, records []games.Game, seeMoreHref string, width int) view.Carousel {
	ctrl := carousel.New(records, seeMoreHref, width)
	ctrl.Seek(intParam(r, id, 0))

	c := view.NewCarousel(id, title, ctrl)
	c.PrevHref = pagingHref(r, id, ctrl.Index()-ctrl.Visible())
	c.NextHref = pagingHref(r, id, ctrl.Index()+ctrl.Visible())
	return c
}

// loadFailed reports whether the catalog is missing because the upstream
// fetch gave up, as opposed to still loading.
func (h *Handler) loadFailed() bool {
	if h.statusFn == nil {
		return false
	}
	status := h.statusFn()
	return status.ConsecutiveFailures > 0 && !status.IsReady()
}

func criteriaFromQuery(q url.Values) games.Criteria {
	return games.Criteria{
		Genre:    q.Get("genre"),
		Platform: q.Get("platform"),
		Search:   q.Get("q"),
		Sort:     games.ParseSortKey(q.Get("sort")),
	}
}

func intParam(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return fallback
	}
	return val
}

// pagingHref rebuilds the current URL with one carousel index replaced.
func pagingHref(r *http.Request, id string, index int) string {
	if index < 0 {
		index = 0
	}
	q := r.URL.Query()
	q.Set(id, strconv.Itoa(index))
	return r.URL.Path + "?" + q.Encode()
}
