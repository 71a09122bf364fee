package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gamerstore-service/internal/catalog"
	"gamerstore-service/internal/domain/games"
	"gamerstore-service/internal/loader"
	"gamerstore-service/internal/view"
)

func testGames() []games.Game {
	return []games.Game{
		{Title: "Overwatch 2", Genre: "Shooter", Platform: "PC (Windows)", ReleaseDate: "2022-10-04"},
		{Title: "Mir4", Genre: "MMORPG", Platform: "PC (Windows)", ReleaseDate: "2021-08-25"},
		{Title: "War Thunder", Genre: "Shooter", Platform: "PC (Windows)", ReleaseDate: "2013-08-15"},
		{Title: "Drakensang Online", Genre: "MMORPG", Platform: "Web Browser", ReleaseDate: "2011-08-08"},
	}
}

func newTestHandler(t *testing.T, records []games.Game, statusFn func() loader.Status) *Handler {
	t.Helper()
	renderer, err := view.New(view.DefaultRegions())
	if err != nil {
		t.Fatalf("unexpected renderer error: %v", err)
	}
	store := catalog.NewStore()
	if records != nil {
		store.Replace(records)
	}
	return NewHandler(store, renderer, nil, statusFn)
}

func readyStatus() loader.Status {
	return loader.Status{LastSuccess: time.Now()}
}

func TestHealthOK(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	rec := httptest.NewRecorder()

	h.Health(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestHealthRejectsPost(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	rec := httptest.NewRecorder()

	h.Health(rec, httptest.NewRequest("POST", "/health", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestReadyBeforeFirstLoad(t *testing.T) {
	h := newTestHandler(t, nil, func() loader.Status {
		return loader.Status{ConsecutiveFailures: 2, LastError: "fetch games: boom"}
	})
	rec := httptest.NewRecorder()

	h.Ready(rec, httptest.NewRequest("GET", "/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "fetch games: boom") {
		t.Fatalf("expected last error in body, got %s", rec.Body.String())
	}
}

func TestReadyAfterLoad(t *testing.T) {
	h := newTestHandler(t, testGames(), readyStatus)
	rec := httptest.NewRecorder()

	h.Ready(rec, httptest.NewRequest("GET", "/ready", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHomeRendersBothCarousels(t *testing.T) {
	h := newTestHandler(t, testGames(), readyStatus)
	rec := httptest.NewRecorder()

	h.Home(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	out := rec.Body.String()
	for _, want := range []string{`id="recientes"`, `id="populares"`, "Overwatch 2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected home to contain %q", want)
		}
	}
}

func TestHomeSeeksCarouselFromQuery(t *testing.T) {
	h := newTestHandler(t, testGames(), readyStatus)
	rec := httptest.NewRecorder()

	// 5 items, width 500 means 1 visible; index 2 offsets the track.
	h.Home(rec, httptest.NewRequest("GET", "/?w=500&populares=2", nil))

	if !strings.Contains(rec.Body.String(), "translateX(-200.0000%)") {
		t.Fatalf("expected seeked track offset\n%s", rec.Body.String())
	}
}

func TestHomeUnknownPathIs404(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	rec := httptest.NewRecorder()

	h.Home(rec, httptest.NewRequest("GET", "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHomeShowsLoadingBeforeData(t *testing.T) {
	h := newTestHandler(t, nil, func() loader.Status { return loader.Status{} })
	rec := httptest.NewRecorder()

	h.Home(rec, httptest.NewRequest("GET", "/", nil))

	if !strings.Contains(rec.Body.String(), "Cargando juegos...") {
		t.Fatal("expected loading banner before first load")
	}
}

func TestHomeShowsErrorAfterFailedLoad(t *testing.T) {
	h := newTestHandler(t, nil, func() loader.Status {
		return loader.Status{ConsecutiveFailures: 3, LastError: "boom"}
	})
	rec := httptest.NewRecorder()

	h.Home(rec, httptest.NewRequest("GET", "/", nil))

	if !strings.Contains(rec.Body.String(), "Error al cargar juegos. Intentá recargar la página.") {
		t.Fatal("expected fetch error banner after failed load")
	}
}

func TestCatalogPageFiltersAndCounts(t *testing.T) {
	h := newTestHandler(t, testGames(), readyStatus)
	rec := httptest.NewRecorder()

	h.CatalogPage(rec, httptest.NewRequest("GET", "/games?genre=Shooter&sort=alphabetical", nil))

	out := rec.Body.String()
	if !strings.Contains(out, "2 juegos") {
		t.Fatalf("expected 2 matches, got\n%s", out)
	}
	if strings.Contains(out, "Mir4") {
		t.Fatal("expected MMORPG titles filtered out of the grid")
	}
	if strings.Index(out, "Overwatch 2") > strings.Index(out, "War Thunder") {
		t.Fatal("expected alphabetical order in the grid")
	}
}

func TestCatalogPageSearchNoMatches(t *testing.T) {
	h := newTestHandler(t, testGames(), readyStatus)
	rec := httptest.NewRecorder()

	h.CatalogPage(rec, httptest.NewRequest("GET", "/games?q=zzz", nil))

	out := rec.Body.String()
	if !strings.Contains(out, "0 juegos") {
		t.Fatalf("expected zero count, got\n%s", out)
	}
	if !strings.Contains(out, "No se encontraron juegos con los filtros seleccionados.") {
		t.Fatal("expected no-matches banner")
	}
}

func TestCatalogPageEmptyUpstream(t *testing.T) {
	h := newTestHandler(t, []games.Game{}, readyStatus)
	rec := httptest.NewRecorder()

	h.CatalogPage(rec, httptest.NewRequest("GET", "/games", nil))

	if !strings.Contains(rec.Body.String(), "No se encontraron juegos. La API puede estar fuera de servicio.") {
		t.Fatal("expected empty-catalog banner")
	}
}

func TestCriteriaFromQueryDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/games?sort=bogus", nil)
	criteria := criteriaFromQuery(r.URL.Query())

	if criteria.Sort != games.SortPopularity {
		t.Fatalf("expected popularity fallback, got %s", criteria.Sort)
	}
	if criteria.FilterGenre() || criteria.FilterPlatform() {
		t.Fatal("expected no facet filters by default")
	}
}

func TestPagingHrefReplacesIndex(t *testing.T) {
	r := httptest.NewRequest("GET", "/?w=500&recientes=2&populares=1", nil)

	href := pagingHref(r, "recientes", 3)
	if !strings.Contains(href, "recientes=3") || !strings.Contains(href, "populares=1") || !strings.Contains(href, "w=500") {
		t.Fatalf("unexpected href %s", href)
	}

	if href := pagingHref(r, "recientes", -4); !strings.Contains(href, "recientes=0") {
		t.Fatalf("expected negative index clamped, got %s", href)
	}
}

func TestHomeSeeMoreLinksCarryStripSort(t *testing.T) {
	h := newTestHandler(t, testGames(), readyStatus)

	rec := httptest.NewRecorder()
	h.Home(rec, httptest.NewRequest("GET", "/", nil))

	body := rec.Body.String()
	for _, href := range []string{`href="/games?sort=release-date"`, `href="/games?sort=popularity"`} {
		if !strings.Contains(body, href) {
			t.Fatalf("expected see-more link %s in home page", href)
		}
	}
}
