package games

import "strings"

// SortKey enumerates the supported catalog orderings.
type SortKey string

const (
	SortPopularity   SortKey = "popularity"
	SortReleaseDate  SortKey = "release-date"
	SortAlphabetical SortKey = "alphabetical"
)

// ParseSortKey maps a raw string (query param, select value) onto a SortKey.
// Unrecognized values collapse to popularity, the upstream default order.
func ParseSortKey(raw string) SortKey {
	switch SortKey(strings.TrimSpace(raw)) {
	case SortReleaseDate:
		return SortReleaseDate
	case SortAlphabetical:
		return SortAlphabetical
	default:
		return SortPopularity
	}
}

// FilterAll is the sentinel meaning "do not filter on this facet".
const FilterAll = "all"

// Game is the canonical record shape exposed by the service. Field names on
// the wire match the upstream listing API.
type Game struct {
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	Platform    string `json:"platform"`
	ReleaseDate string `json:"release_date"`
	Thumbnail   string `json:"thumbnail"`
	GameURL     string `json:"game_url"`
}

// Criteria captures the active filter/sort selections for one filter pass.
// Genre and Platform use FilterAll (or empty) to skip their stage; Search is
// a case-insensitive substring match against the title.
type Criteria struct {
	Genre    string
	Platform string
	Search   string
	Sort     SortKey
}

// FilterGenre reports whether the genre stage is active.
func (c Criteria) FilterGenre() bool {
	return c.Genre != "" && c.Genre != FilterAll
}

// FilterPlatform reports whether the platform stage is active.
func (c Criteria) FilterPlatform() bool {
	return c.Platform != "" && c.Platform != FilterAll
}

// SearchTerm returns the trimmed search term, empty when the stage is inactive.
func (c Criteria) SearchTerm() string {
	return strings.TrimSpace(c.Search)
}

// Facets holds the distinct filterable values derived from a catalog,
// lexicographically sorted.
type Facets struct {
	Genres    []string
	Platforms []string
}

// CatalogResponse is the payload returned by the catalog JSON endpoint.
type CatalogResponse struct {
	Count int    `json:"count"`
	Games []Game `json:"games"`
}

// NewCatalogResponse builds a CatalogResponse payload.
func NewCatalogResponse(games []Game) CatalogResponse {
	return CatalogResponse{
		Count: len(games),
		Games: games,
	}
}
