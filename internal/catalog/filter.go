package catalog

import (
	"sort"
	"strings"
	"time"

	"gamerstore-service/internal/domain/games"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// releaseDateLayouts are the formats the upstream has been observed to use.
var releaseDateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// Apply runs the active filter stages over records in fixed order (genre,
// platform, title search) and then sorts the surviving subset. Each stage is
// skipped when its criterion sits at its sentinel. The input slice is never
// reordered or mutated; sorting always operates on a copy.
func Apply(records []games.Game, criteria games.Criteria) []games.Game {
	filtered := records

	if criteria.FilterGenre() {
		filtered = filterBy(filtered, func(g games.Game) bool {
			return g.Genre == criteria.Genre
		})
	}

	if criteria.FilterPlatform() {
		filtered = filterBy(filtered, func(g games.Game) bool {
			return g.Platform == criteria.Platform
		})
	}

	if term := strings.ToLower(criteria.SearchTerm()); term != "" {
		filtered = filterBy(filtered, func(g games.Game) bool {
			return strings.Contains(strings.ToLower(g.Title), term)
		})
	}

	return sortGames(filtered, criteria.Sort)
}

func filterBy(records []games.Game, keep func(games.Game) bool) []games.Game {
	result := make([]games.Game, 0, len(records))
	for _, g := range records {
		if keep(g) {
			result = append(result, g)
		}
	}
	return result
}

// sortGames returns records ordered by key. The returned slice is always a
// copy so the caller's collection keeps its upstream order.
func sortGames(records []games.Game, key games.SortKey) []games.Game {
	sorted := make([]games.Game, len(records))
	copy(sorted, records)

	switch key {
	case games.SortReleaseDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return parseReleaseDate(sorted[i].ReleaseDate).After(parseReleaseDate(sorted[j].ReleaseDate))
		})
	case games.SortAlphabetical:
		// The upstream catalog is Spanish-facing; localeCompare semantics
		// (n < ñ, accented letters adjacent to their base) come from the
		// Spanish collator.
		col := collate.New(language.Spanish)
		sort.SliceStable(sorted, func(i, j int) bool {
			return col.CompareString(sorted[i].Title, sorted[j].Title) < 0
		})
	default:
		// Popularity trusts the upstream order; identity.
	}

	return sorted
}

// parseReleaseDate parses an upstream date string. Values that match none of
// the accepted layouts yield the zero time, which sinks them to the end of
// the descending release-date order. That keeps the comparator total where
// the original left unparsable dates unordered.
func parseReleaseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SortedByReleaseDate returns a date-descending copy of records. Used for the
// "recientes" carousel slice.
func SortedByReleaseDate(records []games.Game) []games.Game {
	return sortGames(records, games.SortReleaseDate)
}
