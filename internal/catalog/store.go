package catalog

import (
	"sort"
	"sync"

	"gamerstore-service/internal/domain/games"
)

// LoadState distinguishes a catalog that has never loaded from one that
// loaded and came back empty. Consumers render a loading indicator for the
// former and a "no results" message for the latter.
type LoadState int

const (
	StateNotLoaded LoadState = iota
	StateLoadedEmpty
	StateLoaded
)

// Store keeps the full in-memory catalog and its derived facet sets.
// Records are replaced as a whole snapshot; facets are recomputed on every
// replace so they always describe the current records.
type Store struct {
	mu      sync.RWMutex
	state   LoadState
	records []games.Game
	facets  games.Facets
}

// NewStore constructs an empty, not-yet-loaded Store.
func NewStore() *Store {
	return &Store{}
}

// Replace installs a new catalog snapshot and rederives the facet sets.
func (s *Store) Replace(records []games.Game) {
	snapshot := make([]games.Game, len(records))
	copy(snapshot, records)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = snapshot
	s.facets = deriveFacets(snapshot)
	if len(snapshot) == 0 {
		s.state = StateLoadedEmpty
	} else {
		s.state = StateLoaded
	}
}

// Records returns a copy of the current catalog.
func (s *Store) Records() []games.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]games.Game, len(s.records))
	copy(result, s.records)
	return result
}

// State reports whether the catalog has loaded and whether it held records.
func (s *Store) State() LoadState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Facets returns the derived genre and platform value sets.
func (s *Store) Facets() games.Facets {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return games.Facets{
		Genres:    append([]string(nil), s.facets.Genres...),
		Platforms: append([]string(nil), s.facets.Platforms...),
	}
}

// deriveFacets collects the distinct genre and platform values,
// lexicographically sorted, to back the filter selects.
func deriveFacets(records []games.Game) games.Facets {
	genres := make(map[string]struct{})
	platforms := make(map[string]struct{})
	for _, g := range records {
		genres[g.Genre] = struct{}{}
		platforms[g.Platform] = struct{}{}
	}
	return games.Facets{
		Genres:    sortedKeys(genres),
		Platforms: sortedKeys(platforms),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
