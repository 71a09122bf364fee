package catalog

import (
	"sync"
	"time"

	"gamerstore-service/internal/debounce"
	"gamerstore-service/internal/domain/games"
)

const defaultSearchWindow = 300 * time.Millisecond

// LiveFilter is the interactive filter path: criteria updates arriving
// within the quiet window collapse into a single apply-and-publish using the
// criteria present at the last update.
type LiveFilter struct {
	store   *Store
	deb     *debounce.Debouncer
	publish func([]games.Game)

	mu       sync.Mutex
	criteria games.Criteria
}

// NewLiveFilter constructs a LiveFilter publishing filtered results to
// publish. A non-positive window uses the default 300ms.
func NewLiveFilter(store *Store, window time.Duration, publish func([]games.Game)) *LiveFilter {
	if window <= 0 {
		window = defaultSearchWindow
	}
	return &LiveFilter{
		store:   store,
		deb:     debounce.New(window),
		publish: publish,
	}
}

// Update records the latest criteria and schedules a debounced filter pass.
func (f *LiveFilter) Update(criteria games.Criteria) {
	f.mu.Lock()
	f.criteria = criteria
	f.mu.Unlock()

	f.deb.Do(f.run)
}

// Flush runs any pending filter pass immediately. Intended for tests and
// shutdown paths.
func (f *LiveFilter) Flush() {
	f.deb.Stop()
	f.run()
}

// Close cancels any pending pass.
func (f *LiveFilter) Close() {
	f.deb.Stop()
}

func (f *LiveFilter) run() {
	f.mu.Lock()
	criteria := f.criteria
	f.mu.Unlock()

	if f.publish != nil {
		f.publish(Apply(f.store.Records(), criteria))
	}
}
