// Package debounce collapses bursts of rapid calls into a single deferred
// invocation after a quiet period.
package debounce

import (
	"sync"
	"time"
)

// Debouncer schedules a function to run once the configured quiet window has
// elapsed since the most recent Do call. An earlier pending invocation is
// cancelled by a later one.
type Debouncer struct {
	window time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// New constructs a Debouncer. A non-positive window degrades to immediate
// scheduling on the next timer tick.
func New(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Do schedules fn to run after the quiet window, replacing any pending
// invocation scheduled by an earlier call.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, fn)
}

// Stop cancels any pending invocation. It does not wait for a running one.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
