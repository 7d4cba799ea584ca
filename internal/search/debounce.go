package search

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet interval before a full search runs.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer runs only the last of a burst of triggers, once the input has
// been quiet for the configured interval.
//
// Every Trigger bumps a generation counter. The scheduled function receives
// its generation and can check IsCurrent before publishing results, so a
// task that was already running when a newer trigger arrived cannot
// overwrite the newer result.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// NewDebouncer returns a debouncer with the given quiet interval. A
// non-positive delay means DefaultDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Delay returns the quiet interval.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Trigger cancels any pending task and schedules fn. It returns the
// generation assigned to fn, or 0 after Stop.
func (d *Debouncer) Trigger(fn func(gen uint64)) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return 0
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		// A timer whose Stop lost the race still fires; drop it here.
		if !d.IsCurrent(gen) {
			return
		}
		fn(gen)
	})
	return gen
}

// Cancel drops the pending task, if any, without stopping the debouncer.
// It returns the generation that now counts as current.
func (d *Debouncer) Cancel() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	return d.gen
}

// IsCurrent reports whether gen is still the latest trigger.
func (d *Debouncer) IsCurrent(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.stopped && gen == d.gen
}

// Stop cancels the pending task and makes further triggers no-ops.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.stopped = true
}
