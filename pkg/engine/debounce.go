package engine

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid triggers into a single callback invocation after
// a quiet period. Each Trigger cancels any pending timer and reschedules with
// the latest payload, so a burst of edits produces one notification carrying
// the final content.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(string)
	timer   *time.Timer
	payload string
	pending bool
}

// NewDebouncer creates a debouncer that calls fn with the most recent payload
// once delay has elapsed without another Trigger.
func NewDebouncer(delay time.Duration, fn func(string)) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger schedules fn with payload, replacing any pending schedule.
func (d *Debouncer) Trigger(payload string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.payload = payload
	d.pending = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	payload := d.payload
	d.pending = false
	d.mu.Unlock()

	d.fn(payload)
}

// Flush fires any pending notification immediately.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()

	d.fire()
}

// Stop cancels any pending notification without firing it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = false
}
