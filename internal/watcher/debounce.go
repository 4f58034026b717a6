// Package watcher triggers import passes from filesystem events after a quiet period.
package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of events into a single callback. Every Touch
// resets one pending timer; the callback fires only after a full quiet period
// with no further touches. States: idle (no timer), pending (timer running),
// firing (callback in flight). A touch during firing schedules a fresh pass
// rather than interrupting the one in progress.
type Debouncer struct {
	quiet time.Duration
	fire  func()

	// afterFunc is swappable so tests can control the clock.
	afterFunc func(d time.Duration, f func()) *time.Timer

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer that calls fire after quiet elapses
// without touches.
func NewDebouncer(quiet time.Duration, fire func()) *Debouncer {
	return &Debouncer{
		quiet:     quiet,
		fire:      fire,
		afterFunc: time.AfterFunc,
	}
}

// Touch records an event: an idle debouncer starts the quiet-period timer, a
// pending one resets it.
func (d *Debouncer) Touch() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.afterFunc(d.quiet, d.expire)
}

// Stop cancels any pending timer. Safe to call repeatedly.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) expire() {
	d.mu.Lock()
	d.timer = nil
	d.mu.Unlock()

	d.fire()
}
