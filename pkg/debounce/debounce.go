// Package debounce coalesces rapid successive triggers into a single call.
// Search-as-you-type input goes through a Debouncer so a burst of keystrokes
// issues one store query for the final text instead of one per keystroke.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs the most recently scheduled function once the configured
// quiescence interval has elapsed without a newer schedule. Earlier pending
// functions are superseded, never run.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Schedule replaces any pending function with fn and restarts the quiescence
// window.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Cancel drops the pending function, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
