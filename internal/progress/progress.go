// Package progress renders terminal progress for long-running analyses.
package progress

import (
	"github.com/schollz/progressbar/v3"
)

// Func receives progress updates: the number of completed items, the
// total, and the item currently being processed.
type Func func(done, total int, current string)

// Tracker wraps a terminal progress bar. A nil Tracker is valid and does
// nothing, so callers can pass one through unconditionally.
type Tracker struct {
	bar *progressbar.ProgressBar
}

// NewTracker creates a progress bar for total items. When enabled is
// false the returned tracker is inert.
func NewTracker(total int, description string, enabled bool) *Tracker {
	if !enabled || total <= 0 {
		return &Tracker{}
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)
	return &Tracker{bar: bar}
}

// Increment advances the bar by one item.
func (t *Tracker) Increment() {
	if t == nil || t.bar == nil {
		return
	}
	_ = t.bar.Add(1)
}

// Describe updates the bar's description to the current item.
func (t *Tracker) Describe(current string) {
	if t == nil || t.bar == nil {
		return
	}
	t.bar.Describe(current)
}

// Finish completes and clears the bar.
func (t *Tracker) Finish() {
	if t == nil || t.bar == nil {
		return
	}
	_ = t.bar.Finish()
}

// Callback returns a Func that drives this tracker. It tolerates a nil
// receiver.
func (t *Tracker) Callback() Func {
	return func(done, total int, current string) {
		t.Describe(current)
		t.Increment()
	}
}
