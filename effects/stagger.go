package effects

import (
	"time"

	"github.com/lixenwraith/portfolio-term/timer"
)

// Stagger schedules fn(i) for i in [0,n) at StaggerDelay(i) and returns the handles
func Stagger(sched timer.Scheduler, n int, fn func(i int)) []*timer.Handle {
	handles := make([]*timer.Handle, 0, n)
	for i := 0; i < n; i++ {
		handles = append(handles, sched.After(StaggerDelay(i), func() { fn(i) }))
	}
	return handles
}

// Debouncer runs only the last call of a burst, wait after the burst ends
type Debouncer struct {
	sched  timer.Scheduler
	wait   time.Duration
	handle *timer.Handle
}

// NewDebouncer creates a debouncer on sched
func NewDebouncer(sched timer.Scheduler, wait time.Duration) *Debouncer {
	return &Debouncer{sched: sched, wait: wait}
}

// Trigger replaces any pending call with fn
func (d *Debouncer) Trigger(fn func()) {
	d.handle.Stop()
	d.handle = d.sched.After(d.wait, func() {
		d.handle = nil
		fn()
	})
}

// Pending reports whether a call is waiting
func (d *Debouncer) Pending() bool {
	return d.handle.Pending()
}

// Cancel drops the pending call
func (d *Debouncer) Cancel() {
	d.handle.Stop()
	d.handle = nil
}
