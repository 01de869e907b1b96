package session

import (
	"time"

	"github.com/lixenwraith/portfolio-term/timer"
)

// tracker schedules on a queue and remembers every handle until it fires
type tracker struct {
	queue   *timer.Queue
	pending map[*timer.Handle]struct{}
}

func newTracker(q *timer.Queue) *tracker {
	return &tracker{
		queue:   q,
		pending: make(map[*timer.Handle]struct{}),
	}
}

// After implements timer.Scheduler
func (t *tracker) After(d time.Duration, fn func()) *timer.Handle {
	var h *timer.Handle
	h = t.queue.After(d, func() {
		delete(t.pending, h)
		fn()
	})
	t.pending[h] = struct{}{}
	return h
}

// CancelAll stops every pending handle, returns how many were stopped
func (t *tracker) CancelAll() int {
	n := 0
	for h := range t.pending {
		if h.Stop() {
			n++
		}
	}
	clear(t.pending)
	return n
}

// Len returns the number of pending handles
func (t *tracker) Len() int {
	return len(t.pending)
}
