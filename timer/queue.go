package timer

import (
	"container/heap"
	"time"
)

// Scheduler defers a callback by a duration
type Scheduler interface {
	After(d time.Duration, fn func()) *Handle
}

// Handle identifies one scheduled continuation
type Handle struct {
	due     time.Time
	seq     uint64
	fn      func()
	index   int // Heap position, -1 once fired or stopped
	stopped bool
	queue   *Queue
}

// Stop cancels the continuation, reports whether it was still pending
func (h *Handle) Stop() bool {
	if h == nil || h.stopped || h.index < 0 {
		return false
	}
	h.stopped = true
	heap.Remove(&h.queue.items, h.index)
	h.fn = nil
	return true
}

// Pending reports whether the continuation has neither fired nor been stopped
func (h *Handle) Pending() bool {
	return h != nil && !h.stopped && h.index >= 0
}

// Due returns the scheduled fire time
func (h *Handle) Due() time.Time {
	return h.due
}

// Queue orders continuations by (due, seq)
// Not safe for concurrent use: schedule and run from one goroutine
type Queue struct {
	clock Clock
	items handleHeap
	seq   uint64
}

// NewQueue creates a queue reading time from clock, nil means SystemClock
func NewQueue(clock Clock) *Queue {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Queue{clock: clock}
}

// Now returns the queue clock time
func (q *Queue) Now() time.Time {
	return q.clock.Now()
}

// After schedules fn to run once d has elapsed, negative d is treated as zero
func (q *Queue) After(d time.Duration, fn func()) *Handle {
	if d < 0 {
		d = 0
	}
	q.seq++
	h := &Handle{
		due:   q.clock.Now().Add(d),
		seq:   q.seq,
		fn:    fn,
		queue: q,
	}
	heap.Push(&q.items, h)
	return h
}

// RunDue executes every continuation due at the current clock time
// Continuations scheduled by a callback run in the same pass if already due
// Returns the number of callbacks executed
func (q *Queue) RunDue() int {
	now := q.clock.Now()
	ran := 0
	for len(q.items) > 0 {
		next := q.items[0]
		if next.due.After(now) {
			break
		}
		heap.Pop(&q.items)
		fn := next.fn
		next.fn = nil
		if fn != nil {
			fn()
			ran++
		}
	}
	return ran
}

// Len returns the number of pending continuations
func (q *Queue) Len() int {
	return len(q.items)
}

// NextDue returns the earliest pending due time
func (q *Queue) NextDue() (time.Time, bool) {
	if len(q.items) == 0 {
		return time.Time{}, false
	}
	return q.items[0].due, true
}

// handleHeap implements heap.Interface over handles
type handleHeap []*Handle

func (h handleHeap) Len() int { return len(h) }

func (h handleHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}

func (h handleHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *handleHeap) Push(x any) {
	item := x.(*Handle)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *handleHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}
