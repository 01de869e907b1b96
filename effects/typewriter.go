package effects

import (
	"time"

	"github.com/lixenwraith/portfolio-term/timer"
)

// Typewriter reveals a fixed string one rune at a time
type Typewriter struct {
	text     []rune
	shown    int
	sched    timer.Scheduler
	delay    time.Duration
	interval time.Duration
	handle   *timer.Handle
	started  bool
}

// NewTypewriter prepares a reveal of text. Start schedules the first rune after delay,
// then one rune per interval
func NewTypewriter(text string, sched timer.Scheduler, delay, interval time.Duration) *Typewriter {
	return &Typewriter{
		text:     []rune(text),
		sched:    sched,
		delay:    delay,
		interval: interval,
	}
}

// Start begins the reveal; a second call is ignored
func (t *Typewriter) Start() {
	if t.started {
		return
	}
	t.started = true
	t.handle = t.sched.After(t.delay, t.tick)
}

func (t *Typewriter) tick() {
	if t.shown >= len(t.text) {
		t.handle = nil
		return
	}
	t.shown++
	if t.shown < len(t.text) {
		t.handle = t.sched.After(t.interval, t.tick)
		return
	}
	t.handle = nil
}

// Stop abandons the reveal at its current position
func (t *Typewriter) Stop() {
	t.handle.Stop()
	t.handle = nil
}

// Skip shows the full text immediately
func (t *Typewriter) Skip() {
	t.Stop()
	t.started = true
	t.shown = len(t.text)
}

// Visible returns the revealed prefix
func (t *Typewriter) Visible() string {
	return string(t.text[:t.shown])
}

// Text returns the full target string
func (t *Typewriter) Text() string {
	return string(t.text)
}

// Done reports whether every rune is shown
func (t *Typewriter) Done() bool {
	return t.shown == len(t.text)
}

// Active reports whether a reveal step is scheduled
func (t *Typewriter) Active() bool {
	return t.handle.Pending()
}
