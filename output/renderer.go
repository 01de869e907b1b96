package output

import (
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/lixenwraith/portfolio-term/audio"
	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/timer"
)

// Gate reports whether reveal steps may still produce output
type Gate func() bool

// Timing controls character reveal pacing
type Timing struct {
	CharBase   time.Duration
	CharJitter time.Duration
	LinePause  time.Duration
	BlankSkip  time.Duration
}

// DefaultTiming returns the stock reveal pacing
func DefaultTiming() Timing {
	return Timing{
		CharBase:   constants.RevealCharBase,
		CharJitter: constants.RevealCharJitter,
		LinePause:  constants.RevealLinePause,
		BlankSkip:  constants.RevealBlankSkip,
	}
}

// revealJob is one multi-line character reveal
type revealJob struct {
	lines []string
	style Style
	done  func()

	lineIdx int
	runes   []rune
	pos     int
	row     int
	epoch   uint64
}

// Renderer writes to a Log immediately or by character reveal
// Reveals run one at a time in FIFO order; only the head job schedules timers
type Renderer struct {
	log    *Log
	sched  timer.Scheduler
	cues   audio.CuePlayer
	gate   Gate
	rng    *rand.Rand
	timing Timing

	jobs       []*revealJob
	generation uint64
}

// Option configures a Renderer
type Option func(*Renderer)

// WithTiming overrides reveal pacing
func WithTiming(t Timing) Option {
	return func(r *Renderer) { r.timing = t }
}

// WithRand sets the jitter source
func WithRand(rng *rand.Rand) Option {
	return func(r *Renderer) { r.rng = rng }
}

// NewRenderer creates a renderer over log
// sched runs every reveal step; gate is consulted before each one
func NewRenderer(log *Log, sched timer.Scheduler, cues audio.CuePlayer, gate Gate, opts ...Option) *Renderer {
	if cues == nil {
		cues = audio.Silent{}
	}
	if gate == nil {
		gate = func() bool { return true }
	}
	r := &Renderer{
		log:    log,
		sched:  sched,
		cues:   cues,
		gate:   gate,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		timing: DefaultTiming(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Log returns the underlying log
func (r *Renderer) Log() *Log {
	return r.log
}

// Immediate appends one line verbatim
func (r *Renderer) Immediate(text string, style Style) int {
	return r.log.Append(Line{Text: text, Style: style})
}

// Reveal queues text for character reveal, done runs after the last line completes
// done is not called if the reveal is abandoned
func (r *Renderer) Reveal(text string, style Style, done func()) {
	job := &revealJob{
		lines: strings.Split(text, "\n"),
		style: style,
		done:  done,
	}
	r.jobs = append(r.jobs, job)
	if len(r.jobs) == 1 {
		r.startLine(r.generation)
	}
}

// Busy reports whether a reveal is active or queued
func (r *Renderer) Busy() bool {
	return len(r.jobs) > 0
}

// Queued returns the number of reveals waiting behind the active one
func (r *Renderer) Queued() int {
	if len(r.jobs) == 0 {
		return 0
	}
	return len(r.jobs) - 1
}

// Reset abandons every active and queued reveal, already scheduled steps become no-ops
func (r *Renderer) Reset() {
	r.jobs = nil
	r.generation++
}

// Clear empties the log and abandons reveals
func (r *Renderer) Clear() {
	r.Reset()
	r.log.Clear()
}

// live reports whether a step scheduled under gen may still write
func (r *Renderer) live(gen uint64) bool {
	if gen != r.generation || len(r.jobs) == 0 {
		return false
	}
	if !r.gate() {
		r.Reset()
		return false
	}
	return true
}

func (r *Renderer) startLine(gen uint64) {
	if !r.live(gen) {
		return
	}
	job := r.jobs[0]

	if job.lineIdx >= len(job.lines) {
		r.finish()
		return
	}

	text := job.lines[job.lineIdx]
	job.runes = []rune(text)
	job.pos = 0
	job.epoch = r.log.Epoch()
	job.row = r.log.Append(Line{Style: job.style})

	if len(job.runes) == 0 {
		job.lineIdx++
		r.sched.After(r.timing.BlankSkip, func() { r.startLine(gen) })
		return
	}
	r.sched.After(r.charDelay(), func() { r.step(gen) })
}

func (r *Renderer) step(gen uint64) {
	if !r.live(gen) {
		return
	}
	job := r.jobs[0]

	ch := job.runes[job.pos]
	if !r.log.Extend(job.row, job.epoch, string(ch)) {
		r.Reset()
		return
	}
	if !unicode.IsSpace(ch) {
		r.cues.Play(audio.CuePrint)
	}
	job.pos++

	if job.pos < len(job.runes) {
		r.sched.After(r.charDelay(), func() { r.step(gen) })
		return
	}

	job.lineIdx++
	r.sched.After(r.timing.LinePause, func() { r.startLine(gen) })
}

// finish pops the head job, starts the next one, then runs done
// done may queue another reveal
func (r *Renderer) finish() {
	job := r.jobs[0]
	r.jobs[0] = nil
	r.jobs = r.jobs[1:]

	if len(r.jobs) > 0 {
		r.startLine(r.generation)
	}
	if job.done != nil {
		job.done()
	}
}

func (r *Renderer) charDelay() time.Duration {
	d := r.timing.CharBase
	if r.timing.CharJitter > 0 {
		d += time.Duration(r.rng.Int63n(int64(r.timing.CharJitter)))
	}
	return d
}
