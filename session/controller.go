package session

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/lixenwraith/portfolio-term/audio"
	"github.com/lixenwraith/portfolio-term/command"
	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/output"
	"github.com/lixenwraith/portfolio-term/timer"
)

const notFoundFormat = "Command not found: %s. Type 'help' for available commands."

// Controller runs the terminal overlay state machine
// Single-threaded: call from the goroutine that drives the timer queue
type Controller struct {
	cfg      Config
	state    State
	timers   *tracker
	registry *command.Registry
	log      *output.Log
	renderer *output.Renderer
	cues     audio.CuePlayer
	logger   *slog.Logger
	rng      *rand.Rand

	onTransition func(from, to State)
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the structured logger
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithTransitionHook registers a callback for every state change
func WithTransitionHook(fn func(from, to State)) Option {
	return func(c *Controller) { c.onTransition = fn }
}

// WithRand seeds reveal jitter
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) { c.rng = rng }
}

// NewController creates a closed session scheduling on q
func NewController(q *timer.Queue, registry *command.Registry, cues audio.CuePlayer, cfg Config, opts ...Option) *Controller {
	if cues == nil {
		cues = audio.Silent{}
	}
	c := &Controller{
		cfg:      cfg,
		state:    StateClosed,
		timers:   newTracker(q),
		registry: registry,
		log:      output.NewLog(),
		cues:     cues,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	rOpts := []output.Option{output.WithTiming(cfg.Reveal)}
	if c.rng != nil {
		rOpts = append(rOpts, output.WithRand(c.rng))
	}
	c.renderer = output.NewRenderer(c.log, c.timers, cues, c.IsOpen, rOpts...)
	return c
}

// --- Lifecycle ---

// Open starts the boot sequence from Closed
// Returns false when already opening, open or closing
func (c *Controller) Open() bool {
	if c.state != StateClosed {
		return false
	}

	c.transition(StateOpening)
	c.cues.Play(audio.CueBoot)

	c.timers.After(c.cfg.Timing.OpenDelay, func() {
		if c.state != StateOpening {
			return
		}
		c.transition(StateOpen)
		c.startWelcome()
	})
	return true
}

// Close cancels all pending output and hides the overlay after the close delay
// Returns false when not opening or open
func (c *Controller) Close() bool {
	if c.state != StateOpen && c.state != StateOpening {
		return false
	}

	c.transition(StateClosing)
	cancelled := c.timers.CancelAll()
	c.renderer.Reset()
	c.cues.StopAll()
	c.logger.Debug("session closing", "cancelled_timers", cancelled)

	c.timers.After(c.cfg.Timing.CloseDelay, func() {
		c.renderer.Clear()
		c.transition(StateClosed)
	})
	return true
}

// Toggle opens a closed session and closes an open one
func (c *Controller) Toggle() bool {
	if c.state == StateClosed {
		return c.Open()
	}
	return c.Close()
}

// Shutdown drops everything immediately, used on program exit
func (c *Controller) Shutdown() {
	c.timers.CancelAll()
	c.renderer.Clear()
	c.cues.StopAll()
	if c.state != StateClosed {
		c.transition(StateClosed)
	}
}

func (c *Controller) startWelcome() {
	for i, msg := range c.cfg.Welcome {
		delay := c.cfg.Timing.WelcomeStagger * time.Duration(i)
		c.timers.After(delay, func() {
			if !c.IsOpen() {
				return
			}
			c.renderer.Reveal(msg, output.StyleSuccess, nil)
		})
	}
}

func (c *Controller) transition(to State) {
	from := c.state
	c.state = to
	c.logger.Debug("session transition", "from", from.String(), "to", to.String())
	if c.onTransition != nil {
		c.onTransition(from, to)
	}
}

// --- Commands ---

// CanAccept reports whether input is routed to Execute
func (c *Controller) CanAccept() bool {
	return c.IsOpen()
}

// Execute echoes line and runs the matching command
// Returns false when the session is not open or line is blank
func (c *Controller) Execute(line string) bool {
	if !c.IsOpen() {
		return false
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	c.renderer.Immediate(c.cfg.Prompt+" "+line, output.StylePrompt)

	resp, ok := c.registry.Lookup(line)
	if !ok {
		token := command.Token(line)
		c.logger.Info("unknown command", "token", token)
		c.cues.Play(audio.CueError)
		c.afterResponseDelay(func() {
			c.renderer.Immediate(fmt.Sprintf(notFoundFormat, token), output.StyleError)
		})
		return true
	}

	c.logger.Info("command", "token", command.Token(line))

	switch resp.Kind {
	case command.KindSignal:
		c.signal(resp.Signal)
	case command.KindLiteral:
		c.cues.Play(audio.CueSuccess)
		c.afterResponseDelay(func() {
			c.renderer.Reveal(resp.Text, output.StyleOutput, nil)
		})
	case command.KindSequence:
		c.cues.Play(audio.CueSuccess)
		c.playSequence(resp.Lines)
	}
	return true
}

func (c *Controller) signal(s command.Signal) {
	switch s {
	case command.ClearOutput:
		cancelled := c.timers.CancelAll()
		c.renderer.Clear()
		c.logger.Debug("output cleared", "cancelled_timers", cancelled)
	case command.CloseSession:
		c.Close()
	}
}

// playSequence renders whole lines on a fixed stagger after the response delay
func (c *Controller) playSequence(lines []string) {
	for i, line := range lines {
		delay := c.cfg.Timing.ResponseDelay + c.cfg.Timing.SequenceStagger*time.Duration(i)
		c.timers.After(delay, func() {
			if !c.IsOpen() {
				return
			}
			c.renderer.Immediate(line, output.StyleSuccess)
			if strings.Contains(line, constants.ProgressGlyph) {
				c.cues.Play(audio.CueBoot)
			}
		})
	}
}

func (c *Controller) afterResponseDelay(fn func()) {
	c.timers.After(c.cfg.Timing.ResponseDelay, func() {
		if !c.IsOpen() {
			return
		}
		fn()
	})
}

// --- Queries ---

// State returns the lifecycle phase
func (c *Controller) State() State {
	return c.state
}

// IsOpen reports whether the session accepts commands and renders output
func (c *Controller) IsOpen() bool {
	return c.state == StateOpen
}

// Visible reports whether the overlay is shown
func (c *Controller) Visible() bool {
	return c.state != StateClosed
}

// IsTyping reports whether a character reveal is active or queued
func (c *Controller) IsTyping() bool {
	return c.renderer.Busy()
}

// Pending returns the number of scheduled continuations owned by the session
func (c *Controller) Pending() int {
	return c.timers.Len()
}

// Log returns the output log
func (c *Controller) Log() *output.Log {
	return c.log
}

// Registry returns the command table
func (c *Controller) Registry() *command.Registry {
	return c.registry
}

// Prompt returns the echo prefix
func (c *Controller) Prompt() string {
	return c.cfg.Prompt
}
