// Package ui draws the portfolio page and terminal overlay on a tcell screen
// and routes key and mouse events to the page, the input line and the session.
package ui

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/portfolio-term/audio"
	"github.com/lixenwraith/portfolio-term/command"
	"github.com/lixenwraith/portfolio-term/input"
	"github.com/lixenwraith/portfolio-term/session"
	"github.com/lixenwraith/portfolio-term/timer"
)

// Options wires the application collaborators
type Options struct {
	Queue    *timer.Queue
	Registry *command.Registry
	Cues     audio.CuePlayer
	Session  session.Config
	Logger   *slog.Logger
	Rand     *rand.Rand // Reveal jitter, nil uses a time-seeded source
}

// App owns the page, the terminal session and the screen they draw on
type App struct {
	screen  tcell.Screen
	queue   *timer.Queue
	logger  *slog.Logger
	session *session.Controller
	input   *input.Controller
	page    *Page
	overlay *Overlay
	cues    audio.CuePlayer

	mouseDown bool // Button1 held, clicks fire on press only
}

// NewApp builds the page and a closed terminal session on screen
func NewApp(screen tcell.Screen, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Queue == nil {
		opts.Queue = timer.NewQueue(nil)
	}
	if opts.Registry == nil {
		opts.Registry = command.NewRegistry(opts.Queue.Now())
	}

	a := &App{
		screen: screen,
		queue:  opts.Queue,
		logger: opts.Logger,
		cues:   opts.Cues,
	}

	sessOpts := []session.Option{
		session.WithLogger(opts.Logger),
		session.WithTransitionHook(a.onTransition),
	}
	if opts.Rand != nil {
		sessOpts = append(sessOpts, session.WithRand(opts.Rand))
	}
	a.session = session.NewController(opts.Queue, opts.Registry, opts.Cues, opts.Session, sessOpts...)
	a.input = input.NewController(a.session, opts.Cues)
	a.page = NewPage(opts.Queue)
	a.overlay = NewOverlay(a.session, a.input)
	return a
}

func (a *App) onTransition(from, to session.State) {
	a.logger.Debug("terminal transition", "from", from, "to", to)
	if to == session.StateClosed {
		a.input.ClearLine()
	}
}

// Start runs page-load effects
func (a *App) Start() {
	a.page.Start()
}

// Session exposes the terminal session
func (a *App) Session() *session.Controller { return a.session }

// Input exposes the terminal input line
func (a *App) Input() *input.Controller { return a.input }

// Page exposes the page view
func (a *App) Page() *Page { return a.page }

// Overlay exposes the overlay view
func (a *App) Overlay() *Overlay { return a.overlay }

// Tick runs due timers and redraws, called once per frame
func (a *App) Tick() int {
	ran := a.queue.RunDue()
	a.Draw()
	return ran
}

// Draw renders the page and, when visible, the overlay
func (a *App) Draw() {
	w, h := a.screen.Size()
	a.page.Draw(Region{Screen: a.screen, W: w, H: h}, a.queue.Now())
	a.overlay.Draw(a.screen)
	a.screen.Show()
}

// Shutdown cancels all session work
func (a *App) Shutdown() {
	a.session.Shutdown()
}

// HandleEvent routes one screen event; returns false when the program should exit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	if a.session.Visible() {
		switch ev.Key() {
		case tcell.KeyEscape:
			a.session.Close()
		case tcell.KeyPgUp:
			a.overlay.ScrollLog(a.overlay.logRows / 2)
		case tcell.KeyPgDn:
			a.overlay.ScrollLog(-a.overlay.logRows / 2)
		default:
			a.input.HandleKey(translateKey(ev))
			return true
		}
		// Played after Close so StopAll does not cut it
		a.cues.Play(audio.CueKeypress)
		return true
	}

	_, h := a.screen.Size()
	switch ev.Key() {
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case '`', 't':
			a.session.Open()
		case 'm':
			a.toggleMute()
		case 'j':
			a.page.ScrollBy(1)
		case 'k':
			a.page.ScrollBy(-1)
		case '1', '2', '3', '4':
			if i := int(ev.Rune() - '1'); i < len(sections) {
				a.page.JumpTo(sections[i].id)
			}
		}
	case tcell.KeyDown:
		a.page.ScrollBy(1)
	case tcell.KeyUp:
		a.page.ScrollBy(-1)
	case tcell.KeyPgDn:
		a.page.ScrollBy(h - navbarHeight)
	case tcell.KeyPgUp:
		a.page.ScrollBy(-(h - navbarHeight))
	case tcell.KeyHome:
		a.page.ScrollHome()
	case tcell.KeyEnd:
		a.page.ScrollEnd()
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0
	click := pressed && !a.mouseDown
	a.mouseDown = pressed

	if a.session.Visible() {
		switch {
		case buttons&tcell.WheelUp != 0:
			a.overlay.ScrollLog(1)
		case buttons&tcell.WheelDown != 0:
			a.overlay.ScrollLog(-1)
		case click:
			closeHit, cmd := a.overlay.Hit(x, y)
			switch {
			case closeHit:
				a.session.Close()
			case cmd != "":
				a.input.Submit(cmd)
			}
		}
		return
	}

	a.page.Pointer(x, y)
	switch {
	case buttons&tcell.WheelUp != 0:
		a.page.ScrollBy(-1)
	case buttons&tcell.WheelDown != 0:
		a.page.ScrollBy(1)
	case click:
		if id, ok := a.page.LinkAt(x, y); ok {
			a.page.JumpTo(id)
		}
	}
}

// muter is implemented by cue players that can be silenced at runtime
type muter interface {
	SetMuted(bool)
	Muted() bool
}

func (a *App) toggleMute() {
	if m, ok := a.cues.(muter); ok {
		m.SetMuted(!m.Muted())
		a.logger.Info("audio mute toggled", "muted", m.Muted())
	}
}

// Now returns the queue clock, for frame-synchronized effects
func (a *App) Now() time.Time {
	return a.queue.Now()
}
