package ui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/portfolio-term/audio"
	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/output"
	"github.com/lixenwraith/portfolio-term/session"
	"github.com/lixenwraith/portfolio-term/timer"
)

type harness struct {
	t      *testing.T
	screen tcell.SimulationScreen
	clock  *timer.ManualClock
	queue  *timer.Queue
	cues   *audio.Recorder
	app    *App
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	clock := timer.NewManualClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	q := timer.NewQueue(clock)
	cues := audio.NewRecorder()

	app := NewApp(screen, Options{
		Queue:   q,
		Cues:    cues,
		Session: session.DefaultConfig(),
		Rand:    rand.New(rand.NewSource(1)),
	})
	app.Draw()

	return &harness{t: t, screen: screen, clock: clock, queue: q, cues: cues, app: app}
}

func (h *harness) run(d time.Duration) {
	timer.RunFor(h.queue, h.clock, d)
	h.app.Draw()
}

func (h *harness) drain() {
	timer.Drain(h.queue, h.clock, 100_000)
	h.app.Draw()
}

func (h *harness) key(k tcell.Key) bool {
	ok := h.app.HandleEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
	h.app.Draw()
	return ok
}

func (h *harness) press(r rune) bool {
	ok := h.app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	h.app.Draw()
	return ok
}

func (h *harness) typeLine(s string) {
	for _, r := range s {
		h.press(r)
	}
	h.key(tcell.KeyEnter)
}

func (h *harness) click(x, y int) {
	h.app.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	h.app.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	h.app.Draw()
}

// openTerminal opens the session and lets the welcome sequence finish
func (h *harness) openTerminal() {
	h.press('`')
	require.Equal(h.t, session.StateOpening, h.app.Session().State())
	h.drain()
	require.True(h.t, h.app.Session().IsOpen())
}

// row returns the contents of screen row y
func (h *harness) row(y int) string {
	w, _ := h.screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, width := h.screen.GetContent(x, y)
		b.WriteRune(r)
		if width > 1 {
			x += width - 1
		}
	}
	return b.String()
}

// text returns the screen contents, one line per row
func (h *harness) text() string {
	_, ht := h.screen.Size()
	var b strings.Builder
	for y := 0; y < ht; y++ {
		b.WriteString(h.row(y))
		b.WriteByte('\n')
	}
	return b.String()
}

func TestOpenTerminalFromPage(t *testing.T) {
	h := newHarness(t)
	assert.NotContains(t, h.text(), "[x]")

	h.press('`')
	assert.Equal(t, session.StateOpening, h.app.Session().State())
	assert.Equal(t, 1, h.cues.Count(audio.CueBoot))
	assert.Contains(t, h.text(), "booting...")

	h.drain()
	screen := h.text()
	assert.Contains(t, screen, "[x]")
	assert.Contains(t, screen, constants.WelcomeMessages[len(constants.WelcomeMessages)-1])
	for _, cmd := range constants.ShortcutCommands {
		assert.Contains(t, screen, "[ "+cmd+" ]")
	}
}

func TestTypedCommandRendersOnScreen(t *testing.T) {
	h := newHarness(t)
	h.openTerminal()

	h.typeLine("whoami")
	assert.Equal(t, "", h.app.Input().Value())
	h.drain()

	screen := h.text()
	assert.Contains(t, screen, "root@portfolio:~$ whoami")
	assert.Contains(t, screen, "visitor")
	assert.Equal(t, []string{"whoami"}, h.app.Input().History().Entries())
}

func TestInputLineShowsTypedText(t *testing.T) {
	h := newHarness(t)
	h.openTerminal()

	h.press('l')
	h.press('s')
	assert.Equal(t, "ls", h.app.Input().Value())
	assert.Contains(t, h.text(), "root@portfolio:~$ ls")
}

func TestPageKeysGoToInputWhileOpen(t *testing.T) {
	h := newHarness(t)
	h.openTerminal()

	assert.True(t, h.press('q'), "q is typed, not quit")
	assert.Equal(t, "q", h.app.Input().Value())
}

func TestQuitKeys(t *testing.T) {
	h := newHarness(t)
	assert.False(t, h.press('q'))
	assert.False(t, h.key(tcell.KeyCtrlC))
}

func TestEscapeClosesAndClearsInput(t *testing.T) {
	h := newHarness(t)
	h.openTerminal()
	h.press('a')
	h.press('b')

	h.key(tcell.KeyEscape)
	assert.Equal(t, session.StateClosing, h.app.Session().State())

	h.run(constants.CloseDelay)
	assert.Equal(t, session.StateClosed, h.app.Session().State())
	assert.Equal(t, "", h.app.Input().Value())
	assert.Equal(t, 0, h.app.Session().Log().Len())
	assert.Equal(t, 0, h.app.Session().Pending())
	assert.NotContains(t, h.text(), "[x]")
}

func TestOverlayKeysPlayKeypress(t *testing.T) {
	h := newHarness(t)
	h.openTerminal()
	h.cues.Reset()

	h.key(tcell.KeyPgUp)
	h.key(tcell.KeyPgDn)
	assert.Equal(t, 2, h.cues.Count(audio.CueKeypress))

	h.press('l')
	assert.Equal(t, 3, h.cues.Count(audio.CueKeypress), "typed keys play exactly one cue")

	h.key(tcell.KeyEscape)
	assert.Equal(t, 4, h.cues.Count(audio.CueKeypress))
	assert.Equal(t, session.StateClosing, h.app.Session().State())
	require.NotEmpty(t, h.cues.Played)
	assert.Equal(t, audio.CueKeypress, h.cues.Played[len(h.cues.Played)-1])
}

func TestShortcutButtonSubmitsCommand(t *testing.T) {
	h := newHarness(t)
	h.openTerminal()

	var about button
	for _, b := range h.app.Overlay().buttons {
		if b.command == "about" {
			about = b
		}
	}
	require.Equal(t, "about", about.command)

	h.click(about.rect.X+1, about.rect.Y)
	assert.Equal(t, []string{"about"}, h.app.Input().History().Entries())
	assert.Contains(t, h.app.Session().Log().Texts(), "root@portfolio:~$ about")
}

func TestHeldButtonClicksOnce(t *testing.T) {
	h := newHarness(t)
	h.openTerminal()

	b := h.app.Overlay().buttons[0]
	h.app.HandleEvent(tcell.NewEventMouse(b.rect.X, b.rect.Y, tcell.Button1, tcell.ModNone))
	h.app.HandleEvent(tcell.NewEventMouse(b.rect.X+1, b.rect.Y, tcell.Button1, tcell.ModNone))
	assert.Equal(t, 1, h.app.Input().History().Len())
}

func TestCloseButton(t *testing.T) {
	h := newHarness(t)
	h.openTerminal()

	btn := h.app.Overlay().closeBtn
	h.click(btn.X, btn.Y)
	assert.Equal(t, session.StateClosing, h.app.Session().State())
}

func TestClearButtonEmptiesLog(t *testing.T) {
	h := newHarness(t)
	h.openTerminal()
	require.Positive(t, h.app.Session().Log().Len())

	h.app.Input().Submit("clear")
	h.app.Draw()
	assert.Equal(t, 0, h.app.Session().Log().Len())
	assert.NotContains(t, h.text(), constants.WelcomeMessages[0])
}

func TestLogScrollBack(t *testing.T) {
	h := newHarness(t)
	h.openTerminal()

	log := h.app.Session().Log()
	for i := 0; i < 60; i++ {
		log.Append(output.Line{Text: "filler", Style: output.StyleOutput})
	}
	log.Append(output.Line{Text: "newest", Style: output.StyleOutput})
	h.app.Draw()
	assert.Contains(t, h.text(), "newest")

	h.key(tcell.KeyPgUp)
	assert.Positive(t, log.Back())
	screen := h.text()
	assert.NotContains(t, screen, "newest")
	assert.Contains(t, screen, "[scrolled]")

	for i := 0; i < 20; i++ {
		h.key(tcell.KeyPgUp)
	}
	assert.Equal(t, h.app.Overlay().ScrollLimit(), log.Back(), "clamped at the oldest row")

	h.key(tcell.KeyPgDn)
	log.Append(output.Line{Text: "latest"})
	h.app.Draw()
	assert.Equal(t, 0, log.Back(), "new output snaps to the newest row")
	assert.Contains(t, h.text(), "latest")
}

func TestHeadingTypesOnLoad(t *testing.T) {
	h := newHarness(t)
	h.app.Start()

	h.run(constants.HeadingStartDelay - time.Millisecond)
	assert.Equal(t, "", h.app.Page().Heading())
	assert.NotContains(t, h.row(3), siteName)

	h.run(time.Millisecond + time.Duration(len(siteName))*constants.HeadingCharInterval)
	assert.Equal(t, siteName, h.app.Page().Heading())
	assert.Contains(t, h.row(3), siteName)
}

func TestStaggeredAnimateIn(t *testing.T) {
	h := newHarness(t)
	h.app.Start()
	h.run(0)
	assert.True(t, h.app.Page().Animated(0))
	assert.False(t, h.app.Page().Animated(1))

	h.run(constants.AnimateInStagger * time.Duration(len(skills)+len(projects)))
	for i := 0; i < len(skills)+len(projects); i++ {
		assert.True(t, h.app.Page().Animated(i), "block %d", i)
	}
}

func TestPageScrollDebouncesNavbar(t *testing.T) {
	h := newHarness(t)
	page := h.app.Page()

	h.key(tcell.KeyPgDn)
	assert.Positive(t, page.Offset())
	assert.False(t, page.NavbarScrolled(), "navbar waits for the debounce")

	h.run(constants.ScrollDebounce)
	assert.True(t, page.NavbarScrolled())

	h.key(tcell.KeyHome)
	h.run(constants.ScrollDebounce)
	assert.Equal(t, 0, page.Offset())
	assert.False(t, page.NavbarScrolled())
}

func TestNavbarLinkJumpsToSection(t *testing.T) {
	h := newHarness(t)
	page := h.app.Page()

	var target navLink
	ok := false
	for _, l := range page.links {
		if l.id == "projects" {
			target, ok = l, true
		}
	}
	require.True(t, ok)

	h.click(target.rect.X, target.rect.Y)
	id, ok := page.LinkAt(target.rect.X, target.rect.Y)
	require.True(t, ok)
	assert.Equal(t, "projects", id)
	assert.Positive(t, page.Offset())

	h.run(constants.ScrollDebounce)
	assert.True(t, page.InView("projects"))
}

func TestSectionsStayInView(t *testing.T) {
	h := newHarness(t)
	page := h.app.Page()
	assert.True(t, page.InView("about"))

	page.ScrollEnd()
	h.app.Draw()
	assert.True(t, page.InView("contact"))

	page.ScrollHome()
	h.app.Draw()
	assert.True(t, page.InView("contact"), "in-view is sticky")
}

func TestCardTiltFollowsPointer(t *testing.T) {
	h := newHarness(t)
	h.app.Start()
	h.drain()

	page := h.app.Page()
	page.JumpTo("projects")
	h.app.Draw()
	require.NotEmpty(t, page.cardRects)

	card := page.cardRects[0]
	h.app.HandleEvent(tcell.NewEventMouse(card.X, card.Y, tcell.ButtonNone, tcell.ModNone))
	h.app.Draw()
	tilt := page.CardTransform(0)
	assert.False(t, tilt.Resting())
	assert.Positive(t, tilt.RotateY)

	h.app.HandleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	h.app.Draw()
	assert.True(t, page.CardTransform(0).Resting())
}

func TestShutdownLeavesNoTimers(t *testing.T) {
	h := newHarness(t)
	h.openTerminal()
	h.typeLine("hack")
	require.Positive(t, h.app.Session().Pending())

	h.app.Shutdown()
	assert.Equal(t, 0, h.app.Session().Pending())
	assert.Equal(t, session.StateClosed, h.app.Session().State())
}

func TestSmallScreenStillDraws(t *testing.T) {
	h := newHarness(t)
	h.screen.SetSize(20, 8)
	h.openTerminal()
	h.typeLine("help")
	h.drain()
	assert.NotPanics(t, h.app.Draw)
}

type mutableCues struct {
	*audio.Recorder
	muted bool
}

func (m *mutableCues) SetMuted(v bool) { m.muted = v }
func (m *mutableCues) Muted() bool     { return m.muted }

func TestMuteToggle(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(80, 24)

	cues := &mutableCues{Recorder: audio.NewRecorder()}
	app := NewApp(screen, Options{Cues: cues, Session: session.DefaultConfig()})

	app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	assert.True(t, cues.Muted())
	app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	assert.False(t, cues.Muted())
}
