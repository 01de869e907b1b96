package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/effects"
	"github.com/lixenwraith/portfolio-term/input"
	"github.com/lixenwraith/portfolio-term/output"
	"github.com/lixenwraith/portfolio-term/session"
)

const closeLabel = "[x]"

// visualRow is one wrapped screen row of the output log
type visualRow struct {
	text  string
	style output.Style
}

// button is a clickable shortcut, rect in screen coordinates
type button struct {
	command string
	rect    effects.Rect
}

// Overlay draws the terminal window over the page
type Overlay struct {
	session *session.Controller
	input   *input.Controller

	frame    effects.Rect // Last drawn, screen coordinates
	closeBtn effects.Rect
	buttons  []button
	logRows  int // Visible log rows in the last frame
	wrapped  int // Wrapped log rows in the last frame
}

// NewOverlay creates the overlay view for a session and its input line
func NewOverlay(s *session.Controller, in *input.Controller) *Overlay {
	return &Overlay{session: s, input: in}
}

// frameFor computes the overlay rectangle for a screen size
func frameFor(w, h int) effects.Rect {
	fw := max(w-2*constants.OverlayMarginX, min(constants.OverlayMinWidth, w))
	fh := max(h-2*constants.OverlayMarginY, min(constants.OverlayMinHeight, h))
	return effects.Rect{X: (w - fw) / 2, Y: (h - fh) / 2, W: fw, H: fh}
}

// wrapLog flattens the log into screen rows of at most width cells
func wrapLog(lines []output.Line, width int) []visualRow {
	rows := make([]visualRow, 0, len(lines))
	for _, line := range lines {
		for _, text := range WrapText(line.Text, width) {
			rows = append(rows, visualRow{text: text, style: line.Style})
		}
	}
	return rows
}

// Draw renders the overlay when the session is visible
func (o *Overlay) Draw(screen tcell.Screen) {
	o.buttons = o.buttons[:0]
	if !o.session.Visible() {
		screen.HideCursor()
		return
	}

	sw, sh := screen.Size()
	o.frame = frameFor(sw, sh)
	full := Region{Screen: screen, W: sw, H: sh}
	win := full.Sub(o.frame.X, o.frame.Y, o.frame.W, o.frame.H)
	if win.W < 4 || win.H < 5 {
		return
	}

	frameStyle := styleTermFrame
	if !o.session.IsOpen() {
		frameStyle = styleTermDim
	}
	win.Fill(' ', styleTerm)
	win.Box(frameStyle)
	o.drawTitle(win, frameStyle)

	inner := win.Sub(1, 1, win.W-2, win.H-2)
	logArea := inner.Sub(0, 0, inner.W, inner.H-2)

	switch o.session.State() {
	case session.StateOpening:
		logArea.TextCenter(logArea.H/2, "booting...", styleTermDim)
	default:
		o.drawLog(logArea)
	}

	o.drawInput(inner, inner.H-2, screen)
	o.drawButtons(inner, inner.H-1)
}

func (o *Overlay) drawTitle(win Region, style tcell.Style) {
	title := " " + o.session.Prompt() + " "
	win.Text(2, 0, title, style)

	x := win.W - runewidth.StringWidth(closeLabel) - 2
	win.Text(x, 0, closeLabel, styleCloseBtn)
	o.closeBtn = effects.Rect{X: win.X + x, Y: win.Y, W: runewidth.StringWidth(closeLabel), H: 1}
}

func (o *Overlay) drawLog(area Region) {
	log := o.session.Log()
	rows := wrapLog(log.Lines(), area.W)
	o.logRows = area.H
	o.wrapped = len(rows)

	end := len(rows) - min(log.Back(), o.ScrollLimit())
	start := max(end-area.H, 0)
	for i, row := range rows[start:end] {
		area.Text(0, i, row.text, lineStyle(row.style))
	}

	if log.Back() > 0 {
		area.TextRight(0, "[scrolled]", styleTermDim)
	}
}

// ScrollLimit is how far back the log view can go in the last frame
func (o *Overlay) ScrollLimit() int {
	return max(o.wrapped-o.logRows, 0)
}

// ScrollLog moves the log view n rows back (positive) or forward
func (o *Overlay) ScrollLog(n int) {
	o.session.Log().ScrollBy(n, o.ScrollLimit())
}

func (o *Overlay) drawInput(inner Region, y int, screen tcell.Screen) {
	prompt := o.session.Prompt() + " "
	px := inner.Text(0, y, prompt, lineStyle(output.StylePrompt))

	if !o.session.IsOpen() {
		screen.HideCursor()
		return
	}

	value := []rune(o.input.Value())
	cursor := o.input.Cursor()
	avail := inner.W - px - 1
	if avail <= 0 {
		screen.HideCursor()
		return
	}

	// Scroll the line horizontally to keep the cursor visible
	first := 0
	for runewidth.StringWidth(string(value[first:cursor])) > avail {
		first++
	}
	inner.Text(px, y, string(value[first:]), styleTerm)

	cx := px + runewidth.StringWidth(string(value[first:cursor]))
	screen.ShowCursor(inner.X+cx, inner.Y+y)
}

func (o *Overlay) drawButtons(inner Region, y int) {
	x := 0
	for _, cmd := range constants.ShortcutCommands {
		label := "[ " + cmd + " ]"
		w := runewidth.StringWidth(label)
		if x+w > inner.W {
			break
		}
		inner.Text(x, y, label, styleButton)
		o.buttons = append(o.buttons, button{
			command: cmd,
			rect:    effects.Rect{X: inner.X + x, Y: inner.Y + y, W: w, H: 1},
		})
		x += w + 1
	}
}

// Hit reports what lies under screen cell (x, y): the close button, a shortcut command, or neither
func (o *Overlay) Hit(x, y int) (closeHit bool, command string) {
	if !o.session.Visible() {
		return false, ""
	}
	if o.closeBtn.Contains(x, y) {
		return true, ""
	}
	for _, b := range o.buttons {
		if b.rect.Contains(x, y) {
			return false, b.command
		}
	}
	return false, ""
}

// Contains reports whether (x, y) lies inside the last drawn overlay
func (o *Overlay) Contains(x, y int) bool {
	return o.session.Visible() && o.frame.Contains(x, y)
}
