package input

import (
	"strings"

	"github.com/lixenwraith/portfolio-term/audio"
)

// Key identifies the editing action of a key event
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyOther
)

// KeyEvent is a terminal-independent key press
type KeyEvent struct {
	Key  Key
	Rune rune // KeyRune only
}

// Executor runs submitted command lines
type Executor interface {
	Execute(line string) bool
	CanAccept() bool
}

// Controller edits the input line, browses history and dispatches commands
type Controller struct {
	field   Field
	history *History
	exec    Executor
	cues    audio.CuePlayer
}

// NewController creates a controller dispatching to exec
func NewController(exec Executor, cues audio.CuePlayer) *Controller {
	if cues == nil {
		cues = audio.Silent{}
	}
	return &Controller{
		history: NewHistory(),
		exec:    exec,
		cues:    cues,
	}
}

// HandleKey applies one key event, reports whether the line changed or a command ran
// Every key plays the keypress cue
func (c *Controller) HandleKey(ev KeyEvent) bool {
	c.cues.Play(audio.CueKeypress)

	if !c.exec.CanAccept() {
		return false
	}

	switch ev.Key {
	case KeyEnter:
		return c.submit()
	case KeyUp:
		if cmd, ok := c.history.Prev(); ok {
			c.field.SetValue(cmd)
			return true
		}
	case KeyDown:
		if cmd, ok := c.history.Next(); ok {
			c.field.SetValue(cmd)
			return true
		}
	case KeyLeft:
		c.field.MoveLeft()
	case KeyRight:
		c.field.MoveRight()
	case KeyHome:
		c.field.MoveHome()
	case KeyEnd:
		c.field.MoveEnd()
	case KeyBackspace:
		return c.field.DeleteBackward()
	case KeyDelete:
		return c.field.DeleteForward()
	case KeyRune:
		if ev.Rune != 0 {
			c.field.Insert(ev.Rune)
			return true
		}
	}
	return false
}

// Submit runs cmd through the same path as typing it and pressing Enter
func (c *Controller) Submit(cmd string) bool {
	if !c.exec.CanAccept() {
		return false
	}
	c.field.SetValue(cmd)
	return c.submit()
}

func (c *Controller) submit() bool {
	line := strings.TrimSpace(c.field.Value())
	if line == "" {
		return false
	}

	c.history.Add(line)
	c.field.Clear()
	c.exec.Execute(line)
	return true
}

// Value returns the current input line
func (c *Controller) Value() string {
	return c.field.Value()
}

// Cursor returns the cursor rune offset in the input line
func (c *Controller) Cursor() int {
	return c.field.Cursor
}

// History exposes submitted commands
func (c *Controller) History() *History {
	return c.history
}

// ClearLine empties the input line, history is kept
func (c *Controller) ClearLine() {
	c.field.Clear()
	c.history.ResetCursor()
}
