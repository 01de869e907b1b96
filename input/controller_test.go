package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/portfolio-term/audio"
)

type recordingExecutor struct {
	lines  []string
	closed bool
}

func (r *recordingExecutor) Execute(line string) bool {
	r.lines = append(r.lines, line)
	return true
}

func (r *recordingExecutor) CanAccept() bool {
	return !r.closed
}

func typeText(c *Controller, s string) {
	for _, r := range s {
		c.HandleKey(KeyEvent{Key: KeyRune, Rune: r})
	}
}

func press(c *Controller, k Key) bool {
	return c.HandleKey(KeyEvent{Key: k})
}

func newController() (*Controller, *recordingExecutor, *audio.Recorder) {
	exec := &recordingExecutor{}
	cues := audio.NewRecorder()
	return NewController(exec, cues), exec, cues
}

func TestEnterDispatchesAndClears(t *testing.T) {
	c, exec, _ := newController()

	typeText(c, "help")
	require.Equal(t, "help", c.Value())

	assert.True(t, press(c, KeyEnter))
	assert.Equal(t, []string{"help"}, exec.lines)
	assert.Equal(t, "", c.Value())
	assert.Equal(t, []string{"help"}, c.History().Entries())
	assert.Equal(t, 1, c.History().Cursor())
}

func TestEnterTrimsWhitespace(t *testing.T) {
	c, exec, _ := newController()

	typeText(c, "  about me ")
	press(c, KeyEnter)
	assert.Equal(t, []string{"about me"}, exec.lines)
}

func TestEmptyEnterIsNoop(t *testing.T) {
	c, exec, _ := newController()

	assert.False(t, press(c, KeyEnter))
	typeText(c, "   ")
	assert.False(t, press(c, KeyEnter))

	assert.Empty(t, exec.lines)
	assert.Zero(t, c.History().Len())
}

func TestArrowNavigationProperty(t *testing.T) {
	c, _, _ := newController()

	for _, cmd := range []string{"c1", "c2", "c3"} {
		typeText(c, cmd)
		press(c, KeyEnter)
	}

	var seen []string
	for i := 0; i < 3; i++ {
		press(c, KeyUp)
		seen = append(seen, c.Value())
	}
	for i := 0; i < 3; i++ {
		press(c, KeyDown)
		seen = append(seen, c.Value())
	}

	assert.Equal(t, []string{"c3", "c2", "c1", "c2", "c3", ""}, seen)
	assert.Equal(t, "", c.Value())
}

func TestArrowUpAtTopKeepsField(t *testing.T) {
	c, _, _ := newController()
	typeText(c, "only")
	press(c, KeyEnter)

	press(c, KeyUp)
	assert.False(t, press(c, KeyUp))
	assert.Equal(t, "only", c.Value())
}

func TestEveryKeyPlaysCue(t *testing.T) {
	c, _, cues := newController()

	typeText(c, "ls")
	press(c, KeyLeft)
	press(c, KeyOther)
	press(c, KeyEnter)

	assert.Equal(t, 5, cues.Count(audio.CueKeypress))
}

func TestEditingKeys(t *testing.T) {
	c, _, _ := newController()

	typeText(c, "hepl")
	press(c, KeyBackspace)
	press(c, KeyBackspace)
	typeText(c, "lp")
	assert.Equal(t, "help", c.Value())

	press(c, KeyHome)
	assert.Equal(t, 0, c.Cursor())
	press(c, KeyDelete)
	assert.Equal(t, "elp", c.Value())
	typeText(c, "h")
	press(c, KeyEnd)
	assert.Equal(t, 4, c.Cursor())
	press(c, KeyLeft)
	press(c, KeyRight)
	assert.Equal(t, 4, c.Cursor())
	assert.False(t, press(c, KeyDelete), "delete at end changes nothing")

	c.ClearLine()
	assert.Equal(t, "", c.Value())
	assert.False(t, press(c, KeyBackspace))
}

func TestSubmitMatchesTypedPath(t *testing.T) {
	c, exec, _ := newController()

	typeText(c, "partial")
	assert.True(t, c.Submit("projects"))

	assert.Equal(t, []string{"projects"}, exec.lines)
	assert.Equal(t, []string{"projects"}, c.History().Entries())
	assert.Equal(t, "", c.Value())

	assert.False(t, c.Submit("  "))
	assert.Len(t, exec.lines, 1)
}

func TestClosedExecutorIgnoresInput(t *testing.T) {
	c, exec, cues := newController()
	exec.closed = true

	typeText(c, "help")
	press(c, KeyEnter)
	assert.False(t, c.Submit("help"))

	assert.Equal(t, "", c.Value())
	assert.Empty(t, exec.lines)
	assert.Equal(t, 5, cues.Count(audio.CueKeypress), "cue still plays per key")
}
