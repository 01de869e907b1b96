package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/portfolio-term/input"
)

// translateKey maps a tcell key to the terminal-independent input event
func translateKey(ev *tcell.EventKey) input.KeyEvent {
	switch ev.Key() {
	case tcell.KeyRune:
		return input.KeyEvent{Key: input.KeyRune, Rune: ev.Rune()}
	case tcell.KeyEnter:
		return input.KeyEvent{Key: input.KeyEnter}
	case tcell.KeyUp:
		return input.KeyEvent{Key: input.KeyUp}
	case tcell.KeyDown:
		return input.KeyEvent{Key: input.KeyDown}
	case tcell.KeyLeft:
		return input.KeyEvent{Key: input.KeyLeft}
	case tcell.KeyRight:
		return input.KeyEvent{Key: input.KeyRight}
	case tcell.KeyHome, tcell.KeyCtrlA:
		return input.KeyEvent{Key: input.KeyHome}
	case tcell.KeyEnd, tcell.KeyCtrlE:
		return input.KeyEvent{Key: input.KeyEnd}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return input.KeyEvent{Key: input.KeyBackspace}
	case tcell.KeyDelete:
		return input.KeyEvent{Key: input.KeyDelete}
	default:
		return input.KeyEvent{Key: input.KeyOther}
	}
}
