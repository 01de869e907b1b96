package output

// Style tags how a line is drawn
type Style int

const (
	StyleOutput Style = iota
	StylePrompt
	StyleSuccess
	StyleError
)

func (s Style) String() string {
	switch s {
	case StylePrompt:
		return "prompt"
	case StyleSuccess:
		return "success"
	case StyleError:
		return "error"
	default:
		return "output"
	}
}

// Line is one rendered row of the terminal log
type Line struct {
	Text  string
	Style Style
}
