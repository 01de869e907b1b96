package command

// Kind tags the variant held by a Response
type Kind int

const (
	KindLiteral  Kind = iota // Text revealed character by character
	KindSequence             // Lines revealed whole, one per stagger
	KindSignal               // Session control, nothing rendered
)

// Signal is a control response that drives a session transition
type Signal int

const (
	SignalNone Signal = iota
	ClearOutput
	CloseSession
)

func (s Signal) String() string {
	switch s {
	case ClearOutput:
		return "clear-output"
	case CloseSession:
		return "close-session"
	default:
		return "none"
	}
}

// Response is the registry value for one command
type Response struct {
	Kind   Kind
	Text   string   // KindLiteral
	Lines  []string // KindSequence
	Signal Signal   // KindSignal
}

// Literal builds a character-revealed text response
func Literal(text string) Response {
	return Response{Kind: KindLiteral, Text: text}
}

// Sequence builds a line-staggered response
func Sequence(lines ...string) Response {
	return Response{Kind: KindSequence, Lines: lines}
}

// Control builds a signal response
func Control(s Signal) Response {
	return Response{Kind: KindSignal, Signal: s}
}
