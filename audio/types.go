package audio

import (
	"errors"
)

// Cue identifies a synthesized terminal sound
type Cue int

const (
	CueKeypress Cue = iota // Any key in the input line
	CueBoot                // Session open, progress bar lines
	CuePrint               // One revealed character
	CueSuccess             // Known command
	CueError               // Unknown command
	cueCount
)

var cueNames = [cueCount]string{
	CueKeypress: "keypress",
	CueBoot:     "boot",
	CuePrint:    "print",
	CueSuccess:  "success",
	CueError:    "error",
}

// String returns the cue name used in config and logs
func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Cues lists every defined cue in order
func Cues() []Cue {
	cues := make([]Cue, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		cues = append(cues, c)
	}
	return cues
}

// CuePlayer plays fire-and-forget cues
type CuePlayer interface {
	Play(cue Cue)
	StopAll()
}

// Sentinel errors
var (
	ErrAudioUnavailable = errors.New("audio output unavailable")
	ErrUnknownCue       = errors.New("unknown cue")
)
