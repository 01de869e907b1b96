package constants

import "time"

// Session Lifecycle Timing
const (
	// OpenDelay is the boot animation length before the session accepts input
	OpenDelay = 500 * time.Millisecond

	// CloseDelay matches the closing transition before the log is wiped
	CloseDelay = 300 * time.Millisecond

	// WelcomeStagger separates consecutive welcome messages
	WelcomeStagger = 1500 * time.Millisecond

	// ResponseDelay precedes rendering of a command response
	ResponseDelay = 300 * time.Millisecond

	// SequenceStagger separates lines of hack/matrix style sequences
	SequenceStagger = 500 * time.Millisecond
)

// Reveal Timing
const (
	// RevealCharBase is the minimum delay between revealed characters
	RevealCharBase = 20 * time.Millisecond

	// RevealCharJitter is the random extra delay added per character
	RevealCharJitter = 30 * time.Millisecond

	// RevealLinePause is the pause after a line finishes revealing
	RevealLinePause = 100 * time.Millisecond

	// RevealBlankSkip is the delay used to pass over an empty line
	RevealBlankSkip = 10 * time.Millisecond
)

// Terminal Text
const (
	// PromptUser and PromptHost build the echoed prompt: user@host:~$
	PromptUser = "root"
	PromptHost = "portfolio"

	// ProgressGlyph marks sequence lines that trigger the boot cue
	ProgressGlyph = "█"
)

// WelcomeMessages are revealed in order after the session opens
var WelcomeMessages = []string{
	"Initializing secure connection...",
	"Bypassing mainframe firewall... [OK]",
	"Loading portfolio modules... [OK]",
	"Access granted. Welcome, visitor.",
	"Type 'help' to see available commands.",
}

// ShortcutCommands are offered as clickable buttons under the input line
var ShortcutCommands = []string{"help", "about", "projects", "hack", "clear"}
