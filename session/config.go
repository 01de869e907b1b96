package session

import (
	"time"

	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/output"
)

// Timing holds the lifecycle and response delays
type Timing struct {
	OpenDelay       time.Duration
	CloseDelay      time.Duration
	WelcomeStagger  time.Duration
	ResponseDelay   time.Duration
	SequenceStagger time.Duration
}

// Config configures a Controller
type Config struct {
	Timing  Timing
	Reveal  output.Timing
	Prompt  string   // Echo prefix, e.g. root@portfolio:~$
	Welcome []string // Revealed in order after open
}

// DefaultConfig returns the stock session configuration
func DefaultConfig() Config {
	return Config{
		Timing: Timing{
			OpenDelay:       constants.OpenDelay,
			CloseDelay:      constants.CloseDelay,
			WelcomeStagger:  constants.WelcomeStagger,
			ResponseDelay:   constants.ResponseDelay,
			SequenceStagger: constants.SequenceStagger,
		},
		Reveal:  output.DefaultTiming(),
		Prompt:  Prompt(constants.PromptUser, constants.PromptHost),
		Welcome: append([]string(nil), constants.WelcomeMessages...),
	}
}

// Prompt formats user@host:~$
func Prompt(user, host string) string {
	return user + "@" + host + ":~$"
}
