// Package config loads runtime settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/portfolio-term/audio"
	"github.com/lixenwraith/portfolio-term/constants"
	"github.com/lixenwraith/portfolio-term/session"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config holds all application configuration
type Config struct {
	Debug bool `env:"DEBUG"`

	Audio  AudioConfig  `envPrefix:"AUDIO_"`
	Prompt PromptConfig `envPrefix:"PROMPT_"`
	Timing TimingConfig `envPrefix:"TIMING_"`
}

// AudioConfig controls cue output
type AudioConfig struct {
	Enabled      bool    `env:"ENABLED"`
	MasterVolume float64 `env:"MASTER_VOLUME"`
	SampleRate   int     `env:"SAMPLE_RATE"`

	// Per-cue volumes, e.g. PORTFOLIO_AUDIO_CUE_VOLUMES=keypress:0.2,error:0.8
	CueVolumes map[string]float64 `env:"CUE_VOLUMES"`
}

// PromptConfig builds the echoed prompt
type PromptConfig struct {
	User string `env:"USER"`
	Host string `env:"HOST"`
}

// TimingConfig overrides session delays
type TimingConfig struct {
	OpenDelay       time.Duration `env:"OPEN_DELAY"`
	CloseDelay      time.Duration `env:"CLOSE_DELAY"`
	WelcomeStagger  time.Duration `env:"WELCOME_STAGGER"`
	ResponseDelay   time.Duration `env:"RESPONSE_DELAY"`
	SequenceStagger time.Duration `env:"SEQUENCE_STAGGER"`
	RevealChar      time.Duration `env:"REVEAL_CHAR"`
	RevealJitter    time.Duration `env:"REVEAL_JITTER"`
}

const envPrefix = "PORTFOLIO_"

// Load reads an optional .env file then parses PORTFOLIO_* variables
// Missing env files are not an error; already-set variables win over file values
// Unset variables keep the values from Default
func Load(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Validate checks ranges
func (c *Config) Validate() error {
	if _, err := c.cueVolumes(); err != nil {
		return err
	}
	if err := c.AudioSettings().Validate(); err != nil {
		return fmt.Errorf("%w: audio: %w", ErrInvalid, err)
	}
	if c.Prompt.User == "" || c.Prompt.Host == "" {
		return fmt.Errorf("%w: PROMPT_USER and PROMPT_HOST cannot be empty", ErrInvalid)
	}
	t := c.Timing
	for name, d := range map[string]time.Duration{
		"OPEN_DELAY":       t.OpenDelay,
		"CLOSE_DELAY":      t.CloseDelay,
		"WELCOME_STAGGER":  t.WelcomeStagger,
		"RESPONSE_DELAY":   t.ResponseDelay,
		"SEQUENCE_STAGGER": t.SequenceStagger,
		"REVEAL_CHAR":      t.RevealChar,
		"REVEAL_JITTER":    t.RevealJitter,
	} {
		if d < 0 {
			return fmt.Errorf("%w: TIMING_%s cannot be negative", ErrInvalid, name)
		}
	}
	return nil
}

func (c *Config) cueVolumes() (map[audio.Cue]float64, error) {
	byName := make(map[string]audio.Cue)
	for _, cue := range audio.Cues() {
		byName[cue.String()] = cue
	}

	out := make(map[audio.Cue]float64, len(c.Audio.CueVolumes))
	for name, v := range c.Audio.CueVolumes {
		cue, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown cue %q in AUDIO_CUE_VOLUMES", ErrInvalid, name)
		}
		out[cue] = v
	}
	return out, nil
}

// AudioSettings converts to the audio package configuration
func (c *Config) AudioSettings() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate

	// Unknown names are rejected by Validate
	overrides, _ := c.cueVolumes()
	for cue, v := range overrides {
		ac.CueVolumes[cue] = v
	}
	return ac
}

// SessionSettings converts to the session package configuration
func (c *Config) SessionSettings() session.Config {
	sc := session.DefaultConfig()
	sc.Prompt = session.Prompt(c.Prompt.User, c.Prompt.Host)
	sc.Timing = session.Timing{
		OpenDelay:       c.Timing.OpenDelay,
		CloseDelay:      c.Timing.CloseDelay,
		WelcomeStagger:  c.Timing.WelcomeStagger,
		ResponseDelay:   c.Timing.ResponseDelay,
		SequenceStagger: c.Timing.SequenceStagger,
	}
	sc.Reveal.CharBase = c.Timing.RevealChar
	sc.Reveal.CharJitter = c.Timing.RevealJitter
	return sc
}

// Default returns the configuration Load yields with an empty environment
func Default() *Config {
	return &Config{
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			SampleRate:   constants.AudioSampleRate,
		},
		Prompt: PromptConfig{User: constants.PromptUser, Host: constants.PromptHost},
		Timing: TimingConfig{
			OpenDelay:       constants.OpenDelay,
			CloseDelay:      constants.CloseDelay,
			WelcomeStagger:  constants.WelcomeStagger,
			ResponseDelay:   constants.ResponseDelay,
			SequenceStagger: constants.SequenceStagger,
			RevealChar:      constants.RevealCharBase,
			RevealJitter:    constants.RevealCharJitter,
		},
	}
}
