package audio

import (
	"fmt"

	"github.com/lixenwraith/portfolio-term/constants"
)

// AudioConfig controls cue synthesis and output
type AudioConfig struct {
	Enabled      bool // false starts the player muted
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
	CueVolumes   map[Cue]float64
}

// DefaultAudioConfig returns the stock configuration
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		CueVolumes: map[Cue]float64{
			CueKeypress: 0.3,
			CueBoot:     0.6,
			CuePrint:    0.1,
			CueSuccess:  0.5,
			CueError:    0.6,
		},
	}
}

// Volume returns the effective volume for a cue (per-cue * master)
func (c *AudioConfig) Volume(cue Cue) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 1.0
	}
	return clampUnit(v) * clampUnit(c.MasterVolume)
}

// Validate rejects out-of-range values
func (c *AudioConfig) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", c.SampleRate)
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("master volume must be within [0,1], got %f", c.MasterVolume)
	}
	for cue, v := range c.CueVolumes {
		if cue < 0 || cue >= cueCount {
			return fmt.Errorf("%w: %d", ErrUnknownCue, cue)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("%s volume must be within [0,1], got %f", cue, v)
		}
	}
	return nil
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
