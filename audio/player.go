package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/portfolio-term/constants"
)

// Player synthesizes cues into a shared mixer on the beep speaker
// Without an initialized speaker every operation is a no-op
type Player struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool

	// speakerInit is swapped in tests to simulate missing hardware
	speakerInit func(beep.SampleRate, int) error
}

// NewPlayer creates a player, nil cfg uses DefaultAudioConfig
func NewPlayer(cfg *AudioConfig) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	p := &Player{
		config:      cfg,
		mixer:       &beep.Mixer{},
		speakerInit: speaker.Init,
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Init opens the speaker and starts the mixer, a disabled config starts muted
// A failure leaves the player silent; callers may log and continue
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	rate := beep.SampleRate(p.config.SampleRate)
	if err := p.speakerInit(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Initialized reports whether cues reach the speaker
func (p *Player) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// SetMuted toggles output without tearing down the speaker
func (p *Player) SetMuted(muted bool) {
	p.muted.Store(muted)
	if muted {
		p.StopAll()
	}
}

// Muted reports the mute state
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Play queues a cue on the mixer, fire-and-forget
func (p *Player) Play(cue Cue) {
	if p.muted.Load() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s := CueStreamer(cue, p.config)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// StopAll drops every in-flight cue
func (p *Player) StopAll() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
}

// Active returns the number of cues still streaming
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return 0
	}

	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len()
}

// Close stops all cues and releases the speaker
// Safe to call multiple times
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.initialized = false
}

// Silent discards every cue
type Silent struct{}

func (Silent) Play(Cue) {}
func (Silent) StopAll() {}
