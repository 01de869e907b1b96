package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/portfolio-term/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope over s
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, true
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume, math.Log2(0) is -Inf so 0 maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a single shaped oscillator note
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// CreateKeypressCue generates a short click for each keystroke
func CreateKeypressCue(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	click := tone(constants.KeypressCueFreq, WaveSquare,
		constants.KeypressCueDuration, constants.KeypressCueAttack, constants.KeypressCueRelease, rate)
	return newVolume(click, cfg.Volume(CueKeypress))
}

// CreatePrintCue generates a soft tick for each revealed character
func CreatePrintCue(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	tick := tone(constants.PrintCueFreq, WaveSine,
		constants.PrintCueDuration, constants.PrintCueAttack, constants.PrintCueRelease, rate)
	return newVolume(tick, cfg.Volume(CuePrint))
}

// CreateBootCue generates a rising arpeggio for terminal boot
func CreateBootCue(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(constants.BootCueNotes))
	for _, freq := range constants.BootCueNotes {
		notes = append(notes, tone(freq, WaveSaw,
			constants.BootCueNoteDuration, constants.BootCueAttack, constants.BootCueRelease, rate))
	}

	return newVolume(beep.Seq(notes...), cfg.Volume(CueBoot))
}

// CreateSuccessCue generates a two-note upward chime
func CreateSuccessCue(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := tone(constants.SuccessCueNote1Freq, WaveSquare,
		constants.SuccessCueNote1Duration, constants.SuccessCueAttack, constants.SuccessCueNote1Release, rate)
	n2 := tone(constants.SuccessCueNote2Freq, WaveSquare,
		constants.SuccessCueNote2Duration, constants.SuccessCueAttack, constants.SuccessCueNote2Release, rate)

	return newVolume(beep.Seq(n1, n2), cfg.Volume(CueSuccess))
}

// CreateErrorCue generates a low harsh buzz
func CreateErrorCue(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Detuned pair gives the buzz its beating
	low := tone(constants.ErrorCueFreq, WaveSaw,
		constants.ErrorCueDuration, constants.ErrorCueAttack, constants.ErrorCueRelease, rate)
	high := tone(constants.ErrorCueFreq*1.02, WaveSaw,
		constants.ErrorCueDuration, constants.ErrorCueAttack, constants.ErrorCueRelease, rate)

	mixed := beep.Mix(newVolume(low, 0.5), newVolume(high, 0.5))
	return newVolume(mixed, cfg.Volume(CueError))
}

// CueStreamer returns the streamer for cue, nil for unknown cues
func CueStreamer(cue Cue, cfg *AudioConfig) beep.Streamer {
	switch cue {
	case CueKeypress:
		return CreateKeypressCue(cfg)
	case CueBoot:
		return CreateBootCue(cfg)
	case CuePrint:
		return CreatePrintCue(cfg)
	case CueSuccess:
		return CreateSuccessCue(cfg)
	case CueError:
		return CreateErrorCue(cfg)
	default:
		return nil
	}
}
