package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the default output sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond
)

// Keypress Cue Timing
const (
	KeypressCueDuration = 30 * time.Millisecond
	KeypressCueAttack   = 2 * time.Millisecond
	KeypressCueRelease  = 20 * time.Millisecond
	KeypressCueFreq     = 1200.0
)

// Print Cue Timing
const (
	PrintCueDuration = 15 * time.Millisecond
	PrintCueAttack   = 1 * time.Millisecond
	PrintCueRelease  = 10 * time.Millisecond
	PrintCueFreq     = 2400.0
)

// Boot Cue Timing
const (
	BootCueNoteDuration = 90 * time.Millisecond
	BootCueAttack       = 5 * time.Millisecond
	BootCueRelease      = 60 * time.Millisecond
)

// BootCueNotes is the rising arpeggio played on terminal boot (A3, E4, A4, E5)
var BootCueNotes = []float64{220.0, 329.63, 440.0, 659.25}

// Success Cue Timing
const (
	SuccessCueNote1Duration = 70 * time.Millisecond
	SuccessCueNote2Duration = 160 * time.Millisecond
	SuccessCueAttack        = 5 * time.Millisecond
	SuccessCueNote1Release  = 40 * time.Millisecond
	SuccessCueNote2Release  = 120 * time.Millisecond
	SuccessCueNote1Freq     = 659.25 // E5
	SuccessCueNote2Freq     = 987.77 // B5
)

// Error Cue Timing
const (
	ErrorCueDuration = 180 * time.Millisecond
	ErrorCueAttack   = 5 * time.Millisecond
	ErrorCueRelease  = 60 * time.Millisecond
	ErrorCueFreq     = 110.0
)
