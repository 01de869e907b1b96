package audio

// Recorder captures cues instead of playing them
type Recorder struct {
	Played []Cue
	Stops  int
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Play records the cue
func (r *Recorder) Play(cue Cue) {
	r.Played = append(r.Played, cue)
}

// StopAll counts stop requests
func (r *Recorder) StopAll() {
	r.Stops++
}

// Count returns how many times cue was played
func (r *Recorder) Count(cue Cue) int {
	n := 0
	for _, c := range r.Played {
		if c == cue {
			n++
		}
	}
	return n
}

// Reset forgets recorded cues
func (r *Recorder) Reset() {
	r.Played = nil
	r.Stops = 0
}
