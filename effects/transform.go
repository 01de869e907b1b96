package effects

import (
	"math"
	"time"

	"github.com/lixenwraith/portfolio-term/constants"
)

// Rect is an element's bounding box in screen cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Transform describes a card's pose. Lift is in cells, negative is up
type Transform struct {
	RotateX float64
	RotateY float64
	Lift    float64
	Scale   float64
}

// Identity is the resting pose
var Identity = Transform{Scale: 1}

// Resting reports whether t is the identity pose
func (t Transform) Resting() bool {
	return t == Identity
}

// Tilt computes a card pose from a pointer position relative to the card center.
// A pointer outside rect yields Identity
func Tilt(rect Rect, x, y int) Transform {
	if !rect.Contains(x, y) {
		return Identity
	}
	px := float64(x - rect.X)
	py := float64(y - rect.Y)
	cx := float64(rect.W) / 2
	cy := float64(rect.H) / 2

	return Transform{
		RotateX: (py - cy) / constants.TiltDivisor,
		RotateY: (cx - px) / constants.TiltDivisor,
		Lift:    -1,
		Scale:   1.03,
	}
}

// Hover is the lifted pose of a skill box under the pointer
func Hover(active bool) Transform {
	if !active {
		return Identity
	}
	return Transform{RotateY: 5, Lift: -1, Scale: 1.05}
}

// FloatOffset is the idle bob of the profile glyph at time t, bounded by amplitude
func FloatOffset(t time.Time, amplitude float64) float64 {
	ms := float64(t.UnixMilli())
	return math.Sin(ms*constants.FloatPeriodScale) * amplitude
}

// StaggerDelay is the animate-in delay of the element at index
func StaggerDelay(index int) time.Duration {
	if index < 0 {
		index = 0
	}
	return time.Duration(index) * constants.AnimateInStagger
}
