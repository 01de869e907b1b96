package effects

import "github.com/lixenwraith/portfolio-term/constants"

// Observer tracks which page sections have been seen. Once in view a section stays in view
type Observer struct {
	threshold float64
	margin    int
	seen      map[string]bool
}

// NewObserver creates an observer that shrinks the viewport bottom by margin rows
func NewObserver(margin int) *Observer {
	return &Observer{
		threshold: constants.InViewThreshold,
		margin:    margin,
		seen:      make(map[string]bool),
	}
}

// VisibleFraction returns how much of [top, top+height) lies within [viewTop, viewTop+viewHeight)
func VisibleFraction(top, height, viewTop, viewHeight int) float64 {
	if height <= 0 || viewHeight <= 0 {
		return 0
	}
	lo := max(top, viewTop)
	hi := min(top+height, viewTop+viewHeight)
	if hi <= lo {
		return 0
	}
	return float64(hi-lo) / float64(height)
}

// Observe updates id against the viewport and reports whether it newly entered view
func (o *Observer) Observe(id string, top, height, viewTop, viewHeight int) bool {
	if o.seen[id] {
		return false
	}
	frac := VisibleFraction(top, height, viewTop, viewHeight-o.margin)
	if frac > 0 && frac >= o.threshold {
		o.seen[id] = true
		return true
	}
	return false
}

// InView reports whether id has ever been observed in view
func (o *Observer) InView(id string) bool {
	return o.seen[id]
}

// Count returns the number of sections seen
func (o *Observer) Count() int {
	return len(o.seen)
}
