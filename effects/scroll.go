package effects

import "github.com/lixenwraith/portfolio-term/constants"

// NavbarScrolled reports whether the navbar takes its scrolled style at the given page offset
func NavbarScrolled(offset int) bool {
	return offset > constants.NavbarScrollThreshold
}

// Parallax returns the vertical displacement of an element drifting at speed relative to scroll.
// Negative values move the element up
func Parallax(offset int, speed float64) float64 {
	return -float64(offset) * speed
}

// SectionDrift is the subtle per-section parallax applied to every page section
func SectionDrift(offset int) float64 {
	return Parallax(offset, constants.ParallaxSpeed) * sectionDriftScale
}

const sectionDriftScale = 0.1

// AnchorOffset returns the page offset that brings a section at sectionTop below a fixed navbar
func AnchorOffset(sectionTop, navbarHeight int) int {
	if off := sectionTop - navbarHeight; off > 0 {
		return off
	}
	return 0
}
