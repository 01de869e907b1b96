package constants

import "time"

// Frame Timing
const (
	// FrameUpdateInterval drives redraw and timer queue processing (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Page Effects
const (
	// HeadingStartDelay is the wait before the heading typewriter begins
	HeadingStartDelay = 1 * time.Second

	// HeadingCharInterval is the delay between heading characters
	HeadingCharInterval = 100 * time.Millisecond

	// NavbarScrollThreshold is the page offset in rows after which the navbar is styled as scrolled
	NavbarScrollThreshold = 2

	// ParallaxSpeed is the background drift factor relative to scroll
	ParallaxSpeed = 0.5

	// TiltDivisor scales pointer distance from card center into degrees
	TiltDivisor = 10.0

	// FloatAmplitude is the peak vertical offset of the profile glyph in rows
	FloatAmplitude = 1.0

	// FloatPeriodScale converts milliseconds into float phase (sin(ms * scale))
	FloatPeriodScale = 0.001

	// AnimateInStagger separates staggered animate-in of cards
	AnimateInStagger = 100 * time.Millisecond

	// InViewThreshold is the visible fraction at which a section counts as in view
	InViewThreshold = 0.1

	// ScrollDebounce coalesces scroll handling
	ScrollDebounce = 10 * time.Millisecond
)

// Overlay Layout
const (
	// OverlayMarginX and OverlayMarginY inset the terminal overlay from the screen edges
	OverlayMarginX = 4
	OverlayMarginY = 2

	// OverlayMinWidth and OverlayMinHeight are the smallest drawable overlay
	OverlayMinWidth  = 30
	OverlayMinHeight = 10
)
