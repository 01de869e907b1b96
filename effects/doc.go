// Package effects holds the page-level visual effects that surround the
// terminal overlay: heading typewriter, navbar scroll state, parallax drift,
// card tilt and hover, the floating profile glyph, in-view tracking,
// staggered animate-in, and scroll debouncing.
//
// Nothing here depends on the terminal session. Time-based effects run on a
// timer.Scheduler so they share the UI loop's single-threaded queue.
package effects
