// Package timer provides single-threaded deferred continuations.
//
// A Queue holds callbacks ordered by due time and schedule order. Nothing runs
// on its own goroutine: the owner calls RunDue from its loop and due callbacks
// execute inline, in order. Stopping a Handle before it fires turns it into a
// no-op. Clock is injectable so tests can step time deterministically.
package timer
