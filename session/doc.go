// Package session owns the terminal overlay lifecycle.
//
// States run Closed → Opening → Open → Closing → Closed. Every continuation
// the session or its renderer schedules goes through one tracker so a close
// can cancel all of them at once; each continuation also re-checks that the
// session is still open before producing output.
//
// Ordering: steps of one sequence run in schedule order. Different sequences
// (welcome messages, command responses) may interleave. Character reveals are
// queued so only one reveal drives timers at a time.
package session
