package timer

import "time"

// RunUntil steps clock through every due time up to target, running callbacks in order
// Continuations scheduled along the way are honored if they fall within target
func RunUntil(q *Queue, clock *ManualClock, target time.Time) int {
	ran := 0
	for {
		due, ok := q.NextDue()
		if !ok || due.After(target) {
			break
		}
		if due.After(clock.Now()) {
			clock.Set(due)
		}
		ran += q.RunDue()
	}
	if target.After(clock.Now()) {
		clock.Set(target)
	}
	return ran
}

// RunFor advances clock by d via RunUntil
func RunFor(q *Queue, clock *ManualClock, d time.Duration) int {
	return RunUntil(q, clock, clock.Now().Add(d))
}

// Drain runs every pending continuation, including ones scheduled while draining
// limit guards against self-rescheduling loops; returns callbacks executed
func Drain(q *Queue, clock *ManualClock, limit int) int {
	ran := 0
	for i := 0; i < limit; i++ {
		due, ok := q.NextDue()
		if !ok {
			break
		}
		if due.After(clock.Now()) {
			clock.Set(due)
		}
		ran += q.RunDue()
	}
	return ran
}
