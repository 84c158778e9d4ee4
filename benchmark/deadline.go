package benchmark

import (
	"sync/atomic"
	"time"
)

// Deadline is the shared clock gate for one run. It flips from running to
// expired exactly once and never reverts, so workers can poll it
// concurrently without synchronization.
type Deadline struct {
	start   time.Time
	runTime time.Duration
	expired atomic.Bool
}

// StartDeadline arms a deadline that expires after runTime.
func StartDeadline(runTime time.Duration) *Deadline {
	return &Deadline{start: time.Now(), runTime: runTime}
}

// Expired reports whether the run time has elapsed. Safe to call from any
// goroutine; once it returns true it returns true forever. The flag is
// sticky, so every caller observes the same one-way transition even if the
// wall clock were to misbehave.
func (d *Deadline) Expired() bool {
	if d.expired.Load() {
		return true
	}
	if time.Since(d.start) >= d.runTime {
		d.expired.Store(true)
		return true
	}
	return false
}
