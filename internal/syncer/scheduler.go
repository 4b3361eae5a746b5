// Package syncer pushes local changes to the server after a quiet period.
package syncer

import "time"

// Timer is a pending scheduled call.
type Timer interface {
	// Stop prevents the call from firing; it reports whether the call was stopped.
	Stop() bool
}

// Scheduler runs f after d. Tests inject a manual implementation.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// RealScheduler schedules on the runtime timer heap.
type RealScheduler struct{}

// AfterFunc wraps time.AfterFunc.
func (RealScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
