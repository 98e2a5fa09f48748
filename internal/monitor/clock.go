package monitor

import "time"

// Timer is a cancellable scheduled callback. Stop reports whether the call
// was prevented from firing.
type Timer interface {
	Stop() bool
}

// Clock abstracts wall time and timer scheduling so the state machine is
// deterministic under test.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// SystemClock returns the real wall clock.
func SystemClock() Clock {
	return systemClock{}
}
