package engine

import "time"

// Timer is a cancellable scheduled callback. Stop reports whether the call
// was prevented from firing; stopping an already-stopped timer is a no-op.
type Timer interface {
	Stop() bool
}

// Clock abstracts wall-clock time and timer scheduling so the engine can be
// driven deterministically in tests.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock returns the wall-clock backed Clock used in production.
func SystemClock() Clock { return systemClock{} }
