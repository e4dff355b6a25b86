// Package widget implements the staged conversational mascot engine: a
// timed reveal sequencer, a typewriter greeting renderer, and the chat
// session controller that talks to the TradeLingo backend. The package is
// presentation-agnostic; the TUI observes it through hooks and bus events.
package widget

import "time"

// Timer is a cancellable scheduled callback. Stop reports whether the
// callback was prevented from running.
type Timer interface {
	Stop() bool
}

// Clock schedules one-shot callbacks. The engine never calls time.AfterFunc
// directly so tests can drive it deterministically.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock returns the wall-clock backed Clock.
func SystemClock() Clock { return systemClock{} }
