package countdown

import "time"

// Display is the clock label a Timer writes its remaining time into.
type Display interface {
	SetText(text string)
}

// Affordance is any control that can start a countdown. A Timer disables every
// affordance it owns while running and re-enables them on expiry.
type Affordance interface {
	SetEnabled(enabled bool)
}

// Alerter emits the audible signal used on expiry and on rejected input.
type Alerter interface {
	Alert()
}

// Scheduler arms one-shot callbacks on the owning event loop.
// Callbacks must run on the same goroutine that calls into the Timer.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Handle
}

// Handle cancels a callback returned by Scheduler.AfterFunc.
// Cancelling an already fired handle is a no-op.
type Handle interface {
	Cancel()
}

// Clock abstracts time.Now for tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type noAlert struct{}

func (noAlert) Alert() {}
