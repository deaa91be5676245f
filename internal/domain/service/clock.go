package service

import "time"

// Timer is a one-shot timer. Stop reports whether the stop prevented the
// timer from firing, matching time.Timer semantics.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// Ticker delivers ticks at a fixed interval until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock abstracts time for the session lifecycle so refresh scheduling
// and heartbeats are testable without sleeping.
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) Timer
	NewTicker(d time.Duration) Ticker
}
