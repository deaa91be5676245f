// Package clock provides the wall-clock implementation of the domain
// Clock interface. Tests substitute their own fake.
package clock

import (
	"time"

	"roost/internal/domain/service"
)

type systemClock struct{}

// New returns a Clock backed by the runtime's timers.
func New() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) NewTimer(d time.Duration) service.Timer {
	return systemTimer{timer: time.NewTimer(d)}
}

func (systemClock) NewTicker(d time.Duration) service.Ticker {
	return systemTicker{ticker: time.NewTicker(d)}
}

type systemTimer struct {
	timer *time.Timer
}

func (t systemTimer) C() <-chan time.Time {
	return t.timer.C
}

func (t systemTimer) Stop() bool {
	return t.timer.Stop()
}

type systemTicker struct {
	ticker *time.Ticker
}

func (t systemTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t systemTicker) Stop() {
	t.ticker.Stop()
}
