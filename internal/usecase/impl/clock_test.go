package impl

import (
	"sync"
	"time"

	"roost/internal/domain/service"
)

// fakeClock is a hand-driven clock. Time only moves through Advance and
// timers only fire when a test fires them, which keeps every lifecycle
// test deterministic.
type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	timers  []*fakeTimer
	tickers []*fakeTicker
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func (c *fakeClock) NewTimer(d time.Duration) service.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &fakeTimer{delay: d, ch: make(chan time.Time, 1)}
	c.timers = append(c.timers, t)

	return t
}

func (c *fakeClock) NewTicker(d time.Duration) service.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()

	tk := &fakeTicker{interval: d, ch: make(chan time.Time, 1)}
	c.tickers = append(c.tickers, tk)

	return tk
}

func (c *fakeClock) timerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.timers)
}

func (c *fakeClock) timerAt(i int) *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.timers[i]
}

func (c *fakeClock) lastTimer() *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.timers) == 0 {
		return nil
	}

	return c.timers[len(c.timers)-1]
}

func (c *fakeClock) lastTicker() *fakeTicker {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.tickers) == 0 {
		return nil
	}

	return c.tickers[len(c.tickers)-1]
}

type fakeTimer struct {
	delay time.Duration
	ch    chan time.Time
}

func (t *fakeTimer) C() <-chan time.Time { return t.ch }

func (t *fakeTimer) Stop() bool { return true }

// fire delivers the timer's tick. The channel is buffered, so firing a
// timer nobody listens to anymore is harmless.
func (t *fakeTimer) fire(at time.Time) {
	select {
	case t.ch <- at:
	default:
	}
}

type fakeTicker struct {
	interval time.Duration
	ch       chan time.Time
}

func (tk *fakeTicker) C() <-chan time.Time { return tk.ch }

func (tk *fakeTicker) Stop() {}

func (tk *fakeTicker) tick(at time.Time) {
	select {
	case tk.ch <- at:
	default:
	}
}
