package impl

import (
	"sync"
	"time"

	"roost/internal/domain/service"
)

// refreshScheduler owns the single proactive refresh timer for one
// session manager. Arm and Cancel are only called from the manager's
// event loop, so at most one timer is armed at any moment and a new
// Arm always replaces the previous one.
type refreshScheduler struct {
	clock service.Clock

	mu     sync.Mutex
	stop   chan struct{} // non-nil while a timer is armed
	fireAt time.Time
}

func newRefreshScheduler(clock service.Clock) *refreshScheduler {
	return &refreshScheduler{clock: clock}
}

// Arm schedules fire to run once after delay, cancelling any timer
// armed earlier. fire runs on the timer goroutine and is skipped when
// the timer was cancelled or replaced before it could report.
func (s *refreshScheduler) Arm(delay time.Duration, fire func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()

	stop := make(chan struct{})
	s.stop = stop
	s.fireAt = s.clock.Now().Add(delay)

	timer := s.clock.NewTimer(delay)
	go func() {
		defer timer.Stop()
		select {
		case <-timer.C():
		case <-stop:
			return
		}

		s.mu.Lock()
		current := s.stop == stop
		if current {
			s.stop = nil
			s.fireAt = time.Time{}
		}
		s.mu.Unlock()

		if current {
			fire()
		}
	}()
}

// Cancel disarms the timer if one is armed.
func (s *refreshScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
}

func (s *refreshScheduler) cancelLocked() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	s.stop = nil
	s.fireAt = time.Time{}
}

// NextFire reports when the armed timer is due. ok is false when no
// timer is armed.
func (s *refreshScheduler) NextFire() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fireAt, s.stop != nil
}
