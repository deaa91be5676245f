package impl

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshDelay(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresIn time.Duration
		want      time.Duration
	}{
		{name: "one hour token refreshes after 2880s", expiresIn: time.Hour, want: 2880 * time.Second},
		{name: "ten seconds left", expiresIn: 10 * time.Second, want: 8 * time.Second},
		{name: "floor kicks in", expiresIn: 5 * time.Second, want: 5 * time.Second},
		{name: "already expired still waits the floor", expiresIn: -time.Minute, want: 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := refreshDelay(now.Add(tt.expiresIn), now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRefreshScheduler_ArmFiresOnce(t *testing.T) {
	clock := newFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	scheduler := newRefreshScheduler(clock)

	var fired atomic.Int32
	scheduler.Arm(10*time.Second, func() { fired.Add(1) })

	at, ok := scheduler.NextFire()
	require.True(t, ok)
	assert.Equal(t, clock.Now().Add(10*time.Second), at)

	clock.lastTimer().fire(clock.Now().Add(10 * time.Second))

	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)

	_, ok = scheduler.NextFire()
	assert.False(t, ok)
}

func TestRefreshScheduler_RearmReplacesTimer(t *testing.T) {
	clock := newFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	scheduler := newRefreshScheduler(clock)

	var first, second atomic.Int32
	scheduler.Arm(10*time.Second, func() { first.Add(1) })
	scheduler.Arm(30*time.Second, func() { second.Add(1) })

	require.Equal(t, 2, clock.timerCount())

	// The replaced timer firing must not call anything.
	clock.timerAt(0).fire(clock.Now())
	clock.timerAt(1).fire(clock.Now())

	require.Eventually(t, func() bool { return second.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(0), first.Load())

	at, ok := scheduler.NextFire()
	assert.False(t, ok, "fired timer should disarm the scheduler, got next fire %v", at)
}

func TestRefreshScheduler_CancelSuppressesFire(t *testing.T) {
	clock := newFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	scheduler := newRefreshScheduler(clock)

	var fired atomic.Int32
	scheduler.Arm(10*time.Second, func() { fired.Add(1) })
	scheduler.Cancel()

	_, ok := scheduler.NextFire()
	require.False(t, ok)

	clock.lastTimer().fire(clock.Now())

	assert.Never(t, func() bool { return fired.Load() != 0 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestRefreshScheduler_CancelWithoutArm(t *testing.T) {
	clock := newFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	scheduler := newRefreshScheduler(clock)

	scheduler.Cancel()

	_, ok := scheduler.NextFire()
	assert.False(t, ok)
}
