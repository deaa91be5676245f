package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	mockUC "roost/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestJanitor(connectionUC *mockUC.MockConnectionUsecase, interval time.Duration) *janitor {
	return &janitor{
		interval:     interval,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		connectionUC: connectionUC,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

func TestJanitor_SweepsImmediatelyThenOnTicks(t *testing.T) {
	connectionUC := mockUC.NewMockConnectionUsecase(t)

	swept := make(chan struct{}, 16)
	connectionUC.EXPECT().
		SweepExpiredHandoffs(mock.Anything).
		RunAndReturn(func(ctx context.Context) (int64, error) {
			swept <- struct{}{}
			return 2, nil
		})

	j := newTestJanitor(connectionUC, 5*time.Millisecond)

	errCh := make(chan error, 1)
	go func() { errCh <- j.Serve(context.Background()) }()

	// The first sweep runs before the ticker starts, the second proves
	// the loop is ticking.
	for range 2 {
		select {
		case <-swept:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for a sweep")
		}
	}

	require.NoError(t, j.shutdown(context.Background()))
	require.NoError(t, <-errCh)
}

func TestJanitor_DisabledWithoutInterval(t *testing.T) {
	connectionUC := mockUC.NewMockConnectionUsecase(t)

	// No sweep expectation: any call fails the test.
	j := newTestJanitor(connectionUC, 0)

	require.NoError(t, j.Serve(context.Background()))
}

func TestJanitor_SweepFailureKeepsTicking(t *testing.T) {
	connectionUC := mockUC.NewMockConnectionUsecase(t)

	recovered := make(chan struct{}, 16)
	connectionUC.EXPECT().
		SweepExpiredHandoffs(mock.Anything).
		Return(int64(0), assert.AnError).
		Once()
	connectionUC.EXPECT().
		SweepExpiredHandoffs(mock.Anything).
		RunAndReturn(func(ctx context.Context) (int64, error) {
			recovered <- struct{}{}
			return 0, nil
		})

	j := newTestJanitor(connectionUC, 5*time.Millisecond)

	errCh := make(chan error, 1)
	go func() { errCh <- j.Serve(context.Background()) }()

	select {
	case <-recovered:
	case <-time.After(2 * time.Second):
		t.Fatal("sweep did not run again after a failure")
	}

	require.NoError(t, j.shutdown(context.Background()))
	require.NoError(t, <-errCh)
}

func TestJanitor_ShutdownUnblocksServe(t *testing.T) {
	connectionUC := mockUC.NewMockConnectionUsecase(t)

	started := make(chan struct{})
	connectionUC.EXPECT().
		SweepExpiredHandoffs(mock.Anything).
		RunAndReturn(func(ctx context.Context) (int64, error) {
			close(started)
			return 0, nil
		}).
		Once()

	// An hour-long interval: only the immediate sweep runs, the loop
	// then blocks until shutdown.
	j := newTestJanitor(connectionUC, time.Hour)

	errCh := make(chan error, 1)
	go func() { errCh <- j.Serve(context.Background()) }()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("initial sweep never ran")
	}

	require.NoError(t, j.shutdown(context.Background()))

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after shutdown")
	}
}
