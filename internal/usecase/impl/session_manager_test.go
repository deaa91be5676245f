package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	mockRepo "roost/internal/mocks/repository"
	mockSvc "roost/internal/mocks/service"
	"roost/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSessionID = "sess-1"

func testStart() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestManager(clock *fakeClock, backend *mockSvc.MockAuthBackend, txManager *mockRepo.MockTransactionManager) *sessionManager {
	return newSessionManager(context.Background(), testSessionID, backend, txManager, clock, testLogger())
}

// expectProfileSync wires the transaction manager to run its callback
// against a factory whose user repository accepts one or more syncs.
func expectProfileSync(t *testing.T, txManager *mockRepo.MockTransactionManager) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().Sync(mock.Anything, mock.AnythingOfType("*entity.User")).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)
}

func TestSessionManager_InitializeWithoutSession(t *testing.T) {
	clock := newFakeClock(testStart())
	backend := mockSvc.NewMockAuthBackend(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	backend.EXPECT().GetSession(mock.Anything, testSessionID).Return(nil)

	m := newTestManager(clock, backend, txManager)
	defer m.stop()

	require.NoError(t, m.waitReady(context.Background()))

	user, state := m.currentUser()
	assert.Nil(t, user)
	assert.Equal(t, usecase.StateNoSession, state)
}

func TestSessionManager_InitializeArmsRefreshAtEightyPercent(t *testing.T) {
	clock := newFakeClock(testStart())
	backend := mockSvc.NewMockAuthBackend(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	session := &entity.Session{AccessToken: "at", RefreshToken: "rt", ExpiresAt: testStart().Add(time.Hour)}
	user := &entity.User{ID: uuid.New(), Email: "owner@example.com", Role: entity.RoleCustomer}

	backend.EXPECT().GetSession(mock.Anything, testSessionID).Return(session)
	backend.EXPECT().FetchUser(mock.Anything, session).Return(user, nil)
	expectProfileSync(t, txManager)

	m := newTestManager(clock, backend, txManager)
	defer m.stop()

	require.NoError(t, m.waitReady(context.Background()))

	got, state := m.currentUser()
	require.Equal(t, usecase.StateSessionActive, state)
	assert.Equal(t, user.ID, got.ID)

	// A token one hour from expiry refreshes after 2880 seconds.
	require.Equal(t, 1, clock.timerCount())
	assert.Equal(t, 2880*time.Second, clock.timerAt(0).delay)

	snap := m.snapshot()
	assert.Equal(t, testStart().Add(2880*time.Second), snap.NextRefreshAt)
	assert.Equal(t, session.ExpiresAt, snap.ExpiresAt)
}

func TestSessionManager_RefreshFailureRetriesAtFixedInterval(t *testing.T) {
	clock := newFakeClock(testStart())
	backend := mockSvc.NewMockAuthBackend(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	session := &entity.Session{AccessToken: "at", RefreshToken: "rt", ExpiresAt: testStart().Add(time.Hour)}
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

	backend.EXPECT().GetSession(mock.Anything, testSessionID).Return(session)
	backend.EXPECT().FetchUser(mock.Anything, session).Return(user, nil)
	backend.EXPECT().RefreshSession(mock.Anything, testSessionID).Return(nil, assert.AnError)
	expectProfileSync(t, txManager)

	m := newTestManager(clock, backend, txManager)
	defer m.stop()

	require.NoError(t, m.waitReady(context.Background()))

	clock.timerAt(0).fire(clock.Now())

	// Transient failure: same 30s interval every time, no backoff.
	require.Eventually(t, func() bool {
		return clock.timerCount() == 2 && clock.timerAt(1).delay == 30*time.Second
	}, time.Second, 5*time.Millisecond)

	got, state := m.currentUser()
	assert.Equal(t, usecase.StateSessionActive, state)
	assert.NotNil(t, got)
}

func TestSessionManager_RefreshRejectedClearsSession(t *testing.T) {
	clock := newFakeClock(testStart())
	backend := mockSvc.NewMockAuthBackend(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	session := &entity.Session{AccessToken: "at", RefreshToken: "rt", ExpiresAt: testStart().Add(time.Hour)}
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

	backend.EXPECT().GetSession(mock.Anything, testSessionID).Return(session)
	backend.EXPECT().FetchUser(mock.Anything, session).Return(user, nil)
	backend.EXPECT().RefreshSession(mock.Anything, testSessionID).Return(nil, domainerrors.ErrRefreshRejected)
	expectProfileSync(t, txManager)

	m := newTestManager(clock, backend, txManager)
	defer m.stop()

	require.NoError(t, m.waitReady(context.Background()))

	clock.timerAt(0).fire(clock.Now())

	require.Eventually(t, func() bool {
		_, state := m.currentUser()
		return state == usecase.StateNoSession
	}, time.Second, 5*time.Millisecond)

	got, _ := m.currentUser()
	assert.Nil(t, got)

	_, armed := m.scheduler.NextFire()
	assert.False(t, armed)
}

func TestSessionManager_RefreshSuccessRearmsFromNewExpiry(t *testing.T) {
	clock := newFakeClock(testStart())
	backend := mockSvc.NewMockAuthBackend(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	session := &entity.Session{AccessToken: "at", RefreshToken: "rt", ExpiresAt: testStart().Add(time.Hour)}
	refreshed := &entity.Session{AccessToken: "at2", RefreshToken: "rt2", ExpiresAt: testStart().Add(2 * time.Hour)}
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

	backend.EXPECT().GetSession(mock.Anything, testSessionID).Return(session)
	backend.EXPECT().FetchUser(mock.Anything, session).Return(user, nil)
	backend.EXPECT().RefreshSession(mock.Anything, testSessionID).Return(refreshed, nil)
	expectProfileSync(t, txManager)

	m := newTestManager(clock, backend, txManager)
	defer m.stop()

	require.NoError(t, m.waitReady(context.Background()))

	clock.timerAt(0).fire(clock.Now())

	require.Eventually(t, func() bool {
		return clock.timerCount() == 2 && clock.timerAt(1).delay == 5760*time.Second
	}, time.Second, 5*time.Millisecond)

	snap := m.snapshot()
	assert.Equal(t, refreshed.ExpiresAt, snap.ExpiresAt)
	assert.Equal(t, usecase.StateSessionActive, snap.State)
}

func TestSessionManager_HeartbeatIdleWhileSessionPresent(t *testing.T) {
	clock := newFakeClock(testStart())
	backend := mockSvc.NewMockAuthBackend(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	session := &entity.Session{AccessToken: "at", RefreshToken: "rt", ExpiresAt: testStart().Add(time.Hour)}
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

	checked := make(chan struct{})
	backend.EXPECT().GetSession(mock.Anything, testSessionID).Return(session).Once()
	backend.EXPECT().GetSession(mock.Anything, testSessionID).
		Run(func(ctx context.Context, sessionID string) { close(checked) }).
		Return(session).
		Once()
	backend.EXPECT().FetchUser(mock.Anything, session).Return(user, nil)
	expectProfileSync(t, txManager)

	m := newTestManager(clock, backend, txManager)
	defer m.stop()

	require.NoError(t, m.waitReady(context.Background()))

	clock.lastTicker().tick(clock.Now())

	select {
	case <-checked:
	case <-time.After(time.Second):
		t.Fatal("heartbeat never checked the session")
	}

	// Presence means no refresh: no call on the backend, no new timer.
	_, state := m.currentUser()
	assert.Equal(t, usecase.StateSessionActive, state)
	assert.Equal(t, 1, clock.timerCount())
}

func TestSessionManager_HeartbeatRevivesVanishedSession(t *testing.T) {
	clock := newFakeClock(testStart())
	backend := mockSvc.NewMockAuthBackend(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	session := &entity.Session{AccessToken: "at", RefreshToken: "rt", ExpiresAt: testStart().Add(time.Hour)}
	refreshed := &entity.Session{AccessToken: "at2", RefreshToken: "rt2", ExpiresAt: testStart().Add(2 * time.Hour)}
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

	backend.EXPECT().GetSession(mock.Anything, testSessionID).Return(session).Once()
	backend.EXPECT().GetSession(mock.Anything, testSessionID).Return(nil)
	backend.EXPECT().FetchUser(mock.Anything, session).Return(user, nil)
	backend.EXPECT().RefreshSession(mock.Anything, testSessionID).Return(refreshed, nil)
	expectProfileSync(t, txManager)

	m := newTestManager(clock, backend, txManager)
	defer m.stop()

	require.NoError(t, m.waitReady(context.Background()))

	clock.lastTicker().tick(clock.Now())

	require.Eventually(t, func() bool {
		return clock.timerCount() == 2
	}, time.Second, 5*time.Millisecond)

	snap := m.snapshot()
	assert.Equal(t, usecase.StateSessionActive, snap.State)
	assert.Equal(t, refreshed.ExpiresAt, snap.ExpiresAt)
}

func TestSessionManager_HeartbeatFailureClearsCachedUser(t *testing.T) {
	clock := newFakeClock(testStart())
	backend := mockSvc.NewMockAuthBackend(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	session := &entity.Session{AccessToken: "at", RefreshToken: "rt", ExpiresAt: testStart().Add(time.Hour)}
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

	backend.EXPECT().GetSession(mock.Anything, testSessionID).Return(session).Once()
	backend.EXPECT().GetSession(mock.Anything, testSessionID).Return(nil)
	backend.EXPECT().FetchUser(mock.Anything, session).Return(user, nil)
	backend.EXPECT().RefreshSession(mock.Anything, testSessionID).Return(nil, assert.AnError)
	expectProfileSync(t, txManager)

	m := newTestManager(clock, backend, txManager)
	defer m.stop()

	require.NoError(t, m.waitReady(context.Background()))

	clock.lastTicker().tick(clock.Now())

	// One refresh attempt, then the cached user goes; SignOut is never
	// called, the mock would reject it.
	require.Eventually(t, func() bool {
		_, state := m.currentUser()
		return state == usecase.StateNoSession
	}, time.Second, 5*time.Millisecond)

	got, _ := m.currentUser()
	assert.Nil(t, got)
}

func TestSessionManager_AuthChangeRearmsTimer(t *testing.T) {
	clock := newFakeClock(testStart())
	backend := mockSvc.NewMockAuthBackend(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	session := &entity.Session{AccessToken: "at", RefreshToken: "rt", ExpiresAt: testStart().Add(time.Hour)}
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

	backend.EXPECT().GetSession(mock.Anything, testSessionID).Return(session)
	backend.EXPECT().FetchUser(mock.Anything, session).Return(user, nil)
	expectProfileSync(t, txManager)

	m := newTestManager(clock, backend, txManager)
	defer m.stop()

	require.NoError(t, m.waitReady(context.Background()))
	require.Equal(t, 1, clock.timerCount())

	replacement := &entity.Session{AccessToken: "at2", RefreshToken: "rt2", ExpiresAt: testStart().Add(30 * time.Minute)}
	m.offerAuthChange(entity.AuthChange{Kind: entity.AuthTokenRefreshed, SessionID: testSessionID, Session: replacement})

	require.Eventually(t, func() bool {
		return clock.timerCount() == 2 && clock.timerAt(1).delay == 1440*time.Second
	}, time.Second, 5*time.Millisecond)

	snap := m.snapshot()
	assert.Equal(t, replacement.ExpiresAt, snap.ExpiresAt)
}

func TestSessionManager_SignedOutChangeClearsEverything(t *testing.T) {
	clock := newFakeClock(testStart())
	backend := mockSvc.NewMockAuthBackend(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	session := &entity.Session{AccessToken: "at", RefreshToken: "rt", ExpiresAt: testStart().Add(time.Hour)}
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

	backend.EXPECT().GetSession(mock.Anything, testSessionID).Return(session)
	backend.EXPECT().FetchUser(mock.Anything, session).Return(user, nil)
	expectProfileSync(t, txManager)

	m := newTestManager(clock, backend, txManager)
	defer m.stop()

	require.NoError(t, m.waitReady(context.Background()))

	m.offerAuthChange(entity.AuthChange{Kind: entity.AuthSignedOut, SessionID: testSessionID})

	require.Eventually(t, func() bool {
		got, state := m.currentUser()
		return state == usecase.StateNoSession && got == nil
	}, time.Second, 5*time.Millisecond)
}

func TestSessionManager_IdentityFetchFailureClearsSession(t *testing.T) {
	clock := newFakeClock(testStart())
	backend := mockSvc.NewMockAuthBackend(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	session := &entity.Session{AccessToken: "at", RefreshToken: "rt", ExpiresAt: testStart().Add(time.Hour)}

	backend.EXPECT().GetSession(mock.Anything, testSessionID).Return(session)
	backend.EXPECT().FetchUser(mock.Anything, session).Return(nil, assert.AnError)
	backend.EXPECT().SignOut(mock.Anything, testSessionID, false).Return()

	m := newTestManager(clock, backend, txManager)
	defer m.stop()

	require.NoError(t, m.waitReady(context.Background()))

	// An unverifiable session is cleared, not surfaced as an error.
	got, state := m.currentUser()
	assert.Nil(t, got)
	assert.Equal(t, usecase.StateNoSession, state)

	_, armed := m.scheduler.NextFire()
	assert.False(t, armed)
}

func TestSessionManager_RetryRecoversFromError(t *testing.T) {
	clock := newFakeClock(testStart())
	backend := mockSvc.NewMockAuthBackend(t)
	txManager := mockRepo.NewMockTransactionManager(t)

	session := &entity.Session{AccessToken: "at", RefreshToken: "rt", ExpiresAt: testStart().Add(time.Hour)}
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

	backend.EXPECT().GetSession(mock.Anything, testSessionID).Return(session)
	backend.EXPECT().FetchUser(mock.Anything, session).Return(user, nil)
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(assert.AnError).
		Once()
	expectProfileSync(t, txManager)

	m := newTestManager(clock, backend, txManager)
	defer m.stop()

	require.NoError(t, m.waitReady(context.Background()))

	_, state := m.currentUser()
	require.Equal(t, usecase.StateSessionError, state)

	snap := m.snapshot()
	assert.Contains(t, snap.LastError, "failed to sync profile")

	require.NoError(t, m.retry(context.Background()))

	got, state := m.currentUser()
	assert.Equal(t, usecase.StateSessionActive, state)
	assert.Equal(t, user.ID, got.ID)
}
