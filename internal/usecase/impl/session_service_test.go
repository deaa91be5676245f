package impl

import (
	"context"
	"testing"
	"time"

	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	mockRepo "roost/internal/mocks/repository"
	mockSvc "roost/internal/mocks/service"
	"roost/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceMocks struct {
	backend   *mockSvc.MockAuthBackend
	store     *mockSvc.MockSessionStore
	txManager *mockRepo.MockTransactionManager
	clock     *fakeClock
}

func newSessionServiceMocks(t *testing.T) *sessionServiceMocks {
	t.Helper()

	return &sessionServiceMocks{
		backend:   mockSvc.NewMockAuthBackend(t),
		store:     mockSvc.NewMockSessionStore(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		clock:     newFakeClock(testStart()),
	}
}

func (ms *sessionServiceMocks) newService(t *testing.T) usecase.SessionUsecase {
	t.Helper()

	srv := NewSessionService(ms.backend, ms.store, ms.txManager, ms.clock, testLogger())
	t.Cleanup(srv.Close)

	return srv
}

// expectSubscription satisfies the constructor's auth-change subscription.
func (ms *sessionServiceMocks) expectSubscription() {
	ms.backend.EXPECT().OnAuthChange(mock.Anything).Return(func() {})
}

// expectActiveSession wires the full happy path for one session: stored
// blob, identity fetch and profile sync.
func (ms *sessionServiceMocks) expectActiveSession(t *testing.T, sessionID string, session *entity.Session, user *entity.User) {
	t.Helper()

	ms.backend.EXPECT().GetSession(mock.Anything, sessionID).Return(session)
	ms.backend.EXPECT().FetchUser(mock.Anything, session).Return(user, nil)
	expectProfileSync(t, ms.txManager)
}

func TestSessionService_BootstrapSignsOutStoredSessions(t *testing.T) {
	ctx := context.Background()
	ms := newSessionServiceMocks(t)
	ms.expectSubscription()

	ms.store.EXPECT().Keys(mock.Anything).Return([]string{"sess-a", "sess-b"})
	ms.backend.EXPECT().SignOut(mock.Anything, "sess-a", true).Return()
	ms.backend.EXPECT().SignOut(mock.Anything, "sess-b", true).Return()
	ms.store.EXPECT().DeleteAll(mock.Anything).Return()

	srv := ms.newService(t)

	require.NoError(t, srv.Bootstrap(ctx))
}

func TestSessionService_BootstrapWithEmptyStore(t *testing.T) {
	ctx := context.Background()
	ms := newSessionServiceMocks(t)
	ms.expectSubscription()

	ms.store.EXPECT().Keys(mock.Anything).Return(nil)
	ms.store.EXPECT().DeleteAll(mock.Anything).Return()

	srv := ms.newService(t)

	require.NoError(t, srv.Bootstrap(ctx))
}

func TestSessionService_SignInResolvesUser(t *testing.T) {
	ctx := context.Background()
	ms := newSessionServiceMocks(t)
	ms.expectSubscription()

	session := &entity.Session{AccessToken: "at", RefreshToken: "rt", ExpiresAt: testStart().Add(time.Hour)}
	user := &entity.User{ID: uuid.New(), Email: "owner@example.com", Role: entity.RoleCustomer}

	ms.backend.EXPECT().SignIn(mock.Anything, "owner@example.com", "hunter2").Return(testSessionID, session, nil)
	ms.expectActiveSession(t, testSessionID, session, user)

	srv := ms.newService(t)

	sessionID, got, err := srv.SignIn(ctx, "owner@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, testSessionID, sessionID)
	assert.Equal(t, user.ID, got.ID)
}

func TestSessionService_SignInRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	ms := newSessionServiceMocks(t)
	ms.expectSubscription()

	ms.backend.EXPECT().
		SignIn(mock.Anything, "owner@example.com", "wrong").
		Return("", nil, domainerrors.ErrInvalidCredentials)

	srv := ms.newService(t)

	sessionID, got, err := srv.SignIn(ctx, "owner@example.com", "wrong")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Empty(t, sessionID)
	assert.Nil(t, got)
}

func TestSessionService_SignUpPendingConfirmation(t *testing.T) {
	ctx := context.Background()
	ms := newSessionServiceMocks(t)
	ms.expectSubscription()

	ms.backend.EXPECT().SignUp(mock.Anything, "new@example.com", "hunter2").Return("", nil, nil)

	srv := ms.newService(t)

	sessionID, got, err := srv.SignUp(ctx, "new@example.com", "hunter2")
	require.NoError(t, err)
	assert.Empty(t, sessionID)
	assert.Nil(t, got)
}

func TestSessionService_ResolveAdoptsStoredSession(t *testing.T) {
	ctx := context.Background()
	ms := newSessionServiceMocks(t)
	ms.expectSubscription()

	session := &entity.Session{AccessToken: "at", RefreshToken: "rt", ExpiresAt: testStart().Add(time.Hour)}
	user := &entity.User{ID: uuid.New(), Email: "owner@example.com", Role: entity.RoleCustomer}
	ms.expectActiveSession(t, testSessionID, session, user)

	srv := ms.newService(t)

	got, err := srv.Resolve(ctx, testSessionID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestSessionService_ResolveUnknownSession(t *testing.T) {
	ctx := context.Background()
	ms := newSessionServiceMocks(t)
	ms.expectSubscription()

	ms.backend.EXPECT().GetSession(mock.Anything, "sess-bogus").Return(nil)

	srv := ms.newService(t)

	got, err := srv.Resolve(ctx, "sess-bogus")
	assert.ErrorIs(t, err, domainerrors.ErrNoSession)
	assert.Nil(t, got)
}

func TestSessionService_ResolveWithoutCookie(t *testing.T) {
	ctx := context.Background()
	ms := newSessionServiceMocks(t)
	ms.expectSubscription()

	srv := ms.newService(t)

	got, err := srv.Resolve(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrNoSession)
	assert.Nil(t, got)
}

func TestSessionService_SignOutRevokesEverywhere(t *testing.T) {
	ctx := context.Background()
	ms := newSessionServiceMocks(t)
	ms.expectSubscription()

	session := &entity.Session{AccessToken: "at", RefreshToken: "rt", ExpiresAt: testStart().Add(time.Hour)}
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

	ms.backend.EXPECT().SignIn(mock.Anything, "owner@example.com", "hunter2").Return(testSessionID, session, nil)
	ms.expectActiveSession(t, testSessionID, session, user)
	ms.backend.EXPECT().SignOut(mock.Anything, testSessionID, true).Return()

	srv := ms.newService(t)

	_, _, err := srv.SignIn(ctx, "owner@example.com", "hunter2")
	require.NoError(t, err)

	require.NoError(t, srv.SignOut(ctx, testSessionID))
}

func TestSessionService_ForceResetAlwaysSucceeds(t *testing.T) {
	ctx := context.Background()
	ms := newSessionServiceMocks(t)
	ms.expectSubscription()

	// No manager exists for this session; the reset still goes through.
	ms.backend.EXPECT().SignOut(mock.Anything, "sess-gone", true).Return()

	srv := ms.newService(t)

	require.NoError(t, srv.ForceReset(ctx, "sess-gone"))
}

func TestSessionService_SnapshotWithoutSession(t *testing.T) {
	ctx := context.Background()
	ms := newSessionServiceMocks(t)
	ms.expectSubscription()

	ms.backend.EXPECT().GetSession(mock.Anything, "sess-bogus").Return(nil)

	srv := ms.newService(t)

	snap, err := srv.Snapshot(ctx, "sess-bogus")
	require.NoError(t, err)
	assert.Equal(t, usecase.StateNoSession, snap.State)

	snap, err = srv.Snapshot(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, usecase.StateNoSession, snap.State)
}

func TestSessionService_SnapshotReportsActiveSession(t *testing.T) {
	ctx := context.Background()
	ms := newSessionServiceMocks(t)
	ms.expectSubscription()

	session := &entity.Session{AccessToken: "at", RefreshToken: "rt", ExpiresAt: testStart().Add(time.Hour)}
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
	ms.expectActiveSession(t, testSessionID, session, user)

	srv := ms.newService(t)

	snap, err := srv.Snapshot(ctx, testSessionID)
	require.NoError(t, err)
	assert.Equal(t, usecase.StateSessionActive, snap.State)
	assert.Equal(t, session.ExpiresAt, snap.ExpiresAt)
	assert.Equal(t, testStart().Add(2880*time.Second), snap.NextRefreshAt)
}

func TestSessionService_RetryWithoutManager(t *testing.T) {
	ctx := context.Background()
	ms := newSessionServiceMocks(t)
	ms.expectSubscription()

	srv := ms.newService(t)

	err := srv.Retry(ctx, "sess-gone")
	assert.ErrorIs(t, err, domainerrors.ErrNoSession)
}

func TestSessionService_AuthChangeReachesManager(t *testing.T) {
	ctx := context.Background()
	ms := newSessionServiceMocks(t)

	var route func(entity.AuthChange)
	ms.backend.EXPECT().
		OnAuthChange(mock.Anything).
		Run(func(fn func(entity.AuthChange)) { route = fn }).
		Return(func() {})

	session := &entity.Session{AccessToken: "at", RefreshToken: "rt", ExpiresAt: testStart().Add(time.Hour)}
	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

	ms.backend.EXPECT().SignIn(mock.Anything, "owner@example.com", "hunter2").Return(testSessionID, session, nil)
	ms.expectActiveSession(t, testSessionID, session, user)

	srv := ms.newService(t)

	_, _, err := srv.SignIn(ctx, "owner@example.com", "hunter2")
	require.NoError(t, err)
	require.NotNil(t, route)

	route(entity.AuthChange{Kind: entity.AuthSignedOut, SessionID: testSessionID})

	require.Eventually(t, func() bool {
		snap, snapErr := srv.Snapshot(ctx, testSessionID)
		return snapErr == nil && snap.State == usecase.StateNoSession
	}, time.Second, 5*time.Millisecond)
}

func TestSessionService_CloseUnsubscribes(t *testing.T) {
	ms := newSessionServiceMocks(t)

	unsubscribed := false
	ms.backend.EXPECT().OnAuthChange(mock.Anything).Return(func() { unsubscribed = true })

	srv := NewSessionService(ms.backend, ms.store, ms.txManager, ms.clock, testLogger())
	srv.Close()

	assert.True(t, unsubscribed)
}
