// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "roost/internal/delivery/context"
	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/domain/service"
	"roost/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface. It keeps one
// sessionManager per live browser session and routes auth-state changes
// from the backend wrapper to the manager that owns the session.
type sessionService struct {
	fx.In

	backend   service.AuthBackend
	store     service.SessionStore
	txManager repository.TransactionManager
	clock     service.Clock
	logger    *slog.Logger

	ctx         context.Context
	cancelAll   context.CancelFunc
	unsubscribe func()

	mu       sync.Mutex
	managers map[string]*sessionManager
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	backend service.AuthBackend,
	store service.SessionStore,
	txManager repository.TransactionManager,
	clock service.Clock,
	logger *slog.Logger,
) usecase.SessionUsecase {
	srv := &sessionService{
		backend:   backend,
		store:     store,
		txManager: txManager,
		clock:     clock,
		logger:    logger,
		managers:  make(map[string]*sessionManager),
	}
	srv.ctx, srv.cancelAll = context.WithCancel(context.Background())
	srv.unsubscribe = backend.OnAuthChange(srv.routeAuthChange)

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Bootstrap signs out every session the store still holds. Managers and
// refresh timers from the previous process are gone, so whatever
// survived the restart is unowned and gets revoked everywhere.
func (srv *sessionService) Bootstrap(ctx context.Context) error {
	keys := srv.store.Keys(ctx)
	for _, sessionID := range keys {
		srv.backend.SignOut(ctx, sessionID, true)
	}
	// Sweep whatever the per-session sign-outs missed, including blobs
	// written while the loop ran.
	srv.store.DeleteAll(ctx)

	srv.log(ctx).Info("Signed out sessions left over from previous run", slog.Int("count", len(keys)))

	return nil
}

// SignIn authenticates the credentials, spawns the session manager and
// waits for its first check so the caller gets the resolved user.
func (srv *sessionService) SignIn(ctx context.Context, email, password string) (string, *entity.User, error) {
	sessionID, _, err := srv.backend.SignIn(ctx, email, password)
	if err != nil {
		srv.log(ctx).Warn("Sign-in failed", slog.Any("error", err))
		return "", nil, err
	}

	user, err := srv.adoptAndWait(ctx, sessionID)
	if err != nil {
		return "", nil, err
	}

	srv.log(ctx).Info("Signed in", slog.Any("session_id", sessionID), slog.Any("user_id", user.ID))

	return sessionID, user, nil
}

// SignUp registers the account. A deployment that requires email
// confirmation returns no session; the caller shows the notice.
func (srv *sessionService) SignUp(ctx context.Context, email, password string) (string, *entity.User, error) {
	sessionID, session, err := srv.backend.SignUp(ctx, email, password)
	if err != nil {
		srv.log(ctx).Warn("Sign-up failed", slog.Any("error", err))
		return "", nil, err
	}

	if session == nil {
		srv.log(ctx).Info("Sign-up accepted, confirmation pending")
		return "", nil, nil
	}

	user, err := srv.adoptAndWait(ctx, sessionID)
	if err != nil {
		return "", nil, err
	}

	srv.log(ctx).Info("Signed up", slog.Any("session_id", sessionID), slog.Any("user_id", user.ID))

	return sessionID, user, nil
}

// SignOut stops the session's manager and revokes the session on every
// device. The backend treats remote failure as non-fatal, so this
// always succeeds.
func (srv *sessionService) SignOut(ctx context.Context, sessionID string) error {
	srv.drop(sessionID)
	srv.backend.SignOut(ctx, sessionID, true)

	srv.log(ctx).Info("Signed out", slog.Any("session_id", sessionID))

	return nil
}

// Resolve returns the user behind the session, adopting a stored
// session that has no manager yet. Only an active session resolves;
// everything else reads as signed out or expired.
func (srv *sessionService) Resolve(ctx context.Context, sessionID string) (*entity.User, error) {
	if sessionID == "" {
		return nil, domainerrors.ErrNoSession
	}

	m, err := srv.ensureManager(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, state := m.currentUser()
	switch state {
	case usecase.StateSessionActive:
		return user, nil
	case usecase.StateSessionError:
		return nil, domainerrors.ErrSessionExpired
	default:
		// A manager that settled on "no session" has nothing left to do.
		srv.drop(sessionID)
		return nil, domainerrors.ErrNoSession
	}
}

// Snapshot reports the session's lifecycle state for the status widget.
// An unknown session is not an error, it is simply "no session".
func (srv *sessionService) Snapshot(ctx context.Context, sessionID string) (*usecase.SessionSnapshot, error) {
	if sessionID == "" {
		return &usecase.SessionSnapshot{State: usecase.StateNoSession}, nil
	}

	m, err := srv.ensureManager(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNoSession) {
			return &usecase.SessionSnapshot{State: usecase.StateNoSession}, nil
		}

		return nil, err
	}

	return m.snapshot(), nil
}

// Retry re-runs the session check for a session stuck in the error
// state and waits for the check to finish.
func (srv *sessionService) Retry(ctx context.Context, sessionID string) error {
	srv.mu.Lock()
	m := srv.managers[sessionID]
	srv.mu.Unlock()

	if m == nil {
		return domainerrors.ErrNoSession
	}

	srv.log(ctx).Info("Manual session retry", slog.Any("session_id", sessionID))

	return m.retry(ctx)
}

// ForceReset abandons the session unconditionally: the manager stops,
// the stored blob goes away and a global sign-out is attempted. It
// cannot fail from the caller's point of view.
func (srv *sessionService) ForceReset(ctx context.Context, sessionID string) error {
	srv.drop(sessionID)
	srv.backend.SignOut(ctx, sessionID, true)

	srv.log(ctx).Info("Session force-reset", slog.Any("session_id", sessionID))

	return nil
}

// Close stops the auth-change subscription and every manager.
func (srv *sessionService) Close() {
	srv.unsubscribe()
	srv.cancelAll()

	srv.mu.Lock()
	srv.managers = make(map[string]*sessionManager)
	srv.mu.Unlock()
}

// adoptAndWait spawns (or finds) the manager for the session and waits
// for its first check, then reads the settled state.
func (srv *sessionService) adoptAndWait(ctx context.Context, sessionID string) (*entity.User, error) {
	m := srv.adopt(sessionID)
	if err := m.waitReady(ctx); err != nil {
		return nil, err
	}

	user, state := m.currentUser()
	switch state {
	case usecase.StateSessionActive:
		return user, nil
	case usecase.StateSessionError:
		return nil, errors.Wrap(domainerrors.ErrIdentityFetchFailed, "session check failed after sign-in")
	default:
		return nil, domainerrors.ErrNoSession
	}
}

// adopt returns the session's manager, creating one when missing.
func (srv *sessionService) adopt(sessionID string) *sessionManager {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if m, ok := srv.managers[sessionID]; ok {
		return m
	}

	m := newSessionManager(srv.ctx, sessionID, srv.backend, srv.txManager, srv.clock, srv.logger)
	srv.managers[sessionID] = m

	return m
}

// ensureManager resolves the manager for a session ID coming from a
// cookie. Unknown IDs with no stored blob never get a manager, so a
// bogus cookie cannot grow the registry.
func (srv *sessionService) ensureManager(ctx context.Context, sessionID string) (*sessionManager, error) {
	srv.mu.Lock()
	m, ok := srv.managers[sessionID]
	srv.mu.Unlock()
	if ok {
		return m, nil
	}

	if srv.backend.GetSession(ctx, sessionID) == nil {
		return nil, domainerrors.ErrNoSession
	}

	m = srv.adopt(sessionID)
	if err := m.waitReady(ctx); err != nil {
		return nil, err
	}

	return m, nil
}

// drop stops and forgets the session's manager if one exists.
func (srv *sessionService) drop(sessionID string) {
	srv.mu.Lock()
	m := srv.managers[sessionID]
	delete(srv.managers, sessionID)
	srv.mu.Unlock()

	if m != nil {
		m.stop()
	}
}

// routeAuthChange forwards a backend auth-state change to the manager
// owning that session. Changes for unmanaged sessions are dropped; the
// next request adopts the stored session and re-checks anyway.
func (srv *sessionService) routeAuthChange(change entity.AuthChange) {
	srv.mu.Lock()
	m := srv.managers[change.SessionID]
	srv.mu.Unlock()

	if m != nil {
		m.offerAuthChange(change)
	}
}
