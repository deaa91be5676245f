package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"roost/internal/domain/entity"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/repository"
	"roost/internal/domain/service"
	"roost/internal/errors"
	"roost/internal/usecase"
)

const (
	// refreshFraction of the remaining token lifetime passes before the
	// proactive refresh fires.
	refreshFraction = 0.8

	// minRefreshDelay floors the refresh delay so a token that is about
	// to expire does not produce a hot refresh loop.
	minRefreshDelay = 5 * time.Second

	// refreshRetryDelay is the fixed interval between refresh attempts
	// after a transient failure. No backoff.
	refreshRetryDelay = 30 * time.Second

	// heartbeatInterval is how often the manager re-checks the session
	// independently of the refresh timer.
	heartbeatInterval = 120 * time.Second
)

// refreshDelay computes when the proactive refresh should fire for a
// token expiring at expiresAt: 80% of the remaining lifetime, floored
// at minRefreshDelay. A token 3600s from expiry refreshes after 2880s.
func refreshDelay(expiresAt, now time.Time) time.Duration {
	delay := time.Duration(refreshFraction * float64(expiresAt.Sub(now)))
	if delay < minRefreshDelay {
		delay = minRefreshDelay
	}

	return delay
}

type managerEventKind int

const (
	eventInitialize managerEventKind = iota
	eventRefreshDue
	eventAuthChange
	eventRetry
)

type managerEvent struct {
	kind   managerEventKind
	change entity.AuthChange
	done   chan struct{} // closed after the event is handled, when set
}

// sessionManager drives the lifecycle of one browser session. All state
// transitions happen on its event loop, so refresh timers, heartbeats
// and auth-change notifications never race each other, and the single
// scheduler timer has a single owner.
type sessionManager struct {
	sessionID string
	backend   service.AuthBackend
	txManager repository.TransactionManager
	scheduler *refreshScheduler
	clock     service.Clock
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	events chan managerEvent

	readyOnce sync.Once
	ready     chan struct{} // closed once the first session check finished

	mu      sync.RWMutex
	state   usecase.SessionState
	session *entity.Session
	user    *entity.User
	lastErr error
}

func newSessionManager(
	parent context.Context,
	sessionID string,
	backend service.AuthBackend,
	txManager repository.TransactionManager,
	clock service.Clock,
	logger *slog.Logger,
) *sessionManager {
	ctx, cancel := context.WithCancel(parent)
	m := &sessionManager{
		sessionID: sessionID,
		backend:   backend,
		txManager: txManager,
		scheduler: newRefreshScheduler(clock),
		clock:     clock,
		logger:    logger,
		ctx:       ctx,
		cancel:    cancel,
		events:    make(chan managerEvent, 8),
		ready:     make(chan struct{}),
		state:     usecase.StateInitializing,
	}

	// Queue the first check before the loop starts so nothing can get
	// ahead of it. The events channel is buffered, this cannot block.
	m.events <- managerEvent{kind: eventInitialize}
	go m.run()

	return m
}

func (m *sessionManager) run() {
	heartbeat := m.clock.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()
	defer m.scheduler.Cancel()
	defer m.markReady()

	for {
		select {
		case <-m.ctx.Done():
			return
		case ev := <-m.events:
			m.handle(ev)
			if ev.done != nil {
				close(ev.done)
			}
		case <-heartbeat.C():
			m.heartbeat()
		}
	}
}

func (m *sessionManager) handle(ev managerEvent) {
	switch ev.kind {
	case eventInitialize, eventRetry:
		m.checkSession()
	case eventRefreshDue:
		m.refreshNow()
	case eventAuthChange:
		m.applyAuthChange(ev.change)
	}
}

// checkSession is the full check: load the stored session, resolve the
// identity behind it, and arm the refresh timer. It runs at start-up
// and again on every manual retry.
func (m *sessionManager) checkSession() {
	defer m.markReady()

	session := m.backend.GetSession(m.ctx, m.sessionID)
	if session == nil {
		m.toNoSession("no stored session")
		return
	}

	// A session whose identity the auth service will not confirm is
	// not trusted: clear it and fall back to the login state.
	user, err := m.backend.FetchUser(m.ctx, session)
	if err != nil {
		m.logger.Warn("Identity fetch failed, clearing session",
			slog.Any("error", err),
			slog.Any("session_id", m.sessionID))
		m.backend.SignOut(m.ctx, m.sessionID, false)
		m.toNoSession("identity fetch failed")

		return
	}

	if err := m.syncProfile(user); err != nil {
		m.toError(err)
		return
	}

	m.toActive(session, user)
	m.armRefresh(session)
}

// syncProfile upserts the profile row, which also backfills the stored
// role onto the user.
func (m *sessionManager) syncProfile(user *entity.User) error {
	err := m.txManager.Execute(m.ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewUserRepository().Sync(m.ctx, user)
	})

	return errors.Wrap(err, "failed to sync profile")
}

func (m *sessionManager) resolveIdentity(session *entity.Session) (*entity.User, error) {
	user, err := m.backend.FetchUser(m.ctx, session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve session identity")
	}

	if err := m.syncProfile(user); err != nil {
		return nil, err
	}

	return user, nil
}

// refreshNow runs when the proactive refresh timer fires. A transient
// failure keeps the current state and re-arms the timer at the fixed
// retry interval; a rejected refresh means the session is gone.
func (m *sessionManager) refreshNow() {
	session, err := m.backend.RefreshSession(m.ctx, m.sessionID)
	if err != nil {
		if isSessionInvalid(err) {
			m.toNoSession("refresh rejected")
			return
		}

		m.logger.Warn("Session refresh failed, retrying",
			slog.Any("error", err),
			slog.Any("session_id", m.sessionID),
			slog.Duration("retry_in", refreshRetryDelay))
		m.scheduler.Arm(refreshRetryDelay, m.postRefreshDue)

		return
	}

	m.setSession(session)
	m.armRefresh(session)
	m.logger.Debug("Session refreshed", slog.Any("session_id", m.sessionID))
}

// heartbeat re-checks session presence on a fixed cadence while a user
// is signed in. A present session is left alone; renewal belongs to the
// refresh timer. A session that vanished from the store (evicted by
// another instance, revoked at the backend) gets exactly one refresh
// attempt; failure clears the cached user without a forced sign-out.
func (m *sessionManager) heartbeat() {
	m.mu.RLock()
	signedIn := m.user != nil
	m.mu.RUnlock()
	if !signedIn {
		return
	}

	if m.backend.GetSession(m.ctx, m.sessionID) != nil {
		return
	}

	refreshed, err := m.backend.RefreshSession(m.ctx, m.sessionID)
	if err != nil {
		m.logger.Warn("Session vanished and refresh failed",
			slog.Any("error", err),
			slog.Any("session_id", m.sessionID))
		m.toNoSession("session missing at heartbeat")

		return
	}

	m.setSession(refreshed)
	m.ensureIdentity(refreshed)
	m.armRefresh(refreshed)
}

func (m *sessionManager) applyAuthChange(change entity.AuthChange) {
	switch change.Kind {
	case entity.AuthSignedOut:
		m.toNoSession("signed out")
	case entity.AuthSignedIn, entity.AuthTokenRefreshed:
		if change.Session == nil {
			return
		}

		m.setSession(change.Session)
		m.ensureIdentity(change.Session)
		m.armRefresh(change.Session)
	}
}

// ensureIdentity restores the cached user after it was cleared by an
// earlier failure. With the user already present it is a no-op.
func (m *sessionManager) ensureIdentity(session *entity.Session) {
	m.mu.RLock()
	have := m.user != nil
	m.mu.RUnlock()
	if have {
		return
	}

	user, err := m.resolveIdentity(session)
	if err != nil {
		m.toError(err)
		return
	}

	m.toActive(session, user)
}

func (m *sessionManager) armRefresh(session *entity.Session) {
	delay := refreshDelay(session.ExpiresAt, m.clock.Now())
	m.scheduler.Arm(delay, m.postRefreshDue)
	m.logger.Debug("Refresh armed",
		slog.Any("session_id", m.sessionID),
		slog.Duration("delay", delay))
}

func (m *sessionManager) postRefreshDue() {
	m.post(managerEvent{kind: eventRefreshDue})
}

// post delivers the event to the loop, giving up when the manager is
// stopped so timer goroutines cannot leak.
func (m *sessionManager) post(ev managerEvent) {
	select {
	case m.events <- ev:
	case <-m.ctx.Done():
	}
}

// offerAuthChange is the non-blocking variant used by the auth-change
// router. Changes triggered by the loop's own backend calls would
// otherwise deadlock against a full queue; dropping one is safe because
// the triggering operation already applied its outcome.
func (m *sessionManager) offerAuthChange(change entity.AuthChange) {
	select {
	case m.events <- managerEvent{kind: eventAuthChange, change: change}:
	default:
		m.logger.Debug("Auth change dropped, event queue full",
			slog.Any("session_id", m.sessionID),
			slog.Any("kind", change.Kind))
	}
}

// retry queues a manual re-check and waits until the loop has run it.
func (m *sessionManager) retry(ctx context.Context) error {
	done := make(chan struct{})

	select {
	case m.events <- managerEvent{kind: eventRetry, done: done}:
	case <-ctx.Done():
		return ctx.Err()
	case <-m.ctx.Done():
		return domainerrors.ErrNoSession
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-m.ctx.Done():
		return domainerrors.ErrNoSession
	}
}

// waitReady blocks until the first session check has finished, so a
// caller adopting an existing cookie gets a settled state.
func (m *sessionManager) waitReady(ctx context.Context) error {
	select {
	case <-m.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-m.ctx.Done():
		return domainerrors.ErrNoSession
	}
}

func (m *sessionManager) markReady() {
	m.readyOnce.Do(func() { close(m.ready) })
}

func (m *sessionManager) stop() {
	m.cancel()
}

func (m *sessionManager) snapshot() *usecase.SessionSnapshot {
	m.mu.RLock()
	snap := &usecase.SessionSnapshot{
		State: m.state,
		User:  m.user,
	}
	if m.session != nil {
		snap.ExpiresAt = m.session.ExpiresAt
	}
	if m.lastErr != nil {
		snap.LastError = m.lastErr.Error()
	}
	m.mu.RUnlock()

	if at, ok := m.scheduler.NextFire(); ok {
		snap.NextRefreshAt = at
	}

	return snap
}

func (m *sessionManager) currentUser() (*entity.User, usecase.SessionState) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.user, m.state
}

// State setters. Only the event loop calls these; the mutex exists for
// snapshot readers.

func (m *sessionManager) toActive(session *entity.Session, user *entity.User) {
	m.mu.Lock()
	m.state = usecase.StateSessionActive
	m.session = session
	m.user = user
	m.lastErr = nil
	m.mu.Unlock()
}

func (m *sessionManager) setSession(session *entity.Session) {
	m.mu.Lock()
	m.session = session
	m.mu.Unlock()
}

func (m *sessionManager) toNoSession(reason string) {
	m.scheduler.Cancel()

	m.mu.Lock()
	m.state = usecase.StateNoSession
	m.session = nil
	m.user = nil
	m.lastErr = nil
	m.mu.Unlock()

	m.logger.Info("Session cleared",
		slog.Any("session_id", m.sessionID),
		slog.Any("reason", reason))
}

func (m *sessionManager) toError(err error) {
	m.scheduler.Cancel()

	m.mu.Lock()
	m.state = usecase.StateSessionError
	m.user = nil
	m.lastErr = err
	m.mu.Unlock()

	m.logger.Warn("Session check failed",
		slog.Any("error", err),
		slog.Any("session_id", m.sessionID))
}

// isSessionInvalid separates "the session itself is gone or revoked"
// from transient trouble reaching the auth service.
func isSessionInvalid(err error) bool {
	return errors.Is(err, domainerrors.ErrNoSession) ||
		errors.Is(err, domainerrors.ErrRefreshRejected)
}
