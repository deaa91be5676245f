// Package service defines domain-level interfaces for capabilities the
// use cases need but the domain does not implement itself.
package service

import (
	"context"

	"roost/internal/domain/entity"
)

// AuthBackend is the gateway's client for the hosted auth service. It
// owns session persistence through a SessionStore and announces every
// state change it causes to subscribers.
//
// The contract is deliberately forgiving on the read side: GetSession
// never fails, it degrades to "no session", and SignOut always succeeds
// from the caller's point of view. Write operations report real errors.
type AuthBackend interface {
	// SignIn performs a password grant and stores the resulting session
	// under a freshly minted session ID.
	SignIn(ctx context.Context, email, password string) (sessionID string, session *entity.Session, err error)

	// SignUp registers the account and stores the resulting session. Some
	// deployments require email confirmation, in which case the returned
	// session is nil and the caller shows the confirmation notice.
	SignUp(ctx context.Context, email, password string) (sessionID string, session *entity.Session, err error)

	// GetSession returns the stored session for the ID, or nil when there
	// is none. Store and backend failures are logged and read as nil; this
	// call never fails.
	GetSession(ctx context.Context, sessionID string) *entity.Session

	// RefreshSession exchanges the stored refresh token for a replacement
	// session and persists it under the same ID. It returns
	// domainerrors.ErrNoSession when nothing is stored and
	// domainerrors.ErrRefreshRejected when the auth service declines.
	RefreshSession(ctx context.Context, sessionID string) (*entity.Session, error)

	// SignOut invalidates the session, across all devices when global is
	// set. Best-effort: the local store entry is always removed first and
	// backend failures are swallowed after logging.
	SignOut(ctx context.Context, sessionID string, global bool)

	// FetchUser resolves the identity behind a session via the auth
	// service. A failure here means the session cannot be trusted.
	FetchUser(ctx context.Context, session *entity.Session) (*entity.User, error)

	// OnAuthChange registers a subscriber for auth-state changes. The
	// returned function removes the subscription. Callbacks run on the
	// wrapper's goroutine and must not block.
	OnAuthChange(fn func(entity.AuthChange)) (unsubscribe func())
}
