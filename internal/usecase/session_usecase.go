// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"roost/internal/domain/entity"
)

// SessionState is the lifecycle state of one browser session as the
// gateway sees it.
type SessionState string

const (
	// StateInitializing means the first session check has not finished.
	StateInitializing SessionState = "initializing"
	// StateNoSession means there is no usable session; the browser
	// belongs on the login page.
	StateNoSession SessionState = "no_session"
	// StateSessionError means a session exists but the last check or
	// refresh failed; a manual retry may recover it.
	StateSessionError SessionState = "session_error"
	// StateSessionActive means the session is healthy and the user is
	// resolved.
	StateSessionActive SessionState = "session_active"
)

// SessionSnapshot is a point-in-time view of one session's lifecycle,
// served to the dashboard status widget.
type SessionSnapshot struct {
	State         SessionState
	User          *entity.User
	ExpiresAt     time.Time
	NextRefreshAt time.Time
	LastError     string
}

// SessionUsecase drives the session lifecycle: sign-in and sign-out,
// the per-session refresh loop, and the resolution step every
// authenticated request goes through.
type SessionUsecase interface {
	// Bootstrap force-signs-out every stored session. It runs once at
	// process start so nothing stale survives a restart.
	Bootstrap(ctx context.Context) error

	// SignIn authenticates and returns the new session ID for the
	// cookie along with the resolved user.
	SignIn(ctx context.Context, email, password string) (string, *entity.User, error)

	// SignUp registers an account. When the deployment requires email
	// confirmation both return values are empty and the caller shows
	// the confirmation notice.
	SignUp(ctx context.Context, email, password string) (string, *entity.User, error)

	// SignOut ends the session everywhere. It always succeeds locally;
	// remote failures are logged and swallowed.
	SignOut(ctx context.Context, sessionID string) error

	// Resolve returns the user behind an active session. Anything but
	// an active session is an error that sends the browser to login.
	Resolve(ctx context.Context, sessionID string) (*entity.User, error)

	// Snapshot reports the lifecycle state of a session without
	// side effects beyond lazily adopting a stored session.
	Snapshot(ctx context.Context, sessionID string) (*SessionSnapshot, error)

	// Retry re-runs the session check after an error state.
	Retry(ctx context.Context, sessionID string) error

	// ForceReset abandons the session unconditionally: timers stopped,
	// stored blob removed, remote sign-out attempted.
	ForceReset(ctx context.Context, sessionID string) error

	// Close stops every session manager. Called on shutdown.
	Close()
}
