// Package entity contains the core business objects of the project.
package entity

import "time"

// Session is the credential pair issued by the hosted auth service.
// The gateway never mints sessions itself; it keeps the most recent pair
// per signed-in browser and replaces the whole value on every refresh.
type Session struct {
	AccessToken  string    // Short-lived JWT presented to the auth service and decoded for claims.
	RefreshToken string    // Opaque token exchanged for a replacement session when the access token ages out.
	TokenType    string    // Token scheme reported by the auth service, normally "bearer".
	ExpiresAt    time.Time // Absolute expiry of the access token.
}

// ExpiresIn returns the remaining lifetime of the access token at the
// given instant. The result is negative once the session has expired.
func (s *Session) ExpiresIn(now time.Time) time.Duration {
	return s.ExpiresAt.Sub(now)
}

// Expired reports whether the access token is past its expiry.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// AuthEventKind identifies a change announced by the auth client wrapper.
type AuthEventKind string

const (
	// AuthSignedIn fires after a successful password sign-in or sign-up.
	AuthSignedIn AuthEventKind = "signed_in"
	// AuthTokenRefreshed fires after a refresh replaces the session.
	AuthTokenRefreshed AuthEventKind = "token_refreshed"
	// AuthSignedOut fires after a sign-out, including best-effort ones.
	AuthSignedOut AuthEventKind = "signed_out"
)

// AuthChange is delivered to auth-state subscribers. Session is nil for
// sign-out events. Consumers treat these as concurrent with their own
// timers; the session manager serializes them through its event loop.
type AuthChange struct {
	Kind      AuthEventKind
	SessionID string
	Session   *Session
}
