// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	// HandoffVersion is the current envelope layout version. Envelopes
	// written by an older deployment are discarded, never reinterpreted.
	HandoffVersion = 1

	// HandoffTTL bounds how long a hand-off may sit between the redirect
	// to the provider's dialog and the callback that consumes it.
	HandoffTTL = 15 * time.Minute
)

// HandoffState is the envelope persisted immediately before the dashboard
// redirects the browser to the OAuth dialog. The full-page redirect loses
// all in-memory context, so everything the callback needs to resume rides
// here, keyed by the opaque state parameter that also serves as the CSRF
// check. Pages carries any page list fetched best-effort before redirect;
// it stays attached to the envelope until a connection is persisted.
type HandoffState struct {
	State       string         // Random state parameter echoed back by the provider; primary key.
	Version     int            // Envelope layout version, compared against HandoffVersion on read.
	UserID      uuid.UUID      // The dashboard user who initiated the link.
	SessionID   string         // The gateway session the user held when redirecting away.
	Platform    Platform       // Which network the link targets.
	Pages       []FacebookPage // Pages cached before redirect or during the callback; kept until a connection is persisted.
	ExternalUID string         // Provider-side user ID once known; needed for deletion callbacks later.
	IssuedAt    time.Time      // When the envelope was written.
	ExpiresAt   time.Time      // IssuedAt + HandoffTTL; enforced, not advisory.
}

// Age returns how long ago the envelope was issued.
func (h *HandoffState) Age(now time.Time) time.Duration {
	return now.Sub(h.IssuedAt)
}

// Stale reports whether the envelope is too old to trust. Expiry is
// checked against both the stored deadline and the issue time so a row
// with a corrupted deadline still ages out.
func (h *HandoffState) Stale(now time.Time) bool {
	if !now.Before(h.ExpiresAt) {
		return true
	}

	return h.Age(now) > HandoffTTL
}

// VersionOK reports whether the envelope was written by this layout.
func (h *HandoffState) VersionOK() bool {
	return h.Version == HandoffVersion
}
