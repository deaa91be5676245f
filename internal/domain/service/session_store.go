package service

import (
	"context"

	"roost/internal/domain/entity"
)

// SessionStore persists session blobs under fixed-prefix keys. It is the
// storage adapter behind the auth client: every method degrades instead
// of failing, so a broken store reads as "logged out" rather than a
// crash. Implementations log their own failures.
type SessionStore interface {
	// Load returns the stored session for the ID, or nil when the entry
	// is missing, unreadable, or the store is unavailable.
	Load(ctx context.Context, sessionID string) *entity.Session

	// Save writes the session blob for the ID, replacing any previous
	// value. Failures are logged and dropped.
	Save(ctx context.Context, sessionID string, session *entity.Session)

	// Delete removes the entry for the ID if present.
	Delete(ctx context.Context, sessionID string)

	// Keys lists the session IDs currently stored. Used by the boot-time
	// forced sign-out to find every session to invalidate.
	Keys(ctx context.Context) []string

	// DeleteAll wipes every entry under the store's key prefix.
	DeleteAll(ctx context.Context)
}
