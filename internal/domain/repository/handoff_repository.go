// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"roost/internal/domain/entity"
)

// ErrHandoffNotFound is returned when no hand-off envelope matches the state parameter.
var ErrHandoffNotFound = errors.New("hand-off state not found")

// HandoffRepository persists OAuth hand-off envelopes across the
// full-page redirect to the provider and back. Envelopes are only ever
// deleted on successful link completion or by the expiry sweep; a failed
// completion must leave the envelope in place so a manual retry still
// finds it.
type HandoffRepository interface {
	// Save writes the envelope, replacing any previous envelope with the
	// same state parameter.
	Save(ctx context.Context, state *entity.HandoffState) error

	// Find retrieves the envelope for a state parameter.
	Find(ctx context.Context, state string) (*entity.HandoffState, error)

	// Delete removes the envelope for a state parameter. Deleting an
	// absent envelope is not an error.
	Delete(ctx context.Context, state string) error

	// DeleteExpired removes every envelope whose deadline has passed and
	// reports how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
