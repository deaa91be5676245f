// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"roost/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for profile persistence.
// Profiles mirror the auth service's user records; the auth service stays
// the source of truth for credentials, this table only carries role and
// display data the gateway needs locally.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Sync inserts the profile row on first sight of a user and refreshes
	// the email on subsequent sign-ins. The stored role always wins; a
	// sync never promotes or demotes.
	Sync(ctx context.Context, user *entity.User) error

	// List returns profiles ordered by creation time, newest first.
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)

	// Count returns the total number of profiles.
	Count(ctx context.Context) (int64, error)
}
