// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"roost/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrConnectionNotFound is returned when a social connection is not found.
var ErrConnectionNotFound = errors.New("social connection not found")

// ConnectionRepository defines the operations for social connection persistence.
// Access tokens arrive here already sealed; this layer never sees plaintext.
type ConnectionRepository interface {
	// Upsert inserts the connection or, when a row with the same
	// (user_id, platform, page_id) key exists, replaces its token material
	// and page name in place. The entity's ID and CreatedAt are filled in
	// from the stored row.
	Upsert(ctx context.Context, conn *entity.SocialConnection) error

	// FindByID retrieves a single connection by its surrogate ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SocialConnection, error)

	// ListByUser returns all connections owned by the user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SocialConnection, error)

	// FindOwnerByExternalUID resolves the dashboard user that owns any
	// connection carrying the network's user ID. Data-deletion callbacks
	// only know that external ID.
	FindOwnerByExternalUID(ctx context.Context, externalUID string) (uuid.UUID, error)

	// DeleteByUser removes every connection owned by the user and reports
	// how many rows went away. Used by the data-deletion callback.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// Count returns the total number of stored connections.
	Count(ctx context.Context) (int64, error)
}
