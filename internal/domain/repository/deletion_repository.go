// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"roost/internal/domain/entity"
)

// ErrDeletionRequestNotFound is returned when no deletion request matches the confirmation code.
var ErrDeletionRequestNotFound = errors.New("deletion request not found")

// DeletionRequestRepository records Facebook data-deletion callbacks so
// the deletion-status page can answer for the confirmation code we hand
// back to Facebook.
type DeletionRequestRepository interface {
	// Create persists a new deletion request in pending state.
	Create(ctx context.Context, req *entity.DeletionRequest) error

	// MarkCompleted stamps the request as completed at the given time.
	MarkCompleted(ctx context.Context, code string, completedAt time.Time) error

	// FindByCode retrieves a deletion request by its confirmation code.
	FindByCode(ctx context.Context, code string) (*entity.DeletionRequest, error)
}
