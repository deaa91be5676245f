// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeletionStatus tracks a Facebook data-deletion request.
type DeletionStatus string

const (
	// DeletionPending means the request was accepted but work remains.
	DeletionPending DeletionStatus = "pending"
	// DeletionCompleted means every connection for the user was removed.
	DeletionCompleted DeletionStatus = "completed"
)

// String returns the string representation of the status.
func (s DeletionStatus) String() string {
	return string(s)
}

// DeletionRequest records one data-deletion callback from Facebook. The
// confirmation code is returned to Facebook and later presented by the
// user on the deletion-status page.
type DeletionRequest struct {
	Code        string         // Confirmation code handed back to Facebook; primary key.
	UserID      uuid.UUID      // The dashboard user whose data was requested for deletion.
	Status      DeletionStatus // Current processing state.
	RequestedAt time.Time      // When the callback arrived.
	CompletedAt *time.Time     // Set once the connections were removed.
}
