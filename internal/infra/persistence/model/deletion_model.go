package model

import (
	"time"

	"github.com/google/uuid"
)

// DeletionRequestModel mirrors the 'deletion_requests' table. A row is
// created when Facebook delivers a data-deletion callback; the code is
// what the user can look up on the public status page.
type DeletionRequestModel struct {
	Code        string    `gorm:"type:varchar(64);primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'"`
	RequestedAt time.Time `gorm:"not null"`
	CompletedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeletionRequestModel) TableName() string {
	return "deletion_requests"
}
