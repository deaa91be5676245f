package model

import (
	"time"

	"github.com/google/uuid"
)

// OAuthHandoffModel mirrors the 'oauth_handoffs' table. A row carries
// the dashboard context across the redirect to the provider and back;
// the state value doubles as the CSRF token. Pages holds the cached
// page list as JSON once the callback has fetched it.
type OAuthHandoffModel struct {
	State       string    `gorm:"type:varchar(64);primary_key"`
	Version     int       `gorm:"not null"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionID   string    `gorm:"type:varchar(64);not null"`
	Platform    string    `gorm:"type:varchar(20);not null"`
	Pages       []byte    `gorm:"type:jsonb"`
	ExternalUID string    `gorm:"type:varchar(64)"`
	IssuedAt    time.Time `gorm:"not null"`
	ExpiresAt   time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (OAuthHandoffModel) TableName() string {
	return "oauth_handoffs"
}
