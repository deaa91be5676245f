package model

import (
	"time"

	"github.com/google/uuid"
)

// SocialConnectionModel mirrors the 'social_connections' table. One row
// per linked identity: fb_page_id is empty for a user-level connection
// and set for a page-level one. The empty string takes part in the
// unique index so each user gets at most one user-level row per
// platform.
type SocialConnectionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_connections_owner"`
	Platform    string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_connections_owner"`
	PageID      string    `gorm:"column:fb_page_id;type:varchar(64);not null;default:'';uniqueIndex:idx_connections_owner"`
	PageName    string    `gorm:"type:varchar(255)"`
	ExternalUID string    `gorm:"type:varchar(64);index"`
	// AccessToken holds the sealed token, never the plaintext.
	AccessToken string     `gorm:"type:text;not null"`
	TokenExpiry *time.Time `gorm:"type:timestamptz"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SocialConnectionModel) TableName() string {
	return "social_connections"
}
