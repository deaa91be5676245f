// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform identifies the social network a connection belongs to.
type Platform string

const (
	// PlatformFacebook covers Facebook pages and user-level links.
	PlatformFacebook Platform = "facebook"
	// PlatformInstagram covers Instagram accounts linked through the same dialog.
	PlatformInstagram Platform = "instagram"
)

// String returns the string representation of the Platform.
func (p Platform) String() string {
	return string(p)
}

// IsValid checks if the Platform is a known value.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformFacebook, PlatformInstagram:
		return true
	default:
		return false
	}
}

// SocialConnection is one persisted link between a dashboard user and a
// social account. A row with an empty PageID is a user-level connection
// (the user token without a page); a row with PageID set carries that
// page's page-scoped token. Uniqueness is (UserID, Platform, PageID), so
// user-level and page-level rows coexist and re-linking updates in place.
type SocialConnection struct {
	ID          uuid.UUID // Surrogate ID for the row.
	UserID      uuid.UUID // Owner of the connection.
	Platform    Platform  // Which network the token belongs to.
	PageID      string    // Facebook page ID, or empty for a user-level connection.
	PageName    string    // Display name of the page at link time; empty for user-level rows.
	ExternalUID string    // The network's own user ID, when known. Lets data-deletion callbacks find the owner.
	AccessToken string    // The stored token. Sealed at rest, plaintext only inside the usecase layer.
	TokenExpiry time.Time // When the stored token expires.
	CreatedAt   time.Time // Timestamp of the first upsert for this key.
	UpdatedAt   time.Time // Timestamp of the most recent upsert.
}

// UserLevel reports whether the row is the page-less user connection.
func (c *SocialConnection) UserLevel() bool {
	return c.PageID == ""
}

// MessengerLink returns the m.me short link for a page-level connection,
// or an empty string for user-level rows.
func (c *SocialConnection) MessengerLink() string {
	if c.UserLevel() {
		return ""
	}

	return "https://m.me/" + c.PageID
}
