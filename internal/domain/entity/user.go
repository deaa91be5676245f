// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the dashboard identity derived from an established session.
// The hosted auth service owns the credential; this record mirrors the
// profile row the gateway keeps for role decisions and display.
type User struct {
	ID        uuid.UUID // The user's unique identifier, identical to the auth service's subject claim.
	Email     string    // The user's login email as reported by the auth service.
	Role      Role      // Either "customer" or "admin"; admin unlocks the /admin routes.
	Name      string    // Optional display name shown in the dashboard header.
	CreatedAt time.Time // Timestamp of when the profile row was first synced.
	UpdatedAt time.Time // Timestamp of the last profile sync.
}

// IsAdmin reports whether the user may access admin routes.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
