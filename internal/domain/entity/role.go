// Package entity contains the core business objects of the project.
package entity

// Role represents the access level of a dashboard user.
type Role string

const (
	// RoleCustomer is the default role for every signed-up user.
	RoleCustomer Role = "customer"
	// RoleAdmin grants access to the /admin route group.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// RoleFromString converts a raw claim value to a Role, falling back to
// customer for anything unknown so a malformed claim never widens access.
func RoleFromString(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RoleCustomer
	}

	return role
}
