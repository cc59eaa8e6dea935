// Package user provides the profile aggregate. Profiles mirror the external
// identity provider's subjects; this service never authenticates users.
package user

import (
	"fmt"
	"time"
)

// Role represents the user's role
type Role string

const (
	// RoleDefault is an ordinary learner
	RoleDefault Role = "default"
	// RoleAdmin may grant and revoke entitlements manually
	RoleAdmin Role = "admin"
)

// IsValid checks if the role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleDefault, RoleAdmin:
		return true
	default:
		return false
	}
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// User represents a profile. Created implicitly on first entitlement grant;
// granting must never fail merely because the profile does not exist yet.
type User struct {
	id        string
	role      Role
	createdAt time.Time
	updatedAt time.Time
}

// NewUser creates a new profile for an identity-provider subject
func NewUser(id string) (*User, error) {
	if id == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	now := time.Now().UTC()
	return &User{
		id:        id,
		role:      RoleDefault,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser reconstructs a profile from persistence
func ReconstructUser(id string, role Role, createdAt, updatedAt time.Time) (*User, error) {
	if id == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	return &User{
		id:        id,
		role:      role,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// ID returns the identity-provider subject
func (u *User) ID() string { return u.id }

// Role returns the user's role
func (u *User) Role() Role { return u.role }

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool { return u.role == RoleAdmin }

// CreatedAt returns when the profile was created
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns when the profile was last updated
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
