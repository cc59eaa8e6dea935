package user

import "context"

// Repository defines the interface for profile persistence operations.
type Repository interface {
	// EnsureExists creates the profile row if absent and leaves an existing
	// one untouched (create-or-merge). Safe to call concurrently.
	EnsureExists(ctx context.Context, id string) error

	// GetByID retrieves a profile
	GetByID(ctx context.Context, id string) (*User, error)
}
