package course

import "context"

// Repository defines the interface for catalog reads.
type Repository interface {
	// GetByID retrieves a course by kind-selected collection and ID
	GetByID(ctx context.Context, kind Kind, id string) (*Course, error)

	// ListByKind retrieves all courses of the given kind
	ListByKind(ctx context.Context, kind Kind) ([]*Course, error)
}
