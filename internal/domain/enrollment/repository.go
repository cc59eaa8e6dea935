package enrollment

import (
	"context"

	"gurukul/internal/domain/course"
)

// Repository defines the interface for entitlement persistence operations.
// Grants are appends; the store must guarantee that concurrent grants for the
// same user never overwrite each other.
type Repository interface {
	// Create appends a new entitlement. Returns a conflict error when the
	// payment reference has already been recorded.
	Create(ctx context.Context, e *Entitlement) error

	// ListByUser retrieves all entitlements for a user across both kinds
	ListByUser(ctx context.Context, userID string) ([]*Entitlement, error)

	// ListByUserAndKind retrieves a user's entitlements for one kind
	ListByUserAndKind(ctx context.Context, userID string, kind course.Kind) ([]*Entitlement, error)

	// GetByPaymentReference retrieves the entitlement recorded for a payment
	GetByPaymentReference(ctx context.Context, reference string) (*Entitlement, error)

	// DeleteByUserAndCourse removes all of a user's entitlements for one
	// course (administrative revoke, delete-by-filter)
	DeleteByUserAndCourse(ctx context.Context, userID, courseID string, kind course.Kind) error
}
