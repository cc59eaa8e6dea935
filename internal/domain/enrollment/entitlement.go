// Package enrollment provides the entitlement aggregate and the access
// evaluation logic. An entitlement grants a user access to one course until
// an optional expiry instant; nil expiry means lifetime access. Entitlements
// are append-only: granted by verified payment or admin action, removed only
// by explicit admin revocation, and never mutated in place.
package enrollment

import (
	"fmt"
	"strings"
	"time"

	"gurukul/internal/domain/course"
	"gurukul/internal/shared/biztime"
)

// AdminReferencePrefix marks entitlements granted manually rather than
// through a verified payment.
const AdminReferencePrefix = "admin:"

// ComputeExpiry derives the expiry instant for a grant. A positive validity
// window yields grantedAt plus that many days; absent, zero or negative
// validity yields nil, the canonical lifetime representation. Every write
// path, automated or administrative, must go through this function.
func ComputeExpiry(validityDays *int, grantedAt time.Time) *time.Time {
	if validityDays == nil || *validityDays <= 0 {
		return nil
	}
	expiry := biztime.AddDays(grantedAt, *validityDays)
	return &expiry
}

// AdminReference builds the payment reference for a manual grant. The
// reference doubles as the replay guard (unique index), so each call yields a
// distinct value; the granter stays embedded for the audit trail.
func AdminReference(grantedBy string) string {
	return fmt.Sprintf("%s%s:%d", AdminReferencePrefix, grantedBy, biztime.NowUTC().UnixNano())
}

// Entitlement represents the entitlement aggregate root.
type Entitlement struct {
	id               uint
	userID           string
	courseID         string
	kind             course.Kind
	grantedAt        time.Time
	expiresAt        *time.Time
	paymentReference string
}

// NewEntitlement creates a new entitlement
func NewEntitlement(
	userID, courseID string,
	kind course.Kind,
	grantedAt time.Time,
	expiresAt *time.Time,
	paymentReference string,
) (*Entitlement, error) {
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if courseID == "" {
		return nil, fmt.Errorf("course ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid course kind: %s", kind)
	}
	if paymentReference == "" {
		return nil, fmt.Errorf("payment reference is required")
	}
	if expiresAt != nil && !expiresAt.After(grantedAt) {
		return nil, fmt.Errorf("expiry %s is not after grant time %s", expiresAt, grantedAt)
	}

	return &Entitlement{
		userID:           userID,
		courseID:         courseID,
		kind:             kind,
		grantedAt:        grantedAt.UTC(),
		expiresAt:        expiresAt,
		paymentReference: paymentReference,
	}, nil
}

// ReconstructEntitlement reconstructs an entitlement from persistence
func ReconstructEntitlement(
	id uint,
	userID, courseID string,
	kind course.Kind,
	grantedAt time.Time,
	expiresAt *time.Time,
	paymentReference string,
) (*Entitlement, error) {
	if id == 0 {
		return nil, fmt.Errorf("entitlement ID cannot be zero")
	}
	if userID == "" {
		return nil, fmt.Errorf("user ID is required")
	}
	if courseID == "" {
		return nil, fmt.Errorf("course ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid course kind: %s", kind)
	}

	return &Entitlement{
		id:               id,
		userID:           userID,
		courseID:         courseID,
		kind:             kind,
		grantedAt:        grantedAt.UTC(),
		expiresAt:        expiresAt,
		paymentReference: paymentReference,
	}, nil
}

// ID returns the entitlement ID
func (e *Entitlement) ID() uint { return e.id }

// UserID returns the owning user's identity-provider subject
func (e *Entitlement) UserID() string { return e.userID }

// CourseID returns the entitled course ID
func (e *Entitlement) CourseID() string { return e.courseID }

// Kind returns the course kind this entitlement was granted for
func (e *Entitlement) Kind() course.Kind { return e.kind }

// GrantedAt returns when the entitlement was granted
func (e *Entitlement) GrantedAt() time.Time { return e.grantedAt }

// ExpiresAt returns the expiry instant. Nil means the entitlement never expires.
func (e *Entitlement) ExpiresAt() *time.Time { return e.expiresAt }

// PaymentReference returns the gateway payment ID, or an admin marker for
// manual grants.
func (e *Entitlement) PaymentReference() string { return e.paymentReference }

// IsAdminGrant reports whether this entitlement was granted manually.
func (e *Entitlement) IsAdminGrant() bool {
	return strings.HasPrefix(e.paymentReference, AdminReferencePrefix)
}

// IsValidAt reports whether the entitlement grants access at the given
// instant. The expiry boundary is exclusive: an entitlement expiring exactly
// at now does not grant access.
func (e *Entitlement) IsValidAt(now time.Time) bool {
	if e.expiresAt == nil {
		return true
	}
	return e.expiresAt.After(now)
}

// SetID sets the entitlement ID (only for persistence layer use)
func (e *Entitlement) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entitlement ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entitlement ID cannot be zero")
	}
	e.id = id
	return nil
}
