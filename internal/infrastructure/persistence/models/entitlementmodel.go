package models

import (
	"time"

	"gurukul/internal/shared/constants"
)

// EntitlementModel represents the database persistence model for purchased
// and granted course access. Rows are append-only; revocation deletes.
//
// The unique index on PaymentReference is what makes payment callbacks
// replay-safe: a second insert for the same payment fails as a duplicate.
type EntitlementModel struct {
	ID               uint   `gorm:"primarykey"`
	UserID           string `gorm:"not null;size:64;index:idx_entitlements_user"`
	CourseID         string `gorm:"not null;size:64;index:idx_entitlements_course"`
	Kind             string `gorm:"not null;size:20"`
	GrantedAt        time.Time
	ExpiresAt        *time.Time
	PaymentReference string `gorm:"not null;size:128;uniqueIndex:idx_entitlements_payment_ref"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the table name for GORM
func (EntitlementModel) TableName() string {
	return constants.TableEntitlements
}
