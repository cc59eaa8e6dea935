package models

import (
	"time"

	"gorm.io/gorm"

	"gurukul/internal/shared/constants"
)

// UserModel represents the database persistence model for user profiles.
// Identity lives in the external provider; this row only carries the fields
// this service owns.
type UserModel struct {
	ID        string `gorm:"primarykey;size:64"`
	Role      string `gorm:"not null;default:default;size:20"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

// BeforeCreate hook for GORM
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = "default"
	}
	return nil
}
