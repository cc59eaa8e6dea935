package models

import (
	"time"

	"gorm.io/datatypes"

	"gurukul/internal/shared/constants"
)

// CourseModel represents the database persistence model for courses
// This is the anti-corruption layer between domain and database
type CourseModel struct {
	ID            string  `gorm:"primarykey;size:64"`
	Kind          string  `gorm:"not null;size:20;index:idx_courses_kind"`
	Title         string  `gorm:"not null;size:255"`
	Description   string  `gorm:"type:text"`
	Price         string  `gorm:"not null;size:32"`
	OriginalPrice *string `gorm:"size:32"`
	ValidityDays  *int
	Content       datatypes.JSON `gorm:"type:json"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (CourseModel) TableName() string {
	return constants.TableCourses
}
