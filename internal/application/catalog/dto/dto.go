// Package dto defines the catalog read-model shapes.
package dto

import "gurukul/internal/domain/course"

// CourseSummary is a catalog listing entry
type CourseSummary struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Title         string  `json:"title"`
	Price         string  `json:"price"`
	OriginalPrice *string `json:"originalPrice,omitempty"`
	ValidityDays  *int    `json:"validityDays,omitempty"` // absent = lifetime
}

// CourseDetail is a full catalog entry including the rendered description and
// content tree
type CourseDetail struct {
	CourseSummary
	DescriptionHTML string         `json:"descriptionHtml,omitempty"`
	Content         []course.Level `json:"content,omitempty"`
}
