package course

import (
	"fmt"
	"time"
)

// Topic is a single lesson inside a chapter, carrying a media reference to
// the hosted video asset.
type Topic struct {
	Title    string `json:"title"`
	MediaRef string `json:"mediaRef"`
}

// Chapter groups topics within a level.
type Chapter struct {
	Title  string  `json:"title"`
	Topics []Topic `json:"topics"`
}

// Level is the top tier of the course content tree.
type Level struct {
	Title    string    `json:"title"`
	Chapters []Chapter `json:"chapters"`
}

// Course represents a catalog item. The entitlement subsystem only reads
// courses; authoring mutates them through a separate surface.
type Course struct {
	id            string
	kind          Kind
	title         string
	description   string
	price         string
	originalPrice *string
	validityDays  *int
	content       []Level
	createdAt     time.Time
	updatedAt     time.Time
}

// NewCourse creates a new course
func NewCourse(id string, kind Kind, title, price string) (*Course, error) {
	if id == "" {
		return nil, fmt.Errorf("course ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid course kind: %s", kind)
	}
	if title == "" {
		return nil, fmt.Errorf("course title is required")
	}

	now := time.Now().UTC()
	return &Course{
		id:        id,
		kind:      kind,
		title:     title,
		price:     price,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructCourse reconstructs a course from persistence
func ReconstructCourse(
	id string,
	kind Kind,
	title, description, price string,
	originalPrice *string,
	validityDays *int,
	content []Level,
	createdAt, updatedAt time.Time,
) (*Course, error) {
	if id == "" {
		return nil, fmt.Errorf("course ID is required")
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid course kind: %s", kind)
	}

	return &Course{
		id:            id,
		kind:          kind,
		title:         title,
		description:   description,
		price:         price,
		originalPrice: originalPrice,
		validityDays:  validityDays,
		content:       content,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

// ID returns the course ID
func (c *Course) ID() string { return c.id }

// Kind returns the course kind
func (c *Course) Kind() Kind { return c.kind }

// Title returns the course title
func (c *Course) Title() string { return c.title }

// Description returns the course description markdown
func (c *Course) Description() string { return c.description }

// Price returns the stored decimal price string
func (c *Course) Price() string { return c.price }

// OriginalPrice returns the pre-discount price, if any
func (c *Course) OriginalPrice() *string { return c.originalPrice }

// ValidityDays returns the entitlement validity window in days.
// Nil means purchases grant lifetime access.
func (c *Course) ValidityDays() *int { return c.validityDays }

// Content returns the course content tree
func (c *Course) Content() []Level { return c.content }

// CreatedAt returns when the course was created
func (c *Course) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns when the course was last updated
func (c *Course) UpdatedAt() time.Time { return c.updatedAt }

// AmountMinorUnits parses the stored price into integer minor-currency units.
func (c *Course) AmountMinorUnits() (int64, error) {
	if c.price == "" {
		return 0, fmt.Errorf("course %s has no price", c.id)
	}
	return ParseAmountMinorUnits(c.price)
}
