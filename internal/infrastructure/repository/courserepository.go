package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gurukul/internal/domain/course"
	"gurukul/internal/infrastructure/persistence/models"
	apperrors "gurukul/internal/shared/errors"
	"gurukul/internal/shared/logger"
)

// CourseRepositoryImpl implements the course.Repository interface
type CourseRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewCourseRepository creates a new course repository instance
func NewCourseRepository(db *gorm.DB, logger logger.Interface) course.Repository {
	return &CourseRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// GetByID retrieves a course by kind and ID
func (r *CourseRepositoryImpl) GetByID(ctx context.Context, kind course.Kind, id string) (*course.Course, error) {
	var model models.CourseModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND kind = ?", id, kind.String()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("course %s not found", id))
		}
		r.logger.Errorw("failed to get course", "course_id", id, "kind", kind, "error", err)
		return nil, fmt.Errorf("failed to get course: %w", err)
	}

	return r.toDomain(&model)
}

// ListByKind retrieves all courses of the given kind
func (r *CourseRepositoryImpl) ListByKind(ctx context.Context, kind course.Kind) ([]*course.Course, error) {
	var courseModels []models.CourseModel
	err := r.db.WithContext(ctx).
		Where("kind = ?", kind.String()).
		Order("created_at ASC").
		Find(&courseModels).Error
	if err != nil {
		r.logger.Errorw("failed to list courses", "kind", kind, "error", err)
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	courses := make([]*course.Course, 0, len(courseModels))
	for i := range courseModels {
		c, err := r.toDomain(&courseModels[i])
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}

	return courses, nil
}

func (r *CourseRepositoryImpl) toDomain(model *models.CourseModel) (*course.Course, error) {
	var content []course.Level
	if len(model.Content) > 0 {
		if err := json.Unmarshal(model.Content, &content); err != nil {
			r.logger.Errorw("failed to decode course content", "course_id", model.ID, "error", err)
			return nil, fmt.Errorf("failed to decode course content: %w", err)
		}
	}

	c, err := course.ReconstructCourse(
		model.ID,
		course.Kind(model.Kind),
		model.Title,
		model.Description,
		model.Price,
		model.OriginalPrice,
		model.ValidityDays,
		content,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct course %s: %w", model.ID, err)
	}
	return c, nil
}
