package usecases

import (
	"context"

	"gurukul/internal/application/catalog/dto"
	"gurukul/internal/domain/course"
	apperrors "gurukul/internal/shared/errors"
	"gurukul/internal/shared/logger"
)

// ListCoursesQuery selects one catalog collection
type ListCoursesQuery struct {
	CourseType string
}

// ListCoursesUseCase lists the catalog for one course kind
type ListCoursesUseCase struct {
	courseRepo course.Repository
	logger     logger.Interface
}

// NewListCoursesUseCase creates a new list courses use case
func NewListCoursesUseCase(courseRepo course.Repository, log logger.Interface) *ListCoursesUseCase {
	return &ListCoursesUseCase{
		courseRepo: courseRepo,
		logger:     log,
	}
}

// Execute executes the list courses use case
func (uc *ListCoursesUseCase) Execute(ctx context.Context, query ListCoursesQuery) ([]dto.CourseSummary, error) {
	kind, err := course.ParseKind(query.CourseType)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	courses, err := uc.courseRepo.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.CourseSummary, len(courses))
	for i, c := range courses {
		summaries[i] = dto.CourseSummary{
			ID:            c.ID(),
			Type:          c.Kind().String(),
			Title:         c.Title(),
			Price:         c.Price(),
			OriginalPrice: c.OriginalPrice(),
			ValidityDays:  c.ValidityDays(),
		}
	}

	return summaries, nil
}
