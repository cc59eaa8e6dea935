package usecases

import (
	"context"

	"gurukul/internal/application/catalog/dto"
	"gurukul/internal/domain/course"
	apperrors "gurukul/internal/shared/errors"
	"gurukul/internal/shared/logger"
	"gurukul/internal/shared/markdown"
)

// GetCourseQuery identifies one catalog entry
type GetCourseQuery struct {
	CourseID   string
	CourseType string
}

// GetCourseUseCase reads one course and renders its description markdown to
// sanitized HTML for the storefront.
type GetCourseUseCase struct {
	courseRepo course.Repository
	markdown   markdown.Service
	logger     logger.Interface
}

// NewGetCourseUseCase creates a new get course use case
func NewGetCourseUseCase(
	courseRepo course.Repository,
	md markdown.Service,
	log logger.Interface,
) *GetCourseUseCase {
	return &GetCourseUseCase{
		courseRepo: courseRepo,
		markdown:   md,
		logger:     log,
	}
}

// Execute executes the get course use case
func (uc *GetCourseUseCase) Execute(ctx context.Context, query GetCourseQuery) (*dto.CourseDetail, error) {
	if query.CourseID == "" {
		return nil, apperrors.NewValidationError("courseId is required")
	}
	kind, err := course.ParseKind(query.CourseType)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	c, err := uc.courseRepo.GetByID(ctx, kind, query.CourseID)
	if err != nil {
		return nil, err
	}

	detail := &dto.CourseDetail{
		CourseSummary: dto.CourseSummary{
			ID:            c.ID(),
			Type:          c.Kind().String(),
			Title:         c.Title(),
			Price:         c.Price(),
			OriginalPrice: c.OriginalPrice(),
			ValidityDays:  c.ValidityDays(),
		},
		Content: c.Content(),
	}

	if c.Description() != "" {
		html, err := uc.markdown.ToHTMLSanitized(c.Description())
		if err != nil {
			uc.logger.Warnw("failed to render course description",
				"course_id", c.ID(),
				"error", err)
		} else {
			detail.DescriptionHTML = html
		}
	}

	return detail, nil
}
