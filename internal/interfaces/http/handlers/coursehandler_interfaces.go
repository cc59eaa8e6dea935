package handlers

import (
	"context"

	catalogdto "gurukul/internal/application/catalog/dto"
	catalogUsecases "gurukul/internal/application/catalog/usecases"
)

// Use case interfaces for CourseHandler

type listCoursesUseCase interface {
	Execute(ctx context.Context, query catalogUsecases.ListCoursesQuery) ([]catalogdto.CourseSummary, error)
}

type getCourseUseCase interface {
	Execute(ctx context.Context, query catalogUsecases.GetCourseQuery) (*catalogdto.CourseDetail, error)
}
