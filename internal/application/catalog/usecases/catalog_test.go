package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gurukul/internal/domain/course"
	apperrors "gurukul/internal/shared/errors"
	"gurukul/internal/shared/logger"
	"gurukul/internal/shared/markdown"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (n nopLogger) With(args ...any) logger.Interface             { return n }
func (n nopLogger) Named(name string) logger.Interface            { return n }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type fakeCourseRepo struct {
	courses map[string]*course.Course
}

func newFakeCourseRepo(courses ...*course.Course) *fakeCourseRepo {
	r := &fakeCourseRepo{courses: make(map[string]*course.Course)}
	for _, c := range courses {
		r.courses[c.Kind().String()+"/"+c.ID()] = c
	}
	return r
}

func (r *fakeCourseRepo) GetByID(ctx context.Context, kind course.Kind, id string) (*course.Course, error) {
	c, ok := r.courses[kind.String()+"/"+id]
	if !ok {
		return nil, apperrors.NewNotFoundError("course not found")
	}
	return c, nil
}

func (r *fakeCourseRepo) ListByKind(ctx context.Context, kind course.Kind) ([]*course.Course, error) {
	var out []*course.Course
	for _, c := range r.courses {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out, nil
}

func catalogCourse(t *testing.T, id string, kind course.Kind, description string, validityDays *int, content []course.Level) *course.Course {
	t.Helper()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	original := "999"
	c, err := course.ReconstructCourse(id, kind, "Course "+id, description, "499", &original, validityDays, content, now, now)
	require.NoError(t, err)
	return c
}

func TestListCoursesByKind(t *testing.T) {
	days := 30
	repo := newFakeCourseRepo(
		catalogCourse(t, "go-101", course.KindStandard, "", &days, nil),
		catalogCourse(t, "go-201", course.KindStandard, "", nil, nil),
		catalogCourse(t, "workshop-1", course.KindLive, "", nil, nil),
	)
	uc := NewListCoursesUseCase(repo, nopLogger{})

	standard, err := uc.Execute(context.Background(), ListCoursesQuery{CourseType: "standard"})
	require.NoError(t, err)
	assert.Len(t, standard, 2)

	live, err := uc.Execute(context.Background(), ListCoursesQuery{CourseType: "live"})
	require.NoError(t, err)
	require.Len(t, live, 1)
	assert.Equal(t, "workshop-1", live[0].ID)
	assert.Equal(t, "live", live[0].Type)
	assert.Equal(t, "499", live[0].Price)
	require.NotNil(t, live[0].OriginalPrice)
	assert.Equal(t, "999", *live[0].OriginalPrice)
}

func TestListCoursesRejectsUnknownKind(t *testing.T) {
	uc := NewListCoursesUseCase(newFakeCourseRepo(), nopLogger{})

	_, err := uc.Execute(context.Background(), ListCoursesQuery{CourseType: "bundle"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestGetCourseRendersDescription(t *testing.T) {
	content := []course.Level{{
		Title: "Beginner",
		Chapters: []course.Chapter{{
			Title:  "Getting Started",
			Topics: []course.Topic{{Title: "Intro", MediaRef: "vid_001"}},
		}},
	}}
	repo := newFakeCourseRepo(catalogCourse(t, "go-101", course.KindStandard,
		"# Welcome\n\nLearn **Go**.\n\n<script>alert(1)</script>", nil, content))
	uc := NewGetCourseUseCase(repo, markdown.NewService(), nopLogger{})

	detail, err := uc.Execute(context.Background(), GetCourseQuery{CourseID: "go-101", CourseType: "standard"})
	require.NoError(t, err)

	assert.Equal(t, "go-101", detail.ID)
	assert.Contains(t, detail.DescriptionHTML, "<strong>Go</strong>")
	assert.NotContains(t, detail.DescriptionHTML, "<script>", "raw HTML must be sanitized away")
	require.Len(t, detail.Content, 1)
	assert.Equal(t, "vid_001", detail.Content[0].Chapters[0].Topics[0].MediaRef)
}

func TestGetCourseEmptyDescription(t *testing.T) {
	repo := newFakeCourseRepo(catalogCourse(t, "go-101", course.KindStandard, "", nil, nil))
	uc := NewGetCourseUseCase(repo, markdown.NewService(), nopLogger{})

	detail, err := uc.Execute(context.Background(), GetCourseQuery{CourseID: "go-101", CourseType: "standard"})
	require.NoError(t, err)
	assert.Empty(t, detail.DescriptionHTML)
}

func TestGetCourseNotFound(t *testing.T) {
	uc := NewGetCourseUseCase(newFakeCourseRepo(), markdown.NewService(), nopLogger{})

	_, err := uc.Execute(context.Background(), GetCourseQuery{CourseID: "missing", CourseType: "standard"})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestGetCourseValidation(t *testing.T) {
	uc := NewGetCourseUseCase(newFakeCourseRepo(), markdown.NewService(), nopLogger{})

	_, err := uc.Execute(context.Background(), GetCourseQuery{CourseType: "standard"})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), GetCourseQuery{CourseID: "go-101", CourseType: "vip"})
	assert.True(t, apperrors.IsValidationError(err))
}
