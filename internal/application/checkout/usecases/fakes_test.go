package usecases

import (
	"context"
	"fmt"
	"sync"

	"gurukul/internal/domain/course"
	"gurukul/internal/domain/enrollment"
	"gurukul/internal/domain/user"
	apperrors "gurukul/internal/shared/errors"
	"gurukul/internal/shared/logger"
)

// In-memory fakes shared by the use case tests. They mirror the semantics of
// the real repositories, including the unique payment reference constraint.

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
	mu      sync.Mutex
	courses map[string]*course.Course
	err     error
}

func newFakeCourseRepo(courses ...*course.Course) *fakeCourseRepo {
	r := &fakeCourseRepo{courses: make(map[string]*course.Course)}
	for _, c := range courses {
		r.courses[c.Kind().String()+"/"+c.ID()] = c
	}
	return r
}

func (r *fakeCourseRepo) GetByID(ctx context.Context, kind course.Kind, id string) (*course.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.courses[kind.String()+"/"+id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("course %s not found", id))
	}
	return c, nil
}

func (r *fakeCourseRepo) ListByKind(ctx context.Context, kind course.Kind) ([]*course.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []*course.Course
	for _, c := range r.courses {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]struct{}
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]struct{})}
}

func (r *fakeUserRepo) EnsureExists(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.users[id] = struct{}{}
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	u, _ := user.NewUser(id)
	return u, nil
}

func (r *fakeUserRepo) has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[id]
	return ok
}

type fakeEnrollmentRepo struct {
	mu      sync.Mutex
	nextID  uint
	rows    []*enrollment.Entitlement
	byRef   map[string]struct{}
	failing error
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{byRef: make(map[string]struct{})}
}

func (r *fakeEnrollmentRepo) Create(ctx context.Context, e *enrollment.Entitlement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing != nil {
		return r.failing
	}
	if _, dup := r.byRef[e.PaymentReference()]; dup {
		return apperrors.NewConflictError("payment reference already recorded")
	}
	r.nextID++
	if err := e.SetID(r.nextID); err != nil {
		return err
	}
	r.byRef[e.PaymentReference()] = struct{}{}
	r.rows = append(r.rows, e)
	return nil
}

func (r *fakeEnrollmentRepo) ListByUser(ctx context.Context, userID string) ([]*enrollment.Entitlement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing != nil {
		return nil, r.failing
	}
	var out []*enrollment.Entitlement
	for _, e := range r.rows {
		if e.UserID() == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) ListByUserAndKind(ctx context.Context, userID string, kind course.Kind) ([]*enrollment.Entitlement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*enrollment.Entitlement
	for _, e := range r.rows {
		if e.UserID() == userID && e.Kind() == kind {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) GetByPaymentReference(ctx context.Context, reference string) (*enrollment.Entitlement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.rows {
		if e.PaymentReference() == reference {
			return e, nil
		}
	}
	return nil, apperrors.NewNotFoundError("entitlement not found")
}

func (r *fakeEnrollmentRepo) DeleteByUserAndCourse(ctx context.Context, userID, courseID string, kind course.Kind) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []*enrollment.Entitlement
	deleted := 0
	for _, e := range r.rows {
		if e.UserID() == userID && e.CourseID() == courseID && e.Kind() == kind {
			delete(r.byRef, e.PaymentReference())
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	if deleted == 0 {
		return apperrors.NewNotFoundError("entitlement not found")
	}
	r.rows = kept
	return nil
}

func (r *fakeEnrollmentRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}
