package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gurukul/internal/shared/errors"
)

func TestRevokeEntitlementRemovesAllForCourse(t *testing.T) {
	repo := newFakeEnrollmentRepo()
	seedEntitlement(t, repo, "user-1", "go-101", nil, "pay_1")
	seedEntitlement(t, repo, "user-1", "go-101", nil, "pay_2")
	seedEntitlement(t, repo, "user-1", "go-201", nil, "pay_3")
	uc := NewRevokeEntitlementUseCase(repo, nopLogger{})

	err := uc.Execute(context.Background(), RevokeEntitlementCommand{
		UserID:     "user-1",
		CourseID:   "go-101",
		CourseType: "standard",
	})
	require.NoError(t, err)

	rows, err := repo.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "go-201", rows[0].CourseID())
}

func TestRevokeEntitlementNothingToRevoke(t *testing.T) {
	uc := NewRevokeEntitlementUseCase(newFakeEnrollmentRepo(), nopLogger{})

	err := uc.Execute(context.Background(), RevokeEntitlementCommand{
		UserID:     "user-1",
		CourseID:   "go-101",
		CourseType: "standard",
	})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestRevokeEntitlementValidation(t *testing.T) {
	uc := NewRevokeEntitlementUseCase(newFakeEnrollmentRepo(), nopLogger{})

	err := uc.Execute(context.Background(), RevokeEntitlementCommand{CourseID: "go-101", CourseType: "standard"})
	assert.True(t, apperrors.IsValidationError(err))

	err = uc.Execute(context.Background(), RevokeEntitlementCommand{UserID: "u", CourseID: "go-101", CourseType: "quarterly"})
	assert.True(t, apperrors.IsValidationError(err))
}
