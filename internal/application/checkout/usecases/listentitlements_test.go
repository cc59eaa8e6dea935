package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gurukul/internal/shared/errors"
)

func TestListEntitlementsReturnsFullHistory(t *testing.T) {
	repo := newFakeEnrollmentRepo()
	expired := time.Now().UTC().Add(-time.Minute)
	seedEntitlement(t, repo, "user-1", "go-101", &expired, "pay_1")
	seedEntitlement(t, repo, "user-1", "go-201", nil, "pay_2")
	seedEntitlement(t, repo, "user-2", "go-101", nil, "pay_3")
	uc := NewListEntitlementsUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), ListEntitlementsQuery{UserID: "user-1"})
	require.NoError(t, err)
	require.Len(t, resp, 2, "expired records stay listed; only revocation removes them")

	byCourse := map[string]bool{}
	for _, e := range resp {
		byCourse[e.CourseID] = true
	}
	assert.True(t, byCourse["go-101"])
	assert.True(t, byCourse["go-201"])
}

func TestListEntitlementsEmptyForUnknownUser(t *testing.T) {
	uc := NewListEntitlementsUseCase(newFakeEnrollmentRepo(), nopLogger{})

	resp, err := uc.Execute(context.Background(), ListEntitlementsQuery{UserID: "nobody"})
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestListEntitlementsValidation(t *testing.T) {
	uc := NewListEntitlementsUseCase(newFakeEnrollmentRepo(), nopLogger{})

	_, err := uc.Execute(context.Background(), ListEntitlementsQuery{})
	assert.True(t, apperrors.IsValidationError(err))
}
