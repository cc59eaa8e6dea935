package usecases

import (
	"context"

	"gurukul/internal/application/checkout/dto"
	"gurukul/internal/domain/enrollment"
	"gurukul/internal/shared/biztime"
	apperrors "gurukul/internal/shared/errors"
	"gurukul/internal/shared/logger"
)

// EvaluateAccessQuery asks whether a user currently has access to a course
type EvaluateAccessQuery struct {
	UserID   string
	CourseID string
}

// EvaluateAccessUseCase evaluates access against freshly fetched
// entitlements. Every access-gated action goes through here at the moment it
// is attempted; a client-held entitlement list is display state only.
type EvaluateAccessUseCase struct {
	entitlementRepo enrollment.Repository
	logger          logger.Interface
}

// NewEvaluateAccessUseCase creates a new evaluate access use case
func NewEvaluateAccessUseCase(
	entitlementRepo enrollment.Repository,
	log logger.Interface,
) *EvaluateAccessUseCase {
	return &EvaluateAccessUseCase{
		entitlementRepo: entitlementRepo,
		logger:          log,
	}
}

// Execute executes the evaluate access use case
func (uc *EvaluateAccessUseCase) Execute(ctx context.Context, query EvaluateAccessQuery) (*dto.AccessStatusResponse, error) {
	if query.UserID == "" || query.CourseID == "" {
		return nil, apperrors.NewValidationError("userId and courseId are required")
	}

	entitlements, err := uc.entitlementRepo.ListByUser(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	status := enrollment.EvaluateAccess(entitlements, query.CourseID, now)

	resp := &dto.AccessStatusResponse{
		CourseID: query.CourseID,
		Granted:  status.Granted,
	}
	if status.Remaining != nil {
		seconds := int64(status.Remaining.Seconds())
		expiry := now.Add(*status.Remaining)
		resp.RemainingSeconds = &seconds
		resp.ExpiryDate = &expiry
		resp.RemainingLabel = enrollment.FormatRemaining(*status.Remaining)
	}

	return resp, nil
}
