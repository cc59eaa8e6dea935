package usecases

import (
	"context"

	"gurukul/internal/application/checkout/dto"
	"gurukul/internal/domain/enrollment"
	apperrors "gurukul/internal/shared/errors"
	"gurukul/internal/shared/logger"
)

// ListEntitlementsQuery identifies the user whose entitlements to list
type ListEntitlementsQuery struct {
	UserID string
}

// ListEntitlementsUseCase lists all of a user's entitlement records,
// including expired ones; expiry is an evaluation concern, not a storage one.
type ListEntitlementsUseCase struct {
	entitlementRepo enrollment.Repository
	logger          logger.Interface
}

// NewListEntitlementsUseCase creates a new list entitlements use case
func NewListEntitlementsUseCase(
	entitlementRepo enrollment.Repository,
	log logger.Interface,
) *ListEntitlementsUseCase {
	return &ListEntitlementsUseCase{
		entitlementRepo: entitlementRepo,
		logger:          log,
	}
}

// Execute executes the list entitlements use case
func (uc *ListEntitlementsUseCase) Execute(ctx context.Context, query ListEntitlementsQuery) ([]dto.EntitlementResponse, error) {
	if query.UserID == "" {
		return nil, apperrors.NewValidationError("userId is required")
	}

	entitlements, err := uc.entitlementRepo.ListByUser(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.EntitlementResponse, len(entitlements))
	for i, e := range entitlements {
		responses[i] = dto.EntitlementResponse{
			ID:               e.ID(),
			CourseID:         e.CourseID(),
			CourseType:       e.Kind().String(),
			GrantedAt:        e.GrantedAt(),
			ExpiryDate:       e.ExpiresAt(),
			PaymentReference: e.PaymentReference(),
			AdminGrant:       e.IsAdminGrant(),
		}
	}

	return responses, nil
}
