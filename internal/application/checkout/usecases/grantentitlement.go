package usecases

import (
	"context"
	"fmt"

	"gurukul/internal/application/checkout/dto"
	"gurukul/internal/domain/course"
	"gurukul/internal/domain/enrollment"
	"gurukul/internal/domain/user"
	"gurukul/internal/shared/biztime"
	apperrors "gurukul/internal/shared/errors"
	"gurukul/internal/shared/logger"
)

// GrantEntitlementCommand carries one grant request. PaymentReference is the
// gateway payment ID for purchases or an admin marker for manual grants.
type GrantEntitlementCommand struct {
	UserID           string
	CourseID         string
	CourseType       string
	PaymentReference string
}

// GrantEntitlementUseCase appends an entitlement to a user's profile after a
// verified payment or an administrative decision. Both paths share this code
// so expiry is always computed by the same rule.
type GrantEntitlementUseCase struct {
	courseRepo      course.Repository
	userRepo        user.Repository
	entitlementRepo enrollment.Repository
	logger          logger.Interface
}

// NewGrantEntitlementUseCase creates a new grant entitlement use case
func NewGrantEntitlementUseCase(
	courseRepo course.Repository,
	userRepo user.Repository,
	entitlementRepo enrollment.Repository,
	log logger.Interface,
) *GrantEntitlementUseCase {
	return &GrantEntitlementUseCase{
		courseRepo:      courseRepo,
		userRepo:        userRepo,
		entitlementRepo: entitlementRepo,
		logger:          log,
	}
}

// Execute executes the grant entitlement use case
func (uc *GrantEntitlementUseCase) Execute(ctx context.Context, cmd GrantEntitlementCommand) (*dto.EntitlementResponse, error) {
	if cmd.UserID == "" || cmd.CourseID == "" || cmd.CourseType == "" {
		return nil, apperrors.NewValidationError("userId, courseId and courseType are required")
	}
	if cmd.PaymentReference == "" {
		return nil, apperrors.NewValidationError("payment reference is required")
	}

	kind, err := course.ParseKind(cmd.CourseType)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	// Re-read the catalog: the course may have vanished between checkout and
	// confirmation.
	c, err := uc.courseRepo.GetByID(ctx, kind, cmd.CourseID)
	if err != nil {
		return nil, err
	}

	grantedAt := biztime.NowUTC()
	expiresAt := enrollment.ComputeExpiry(c.ValidityDays(), grantedAt)

	entitlement, err := enrollment.NewEntitlement(
		cmd.UserID, c.ID(), kind, grantedAt, expiresAt, cmd.PaymentReference)
	if err != nil {
		return nil, fmt.Errorf("failed to create entitlement: %w", err)
	}

	// Profile is created if absent and left untouched otherwise; a missing
	// profile must never fail a grant.
	if err := uc.userRepo.EnsureExists(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to ensure user profile", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to ensure user profile: %w", err)
	}

	if err := uc.entitlementRepo.Create(ctx, entitlement); err != nil {
		return nil, err
	}

	uc.logger.Infow("entitlement granted",
		"entitlement_id", entitlement.ID(),
		"user_id", cmd.UserID,
		"course_id", c.ID(),
		"course_type", kind,
		"expires_at", expiresAt,
		"payment_reference", cmd.PaymentReference)

	return &dto.EntitlementResponse{
		ID:               entitlement.ID(),
		CourseID:         entitlement.CourseID(),
		CourseType:       entitlement.Kind().String(),
		GrantedAt:        entitlement.GrantedAt(),
		ExpiryDate:       entitlement.ExpiresAt(),
		PaymentReference: entitlement.PaymentReference(),
		AdminGrant:       entitlement.IsAdminGrant(),
	}, nil
}
