package usecases

import (
	"context"

	"gurukul/internal/domain/course"
	"gurukul/internal/domain/enrollment"
	apperrors "gurukul/internal/shared/errors"
	"gurukul/internal/shared/logger"
)

// RevokeEntitlementCommand identifies the entitlements to remove
type RevokeEntitlementCommand struct {
	UserID     string
	CourseID   string
	CourseType string
}

// RevokeEntitlementUseCase removes a user's entitlements for one course.
// This is the only way an entitlement leaves storage; expiry alone never
// deletes records.
type RevokeEntitlementUseCase struct {
	entitlementRepo enrollment.Repository
	logger          logger.Interface
}

// NewRevokeEntitlementUseCase creates a new revoke entitlement use case
func NewRevokeEntitlementUseCase(
	entitlementRepo enrollment.Repository,
	log logger.Interface,
) *RevokeEntitlementUseCase {
	return &RevokeEntitlementUseCase{
		entitlementRepo: entitlementRepo,
		logger:          log,
	}
}

// Execute executes the revoke entitlement use case
func (uc *RevokeEntitlementUseCase) Execute(ctx context.Context, cmd RevokeEntitlementCommand) error {
	if cmd.UserID == "" || cmd.CourseID == "" || cmd.CourseType == "" {
		return apperrors.NewValidationError("userId, courseId and courseType are required")
	}

	kind, err := course.ParseKind(cmd.CourseType)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	if err := uc.entitlementRepo.DeleteByUserAndCourse(ctx, cmd.UserID, cmd.CourseID, kind); err != nil {
		return err
	}

	uc.logger.Infow("entitlement revoked",
		"user_id", cmd.UserID,
		"course_id", cmd.CourseID,
		"course_type", kind)

	return nil
}
