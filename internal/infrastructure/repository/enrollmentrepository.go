package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gurukul/internal/domain/course"
	"gurukul/internal/domain/enrollment"
	"gurukul/internal/infrastructure/persistence/models"
	apperrors "gurukul/internal/shared/errors"
	"gurukul/internal/shared/logger"
)

// EnrollmentRepositoryImpl implements the enrollment.Repository interface
type EnrollmentRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewEnrollmentRepository creates a new enrollment repository instance
func NewEnrollmentRepository(db *gorm.DB, logger logger.Interface) enrollment.Repository {
	return &EnrollmentRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// Create appends a new entitlement row. The unique index on payment_reference
// turns a replayed payment into a conflict error here.
func (r *EnrollmentRepositoryImpl) Create(ctx context.Context, e *enrollment.Entitlement) error {
	model := &models.EntitlementModel{
		UserID:           e.UserID(),
		CourseID:         e.CourseID(),
		Kind:             e.Kind().String(),
		GrantedAt:        e.GrantedAt(),
		ExpiresAt:        e.ExpiresAt(),
		PaymentReference: e.PaymentReference(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("payment reference already recorded")
		}
		r.logger.Errorw("failed to create entitlement",
			"user_id", e.UserID(),
			"course_id", e.CourseID(),
			"error", err)
		return fmt.Errorf("failed to create entitlement: %w", err)
	}

	if err := e.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set entitlement ID", "error", err)
		return fmt.Errorf("failed to set entitlement ID: %w", err)
	}

	r.logger.Infow("entitlement created",
		"id", model.ID,
		"user_id", model.UserID,
		"course_id", model.CourseID,
		"payment_reference", model.PaymentReference)

	return nil
}

// ListByUser retrieves all entitlements for a user across both kinds
func (r *EnrollmentRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]*enrollment.Entitlement, error) {
	var entitlementModels []models.EntitlementModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("granted_at ASC").
		Find(&entitlementModels).Error
	if err != nil {
		r.logger.Errorw("failed to list entitlements", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list entitlements: %w", err)
	}

	return r.toDomainList(entitlementModels)
}

// ListByUserAndKind retrieves a user's entitlements for one kind
func (r *EnrollmentRepositoryImpl) ListByUserAndKind(ctx context.Context, userID string, kind course.Kind) ([]*enrollment.Entitlement, error) {
	var entitlementModels []models.EntitlementModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, kind.String()).
		Order("granted_at ASC").
		Find(&entitlementModels).Error
	if err != nil {
		r.logger.Errorw("failed to list entitlements", "user_id", userID, "kind", kind, "error", err)
		return nil, fmt.Errorf("failed to list entitlements: %w", err)
	}

	return r.toDomainList(entitlementModels)
}

// GetByPaymentReference retrieves the entitlement recorded for a payment
func (r *EnrollmentRepositoryImpl) GetByPaymentReference(ctx context.Context, reference string) (*enrollment.Entitlement, error) {
	var model models.EntitlementModel
	err := r.db.WithContext(ctx).
		Where("payment_reference = ?", reference).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("entitlement not found")
		}
		r.logger.Errorw("failed to get entitlement", "payment_reference", reference, "error", err)
		return nil, fmt.Errorf("failed to get entitlement: %w", err)
	}

	return r.toDomain(&model)
}

// DeleteByUserAndCourse removes all of a user's entitlements for one course
func (r *EnrollmentRepositoryImpl) DeleteByUserAndCourse(ctx context.Context, userID, courseID string, kind course.Kind) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ? AND kind = ?", userID, courseID, kind.String()).
		Delete(&models.EntitlementModel{})

	if result.Error != nil {
		r.logger.Errorw("failed to delete entitlements",
			"user_id", userID,
			"course_id", courseID,
			"error", result.Error)
		return fmt.Errorf("failed to delete entitlements: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("entitlement not found")
	}

	r.logger.Infow("entitlements deleted",
		"user_id", userID,
		"course_id", courseID,
		"rows", result.RowsAffected)
	return nil
}

func (r *EnrollmentRepositoryImpl) toDomain(model *models.EntitlementModel) (*enrollment.Entitlement, error) {
	e, err := enrollment.ReconstructEntitlement(
		model.ID,
		model.UserID,
		model.CourseID,
		course.Kind(model.Kind),
		model.GrantedAt,
		model.ExpiresAt,
		model.PaymentReference,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct entitlement %d: %w", model.ID, err)
	}
	return e, nil
}

func (r *EnrollmentRepositoryImpl) toDomainList(entitlementModels []models.EntitlementModel) ([]*enrollment.Entitlement, error) {
	entitlements := make([]*enrollment.Entitlement, 0, len(entitlementModels))
	for i := range entitlementModels {
		e, err := r.toDomain(&entitlementModels[i])
		if err != nil {
			return nil, err
		}
		entitlements = append(entitlements, e)
	}
	return entitlements, nil
}
