package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gurukul/internal/domain/user"
	"gurukul/internal/infrastructure/persistence/models"
	apperrors "gurukul/internal/shared/errors"
	"gurukul/internal/shared/logger"
)

// UserRepositoryImpl implements the user.Repository interface
type UserRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepositoryImpl{
		db:     db,
		logger: logger,
	}
}

// EnsureExists creates the profile row if absent. An existing row is left
// untouched, so concurrent grants for the same user are safe.
func (r *UserRepositoryImpl) EnsureExists(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewValidationError("user ID is required")
	}

	model := &models.UserModel{ID: id, Role: user.RoleDefault.String()}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to ensure user profile", "user_id", id, "error", err)
		return fmt.Errorf("failed to ensure user profile: %w", err)
	}

	return nil
}

// GetByID retrieves a profile
func (r *UserRepositoryImpl) GetByID(ctx context.Context, id string) (*user.User, error) {
	var model models.UserModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		r.logger.Errorw("failed to get user", "user_id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	u, err := user.ReconstructUser(model.ID, user.Role(model.Role), model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user %s: %w", model.ID, err)
	}
	return u, nil
}
