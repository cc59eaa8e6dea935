package migration

import (
	"gurukul/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CourseModel{},
		&models.EntitlementModel{},
	}
}
