package database

import (
	"sahyogjeevan/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every model the
// application persists. The unique index on (job_id, worker_id) and the
// unique username/phone columns come from the model tags.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSettings{},
		&models.Profile{},
		&models.Job{},
		&models.Application{},
	)
}
