package database

import (
	"fmt"

	"github.com/telconnect/telecom-network/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection. The handle is returned to the
// caller instead of living in a package global so every component gets
// its dependency injected.
func Connect(databaseURL string) (*gorm.DB, error) {
	// Records reference each other by id only; deleting a user leaves its
	// posts and jobs in place, so no database-level constraints are created.
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the five record collections.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Job{},
		&models.Resource{},
	)
}
