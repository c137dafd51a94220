package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/Voctor98/TechSolutionsApp/internal/infrastructure/repositories"
)

// Open creates a new database connection. TranslateError maps driver
// unique-constraint violations onto gorm.ErrDuplicatedKey, which the user
// repository relies on for atomic duplicate-email detection.
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix: "auth.",
		},
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate creates or updates the tables the auth core needs
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&repositories.DBUser{}); err != nil {
		return fmt.Errorf("failed to migrate users table: %w", err)
	}
	return nil
}
