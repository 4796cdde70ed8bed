package database

import (
	"log"
	"os"
	"time"

	"gamerack/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database connection and runs migrations. The returned
// handle is injected into the services; there is no package-level handle.
func Connect(dsn string) (*gorm.DB, error) {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
		// Review references are checked by the service layer, not the schema.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established.")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migrated successfully.")
	return db, nil
}

// Migrate creates or updates the users, games and reviews tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Game{}, &models.Review{})
}
