package database

import (
	"almanac/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the sqlite database at path and migrates the schema.
// The returned handle is the only way into the database; it is constructed
// once in main and handed to the stores explicitly.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate models
	if err := db.AutoMigrate(&models.Event{}, &models.User{}, &models.AuditLog{}); err != nil {
		return nil, err
	}

	return db, nil
}
