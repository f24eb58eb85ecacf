package db

import (
	"asset_map/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logrus for structured logging

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Open connects to the MySQL database described by dsn
func Open(dsn string) (*gorm.DB, error) {
	// TranslateError turns duplicate-key failures into gorm.ErrDuplicatedKey
	return gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
}

// Migrate creates or updates the users and assets tables along with their unique indexes
func Migrate(gdb *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := gdb.AutoMigrate(&domain.User{}, &domain.Asset{}); err != nil {
		return err
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
