package db

import (
	"time" // Pool idle timeout

	"todo_service/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Structured logging

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
)

// Open connects to MySQL and bounds the shared connection pool: at most 20
// concurrent connections process-wide, idle connections recycled after 30s.
// TranslateError maps driver duplicate-key failures to gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err // Connection failure
	}
	sqlDB, err := gdb.DB() // Underlying pool handle
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)                  // Bounded pool, one connection per logical operation
	sqlDB.SetMaxIdleConns(10)                  // Keep a few warm connections
	sqlDB.SetConnMaxIdleTime(30 * time.Second) // Recycle idle connections
	return gdb, nil
}

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(&domain.User{}, &domain.Todo{}); err != nil {
		return err
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
