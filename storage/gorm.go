package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var modelsToMigrate = []any{
	&ElectionProcess{},
	&Election{},
	&Candidate{},
	&Vote{},
	&ElectionResult{},
	&Grade{},
	&Group{},
	&Enrollment{},
}

// Open opens (creating if needed) the sqlite database at path and migrates
// the election schema. The busy timeout keeps concurrent writers queued on
// the sqlite lock instead of failing, so a racing duplicate vote surfaces
// as a constraint violation rather than a busy error.
func Open(path string) (*gorm.DB, error) {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(modelsToMigrate...); err != nil {
		return nil, err
	}

	return db, nil
}

// Reset drops and recreates the whole schema. Used by tests.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(modelsToMigrate...); err != nil {
		return err
	}
	return db.AutoMigrate(modelsToMigrate...)
}
