package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"habitrack/internal/models"
)

// Open connects to the SQLite database at path and runs migrations. The
// handle is returned to the caller for injection; nothing in this package
// holds global state.
func Open(path string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrate(conn); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return conn, nil
}

// DefaultPath returns the SQLite file location used when no db_path is
// configured.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".habitrack", "habitrack.db"), nil
}

// migrate creates/updates the database schema.
func migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.Category{},
		&models.Tracker{},
		&models.CompletionRecord{},
		&models.Setting{},
		&models.PinnedTracker{},
	)
}

// Close closes the underlying connection.
func Close(conn *gorm.DB) error {
	if conn == nil {
		return nil
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
