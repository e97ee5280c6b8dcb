package database

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/piresc/roundup/internal/pkg/logger"
)

// RunMigrations applies every pending up migration found under migrationsPath
func RunMigrations(db *sql.DB, migrationsPath, dbName string) error {
	m, err := newMigrator(db, migrationsPath, dbName)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("No new migrations found")
			return nil
		}
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("No migration files found", logger.String("path", migrationsPath))
			return nil
		}
		var dirtyErr migrate.ErrDirty
		if errors.As(err, &dirtyErr) {
			return fmt.Errorf("migration failed: dirty database version %d", dirtyErr.Version)
		}
		return fmt.Errorf("migration failed: %w", err)
	}

	version, _, _ := m.Version()
	logger.Info("Migrations applied", logger.Int("version", int(version)))
	return nil
}

// RollbackMigrations reverts the given number of migrations
func RollbackMigrations(db *sql.DB, migrationsPath, dbName string, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive")
	}
	m, err := newMigrator(db, migrationsPath, dbName)
	if err != nil {
		return err
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("rollback failed: %w", err)
	}
	return nil
}

func newMigrator(db *sql.DB, migrationsPath, dbName string) (*migrate.Migrate, error) {
	sourceURL, err := url.Parse(filepath.ToSlash(migrationsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to parse migrations path: %w", err)
	}
	sourceURL.Scheme = "file"

	driver, err := postgres.WithInstance(db, &postgres.Config{
		DatabaseName: dbName,
		SchemaName:   "public",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver instance: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL.String(), dbName, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}
