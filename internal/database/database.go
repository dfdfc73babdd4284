package database

import (
	"fmt"
	"strings"
	"time"

	"patrimonio/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager handles database operations
type Manager struct {
	db         *gorm.DB
	migrateURL string
	sourceURL  string
}

// NewManager opens the database described by the connection string. A
// postgres:// (or postgresql://) URL connects to Postgres; anything else is
// treated as an SQLite file path, which is also the deployment default.
func NewManager(databaseURL string) (*Manager, error) {
	var (
		db  *gorm.DB
		err error
		m   Manager
	)

	m.sourceURL, m.migrateURL = MigrationTargets(databaseURL)
	if isPostgres(databaseURL) {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  databaseURL,
			PreferSimpleProtocol: true, // Required for Supabase Supavisor; harmless for direct connections
		}), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(databaseURL), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	m.db = db
	return &m, nil
}

// RunMigrations applies pending SQL migrations for the configured engine.
// Bringing a fresh database up to the current schema happens here on startup.
func (m *Manager) RunMigrations() error {
	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New(m.sourceURL, m.migrateURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// MigrationTargets maps a connection string to the migration source directory
// and the connection URL format golang-migrate expects for that engine.
func MigrationTargets(databaseURL string) (sourceURL, migrateURL string) {
	if isPostgres(databaseURL) {
		return "file://migrations/postgres", databaseURL
	}
	return "file://migrations/sqlite", "sqlite3://" + databaseURL
}

func isPostgres(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}
