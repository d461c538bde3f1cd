package database

import (
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager handles database connections and schema lifecycle.
type Manager struct {
	db         *gorm.DB
	migrateURL string
	sourceURL  string
	log        *zap.SugaredLogger
}

// NewManager opens a database connection for the configured driver.
func NewManager(config *Config, log *zap.SugaredLogger) (*Manager, error) {
	var db *gorm.DB
	var err error

	switch config.Driver {
	case DriverPostgres:
		db, err = gorm.Open(postgres.Open(config.PostgresDSN()), &gorm.Config{})
	default:
		db, err = gorm.Open(sqlite.Open(config.SQLitePath), &gorm.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if config.Driver == DriverPostgres {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		// SQLite serializes writes; a single connection avoids lock contention.
		sqlDB.SetMaxOpenConns(1)
	}

	return &Manager{
		db:         db,
		migrateURL: config.MigrateURL(),
		sourceURL:  "file://migrations",
		log:        log,
	}, nil
}

// RunMigrations applies pending SQL migrations from the migrations/ directory.
func (m *Manager) RunMigrations() error {
	m.log.Info("Running database migrations...")

	return m.withMigrate(func(mig *migrate.Migrate) error {
		if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
			return fmt.Errorf("migration failed: %w", err)
		}
		m.log.Info("Database migrations completed successfully")
		return nil
	})
}

// Reset drops the entire schema and recreates it from the migrations. This
// is the only supported way to wipe all data; the storage file itself is
// never touched.
func (m *Manager) Reset() error {
	m.log.Warn("Resetting database: dropping and recreating schema")

	return m.withMigrate(func(mig *migrate.Migrate) error {
		if err := mig.Drop(); err != nil {
			return fmt.Errorf("schema drop failed: %w", err)
		}
		return nil
	}, func(mig *migrate.Migrate) error {
		if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
			return fmt.Errorf("schema recreate failed: %w", err)
		}
		m.log.Info("Database reset completed")
		return nil
	})
}

// withMigrate runs each step against a fresh migrate instance. Drop discards
// the version table, so Reset needs a new instance for the following Up.
func (m *Manager) withMigrate(steps ...func(*migrate.Migrate) error) error {
	for _, step := range steps {
		mig, err := migrate.New(m.sourceURL, m.migrateURL)
		if err != nil {
			return fmt.Errorf("failed to create migrate instance: %w", err)
		}

		stepErr := step(mig)

		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			m.log.Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			m.log.Warnf("migrate database close error: %v", dbErr)
		}

		if stepErr != nil {
			return stepErr
		}
	}
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
