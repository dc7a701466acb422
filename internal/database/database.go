package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"github.com/wfparrish/rhcsa-command-tool/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens a gorm connection for the configured driver.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.Database)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Database.Driver, err)
	}

	log.Info().Str("driver", cfg.Database.Driver).Msg("Database connection established")
	return db, nil
}

func dialectorFor(db config.Database) (gorm.Dialector, error) {
	switch db.Driver {
	case config.DriverSQLite:
		path := db.Path
		if path == "" {
			path = "data/questions.db"
		}
		if path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite directory: %w", err)
			}
		}
		return sqlite.Open(path), nil
	case config.DriverPostgres:
		return postgres.Open(PostgresDSN(db)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", db.Driver)
	}
}

// PostgresDSN builds a key/value DSN from the DATABASE_* settings.
func PostgresDSN(db config.Database) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		db.Host, db.User, db.Password, db.Name, db.Port)
}
