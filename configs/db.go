package configs

import (
	"fmt"
	"time"

	"github.com/mayaya-dev/3awan-caferesto-api/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionDB opens the storage handle selected by DB_DRIVER.
func ConnectionDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite", "sqlite3":
		dialector = sqlite.Open(cfg.DBSource)
	case "postgres", "postgresql":
		dialector = postgres.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return OpenDB(dialector, logger.Warn)
}

// OpenDB opens gorm with the settings shared by every backend. Timestamps
// are UTC with microsecond precision so that values written in one
// transaction compare equal after a round trip.
func OpenDB(dialector gorm.Dialector, level logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(level),
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}

// SetupDatabase migrates the schema.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Category{},
		&entity.Menu{},
		&entity.Order{},
		&entity.OrderItem{},
	)
}
