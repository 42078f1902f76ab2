package infrastructure

import (
	"fmt"

	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"users-api/internal/config"
	"users-api/pkg/logger"
)

// NewDatabase creates the client of the remote users store. Connections are
// opened lazily, so an unreachable store fails requests rather than startup.
// The schema is owned by the store; no migration is run.
func NewDatabase(cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	dsn, err := cfg.Store.DSN()
	if err != nil {
		return nil, fmt.Errorf("invalid store settings: %w", err)
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{
		Logger:               logger.NewGormLogger(l, cfg.Logger.SlowQuerySeconds, cfg.Logger.Level),
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}

	l.Info("store client created")
	return db, nil
}

// CloseDatabase closes the database connection
func CloseDatabase(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
