// picks the GORM driver by DBDriver. No repository/service code changes needed when you change DB.

package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"VisitorIntake/models" // auto-migrate the visitors table

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
)

// ErrMissingDSN is returned when the selected driver has no DSN configured.
var ErrMissingDSN = errors.New("dsn not configured")

// dialector maps cfg.DBDriver to the matching GORM dialector.
func dialector(cfg *Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "mysql":
		if cfg.MySQLDSN == "" {
			return nil, fmt.Errorf("mysql: %w", ErrMissingDSN)
		}
		return mysql.Open(cfg.MySQLDSN), nil
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("postgres: %w", ErrMissingDSN)
		}
		return postgres.Open(cfg.PostgresDSN), nil
	case "sqlite":
		return sqlite.Open(cfg.SQLitePath), nil // creates the file if missing
	case "sqlserver":
		if cfg.SQLServerDSN == "" {
			return nil, fmt.Errorf("sqlserver: %w", ErrMissingDSN)
		}
		return sqlserver.Open(cfg.SQLServerDSN), nil
	default:
		return nil, fmt.Errorf("unknown db_driver %q", cfg.DBDriver)
	}
}

// InitDB opens the configured store, pings it within ctx and migrates the
// visitors table. Unlike boot config errors this never exits the process:
// the caller decides to run without a store.
func InitDB(ctx context.Context, cfg *Config) (*gorm.DB, error) {
	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn), // Info is very verbose
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.DBDriver, err)
	}
	if err := db.WithContext(ctx).AutoMigrate(&models.Visitor{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}
