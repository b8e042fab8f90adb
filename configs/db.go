package configs

import (
	"fmt"
	"time"

	"github.com/AGTechathon/Agriminds/entity"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func dialector(driver, source string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(source), nil
	case "postgres":
		return postgres.Open(source), nil
	case "mysql":
		return mysql.Open(source), nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
}

// ConnectionDB opens the configured database and keeps it as the package default.
func ConnectionDB(cfg *Config, log *zap.Logger) (*gorm.DB, error) {
	d, err := dialector(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		return nil, err
	}
	database, err := gorm.Open(d, &gorm.Config{
		Logger:         NewGormLogger(log, 200*time.Millisecond),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}
	if cfg.DBDriver == "sqlite" {
		// sqlite allows a single writer
		sqlDB, err := database.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		database.Exec("PRAGMA foreign_keys = ON")
	}
	db = database
	return database, nil
}

// OpenMemory is an isolated in-memory sqlite database, migrated. Used by tests.
func OpenMemory() (*gorm.DB, error) {
	database, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	if err := SetupDatabase(database); err != nil {
		return nil, err
	}
	return database, nil
}

func SetupDatabase(database *gorm.DB) error {
	return database.AutoMigrate(entity.All()...)
}
