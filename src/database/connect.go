package database

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	once      sync.Once
	sharedDB  *gorm.DB
	sharedErr error
)

// Connect opens a handle to the bot's store. The store is owned by the bot
// process; this side only reads, so no migrations run here.
func Connect(config Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch config.Driver {
	case "sqlite":
		dialector = sqlite.Open(config.DatabaseURL)
	case "postgres":
		dialector = postgres.Open(config.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", config.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.LogLevel(config.GormLogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB from gorm: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.WithField("driver", config.Driver).Info("[database] connection established")

	return db, nil
}

// Get returns the process-wide handle, establishing it on first use. The
// first caller wins the initialization; later callers share the same handle
// or the same error. Callers that want their own handle use Connect.
func Get() (*gorm.DB, error) {
	once.Do(func() {
		sharedDB, sharedErr = Connect(GetConfig())
	})
	return sharedDB, sharedErr
}
