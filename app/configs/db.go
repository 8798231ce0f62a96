package configs

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	maxRetries = 10
	retryDelay = 5 * time.Second
)

// DSN builds the connection string for the configured driver.
func (e ENV) DSN() (string, error) {
	switch e.DBDriver {
	case DriverPostgres:
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			e.DBHost, e.DBPort, e.DBUser, e.DBPassword, e.DBName, e.DBSSLMode,
		), nil
	case DriverMySQL:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			e.DBUser, e.DBPassword, e.DBHost, e.DBPort, e.DBName,
		), nil
	default:
		return "", fmt.Errorf("unsupported DB_DRIVER %q", e.DBDriver)
	}
}

func (e ENV) dialector(dsn string) gorm.Dialector {
	if e.DBDriver == DriverMySQL {
		return mysql.Open(dsn)
	}
	return postgres.Open(dsn)
}

// GormConfig is shared by the server and the tests so both classify
// constraint violations the same way.
func GormConfig(env ENV) *gorm.Config {
	level := logger.Warn
	if !env.IsProduction() {
		level = logger.Info
	}
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
	}
}

func OpenConnection(env ENV) (*gorm.DB, error) {
	dsn, err := env.DSN()
	if err != nil {
		return nil, err
	}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		zap.L().Info("Attempting to connect to database",
			zap.Int("attempt", i+1),
			zap.Int("max_attempts", maxRetries),
			zap.String("driver", env.DBDriver),
			zap.String("host", env.DBHost),
			zap.String("database", env.DBName),
		)

		db, err := gorm.Open(env.dialector(dsn), GormConfig(env))
		if err == nil {
			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
				if pingErr == nil {
					zap.L().Info("Database connection successful")
					return db, nil
				}
			}
			lastErr = pingErr
			zap.L().Warn("Failed to ping database, retrying", zap.Error(pingErr), zap.Duration("delay", retryDelay))
		} else {
			lastErr = err
			zap.L().Warn("Failed to open GORM connection, retrying", zap.Error(err), zap.Duration("delay", retryDelay))
		}

		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("failed to connect to the database after %d retries: %w", maxRetries, lastErr)
}
