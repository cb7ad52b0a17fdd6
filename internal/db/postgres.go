package db

import (
	"fmt"
	"time"

	"github.com/vetlink/vetlink-api/internal/config"
	"github.com/vetlink/vetlink-api/internal/model"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the gorm session and sizes the connection pool for the
// environment.
func Connect(dbConfig *config.DBConfig, appConfig *config.AppConfig, log *zap.Logger) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if appConfig.Debug {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("could not get database instance: %w", err)
	}
	if !appConfig.IsProduction() {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	log.Info("database connected",
		zap.String("host", dbConfig.Host),
		zap.String("name", dbConfig.Name),
	)
	return db, nil
}

// Migrate enables the pgvector extension and brings every table up to date.
func Migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return fmt.Errorf("enable pgvector: %w", err)
	}
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}
