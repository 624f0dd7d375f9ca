package database

import (
	"fmt"

	"carelog-go/internal/config"
	logging "carelog-go/internal/logging"
	"carelog-go/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	dbConf := config.Conf.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)

	// Create our custom GORM logger
	gormLogger := logging.NewGormZapLogger(log)
	gormLogger.LogLevel = gormlogger.Info

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})

	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established successfully.")
	runMigrations(log)
}

func runMigrations(log *zap.Logger) {
	// GORM's AutoMigrate will create tables, columns, and foreign keys.
	// It will NOT create custom indexes, so we handle that separately.
	err := DB.AutoMigrate(
		&models.CareUnit{},
		&models.Resident{},
		&models.CareDomain{},
		&models.CareEvent{},
		&models.DomainScore{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	// The scoring batch upserts onto this key, and every event fetch hits
	// the lookup index.
	customIndexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_domain_scores_window ON domain_scores (resident_id, domain_id, window_start, window_end);`,
		`CREATE INDEX IF NOT EXISTS idx_care_events_lookup ON care_events (resident_id, domain_id, event_time);`,
	}
	for _, stmt := range customIndexes {
		if err := DB.Exec(stmt).Error; err != nil {
			log.Fatal("Failed to create custom index", zap.Error(err))
		}
	}
	log.Info("Custom indexes ensured successfully.")
}
