package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ozrabal/mentor-api-sub000/internal/config"
	"github.com/ozrabal/mentor-api-sub000/internal/models"
)

func Connect(cfg *config.Config, logger *zap.Logger) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	logger.Info("database connected", zap.String("host", cfg.DBHost), zap.String("db", cfg.DBName))
	return db
}

func AutoMigrate(db *gorm.DB, logger *zap.Logger) {
	err := db.AutoMigrate(
		&models.User{},
		&models.JobProfile{},
		&models.JobCompetency{},
		&models.Question{},
		&models.InterviewSession{},
		&models.SessionQuestion{},
		&models.InterviewTurn{},
		&models.InterviewReport{},
	)
	if err != nil {
		logger.Fatal("failed to auto-migrate", zap.Error(err))
	}
	logger.Info("database migrated")
}
