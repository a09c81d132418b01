package db

import (
	"os"

	"dameningen/internal/logger"
	"dameningen/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=dameningen port=5432 sslmode=disable TimeZone=Asia/Tokyo"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	logger.Log.Info().Msg("Database connection established")

	if err := Migrate(DB); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to migrate database")
	}
	logger.Log.Info().Msg("Database migration completed")
}

// Migrate 执行全部模型的 AutoMigrate，测试里也会用（sqlite 内存库）。
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Episode{},
		&models.Like{},
		&models.Follow{},
		&models.Comment{},
		&models.DiagnosisHistory{},
	)
}
