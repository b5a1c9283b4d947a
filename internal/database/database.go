package database

import (
	"fmt"
	"log"

	"github.com/pelinsarix/themind/internal/config"
	"github.com/pelinsarix/themind/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	log.Println("database connected")
	return db
}

func AutoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&models.Game{},
		&models.Player{},
		&models.HandCard{},
		&models.PlayedCard{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
}
